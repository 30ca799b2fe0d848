package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
intro: "Wake up."
intro_keyboard: ["Get up"]
ask_name: "Name?"
story: "A story."
help: "Help text."
wrong_action: "No."
unclear: "What?"
show_inventory: "Show inventory"
inventory: "Bag:\n%s\nMoney: %d"
inventory_empty: "Empty. Money: %d"
take: "Take %s"
took: "Took %s."
talk: "Talk to %s"
you_won: "Won in %d turns with %d money, score %d"
highscores: "Scores:\n%s"
highscore: "%d. %s %d %d %d"
apology: "Sorry."
objects:
  kettle: "kettle"
object_descriptions:
  kettle: "A kettle."
locations:
  home:
    go_to:
      street: "Go outside"
    description: "Home."
npcs:
  doctor:
    name: "Doctor"
    greeting: "Hello."
`

func TestParseValid(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "Wake up.", c.Intro)
	assert.Equal(t, []string{"Get up"}, c.IntroKeyboard)

	name, err := c.ObjectName("kettle")
	require.NoError(t, err)
	assert.Equal(t, "kettle", name)

	rs := c.LocationStrings("home")
	assert.Equal(t, "Home.", rs.Get("description"))
	assert.Equal(t, "Go outside", rs.GoTo("street"))
	assert.NoError(t, rs.Err())
}

func TestParseMissingTopLevelKey(t *testing.T) {
	_, err := Parse([]byte(`intro: "hi"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required key")
}

func TestObjectWithoutDescription(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	c.ObjectDescriptions = map[string]string{}
	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no description")
}

func TestResolverMissingKeys(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	rs := c.LocationStrings("home")
	_ = rs.Get("description")
	_ = rs.Get("no_such_key")
	_ = rs.GoTo("nowhere")
	err = rs.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_key")
	assert.Contains(t, err.Error(), "go_to.nowhere")
}

func TestResolverMissingSection(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	rs := c.NPCStrings("mechanic")
	assert.Empty(t, rs.Get("name"))
	require.Error(t, rs.Err())
	assert.Contains(t, rs.Err().Error(), `missing section "npcs.mechanic"`)
}

func TestUnknownObject(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	_, err = c.ObjectName("ghost")
	assert.Error(t, err)
	_, err = c.ObjectDescription("ghost")
	assert.Error(t, err)
	assert.False(t, c.KnownObject("ghost"))
	assert.True(t, c.KnownObject("kettle"))
}
