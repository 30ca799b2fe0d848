package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/dice"
	"github.com/blackoutbot/blackout/pkg/state"
)

// testCatalog loads the real game content so content and code are tested
// together.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load("../../data/messages.yaml")
	require.NoError(t, err)
	return cat
}

func testPlayer() *state.PlayerState {
	p := state.NewPlayerState("p1")
	p.InIntro = false
	p.Name = "Tess"
	p.CurrentLocation = HomeKey
	return p
}

func newTestHome(t *testing.T, p *state.PlayerState) Location {
	t.Helper()
	loc, err := NewLocation(HomeKey, testCatalog(t), dice.NewSeeded(1), p)
	require.NoError(t, err)
	return loc
}

func TestHomeTableInspectionIdempotent(t *testing.T) {
	p := testPlayer()
	loc := newTestHome(t, p)
	cat := testCatalog(t)
	label := cat.Locations[HomeKey].Strings["inspect_table"]

	_, narrative, ok := loc.HandleAction(label, p)
	require.True(t, ok)
	assert.Equal(t, cat.Locations[HomeKey].Strings["got_receipts"], narrative)
	assert.Equal(t, []string{ObjUtilityReceipts}, p.Inventory)

	_, narrative, ok = loc.HandleAction(label, p)
	require.True(t, ok)
	assert.Equal(t, cat.Locations[HomeKey].Strings["nothing_found"], narrative)
	assert.Equal(t, []string{ObjUtilityReceipts}, p.Inventory, "no duplicate receipts")
}

func TestHomeInstallGeneratorBurns(t *testing.T) {
	p := testPlayer()
	p.Inventory = []string{ObjGenerator}
	loc := newTestHome(t, p)
	cat := testCatalog(t)
	install := cat.Locations[HomeKey].Strings["install_generator"]

	// Gas starts on: the first attempt burns.
	_, narrative, ok := loc.HandleAction(install, p)
	require.True(t, ok)
	assert.True(t, p.Burned)
	assert.Contains(t, narrative, "burn your hands")
	assert.False(t, p.LocationState(HomeKey).GeneratorInstalled)
	assert.Equal(t, []string{ObjGenerator}, p.Inventory, "nothing consumed on a burn")

	// A burned player gets a distinct refusal, not a second burn.
	_, narrative, ok = loc.HandleAction(install, p)
	require.True(t, ok)
	assert.Contains(t, narrative, "bandaged")
	assert.False(t, p.LocationState(HomeKey).GeneratorInstalled)

	// Healed and with the gas off, the install succeeds.
	p.Burned = false
	p.LocationState(HomeKey).GasOn = false
	_, _, ok = loc.HandleAction(install, p)
	require.True(t, ok)
	assert.True(t, p.LocationState(HomeKey).GeneratorInstalled)
	assert.Empty(t, p.Inventory)
}

func TestHomeWinCondition(t *testing.T) {
	p := testPlayer()
	loc := newTestHome(t, p)
	cat := testCatalog(t)
	st := p.LocationState(HomeKey)
	st.GasOn = false
	st.GeneratorInstalled = true

	_, _, ok := loc.HandleAction(cat.Locations[HomeKey].Strings["turn_on_gas"], p)
	require.True(t, ok)
	assert.True(t, st.GasOn)
	assert.True(t, p.Won)
}

func TestHomeGasOnWithoutGeneratorIsNotAWin(t *testing.T) {
	p := testPlayer()
	loc := newTestHome(t, p)
	cat := testCatalog(t)
	st := p.LocationState(HomeKey)
	st.GasOn = false

	_, _, ok := loc.HandleAction(cat.Locations[HomeKey].Strings["turn_on_gas"], p)
	require.True(t, ok)
	assert.False(t, p.Won)
}

func TestHomeBuildStill(t *testing.T) {
	p := testPlayer()
	p.Inventory = []string{ObjStillPartsList, ObjPipes, ObjKettle, ObjPot, ObjSugar}
	loc := newTestHome(t, p)
	cat := testCatalog(t)

	_, narrative, ok := loc.HandleAction(cat.Locations[HomeKey].Strings["build_still"], p)
	require.True(t, ok)
	assert.Equal(t, cat.Locations[HomeKey].Strings["still_built"], narrative)
	assert.ElementsMatch(t, []string{ObjSugar, ObjStill}, p.Inventory)
}

func TestHomeBrewRequiresStillAndGas(t *testing.T) {
	p := testPlayer()
	p.Inventory = []string{ObjSugar, ObjBarm, ObjBottle}
	loc := newTestHome(t, p)
	cat := testCatalog(t)
	brew := cat.Locations[HomeKey].Strings["make_booze"]

	// No still installed: the button is not offered and the action misses.
	assert.NotContains(t, loc.Actions(p), brew)
	_, _, ok := loc.HandleAction(brew, p)
	assert.False(t, ok)

	p.LocationState(HomeKey).StillInstalled = true
	assert.Contains(t, loc.Actions(p), brew)

	_, narrative, ok := loc.HandleAction(brew, p)
	require.True(t, ok)
	assert.Equal(t, cat.Locations[HomeKey].Strings["made_booze"], narrative)
	assert.Equal(t, []string{ObjBooze}, p.Inventory)
}

func TestHomeDescriptionComposition(t *testing.T) {
	p := testPlayer()
	loc := newTestHome(t, p)
	st := p.LocationState(HomeKey)

	// Fresh home: dark, kettle on the stove, gas hissing.
	desc := loc.Description(p)
	assert.Contains(t, desc, "power is out")
	assert.Contains(t, desc, "kettle sits on the stove")
	assert.Contains(t, desc, "hisses")

	st.GeneratorInstalled = true
	st.RemoveObject(ObjKettle)
	desc = loc.Description(p)
	assert.Contains(t, desc, "lamp is on")
	assert.NotContains(t, desc, "kettle sits on the stove")

	st.GasOn = false
	desc = loc.Description(p)
	assert.Contains(t, desc, "starved of gas")
	assert.Contains(t, desc, "power is out")
}

func TestHomeTravelToStreet(t *testing.T) {
	p := testPlayer()
	loc := newTestHome(t, p)
	cat := testCatalog(t)

	next, narrative, ok := loc.HandleAction(cat.Locations[HomeKey].GoTo[StreetKey], p)
	require.True(t, ok)
	assert.Equal(t, StreetKey, next)
	assert.Empty(t, narrative)
}

func TestHomeUnknownActionMisses(t *testing.T) {
	p := testPlayer()
	loc := newTestHome(t, p)

	next, narrative, ok := loc.HandleAction("Dance", p)
	assert.False(t, ok)
	assert.Empty(t, next)
	assert.Empty(t, narrative)
}
