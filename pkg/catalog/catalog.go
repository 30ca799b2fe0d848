package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds every user-visible string in the game, loaded from a YAML
// content file. The engine never hardcodes narrative text; a missing key is
// a configuration error, never a silent default.
type Catalog struct {
	Intro          string   `yaml:"intro"`
	IntroKeyboard  []string `yaml:"intro_keyboard"`
	AskName        string   `yaml:"ask_name"`
	Story          string   `yaml:"story"`
	Help           string   `yaml:"help"`
	WrongAction    string   `yaml:"wrong_action"`
	Unclear        string   `yaml:"unclear"`
	ShowInventory  string   `yaml:"show_inventory"`
	Inventory      string   `yaml:"inventory"`
	InventoryEmpty string   `yaml:"inventory_empty"`
	Take           string   `yaml:"take"`
	Took           string   `yaml:"took"`
	Talk           string   `yaml:"talk"`
	YouWon         string   `yaml:"you_won"`
	Highscores     string   `yaml:"highscores"`
	Highscore      string   `yaml:"highscore"`
	Apology        string   `yaml:"apology"`

	Objects            map[string]string  `yaml:"objects"`
	ObjectDescriptions map[string]string  `yaml:"object_descriptions"`
	Locations          map[string]Section `yaml:"locations"`
	NPCs               map[string]Section `yaml:"npcs"`
}

// Section is the per-location or per-NPC string sub-catalog. Location
// sections additionally carry go_to button labels keyed by destination.
type Section struct {
	GoTo    map[string]string `yaml:"go_to,omitempty"`
	Strings map[string]string `yaml:",inline"`
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every top-level key is present and that each object
// has both a display name and a description.
func (c *Catalog) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"intro", c.Intro},
		{"ask_name", c.AskName},
		{"story", c.Story},
		{"help", c.Help},
		{"wrong_action", c.WrongAction},
		{"unclear", c.Unclear},
		{"show_inventory", c.ShowInventory},
		{"inventory", c.Inventory},
		{"inventory_empty", c.InventoryEmpty},
		{"take", c.Take},
		{"took", c.Took},
		{"talk", c.Talk},
		{"you_won", c.YouWon},
		{"highscores", c.Highscores},
		{"highscore", c.Highscore},
		{"apology", c.Apology},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("catalog: missing required key %q", r.key)
		}
	}
	if len(c.IntroKeyboard) == 0 {
		return fmt.Errorf("catalog: missing required key %q", "intro_keyboard")
	}
	if len(c.Objects) == 0 {
		return fmt.Errorf("catalog: missing required key %q", "objects")
	}
	for key := range c.Objects {
		if c.ObjectDescriptions[key] == "" {
			return fmt.Errorf("catalog: object %q has no description", key)
		}
	}
	if len(c.Locations) == 0 {
		return fmt.Errorf("catalog: missing required key %q", "locations")
	}
	if len(c.NPCs) == 0 {
		return fmt.Errorf("catalog: missing required key %q", "npcs")
	}
	return nil
}

// ObjectName returns the display name for an object key.
func (c *Catalog) ObjectName(key string) (string, error) {
	name, ok := c.Objects[key]
	if !ok {
		return "", fmt.Errorf("catalog: unknown object %q", key)
	}
	return name, nil
}

// ObjectDescription returns the inventory description for an object key.
func (c *Catalog) ObjectDescription(key string) (string, error) {
	desc, ok := c.ObjectDescriptions[key]
	if !ok {
		return "", fmt.Errorf("catalog: unknown object %q", key)
	}
	return desc, nil
}

// KnownObject reports whether the object key exists in the catalog.
func (c *Catalog) KnownObject(key string) bool {
	_, ok := c.Objects[key]
	return ok
}

// LocationStrings returns a resolver over a location's string section.
func (c *Catalog) LocationStrings(key string) *Resolver {
	s, ok := c.Locations[key]
	if !ok {
		return &Resolver{section: "locations." + key, missing: true}
	}
	return &Resolver{section: "locations." + key, s: s}
}

// NPCStrings returns a resolver over an NPC's string section.
func (c *Catalog) NPCStrings(key string) *Resolver {
	s, ok := c.NPCs[key]
	if !ok {
		return &Resolver{section: "npcs." + key, missing: true}
	}
	return &Resolver{section: "npcs." + key, s: s}
}

// Resolver reads strings out of one section, accumulating any missing keys
// so a constructor can resolve all of its text and then fail once with a
// complete error.
type Resolver struct {
	section string
	s       Section
	missing bool
	keys    []string
}

// Get returns the string for key, recording it as missing if absent.
func (r *Resolver) Get(key string) string {
	if r.missing {
		return ""
	}
	v, ok := r.s.Strings[key]
	if !ok {
		r.keys = append(r.keys, key)
		return ""
	}
	return v
}

// GoTo returns the travel button label for a destination location key.
func (r *Resolver) GoTo(dest string) string {
	if r.missing {
		return ""
	}
	v, ok := r.s.GoTo[dest]
	if !ok {
		r.keys = append(r.keys, "go_to."+dest)
		return ""
	}
	return v
}

// Err reports every key that was requested but absent.
func (r *Resolver) Err() error {
	if r.missing {
		return fmt.Errorf("catalog: missing section %q", r.section)
	}
	if len(r.keys) > 0 {
		return fmt.Errorf("catalog: section %q missing keys %v", r.section, r.keys)
	}
	return nil
}
