package main

import (
	"fmt"
	"os"

	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/dice"
	"github.com/blackoutbot/blackout/pkg/state"
	"github.com/blackoutbot/blackout/pkg/world"
)

// Constructing every world variant against the catalog surfaces each missing
// string key before a deploy, instead of at a player's first unlucky turn.
func main() {
	path := "data/messages.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fmt.Printf("Validating %s...\n", path)

	cat, err := catalog.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	var errs []string
	roller := dice.New()

	// A maximally progressed player exercises every conditional string.
	p := state.NewPlayerState("validate")
	p.InIntro = false
	p.Name = "Validator"
	p.FilledElectricRequest = true
	p.KnowsAboutGenerator = true
	p.Burned = true

	for _, key := range world.LocationKeys() {
		loc, err := world.NewLocation(key, cat, roller, p)
		if err != nil {
			errs = append(errs, fmt.Sprintf("  - location %s: %v", key, err))
			continue
		}
		p.CurrentLocation = key
		loc.Description(p)
		loc.Actions(p)
	}

	for _, key := range world.NPCKeys() {
		npc, err := world.NewNPC(key, cat, roller, p)
		if err != nil {
			errs = append(errs, fmt.Sprintf("  - npc %s: %v", key, err))
			continue
		}
		npc.Greeting(p)
	}

	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "Validation errors in %s:\n", path)
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}

	fmt.Println("Catalog is valid!")
}
