package world

import "github.com/blackoutbot/blackout/pkg/catalog"

// travel carries a location's static exits and their button labels.
type travel struct {
	exits []string
	goTo  map[string]string // destination key -> button label
}

func newTravel(rs *catalog.Resolver, exits ...string) travel {
	t := travel{exits: exits, goTo: make(map[string]string, len(exits))}
	for _, dest := range exits {
		t.goTo[dest] = rs.GoTo(dest)
	}
	return t
}

func (t travel) Exits() []string {
	exits := make([]string, len(t.exits))
	copy(exits, t.exits)
	return exits
}

func (t travel) exitButtons() []string {
	buttons := make([]string, 0, len(t.exits))
	for _, dest := range t.exits {
		buttons = append(buttons, t.goTo[dest])
	}
	return buttons
}

func (t travel) handleTravel(text string) (string, bool) {
	for _, dest := range t.exits {
		if t.goTo[dest] == text {
			return dest, true
		}
	}
	return "", false
}
