package engine

import (
	"fmt"
	"strings"

	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/dice"
	"github.com/blackoutbot/blackout/pkg/state"
	"github.com/blackoutbot/blackout/pkg/world"
)

// Engine resolves one player turn: it interprets the chosen button text
// against the current game state, mutates the state in memory, and returns
// the next narrative beat plus the menu of valid choices. It never touches
// the network or storage; gameplay misses become narrative text, and only
// configuration problems surface as errors.
type Engine struct {
	cat    *catalog.Catalog
	roller dice.Roller
}

// TurnResult is the outcome of one resolved turn.
type TurnResult struct {
	Text string
	Menu []string
}

// New creates an engine over a validated catalog.
func New(cat *catalog.Catalog, roller dice.Roller) *Engine {
	return &Engine{cat: cat, roller: roller}
}

// Resolve processes one button press. Priority: open conversation,
// inventory, talk, take, location action. The turn counter increments once
// per resolved turn.
func (e *Engine) Resolve(p *state.PlayerState, text string) (*TurnResult, error) {
	if p.CurrentLocation == "" {
		p.CurrentLocation = world.HomeKey
	}

	if p.CurrentNPC != "" {
		npc, err := world.NewNPC(p.CurrentNPC, e.cat, e.roller, p)
		if err != nil {
			return nil, err
		}
		reply, phrases := npc.Respond(text, p)
		line := npc.Name() + ": " + reply
		if phrases != nil {
			p.Turn++
			return &TurnResult{Text: line, Menu: phrases}, nil
		}
		// The conversation closed; the same text may still double as a
		// location action. A miss is swallowed because the text was a
		// valid phrase, not bad input.
		p.CurrentNPC = ""
		return e.resolveAtLocation(p, text, line, true)
	}

	return e.resolveAtLocation(p, text, "", false)
}

// Describe composes the current location's description and menu without
// consuming a turn. The session uses it when a player first enters the
// world.
func (e *Engine) Describe(p *state.PlayerState) (*TurnResult, error) {
	if p.CurrentLocation == "" {
		p.CurrentLocation = world.HomeKey
	}
	loc, err := world.NewLocation(p.CurrentLocation, e.cat, e.roller, p)
	if err != nil {
		return nil, err
	}
	menu, err := e.menuFor(loc, p)
	if err != nil {
		return nil, err
	}
	return &TurnResult{Text: loc.Description(p), Menu: menu}, nil
}

// resolveAtLocation runs the non-conversation rules. prefix is a closing
// NPC line carried over from rule 1; fromConversation additionally
// suppresses the invalid-action narrative and talk re-dispatch.
func (e *Engine) resolveAtLocation(p *state.PlayerState, text, prefix string, fromConversation bool) (*TurnResult, error) {
	loc, err := world.NewLocation(p.CurrentLocation, e.cat, e.roller, p)
	if err != nil {
		return nil, err
	}

	narrative := ""
	matched := false

	if text == e.cat.ShowInventory {
		narrative, err = e.inventoryText(p)
		if err != nil {
			return nil, err
		}
		matched = true
	}

	if !matched && !fromConversation {
		result, handled, err := e.tryTalk(loc, p, text)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
		if handled != "" {
			narrative = handled
			matched = true
		}
	}

	if !matched {
		st := p.LocationState(loc.Key())
		for _, obj := range st.Objects {
			name, err := e.cat.ObjectName(obj)
			if err != nil {
				return nil, err
			}
			if fmt.Sprintf(e.cat.Take, name) != text {
				continue
			}
			st.RemoveObject(obj)
			p.AddItem(obj)
			narrative = fmt.Sprintf(e.cat.Took, name)
			matched = true
			break
		}
	}

	if !matched {
		next, actionText, ok := loc.HandleAction(text, p)
		if ok {
			narrative = actionText
			matched = true
			if next != "" {
				p.CurrentLocation = next
				loc, err = world.NewLocation(next, e.cat, e.roller, p)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	if !matched && !fromConversation {
		narrative = e.cat.WrongAction
	}

	menu, err := e.menuFor(loc, p)
	if err != nil {
		return nil, err
	}
	p.Turn++

	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString("\n\n")
	}
	if narrative != "" {
		b.WriteString(narrative)
		b.WriteString(" ")
	}
	b.WriteString(loc.Description(p))
	return &TurnResult{Text: b.String(), Menu: menu}, nil
}

// tryTalk opens a conversation when text is a talk button for a present
// NPC. It returns a final TurnResult when the conversation stays open, or a
// narrative line when the greeting closed it immediately.
func (e *Engine) tryTalk(loc world.Location, p *state.PlayerState, text string) (*TurnResult, string, error) {
	for _, key := range loc.NPCs(p) {
		npc, err := world.NewNPC(key, e.cat, e.roller, p)
		if err != nil {
			return nil, "", err
		}
		if fmt.Sprintf(e.cat.Talk, npc.Name()) != text {
			continue
		}
		p.CurrentNPC = key
		reply, phrases := npc.Greeting(p)
		line := npc.Name() + ": " + reply
		if phrases != nil {
			p.Turn++
			return &TurnResult{Text: line, Menu: phrases}, "", nil
		}
		p.CurrentNPC = ""
		return nil, line, nil
	}
	return nil, "", nil
}

// menuFor assembles the location menu: inventory, take buttons, variant
// actions, travel buttons, talk buttons.
func (e *Engine) menuFor(loc world.Location, p *state.PlayerState) ([]string, error) {
	menu := []string{e.cat.ShowInventory}
	st := p.LocationState(loc.Key())
	for _, obj := range st.Objects {
		name, err := e.cat.ObjectName(obj)
		if err != nil {
			return nil, err
		}
		menu = append(menu, fmt.Sprintf(e.cat.Take, name))
	}
	menu = append(menu, loc.Actions(p)...)
	for _, key := range loc.NPCs(p) {
		npc, err := world.NewNPC(key, e.cat, e.roller, p)
		if err != nil {
			return nil, err
		}
		menu = append(menu, fmt.Sprintf(e.cat.Talk, npc.Name()))
	}
	return menu, nil
}

func (e *Engine) inventoryText(p *state.PlayerState) (string, error) {
	if len(p.Inventory) == 0 {
		return fmt.Sprintf(e.cat.InventoryEmpty, p.Money), nil
	}
	lines := make([]string, 0, len(p.Inventory))
	for _, obj := range p.Inventory {
		name, err := e.cat.ObjectName(obj)
		if err != nil {
			return "", err
		}
		desc, err := e.cat.ObjectDescription(obj)
		if err != nil {
			return "", err
		}
		lines = append(lines, name+": "+desc)
	}
	return fmt.Sprintf(e.cat.Inventory, strings.Join(lines, "\n"), p.Money), nil
}
