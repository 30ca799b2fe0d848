package world

import (
	"fmt"

	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/state"
)

// stillParts are consumed when crafting the still.
var stillParts = []string{ObjPipes, ObjKettle, ObjPot}

// boozeIngredients are consumed when brewing.
var boozeIngredients = []string{ObjSugar, ObjBarm, ObjBottle}

type homeStrings struct {
	description      string
	light            string
	noLight          string
	generatorWorks   string
	generatorStopped string
	kettleOnGas      string
	gasOnClause      string
	gasOffClause     string

	turnOnGas     string
	turnOffGas    string
	gasTurnedOn   string
	gasTurnedOff  string
	lookAtWindow  string
	atStreet      string
	inspectTable  string
	gotReceipts   string
	nothingFound  string
	buildStill    string
	stillBuilt    string
	installGen    string
	genInstalled  string
	installStill  string
	stillInstall  string
	makeBooze     string
	madeBooze     string
	burnt         string // format: object display name
	hot           string // format: object display name
	generatorName string
	stillName     string
}

// home is the player's apartment. The gas valve, the crafting bench of the
// whole game: still assembly, generator install, and the win condition all
// live here.
type home struct {
	travel
	st *state.LocationState
	s  homeStrings
}

func newHome(cat *catalog.Catalog, p *state.PlayerState) (*home, error) {
	rs := cat.LocationStrings(HomeKey)
	h := &home{
		travel: newTravel(rs, StreetKey),
		st: ensureLocationState(p, HomeKey, func() *state.LocationState {
			return &state.LocationState{
				Objects: []string{ObjKettle},
				GasOn:   true,
			}
		}),
		s: homeStrings{
			description:      rs.Get("description"),
			light:            rs.Get("light"),
			noLight:          rs.Get("no_light"),
			generatorWorks:   rs.Get("generator_works"),
			generatorStopped: rs.Get("generator_stopped"),
			kettleOnGas:      rs.Get("kettle_on_gas"),
			gasOnClause:      rs.Get("gas_on"),
			gasOffClause:     rs.Get("gas_off"),
			turnOnGas:        rs.Get("turn_on_gas"),
			turnOffGas:       rs.Get("turn_off_gas"),
			gasTurnedOn:      rs.Get("gas_turned_on"),
			gasTurnedOff:     rs.Get("gas_turned_off"),
			lookAtWindow:     rs.Get("look_at_window"),
			atStreet:         rs.Get("at_street"),
			inspectTable:     rs.Get("inspect_table"),
			gotReceipts:      rs.Get("got_receipts"),
			nothingFound:     rs.Get("nothing_found"),
			buildStill:       rs.Get("build_still"),
			stillBuilt:       rs.Get("still_built"),
			installGen:       rs.Get("install_generator"),
			genInstalled:     rs.Get("generator_installed"),
			installStill:     rs.Get("install_still"),
			stillInstall:     rs.Get("still_installed"),
			makeBooze:        rs.Get("make_booze"),
			madeBooze:        rs.Get("made_booze"),
			burnt:            rs.Get("burnt"),
			hot:              rs.Get("hot"),
		},
	}
	var err error
	if h.s.generatorName, err = cat.ObjectName(ObjGenerator); err != nil {
		return nil, err
	}
	if h.s.stillName, err = cat.ObjectName(ObjStill); err != nil {
		return nil, err
	}
	if err := rs.Err(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *home) Key() string { return HomeKey }

func (h *home) Description(p *state.PlayerState) string {
	text := h.s.description
	if h.st.GeneratorInstalled {
		if h.st.GasOn {
			text += " " + h.s.generatorWorks + " " + h.s.light
		} else {
			text += " " + h.s.generatorStopped + " " + h.s.noLight
		}
	} else {
		text += " " + h.s.noLight
	}
	for _, obj := range h.st.Objects {
		if obj == ObjKettle {
			text += " " + h.s.kettleOnGas
			break
		}
	}
	if h.st.GasOn {
		text += " " + h.s.gasOnClause
	} else {
		text += " " + h.s.gasOffClause
	}
	return text
}

func (h *home) NPCs(p *state.PlayerState) []string { return nil }

func (h *home) canBrew(p *state.PlayerState) bool {
	return p.Has(boozeIngredients...) && h.st.StillInstalled && h.st.GasOn
}

func (h *home) Actions(p *state.PlayerState) []string {
	var actions []string
	if h.st.GasOn {
		actions = append(actions, h.s.turnOffGas)
	} else {
		actions = append(actions, h.s.turnOnGas)
	}
	if p.Has(stillParts...) {
		actions = append(actions, h.s.buildStill)
	}
	if !h.st.GeneratorInstalled && p.Has(ObjGenerator) {
		actions = append(actions, h.s.installGen)
	}
	if !h.st.StillInstalled && p.Has(ObjStill) {
		actions = append(actions, h.s.installStill)
	}
	if h.canBrew(p) {
		actions = append(actions, h.s.makeBooze)
	}
	actions = append(actions, h.s.lookAtWindow, h.s.inspectTable)
	return append(actions, h.exitButtons()...)
}

func (h *home) HandleAction(text string, p *state.PlayerState) (string, string, bool) {
	switch {
	case h.st.GasOn && text == h.s.turnOffGas:
		h.st.GasOn = false
		return "", h.s.gasTurnedOff, true

	case !h.st.GasOn && text == h.s.turnOnGas:
		h.st.GasOn = true
		if h.st.GeneratorInstalled {
			p.Won = true
		}
		return "", h.s.gasTurnedOn, true

	case text == h.s.lookAtWindow:
		return "", h.s.atStreet, true

	case text == h.s.inspectTable:
		if h.st.TableInspected {
			return "", h.s.nothingFound, true
		}
		h.st.TableInspected = true
		p.AddItem(ObjUtilityReceipts)
		return "", h.s.gotReceipts, true

	case !h.st.GeneratorInstalled && p.Has(ObjGenerator) && text == h.s.installGen:
		return "", h.install(p, ObjGenerator, h.s.generatorName, h.s.genInstalled, func() {
			h.st.GeneratorInstalled = true
		}), true

	case p.Has(stillParts...) && text == h.s.buildStill:
		p.RemoveOne(ObjStillPartsList)
		for _, part := range stillParts {
			p.RemoveOne(part)
		}
		p.AddItem(ObjStill)
		return "", h.s.stillBuilt, true

	case !h.st.StillInstalled && p.Has(ObjStill) && text == h.s.installStill:
		return "", h.install(p, ObjStill, h.s.stillName, h.s.stillInstall, func() {
			h.st.StillInstalled = true
		}), true

	case h.canBrew(p) && text == h.s.makeBooze:
		for _, ingredient := range boozeIngredients {
			p.RemoveOne(ingredient)
		}
		p.AddItem(ObjBooze)
		return "", h.s.madeBooze, true
	}

	if dest, ok := h.handleTravel(text); ok {
		return dest, "", true
	}
	return "", "", false
}

// install attaches an appliance to the gas line. Doing that with the gas on
// burns the player and installs nothing; a burned player gets a distinct
// refusal instead of a second burn.
func (h *home) install(p *state.PlayerState, obj, name, done string, mark func()) string {
	if p.Burned {
		return fmt.Sprintf(h.s.burnt, name)
	}
	if h.st.GasOn {
		p.Burned = true
		return fmt.Sprintf(h.s.hot, name)
	}
	mark()
	p.RemoveOne(obj)
	return done
}
