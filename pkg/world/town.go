package world

import (
	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/state"
)

// The town locations carry no mutable state of their own beyond their
// (empty) object lists; they exist for travel and for the NPCs they host.

func emptyLocationState() *state.LocationState {
	return &state.LocationState{Objects: []string{}}
}

// street is the hub connecting every other location. Genry hangs around
// here.
type street struct {
	travel
	description string
}

func newStreet(cat *catalog.Catalog, p *state.PlayerState) (*street, error) {
	rs := cat.LocationStrings(StreetKey)
	ensureLocationState(p, StreetKey, emptyLocationState)
	loc := &street{
		travel: newTravel(rs,
			HomeKey,
			ElectricCompanyKey,
			HospitalKey,
			GarageKey,
			ShopKey,
			JunkyardKey,
		),
		description: rs.Get("description"),
	}
	return loc, rs.Err()
}

func (l *street) Key() string                                { return StreetKey }
func (l *street) Description(p *state.PlayerState) string    { return l.description }
func (l *street) NPCs(p *state.PlayerState) []string         { return []string{GenryKey} }
func (l *street) Actions(p *state.PlayerState) []string      { return l.exitButtons() }
func (l *street) HandleAction(text string, p *state.PlayerState) (string, string, bool) {
	if dest, ok := l.handleTravel(text); ok {
		return dest, "", true
	}
	return "", "", false
}

// electricCompany hosts the admin clerk, and the electrician until he has
// gone to inspect the blackout.
type electricCompany struct {
	travel
	description       string
	electricianClause string
}

func newElectricCompany(cat *catalog.Catalog, p *state.PlayerState) (*electricCompany, error) {
	rs := cat.LocationStrings(ElectricCompanyKey)
	ensureLocationState(p, ElectricCompanyKey, emptyLocationState)
	loc := &electricCompany{
		travel:            newTravel(rs, StreetKey),
		description:       rs.Get("description"),
		electricianClause: rs.Get("electrician"),
	}
	return loc, rs.Err()
}

func (l *electricCompany) Key() string { return ElectricCompanyKey }

func (l *electricCompany) Description(p *state.PlayerState) string {
	text := l.description
	if !p.ElectricianInspected {
		text += " " + l.electricianClause
	}
	return text
}

func (l *electricCompany) NPCs(p *state.PlayerState) []string {
	npcs := []string{AdminClerkKey}
	if !p.ElectricianInspected {
		npcs = append(npcs, ElectricianKey)
	}
	return npcs
}

func (l *electricCompany) Actions(p *state.PlayerState) []string { return l.exitButtons() }

func (l *electricCompany) HandleAction(text string, p *state.PlayerState) (string, string, bool) {
	if dest, ok := l.handleTravel(text); ok {
		return dest, "", true
	}
	return "", "", false
}

// singleNPCLocation covers the hospital, garage and shop: one resident NPC,
// one exit back to the street.
type singleNPCLocation struct {
	travel
	key         string
	description string
	npc         string
}

func newSingleNPCLocation(cat *catalog.Catalog, p *state.PlayerState, key, npc string) (*singleNPCLocation, error) {
	rs := cat.LocationStrings(key)
	ensureLocationState(p, key, emptyLocationState)
	loc := &singleNPCLocation{
		travel:      newTravel(rs, StreetKey),
		key:         key,
		description: rs.Get("description"),
		npc:         npc,
	}
	return loc, rs.Err()
}

func newHospital(cat *catalog.Catalog, p *state.PlayerState) (*singleNPCLocation, error) {
	return newSingleNPCLocation(cat, p, HospitalKey, DoctorKey)
}

func newGarage(cat *catalog.Catalog, p *state.PlayerState) (*singleNPCLocation, error) {
	return newSingleNPCLocation(cat, p, GarageKey, MechanicKey)
}

func newShop(cat *catalog.Catalog, p *state.PlayerState) (*singleNPCLocation, error) {
	return newSingleNPCLocation(cat, p, ShopKey, MerchantKey)
}

func (l *singleNPCLocation) Key() string                             { return l.key }
func (l *singleNPCLocation) Description(p *state.PlayerState) string { return l.description }
func (l *singleNPCLocation) NPCs(p *state.PlayerState) []string      { return []string{l.npc} }
func (l *singleNPCLocation) Actions(p *state.PlayerState) []string   { return l.exitButtons() }
func (l *singleNPCLocation) HandleAction(text string, p *state.PlayerState) (string, string, bool) {
	if dest, ok := l.handleTravel(text); ok {
		return dest, "", true
	}
	return "", "", false
}
