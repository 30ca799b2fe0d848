package world

import (
	"fmt"

	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/dice"
	"github.com/blackoutbot/blackout/pkg/state"
)

// Location keys.
const (
	HomeKey            = "home"
	StreetKey          = "street"
	ElectricCompanyKey = "electric_company"
	HospitalKey        = "hospital"
	GarageKey          = "garage"
	ShopKey            = "shop"
	JunkyardKey        = "junkyard"
)

// NPC keys.
const (
	ElectricianKey = "electrician"
	AdminClerkKey  = "admin_clerk"
	DoctorKey      = "doctor"
	MechanicKey    = "mechanic"
	GenryKey       = "genry"
	MerchantKey    = "merchant"
)

// Object keys.
const (
	ObjKettle           = "kettle"
	ObjPot              = "pot"
	ObjPipes            = "pipes"
	ObjSugar            = "sugar"
	ObjBarm             = "barm"
	ObjBottle           = "bottle"
	ObjBooze            = "booze"
	ObjMagnet           = "magnet"
	ObjCopperWire       = "copper_wire"
	ObjPiston           = "piston"
	ObjValve            = "valve"
	ObjGenerator        = "generator"
	ObjGeneratorReqList = "generator_requirements_list"
	ObjStill            = "still"
	ObjStillPartsList   = "still_parts_list"
	ObjUtilityReceipts  = "utility_receipts"
)

// Location is a place in the game world. A variant is constructed per turn
// from the catalog and the player's persisted sub-state; all operations are
// deterministic given identical state except where a Roller is involved.
type Location interface {
	Key() string
	// Description composes the narrative scene text from sub-state and
	// player flags.
	Description(p *state.PlayerState) string
	// Exits lists reachable location keys, in menu order.
	Exits() []string
	// NPCs lists the keys of NPCs currently present.
	NPCs(p *state.PlayerState) []string
	// Actions lists variant-specific action buttons followed by travel
	// buttons, in menu order.
	Actions(p *state.PlayerState) []string
	// HandleAction dispatches exact button text. ok is false when the text
	// matches nothing this location offers; next is the destination key when
	// the action was a transition.
	HandleAction(text string, p *state.PlayerState) (next string, narrative string, ok bool)
}

// NPC is a non-player character with a stateful dialogue tree. A nil phrase
// slice means the conversation is closed.
type NPC interface {
	Key() string
	Name() string
	// Greeting opens the conversation and returns the first reply plus the
	// phrases now on offer.
	Greeting(p *state.PlayerState) (reply string, phrases []string)
	// Respond dispatches exact phrase text from the set last offered.
	// Unmatched text yields a generic clarification and keeps the same
	// phrase set on offer.
	Respond(text string, p *state.PlayerState) (reply string, phrases []string)
}

var locationKeys = []string{
	HomeKey,
	StreetKey,
	ElectricCompanyKey,
	HospitalKey,
	GarageKey,
	ShopKey,
	JunkyardKey,
}

var npcKeys = []string{
	ElectricianKey,
	AdminClerkKey,
	DoctorKey,
	MechanicKey,
	GenryKey,
	MerchantKey,
}

// LocationKeys returns every registered location key.
func LocationKeys() []string {
	keys := make([]string, len(locationKeys))
	copy(keys, locationKeys)
	return keys
}

// NPCKeys returns every registered NPC key.
func NPCKeys() []string {
	keys := make([]string, len(npcKeys))
	copy(keys, npcKeys)
	return keys
}

// NewLocation constructs a location variant by key, lazily creating the
// player's sub-state for it on first visit. An unknown key or a missing
// catalog section is a configuration error.
func NewLocation(key string, cat *catalog.Catalog, roller dice.Roller, p *state.PlayerState) (Location, error) {
	switch key {
	case HomeKey:
		return newHome(cat, p)
	case StreetKey:
		return newStreet(cat, p)
	case ElectricCompanyKey:
		return newElectricCompany(cat, p)
	case HospitalKey:
		return newHospital(cat, p)
	case GarageKey:
		return newGarage(cat, p)
	case ShopKey:
		return newShop(cat, p)
	case JunkyardKey:
		return newJunkyard(cat, roller, p)
	}
	return nil, fmt.Errorf("world: unknown location %q", key)
}

// NewNPC constructs an NPC variant by key, lazily creating the player's
// sub-state for it on first encounter.
func NewNPC(key string, cat *catalog.Catalog, roller dice.Roller, p *state.PlayerState) (NPC, error) {
	switch key {
	case ElectricianKey:
		return newElectrician(cat, p)
	case AdminClerkKey:
		return newAdminClerk(cat, p)
	case DoctorKey:
		return newDoctor(cat, p)
	case MechanicKey:
		return newMechanic(cat, p)
	case GenryKey:
		return newGenry(cat, p)
	case MerchantKey:
		return newMerchant(cat, roller, p)
	}
	return nil, fmt.Errorf("world: unknown npc %q", key)
}

// ensureLocationState returns the existing sub-state for key or stores and
// returns the provided defaults.
func ensureLocationState(p *state.PlayerState, key string, defaults func() *state.LocationState) *state.LocationState {
	if st := p.LocationState(key); st != nil {
		return st
	}
	st := defaults()
	p.PutLocationState(key, st)
	return st
}

// ensureNPCState returns the existing sub-state for key or stores and
// returns fresh defaults.
func ensureNPCState(p *state.PlayerState, key string, defaults func() *state.NPCState) *state.NPCState {
	if st := p.NPCState(key); st != nil {
		return st
	}
	st := defaults()
	p.PutNPCState(key, st)
	return st
}
