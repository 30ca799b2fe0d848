package state

import "time"

// StartingMoney is granted on first contact and on reset.
const StartingMoney = 100

// PlayerState is the full persisted snapshot for one player. Location and
// NPC sub-states are created lazily on first visit/encounter and never
// deleted. All mutation happens in memory during a turn; persistence is a
// single save point after the turn resolves.
type PlayerState struct {
	PlayerID        string    `json:"player_id"`
	Turn            int       `json:"turn"`
	InIntro         bool      `json:"in_intro,omitempty"`
	Name            string    `json:"name,omitempty"`
	CurrentLocation string    `json:"current_location,omitempty"`
	CurrentNPC      string    `json:"current_npc,omitempty"` // empty means not talking to anyone
	Inventory       []string  `json:"inventory,omitempty"`
	Money           int       `json:"money"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`

	Locations map[string]*LocationState `json:"locations,omitempty"`
	NPCs      map[string]*NPCState      `json:"npcs,omitempty"`

	// Quest progress flags.
	KnowsAboutGenerator   bool `json:"knows_about_generator,omitempty"`
	FilledElectricRequest bool `json:"filled_electric_request,omitempty"`
	ElectricianInspected  bool `json:"electrician_inspected,omitempty"`
	Burned                bool `json:"burned,omitempty"`
	Won                   bool `json:"won,omitempty"` // monotonic: once true, turns stop mutating state
}

// LocationState is the per-player persisted sub-state of one location.
// A single struct holds the union of all variant fields; each variant only
// touches its own. Unknown legacy fields are dropped on decode.
type LocationState struct {
	Objects []string `json:"objects"`

	// Home.
	GasOn              bool `json:"gas_on,omitempty"`
	TableInspected     bool `json:"table_inspected,omitempty"`
	GeneratorInstalled bool `json:"generator_installed,omitempty"`
	StillInstalled     bool `json:"still_installed,omitempty"`

	// Junkyard.
	LastScavengeTurn int `json:"last_scavenge_turn,omitempty"`
}

// NPCState is the per-player persisted sub-state of one NPC, holding
// conversation-independent memory.
type NPCState struct {
	// Admin clerk.
	Asked           bool `json:"asked,omitempty"`
	RequestAccepted bool `json:"request_accepted,omitempty"`

	// Mechanic.
	GeneratorBuilt bool `json:"generator_built,omitempty"`

	// Merchant. Goods maps object key to its current stock roll; nil means
	// the stock table has been cleared and must be re-rolled.
	Goods            map[string]int `json:"goods,omitempty"`
	GoodsChangedTurn int            `json:"goods_changed_turn,omitempty"`
	Buying           bool           `json:"buying,omitempty"`
	Selling          bool           `json:"selling,omitempty"`
}

// NewPlayerState creates a fresh player on first contact.
func NewPlayerState(playerID string) *PlayerState {
	p := &PlayerState{PlayerID: playerID}
	p.Reset()
	return p
}

// Reset restores all defaults, keeping only the player identity.
func (p *PlayerState) Reset() {
	p.Turn = 0
	p.InIntro = true
	p.Name = ""
	p.CurrentLocation = ""
	p.CurrentNPC = ""
	p.Inventory = nil
	p.Money = StartingMoney
	p.Locations = make(map[string]*LocationState)
	p.NPCs = make(map[string]*NPCState)
	p.KnowsAboutGenerator = false
	p.FilledElectricRequest = false
	p.ElectricianInspected = false
	p.Burned = false
	p.Won = false
}

// Has reports whether every given object key is present in the inventory.
func (p *PlayerState) Has(keys ...string) bool {
	for _, key := range keys {
		found := false
		for _, item := range p.Inventory {
			if item == key {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// AddItem appends one instance of an object to the inventory.
func (p *PlayerState) AddItem(key string) {
	p.Inventory = append(p.Inventory, key)
}

// RemoveOne removes the first matching instance of an object from the
// inventory, leaving any duplicates intact.
func (p *PlayerState) RemoveOne(key string) bool {
	for i, item := range p.Inventory {
		if item == key {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// LocationState returns the sub-state for a location key, or nil if the
// location has not been visited.
func (p *PlayerState) LocationState(key string) *LocationState {
	return p.Locations[key]
}

// PutLocationState stores a location sub-state, creating the map if this is
// a legacy snapshot without one.
func (p *PlayerState) PutLocationState(key string, st *LocationState) {
	if p.Locations == nil {
		p.Locations = make(map[string]*LocationState)
	}
	p.Locations[key] = st
}

// NPCState returns the sub-state for an NPC key, or nil if the NPC has not
// been encountered.
func (p *PlayerState) NPCState(key string) *NPCState {
	return p.NPCs[key]
}

// PutNPCState stores an NPC sub-state.
func (p *PlayerState) PutNPCState(key string, st *NPCState) {
	if p.NPCs == nil {
		p.NPCs = make(map[string]*NPCState)
	}
	p.NPCs[key] = st
}

// RemoveObject removes the first matching object from a location's object
// list.
func (ls *LocationState) RemoveObject(key string) bool {
	for i, obj := range ls.Objects {
		if obj == key {
			ls.Objects = append(ls.Objects[:i], ls.Objects[i+1:]...)
			return true
		}
	}
	return false
}
