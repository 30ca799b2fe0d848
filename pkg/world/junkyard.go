package world

import (
	"fmt"

	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/dice"
	"github.com/blackoutbot/blackout/pkg/state"
)

// scavengeCooldown is the minimum number of turns between scavenge
// attempts.
const scavengeCooldown = 10

// scavengeBudgetBase is the baseline value of what a dig can turn up.
const scavengeBudgetBase = 300

// junkyardLoot is the scavenging table: object key to baseline price, in a
// fixed order so menu text and dice consumption are reproducible.
var junkyardLootOrder = []string{
	ObjMagnet,
	ObjCopperWire,
	ObjPiston,
	ObjValve,
	ObjBottle,
	ObjPipes,
	ObjKettle,
	ObjPot,
}

var junkyardLoot = map[string]int{
	ObjMagnet:     1000,
	ObjCopperWire: 300,
	ObjPiston:     750,
	ObjValve:      200,
	ObjBottle:     5,
	ObjPipes:      30,
	ObjKettle:     70,
	ObjPot:        50,
}

type junkyard struct {
	travel
	st     *state.LocationState
	roller dice.Roller

	description     string
	tryFind         string
	found           string // format: object display name
	nothingFound    string
	alreadySearched string
	lootNames       map[string]string
}

func newJunkyard(cat *catalog.Catalog, roller dice.Roller, p *state.PlayerState) (*junkyard, error) {
	rs := cat.LocationStrings(JunkyardKey)
	loc := &junkyard{
		travel: newTravel(rs, StreetKey),
		st: ensureLocationState(p, JunkyardKey, func() *state.LocationState {
			// The default lets a fresh player scavenge immediately.
			return &state.LocationState{Objects: []string{}, LastScavengeTurn: -(scavengeCooldown + 1)}
		}),
		roller:          roller,
		description:     rs.Get("description"),
		tryFind:         rs.Get("try_find_something"),
		found:           rs.Get("found"),
		nothingFound:    rs.Get("nothing_found"),
		alreadySearched: rs.Get("already_searched"),
		lootNames:       make(map[string]string, len(junkyardLootOrder)),
	}
	for _, key := range junkyardLootOrder {
		name, err := cat.ObjectName(key)
		if err != nil {
			return nil, err
		}
		loc.lootNames[key] = name
	}
	return loc, rs.Err()
}

func (l *junkyard) Key() string                          { return JunkyardKey }
func (l *junkyard) Description(p *state.PlayerState) string { return l.description }
func (l *junkyard) NPCs(p *state.PlayerState) []string   { return nil }

func (l *junkyard) Actions(p *state.PlayerState) []string {
	return append([]string{l.tryFind}, l.exitButtons()...)
}

func (l *junkyard) HandleAction(text string, p *state.PlayerState) (string, string, bool) {
	if text == l.tryFind {
		if l.st.LastScavengeTurn+scavengeCooldown >= p.Turn {
			return "", l.alreadySearched, true
		}
		l.st.LastScavengeTurn = p.Turn
		good := l.scavenge()
		if good == "" {
			return "", l.nothingFound, true
		}
		p.AddItem(good)
		return "", fmt.Sprintf(l.found, l.lootNames[good]), true
	}
	if dest, ok := l.handleTravel(text); ok {
		return dest, "", true
	}
	return "", "", false
}

// scavenge rolls a price for each loot candidate, then a budget, and
// returns the first affordable find in shuffled order. Yields at most one
// object key, or "" for nothing.
func (l *junkyard) scavenge() string {
	type find struct {
		good  string
		price int
	}
	var finds []find
	for _, good := range junkyardLootOrder {
		d := l.roller.Sum(3)
		if d < 7 {
			continue
		}
		finds = append(finds, find{good: good, price: 11 * junkyardLoot[good] / d})
	}

	d := l.roller.Sum(3)
	if d < 7 {
		return ""
	}
	value := 11 * scavengeBudgetBase / d

	l.roller.Shuffle(len(finds), func(i, j int) {
		finds[i], finds[j] = finds[j], finds[i]
	})
	for _, f := range finds {
		if value >= f.price {
			return f.good
		}
	}
	return ""
}
