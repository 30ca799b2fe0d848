package world

import (
	"fmt"

	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/dice"
	"github.com/blackoutbot/blackout/pkg/state"
)

// stockRefreshTurns is how long the merchant's stock rolls stay fixed
// before a greeting re-rolls them.
const stockRefreshTurns = 50

// merchantGoodsOrder fixes the menu order of tradeable goods.
var merchantGoodsOrder = []string{
	ObjMagnet,
	ObjCopperWire,
	ObjPiston,
	ObjValve,
	ObjBooze,
	ObjBottle,
	ObjSugar,
	ObjBarm,
	ObjKettle,
	ObjPipes,
	ObjPot,
}

// merchantBaseline maps each tradeable good to its baseline price.
var merchantBaseline = map[string]int{
	ObjMagnet:     1000,
	ObjCopperWire: 300,
	ObjPiston:     750,
	ObjValve:      200,
	ObjBooze:      100,
	ObjBottle:     20,
	ObjSugar:      20,
	ObjBarm:       20,
	ObjKettle:     100,
	ObjPipes:      50,
	ObjPot:        100,
}

// merchant runs the shop. Each good carries a 3d6 stock roll: high rolls
// mean plenty (cheap to buy from him, he pays little), low rolls mean
// scarcity (he has none to sell and overpays to acquire).
type merchant struct {
	st     *state.NPCState
	roller dice.Roller

	name    string
	unclear string

	greeting       string
	wannaBuy       string
	wannaSell      string
	what           string
	buy            string // format: object display name, price
	sell           string // format: object display name, price
	bought         string // format: object display name, price
	sold           string // format: object display name, price
	notEnoughMoney string // format: object display name, price
	somethingMore  string
	nothing        string
	comeAgain      string

	goodsNames map[string]string
}

func newMerchant(cat *catalog.Catalog, roller dice.Roller, p *state.PlayerState) (*merchant, error) {
	rs := cat.NPCStrings(MerchantKey)
	n := &merchant{
		st:             ensureNPCState(p, MerchantKey, func() *state.NPCState { return &state.NPCState{} }),
		roller:         roller,
		name:           rs.Get("name"),
		unclear:        cat.Unclear,
		greeting:       rs.Get("greeting"),
		wannaBuy:       rs.Get("wanna_buy"),
		wannaSell:      rs.Get("wanna_sell"),
		what:           rs.Get("what"),
		buy:            rs.Get("buy"),
		sell:           rs.Get("sell"),
		bought:         rs.Get("bought"),
		sold:           rs.Get("sold"),
		notEnoughMoney: rs.Get("not_enough_money"),
		somethingMore:  rs.Get("something_more"),
		nothing:        rs.Get("nothing"),
		comeAgain:      rs.Get("come_again"),
		goodsNames:     make(map[string]string, len(merchantGoodsOrder)),
	}
	for _, good := range merchantGoodsOrder {
		name, err := cat.ObjectName(good)
		if err != nil {
			return nil, err
		}
		n.goodsNames[good] = name
	}
	return n, rs.Err()
}

func (n *merchant) Key() string  { return MerchantKey }
func (n *merchant) Name() string { return n.name }

// sellPrice is what the merchant charges the player. A roll below 7 means
// the good is out of stock.
func (n *merchant) sellPrice(good string) (int, bool) {
	d, ok := n.st.Goods[good]
	if !ok || d < 7 {
		return 0, false
	}
	return 11 * merchantBaseline[good] / d, true
}

// buyPrice is what the merchant pays the player. When the good is scarce he
// overpays at 1.2x baseline; otherwise he pays 0.8x of his own sell price.
func (n *merchant) buyPrice(good string) (int, bool) {
	base, ok := merchantBaseline[good]
	if !ok {
		return 0, false
	}
	d := n.st.Goods[good]
	if d < 7 {
		return base * 12 / 10, true
	}
	sell, _ := n.sellPrice(good)
	return sell * 8 / 10, true
}

func (n *merchant) buyLabel(good string, price int) string {
	return fmt.Sprintf(n.buy, n.goodsNames[good], price)
}

func (n *merchant) sellLabel(good string, price int) string {
	return fmt.Sprintf(n.sell, n.goodsNames[good], price)
}

func (n *merchant) phrases(p *state.PlayerState) []string {
	var phrases []string
	switch {
	case n.st.Buying:
		for _, good := range merchantGoodsOrder {
			price, ok := n.sellPrice(good)
			if !ok {
				continue
			}
			phrases = append(phrases, n.buyLabel(good, price))
		}
	case n.st.Selling:
		for _, good := range p.Inventory {
			price, ok := n.buyPrice(good)
			if !ok {
				continue
			}
			phrases = append(phrases, n.sellLabel(good, price))
		}
	default:
		phrases = append(phrases, n.wannaBuy, n.wannaSell)
	}
	return append(phrases, n.nothing)
}

// Greeting re-rolls the stock table when it is missing or stale.
func (n *merchant) Greeting(p *state.PlayerState) (string, []string) {
	if n.st.Goods == nil || n.st.GoodsChangedTurn+stockRefreshTurns < p.Turn {
		goods := make(map[string]int, len(merchantGoodsOrder))
		for _, good := range merchantGoodsOrder {
			goods[good] = n.roller.Sum(3)
		}
		n.st.Goods = goods
		n.st.GoodsChangedTurn = p.Turn
	}
	return n.greeting, n.phrases(p)
}

func (n *merchant) Respond(text string, p *state.PlayerState) (string, []string) {
	switch {
	case n.st.Buying:
		return n.respondBuying(text, p)
	case n.st.Selling:
		return n.respondSelling(text, p)
	}
	return n.respondTopLevel(text, p)
}

func (n *merchant) respondBuying(text string, p *state.PlayerState) (string, []string) {
	if text == n.nothing {
		n.st.Buying = false
		return n.somethingMore, n.phrases(p)
	}
	for _, good := range merchantGoodsOrder {
		price, ok := n.sellPrice(good)
		if !ok || text != n.buyLabel(good, price) {
			continue
		}
		if p.Money < price {
			return fmt.Sprintf(n.notEnoughMoney, n.goodsNames[good], price), n.phrases(p)
		}
		p.Money -= price
		p.AddItem(good)
		n.st.Goods[good]--
		n.st.GoodsChangedTurn = p.Turn
		return fmt.Sprintf(n.bought, n.goodsNames[good], price), n.phrases(p)
	}
	return n.unclear, n.phrases(p)
}

func (n *merchant) respondSelling(text string, p *state.PlayerState) (string, []string) {
	if text == n.nothing {
		n.st.Selling = false
		return n.somethingMore, n.phrases(p)
	}
	for _, good := range p.Inventory {
		price, ok := n.buyPrice(good)
		if !ok || text != n.sellLabel(good, price) {
			continue
		}
		p.RemoveOne(good)
		p.Money += price
		n.st.Goods[good]++
		n.st.GoodsChangedTurn = p.Turn
		return fmt.Sprintf(n.sold, n.goodsNames[good], price), n.phrases(p)
	}
	return n.unclear, n.phrases(p)
}

func (n *merchant) respondTopLevel(text string, p *state.PlayerState) (string, []string) {
	switch text {
	case n.wannaBuy:
		n.st.Buying = true
		return n.what, n.phrases(p)
	case n.wannaSell:
		n.st.Selling = true
		return n.what, n.phrases(p)
	case n.nothing:
		// Clearing the table forces a fresh roll on the next greeting.
		n.st.Goods = nil
		return n.comeAgain, nil
	}
	return n.unclear, n.phrases(p)
}
