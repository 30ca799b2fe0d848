package world

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackoutbot/blackout/pkg/dice"
	"github.com/blackoutbot/blackout/pkg/state"
)

func newTestMerchant(t *testing.T, roller dice.Roller, p *state.PlayerState) NPC {
	t.Helper()
	npc, err := NewNPC(MerchantKey, testCatalog(t), roller, p)
	require.NoError(t, err)
	return npc
}

// stockMerchant pins the stock table so prices are deterministic.
func stockMerchant(p *state.PlayerState, goods map[string]int) {
	p.PutNPCState(MerchantKey, &state.NPCState{
		Goods:            goods,
		GoodsChangedTurn: 0,
	})
}

func TestMerchantSellPriceFromRoll(t *testing.T) {
	p := testPlayer()
	p.Money = 1000
	stockMerchant(p, map[string]int{ObjCopperWire: 12})
	npc := newTestMerchant(t, dice.NewScripted(), p)

	// roll = 12, baseline = 300: sell price = floor(11*300/12) = 275.
	_, phrases := npc.Respond("I want to buy", p)
	want := fmt.Sprintf("Buy %s for %d rub.", "copper wire", 275)
	assert.Contains(t, phrases, want)

	reply, _ := npc.Respond(want, p)
	assert.Contains(t, reply, "275")
	assert.Equal(t, 1000-275, p.Money)
	assert.Equal(t, []string{ObjCopperWire}, p.Inventory)
	// Buying tightens the stock.
	assert.Equal(t, 11, p.NPCState(MerchantKey).Goods[ObjCopperWire])
}

func TestMerchantScarceGoodNotForSale(t *testing.T) {
	p := testPlayer()
	stockMerchant(p, map[string]int{ObjCopperWire: 5})
	npc := newTestMerchant(t, dice.NewScripted(), p)

	_, phrases := npc.Respond("I want to buy", p)
	for _, phrase := range phrases {
		assert.NotContains(t, phrase, "copper wire", "roll < 7 means nothing to sell")
	}
}

func TestMerchantOverpaysForScarceGood(t *testing.T) {
	p := testPlayer()
	p.Money = 0
	p.Inventory = []string{ObjCopperWire}
	stockMerchant(p, map[string]int{ObjCopperWire: 5})
	npc := newTestMerchant(t, dice.NewScripted(), p)

	// roll = 5 (< 7): buy price = floor(300 * 1.2) = 360.
	_, phrases := npc.Respond("I want to sell", p)
	want := fmt.Sprintf("Sell %s for %d rub.", "copper wire", 360)
	assert.Contains(t, phrases, want)

	reply, _ := npc.Respond(want, p)
	assert.Contains(t, reply, "360")
	assert.Equal(t, 360, p.Money)
	assert.Empty(t, p.Inventory)
	// Selling loosens the stock.
	assert.Equal(t, 6, p.NPCState(MerchantKey).Goods[ObjCopperWire])
}

func TestMerchantBuyPriceIsDiscountedSellPrice(t *testing.T) {
	p := testPlayer()
	p.Inventory = []string{ObjCopperWire}
	stockMerchant(p, map[string]int{ObjCopperWire: 12})
	npc := newTestMerchant(t, dice.NewScripted(), p)

	// sell = 275, buy = floor(275 * 0.8) = 220.
	_, phrases := npc.Respond("I want to sell", p)
	assert.Contains(t, phrases, fmt.Sprintf("Sell %s for %d rub.", "copper wire", 220))
}

func TestMerchantRejectsPurchaseWithoutMoney(t *testing.T) {
	p := testPlayer()
	p.Money = 100
	stockMerchant(p, map[string]int{ObjCopperWire: 12})
	npc := newTestMerchant(t, dice.NewScripted(), p)

	_, _ = npc.Respond("I want to buy", p)
	reply, phrases := npc.Respond(fmt.Sprintf("Buy %s for %d rub.", "copper wire", 275), p)
	assert.Contains(t, reply, "pockets")
	assert.NotNil(t, phrases)
	assert.Equal(t, 100, p.Money, "a rejected purchase changes nothing")
	assert.Empty(t, p.Inventory)
	assert.Equal(t, 12, p.NPCState(MerchantKey).Goods[ObjCopperWire])
}

func TestMerchantGreetingRollsStock(t *testing.T) {
	p := testPlayer()
	p.Turn = 1
	npc := newTestMerchant(t, dice.NewScripted(12), p)

	_, phrases := npc.Greeting(p)
	require.NotNil(t, phrases)
	st := p.NPCState(MerchantKey)
	require.NotNil(t, st.Goods)
	assert.Len(t, st.Goods, len(merchantGoodsOrder))
	assert.Equal(t, 1, st.GoodsChangedTurn)
}

func TestMerchantGreetingRefreshesStaleStock(t *testing.T) {
	p := testPlayer()
	stockMerchant(p, map[string]int{ObjCopperWire: 5})
	p.NPCState(MerchantKey).GoodsChangedTurn = 0
	p.Turn = 51

	npc := newTestMerchant(t, dice.NewScripted(12), p)
	_, _ = npc.Greeting(p)
	st := p.NPCState(MerchantKey)
	assert.Equal(t, 12, st.Goods[ObjCopperWire], "stale stock re-rolled")
	assert.Equal(t, 51, st.GoodsChangedTurn)
}

func TestMerchantTopLevelNothingClearsStockAndCloses(t *testing.T) {
	p := testPlayer()
	stockMerchant(p, map[string]int{ObjCopperWire: 12})
	npc := newTestMerchant(t, dice.NewScripted(), p)

	reply, phrases := npc.Respond("Nothing", p)
	assert.Contains(t, reply, "Come again")
	assert.Nil(t, phrases, "conversation closes")
	assert.Nil(t, p.NPCState(MerchantKey).Goods, "stock table cleared")
}

func TestMerchantSubMenuNothingReturnsToTopLevel(t *testing.T) {
	p := testPlayer()
	stockMerchant(p, map[string]int{ObjCopperWire: 12})
	npc := newTestMerchant(t, dice.NewScripted(), p)

	_, _ = npc.Respond("I want to buy", p)
	assert.True(t, p.NPCState(MerchantKey).Buying)

	_, phrases := npc.Respond("Nothing", p)
	assert.False(t, p.NPCState(MerchantKey).Buying)
	assert.Contains(t, phrases, "I want to buy")
	assert.Contains(t, phrases, "I want to sell")
	assert.NotNil(t, p.NPCState(MerchantKey).Goods, "sub-menu exit keeps the stock")
}
