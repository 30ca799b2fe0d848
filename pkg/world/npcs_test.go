package world

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackoutbot/blackout/pkg/dice"
	"github.com/blackoutbot/blackout/pkg/state"
)

func newTestNPC(t *testing.T, key string, p *state.PlayerState) NPC {
	t.Helper()
	npc, err := NewNPC(key, testCatalog(t), dice.NewSeeded(1), p)
	require.NoError(t, err)
	return npc
}

func TestNewNPCUnknownKey(t *testing.T) {
	p := testPlayer()
	_, err := NewNPC("ghost", testCatalog(t), dice.NewSeeded(1), p)
	assert.Error(t, err)
}

func TestElectricianSleepsUntilRequestFiled(t *testing.T) {
	p := testPlayer()
	npc := newTestNPC(t, ElectricianKey, p)

	_, phrases := npc.Greeting(p)
	assert.Nil(t, phrases, "no request on file, nothing to talk about")

	p.FilledElectricRequest = true
	_, phrases = npc.Greeting(p)
	assert.NotEmpty(t, phrases)
}

func TestElectricianInspectsForBooze(t *testing.T) {
	p := testPlayer()
	p.FilledElectricRequest = true
	npc := newTestNPC(t, ElectricianKey, p)
	cat := testCatalog(t)
	check := cat.NPCs[ElectricianKey].Strings["check_blackout"]

	// Without booze he refuses and the conversation stays open.
	reply, phrases := npc.Respond(check, p)
	assert.Equal(t, cat.NPCs[ElectricianKey].Strings["check_requirements"], reply)
	assert.NotNil(t, phrases)
	assert.False(t, p.ElectricianInspected)

	p.AddItem(ObjBooze)
	reply, phrases = npc.Respond(check, p)
	assert.Equal(t, cat.NPCs[ElectricianKey].Strings["will_check"], reply)
	assert.Nil(t, phrases, "he walks off to inspect")
	assert.True(t, p.ElectricianInspected)
	assert.False(t, p.Has(ObjBooze), "the bottle is gone")
}

func TestAdminClerkRequestFlow(t *testing.T) {
	p := testPlayer()
	npc := newTestNPC(t, AdminClerkKey, p)
	cat := testCatalog(t)
	ask := cat.NPCs[AdminClerkKey].Strings["ask_reason"]
	fill := cat.NPCs[AdminClerkKey].Strings["try_fill_request"]

	_, phrases := npc.Greeting(p)
	assert.NotContains(t, phrases, fill, "filing only offered after asking")

	reply, phrases := npc.Respond(ask, p)
	assert.Equal(t, cat.NPCs[AdminClerkKey].Strings["no_info"], reply)
	assert.Contains(t, phrases, fill)

	// No receipts yet.
	reply, _ = npc.Respond(fill, p)
	assert.Equal(t, cat.NPCs[AdminClerkKey].Strings["request_prerequisites"], reply)
	assert.False(t, p.FilledElectricRequest)

	p.AddItem(ObjUtilityReceipts)
	reply, _ = npc.Respond(fill, p)
	assert.Equal(t, cat.NPCs[AdminClerkKey].Strings["request_accepted"], reply)
	assert.True(t, p.FilledElectricRequest)
	assert.False(t, p.Has(ObjUtilityReceipts), "receipts handed over")
}

func TestDoctorMentionsGenerator(t *testing.T) {
	p := testPlayer()
	npc := newTestNPC(t, DoctorKey, p)
	cat := testCatalog(t)

	reply, _ := npc.Respond(cat.NPCs[DoctorKey].Strings["ask_about_light"], p)
	assert.Equal(t, cat.NPCs[DoctorKey].Strings["backup_generator"], reply)
	assert.True(t, p.KnowsAboutGenerator)
}

func TestDoctorHealsBurns(t *testing.T) {
	p := testPlayer()
	npc := newTestNPC(t, DoctorKey, p)
	cat := testCatalog(t)
	heal := cat.NPCs[DoctorKey].Strings["heal_me"]

	_, phrases := npc.Greeting(p)
	assert.NotContains(t, phrases, heal)

	p.Burned = true
	_, phrases = npc.Greeting(p)
	assert.Contains(t, phrases, heal)

	reply, _ := npc.Respond(heal, p)
	assert.Equal(t, cat.NPCs[DoctorKey].Strings["healed"], reply)
	assert.False(t, p.Burned)
}

func TestMechanicBuildsGeneratorOnce(t *testing.T) {
	p := testPlayer()
	npc := newTestNPC(t, MechanicKey, p)
	cat := testCatalog(t)
	ask := cat.NPCs[MechanicKey].Strings["can_you_build"]
	build := cat.NPCs[MechanicKey].Strings["build_generator"]

	// Until the doctor mentions a generator there is nothing to ask about.
	_, phrases := npc.Greeting(p)
	assert.NotContains(t, phrases, ask)

	p.KnowsAboutGenerator = true
	reply, phrases := npc.Respond(ask, p)
	assert.Equal(t, cat.NPCs[MechanicKey].Strings["generator_info"], reply)
	assert.True(t, p.Has(ObjGeneratorReqList))
	assert.NotContains(t, phrases, build, "parts still missing")

	// Asking again does not hand out a second list.
	_, _ = npc.Respond(ask, p)
	assert.Equal(t, 1, countOf(p.Inventory, ObjGeneratorReqList))

	p.AddItem(ObjMagnet)
	p.AddItem(ObjValve)
	p.AddItem(ObjPiston)
	p.AddItem(ObjKettle)
	p.Money = 60
	_, phrases = npc.Greeting(p)
	assert.Contains(t, phrases, build)

	reply, _ = npc.Respond(build, p)
	assert.Equal(t, cat.NPCs[MechanicKey].Strings["generator_built"], reply)
	assert.Equal(t, []string{ObjGenerator}, p.Inventory, "parts and list consumed")
	assert.Equal(t, 10, p.Money)

	// Job done: the offer disappears for good.
	_, phrases = npc.Greeting(p)
	assert.NotContains(t, phrases, ask)
	assert.NotContains(t, phrases, build)
}

func TestMechanicWithPartsButNoMoney(t *testing.T) {
	p := testPlayer()
	p.KnowsAboutGenerator = true
	p.Inventory = []string{ObjGeneratorReqList, ObjMagnet, ObjValve, ObjPiston, ObjKettle}
	p.Money = generatorFee - 1
	npc := newTestNPC(t, MechanicKey, p)
	cat := testCatalog(t)

	_, phrases := npc.Greeting(p)
	assert.NotContains(t, phrases, cat.NPCs[MechanicKey].Strings["build_generator"])
}

func TestGenryGreetsByNameAndSharesStillList(t *testing.T) {
	p := testPlayer()
	npc := newTestNPC(t, GenryKey, p)
	cat := testCatalog(t)

	greeting, _ := npc.Greeting(p)
	assert.Equal(t, fmt.Sprintf(cat.NPCs[GenryKey].Strings["greeting"], "Tess"), greeting)

	ask := cat.NPCs[GenryKey].Strings["ask_about_still"]
	reply, _ := npc.Respond(ask, p)
	assert.Equal(t, cat.NPCs[GenryKey].Strings["still_info"], reply)
	assert.True(t, p.Has(ObjStillPartsList))

	_, _ = npc.Respond(ask, p)
	assert.Equal(t, 1, countOf(p.Inventory, ObjStillPartsList))
}

func TestNPCUnclearKeepsConversationOpen(t *testing.T) {
	p := testPlayer()
	npc := newTestNPC(t, DoctorKey, p)
	cat := testCatalog(t)

	reply, phrases := npc.Respond("mumble", p)
	assert.Equal(t, cat.Unclear, reply)
	assert.NotNil(t, phrases)
}

func countOf(items []string, key string) int {
	n := 0
	for _, it := range items {
		if it == key {
			n++
		}
	}
	return n
}
