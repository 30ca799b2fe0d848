package world

import (
	"fmt"

	"github.com/blackoutbot/blackout/pkg/catalog"
	"github.com/blackoutbot/blackout/pkg/state"
)

// generatorFee is what the mechanic charges on top of parts.
const generatorFee = 50

// generatorParts are consumed (with the fee) when the mechanic builds the
// generator.
var generatorParts = []string{
	ObjGeneratorReqList,
	ObjMagnet,
	ObjValve,
	ObjPiston,
	ObjKettle,
}

// electrician dozes at the electric company. He only stirs once the
// paperwork is filled, and only walks out to inspect the blackout for a
// bottle of booze.
type electrician struct {
	name    string
	unclear string

	greeting      string
	checkBlackout string
	checkRequires string
	willCheck     string
	nothing       string
	grumble       string
}

func newElectrician(cat *catalog.Catalog, p *state.PlayerState) (*electrician, error) {
	rs := cat.NPCStrings(ElectricianKey)
	n := &electrician{
		name:          rs.Get("name"),
		unclear:       cat.Unclear,
		greeting:      rs.Get("greeting"),
		checkBlackout: rs.Get("check_blackout"),
		checkRequires: rs.Get("check_requirements"),
		willCheck:     rs.Get("will_check"),
		nothing:       rs.Get("nothing"),
		grumble:       rs.Get("grumble"),
	}
	return n, rs.Err()
}

func (n *electrician) Key() string  { return ElectricianKey }
func (n *electrician) Name() string { return n.name }

func (n *electrician) phrases(p *state.PlayerState) []string {
	if !p.FilledElectricRequest {
		return nil
	}
	return []string{n.checkBlackout, n.nothing}
}

func (n *electrician) Greeting(p *state.PlayerState) (string, []string) {
	return n.greeting, n.phrases(p)
}

func (n *electrician) Respond(text string, p *state.PlayerState) (string, []string) {
	switch {
	case text == n.checkBlackout && !p.Has(ObjBooze):
		return n.checkRequires, n.phrases(p)
	case text == n.checkBlackout:
		p.RemoveOne(ObjBooze)
		p.ElectricianInspected = true
		return n.willCheck, nil
	case text == n.nothing:
		return n.grumble, nil
	}
	return n.unclear, n.phrases(p)
}

// adminClerk handles the blackout request paperwork: ask for the reason
// first, then file the request with the utility receipts.
type adminClerk struct {
	st      *state.NPCState
	name    string
	unclear string

	greeting      string
	askReason     string
	noInfo        string
	tryFill       string
	prerequisites string
	accepted      string
	nothing       string
	goOut         string
}

func newAdminClerk(cat *catalog.Catalog, p *state.PlayerState) (*adminClerk, error) {
	rs := cat.NPCStrings(AdminClerkKey)
	n := &adminClerk{
		st:            ensureNPCState(p, AdminClerkKey, func() *state.NPCState { return &state.NPCState{} }),
		name:          rs.Get("name"),
		unclear:       cat.Unclear,
		greeting:      rs.Get("greeting"),
		askReason:     rs.Get("ask_reason"),
		noInfo:        rs.Get("no_info"),
		tryFill:       rs.Get("try_fill_request"),
		prerequisites: rs.Get("request_prerequisites"),
		accepted:      rs.Get("request_accepted"),
		nothing:       rs.Get("nothing"),
		goOut:         rs.Get("go_out"),
	}
	return n, rs.Err()
}

func (n *adminClerk) Key() string  { return AdminClerkKey }
func (n *adminClerk) Name() string { return n.name }

func (n *adminClerk) phrases() []string {
	phrases := []string{n.askReason}
	if n.st.Asked {
		phrases = append(phrases, n.tryFill)
	}
	return append(phrases, n.nothing)
}

func (n *adminClerk) Greeting(p *state.PlayerState) (string, []string) {
	return n.greeting, n.phrases()
}

func (n *adminClerk) Respond(text string, p *state.PlayerState) (string, []string) {
	switch {
	case text == n.askReason:
		n.st.Asked = true
		return n.noInfo, n.phrases()
	case text == n.tryFill && !p.Has(ObjUtilityReceipts):
		return n.prerequisites, n.phrases()
	case text == n.tryFill:
		n.st.RequestAccepted = true
		p.RemoveOne(ObjUtilityReceipts)
		p.FilledElectricRequest = true
		return n.accepted, n.phrases()
	case text == n.nothing:
		return n.goOut, nil
	}
	return n.unclear, n.phrases()
}

// doctor heals burns and is the one who mentions that a backup generator
// would bring the light back.
type doctor struct {
	name    string
	unclear string

	greeting      string
	askAboutLight string
	backupGen     string
	healMe        string
	healed        string
	nothing       string
	beCareful     string
}

func newDoctor(cat *catalog.Catalog, p *state.PlayerState) (*doctor, error) {
	rs := cat.NPCStrings(DoctorKey)
	n := &doctor{
		name:          rs.Get("name"),
		unclear:       cat.Unclear,
		greeting:      rs.Get("greeting"),
		askAboutLight: rs.Get("ask_about_light"),
		backupGen:     rs.Get("backup_generator"),
		healMe:        rs.Get("heal_me"),
		healed:        rs.Get("healed"),
		nothing:       rs.Get("nothing"),
		beCareful:     rs.Get("be_careful"),
	}
	return n, rs.Err()
}

func (n *doctor) Key() string  { return DoctorKey }
func (n *doctor) Name() string { return n.name }

func (n *doctor) phrases(p *state.PlayerState) []string {
	phrases := []string{n.askAboutLight}
	if p.Burned {
		phrases = append(phrases, n.healMe)
	}
	return append(phrases, n.nothing)
}

func (n *doctor) Greeting(p *state.PlayerState) (string, []string) {
	return n.greeting, n.phrases(p)
}

func (n *doctor) Respond(text string, p *state.PlayerState) (string, []string) {
	switch {
	case text == n.askAboutLight:
		p.KnowsAboutGenerator = true
		return n.backupGen, n.phrases(p)
	case text == n.healMe && p.Burned:
		p.Burned = false
		return n.healed, n.phrases(p)
	case text == n.nothing:
		return n.beCareful, nil
	}
	return n.unclear, n.phrases(p)
}

// mechanic builds the generator, once, for parts plus a fee. He only talks
// shop after the doctor has planted the idea.
type mechanic struct {
	st      *state.NPCState
	name    string
	unclear string

	greeting    string
	canYouBuild string
	genInfo     string
	buildGen    string
	genBuilt    string
	nothing     string
	bye         string
}

func newMechanic(cat *catalog.Catalog, p *state.PlayerState) (*mechanic, error) {
	rs := cat.NPCStrings(MechanicKey)
	n := &mechanic{
		st:          ensureNPCState(p, MechanicKey, func() *state.NPCState { return &state.NPCState{} }),
		name:        rs.Get("name"),
		unclear:     cat.Unclear,
		greeting:    rs.Get("greeting"),
		canYouBuild: rs.Get("can_you_build"),
		genInfo:     rs.Get("generator_info"),
		buildGen:    rs.Get("build_generator"),
		genBuilt:    rs.Get("generator_built"),
		nothing:     rs.Get("nothing"),
		bye:         rs.Get("bye"),
	}
	return n, rs.Err()
}

func (n *mechanic) Key() string  { return MechanicKey }
func (n *mechanic) Name() string { return n.name }

func (n *mechanic) canBuild(p *state.PlayerState) bool {
	return p.Has(generatorParts...) && p.Money >= generatorFee
}

func (n *mechanic) phrases(p *state.PlayerState) []string {
	var phrases []string
	if p.KnowsAboutGenerator && !n.st.GeneratorBuilt {
		phrases = append(phrases, n.canYouBuild)
		if n.canBuild(p) {
			phrases = append(phrases, n.buildGen)
		}
	}
	return append(phrases, n.nothing)
}

func (n *mechanic) Greeting(p *state.PlayerState) (string, []string) {
	return n.greeting, n.phrases(p)
}

func (n *mechanic) Respond(text string, p *state.PlayerState) (string, []string) {
	if p.KnowsAboutGenerator && !n.st.GeneratorBuilt {
		switch {
		case text == n.canYouBuild:
			if !p.Has(ObjGeneratorReqList) {
				p.AddItem(ObjGeneratorReqList)
			}
			return n.genInfo, n.phrases(p)
		case text == n.buildGen && n.canBuild(p):
			for _, part := range generatorParts {
				p.RemoveOne(part)
			}
			p.Money -= generatorFee
			p.AddItem(ObjGenerator)
			n.st.GeneratorBuilt = true
			return n.genBuilt, n.phrases(p)
		}
	}
	if text == n.nothing {
		return n.bye, nil
	}
	return n.unclear, n.phrases(p)
}

// genry is the street informant who knows how a still is put together.
type genry struct {
	name    string
	unclear string

	greeting  string // format: player name
	askStill  string
	stillInfo string
	nothing   string
	bye       string
}

func newGenry(cat *catalog.Catalog, p *state.PlayerState) (*genry, error) {
	rs := cat.NPCStrings(GenryKey)
	n := &genry{
		name:      rs.Get("name"),
		unclear:   cat.Unclear,
		greeting:  rs.Get("greeting"),
		askStill:  rs.Get("ask_about_still"),
		stillInfo: rs.Get("still_info"),
		nothing:   rs.Get("nothing"),
		bye:       rs.Get("bye"),
	}
	return n, rs.Err()
}

func (n *genry) Key() string  { return GenryKey }
func (n *genry) Name() string { return n.name }

func (n *genry) phrases() []string {
	return []string{n.askStill, n.nothing}
}

func (n *genry) Greeting(p *state.PlayerState) (string, []string) {
	return fmt.Sprintf(n.greeting, p.Name), n.phrases()
}

func (n *genry) Respond(text string, p *state.PlayerState) (string, []string) {
	switch {
	case text == n.askStill:
		if !p.Has(ObjStillPartsList) {
			p.AddItem(ObjStillPartsList)
		}
		return n.stillInfo, n.phrases()
	case text == n.nothing:
		return n.bye, nil
	}
	return n.unclear, n.phrases()
}
