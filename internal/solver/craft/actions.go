package craft

// Action is one crafting action. The zero value is CannotAction, the policy
// of a state where no action improves the outcome.
type Action uint8

const (
	CannotAction Action = iota
	BasicTouch
	StandardTouch
	PrudentTouch
	FocusedTouch
	PreparatoryTouch
	ByregotsBlessing
	MastersMend
	Observe
	WasteNot
	WasteNot2
	GreatStrides
	Innovation
	Manipulation
)

// CandidateActions lists the actions the solver evaluates, in tie-break order
var CandidateActions = [...]Action{
	BasicTouch,
	StandardTouch,
	PrudentTouch,
	FocusedTouch,
	PreparatoryTouch,
	ByregotsBlessing,
	MastersMend,
	Observe,
	WasteNot,
	WasteNot2,
	GreatStrides,
	Innovation,
	Manipulation,
}

var actionNames = [...]string{
	CannotAction:     "CannotAction",
	BasicTouch:       "BasicTouch",
	StandardTouch:    "StandardTouch",
	PrudentTouch:     "PrudentTouch",
	FocusedTouch:     "FocusedTouch",
	PreparatoryTouch: "PreparatoryTouch",
	ByregotsBlessing: "ByregotsBlessing",
	MastersMend:      "MastersMend",
	Observe:          "Observe",
	WasteNot:         "WasteNot",
	WasteNot2:        "WasteNot2",
	GreatStrides:     "GreatStrides",
	Innovation:       "Innovation",
	Manipulation:     "Manipulation",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Action(?)"
}

// IsTouch reports whether the action produces quality
func (a Action) IsTouch() bool {
	switch a {
	case BasicTouch, StandardTouch, PrudentTouch, FocusedTouch, PreparatoryTouch, ByregotsBlessing:
		return true
	}
	return false
}

// baseCP is the CP cost before conditional discounts
func (a Action) baseCP() int {
	switch a {
	case BasicTouch:
		return 18
	case StandardTouch:
		return 32
	case PrudentTouch:
		return 25
	case FocusedTouch:
		return 18
	case PreparatoryTouch:
		return 40
	case ByregotsBlessing:
		return 24
	case MastersMend:
		return 88
	case Observe:
		return 7
	case WasteNot:
		return 56
	case WasteNot2:
		return 98
	case GreatStrides:
		return 32
	case Innovation:
		return 18
	case Manipulation:
		return 96
	default:
		return 0
	}
}

// comboCP is the Standard Touch cost right after Basic Touch
const comboCP = 18

// baseDurability is the durability cost before Waste Not
func (a Action) baseDurability() int {
	switch a {
	case BasicTouch, StandardTouch, FocusedTouch, ByregotsBlessing:
		return 10
	case PrudentTouch:
		return 5
	case PreparatoryTouch:
		return 20
	default:
		return 0
	}
}

// efficiency is the quality multiplier of a fixed-efficiency touch
func (a Action) efficiency() float64 {
	switch a {
	case BasicTouch, PrudentTouch:
		return 1.0
	case StandardTouch:
		return 1.25
	case FocusedTouch:
		return 1.5
	case PreparatoryTouch:
		return 2.0
	default:
		return 0
	}
}

// buffEffect applies the action's modifier side effect to an already
// decayed buff. Timer actions always set the base length.
func buffEffect(a Action, b Buff) Buff {
	switch a {
	case BasicTouch:
		b.BasicTouch = 1
		b.GreatStrides = 0
	case StandardTouch, PrudentTouch, FocusedTouch, PreparatoryTouch:
		b.GreatStrides = 0
	case ByregotsBlessing:
		b.InnerQuiet = 0
		b.GreatStrides = 0
	case Observe:
		b.Observe = 1
	case WasteNot:
		b.WasteNot = WasteNotTurns
	case WasteNot2:
		b.WasteNot = WasteNot2Turns
	case GreatStrides:
		b.GreatStrides = GreatStridesTurns
	case Innovation:
		b.Innovation = InnovationTurns
	case Manipulation:
		b.Manipulation = ManipulationTurns
	}
	return b
}
