package craft

import (
	"fmt"

	"github.com/napolitain/solver-craft/internal/models"
)

// State is a point of the crafting attempt: remaining durability, remaining
// CP and the active modifiers. Durability 0 means the item is broken.
type State struct {
	Durability int
	CP         int
	Buff       Buff
}

// NewState returns a state with the start-of-attempt modifiers
func NewState(cp, durability int) State {
	return State{Durability: durability, CP: cp, Buff: InitialBuff()}
}

// RoundDurability rounds a durability up to the next multiple of DurabilityStep
func RoundDurability(d int) int {
	return (d + DurabilityStep - 1) / DurabilityStep * DurabilityStep
}

func (s State) String() string {
	return fmt.Sprintf("CP:%d Dur:%d [%s]", s.CP, s.Durability, s.Buff)
}

// RequiredCP returns the CP cost of an action in this state
func (s State) RequiredCP(a Action) int {
	if a == StandardTouch && s.Buff.BasicTouch > 0 {
		return comboCP
	}
	return a.baseCP()
}

// RequiredDurability returns the durability cost of an action in this state
func (s State) RequiredDurability(a Action) int {
	d := a.baseDurability()
	if s.Buff.WasteNot > 0 {
		return d / 2
	}
	return d
}

// CanApply reports whether the action is affordable and allowed
func (s State) CanApply(a Action) bool {
	if a == CannotAction || s.CP < s.RequiredCP(a) {
		return false
	}
	switch a {
	case ByregotsBlessing:
		return s.Buff.InnerQuiet >= 1
	case PrudentTouch:
		return s.Buff.WasteNot == 0
	case FocusedTouch:
		return s.Buff.Observe != 0
	default:
		return true
	}
}

// Apply performs an action and returns the next state and the quality it
// produced. Callers check CanApply first. Applying CannotAction panics.
func (s State) Apply(setting models.Setting, a Action) (State, uint32) {
	if a == CannotAction || a > Manipulation {
		panic(fmt.Sprintf("craft: cannot apply action %v", a))
	}

	var reward uint32
	switch {
	case a == ByregotsBlessing:
		reward = s.qualityReward(setting, 1.0+float64(int(s.Buff.InnerQuiet)-1)*0.2)
	case a.IsTouch():
		reward = s.qualityReward(setting, a.efficiency())
	}

	next := s
	next.CP -= s.RequiredCP(a)
	switch a {
	case MastersMend:
		next.Durability = min(next.Durability+MastersMendRestore, setting.MaxDurability)
	case Manipulation:
		// A fresh Manipulation does not restore on the turn it is cast
		next.Buff.Manipulation = 0
	default:
		next.Durability = max(next.Durability-s.RequiredDurability(a), 0)
	}
	next = next.nextTurn(setting)
	next.Buff = buffEffect(a, next.Buff)

	return next, reward
}

func (s State) nextTurn(setting models.Setting) State {
	if s.Buff.Manipulation > 0 && s.Durability > 0 {
		s.Durability = min(s.Durability+ManipulationRestore, setting.MaxDurability)
	}
	s.Buff = s.Buff.NextTurn()
	return s
}

// qualityReward approximates the quality gained by a touch of the given efficiency
func (s State) qualityReward(setting models.Setting, efficiency float64) uint32 {
	innerQuiet := float64(s.Buff.InnerQuiet)
	accuracy := float64(setting.ProcessAccuracy)
	required := float64(setting.RequiredProcessAccuracy)

	f := accuracy
	if innerQuiet != 0 {
		f = accuracy + accuracy*((innerQuiet-1)*20/100)
	}
	q1 := f*35/100 + 35
	q2 := q1 * (f + 10000) / (required + 10000)
	q3 := q2 * 60 / 100

	buffRate := 1.0
	if s.Buff.GreatStrides > 0 {
		buffRate += 1.0
	}
	if s.Buff.Innovation > 0 {
		buffRate += 0.5
	}

	return uint32(q3 * efficiency * buffRate)
}
