package craft

import "github.com/napolitain/solver-craft/internal/models"

// StateSpace enumerates the reachable buffs and maps every in-domain state
// to a dense offset.
type StateSpace struct {
	maxDurability int
	maxCP         int
	buffs         []Buff
	buffToIndex   []int32 // indexed by Buff.address, -1 when unreachable
}

// overwrites set a single field of a decayed buff, one per modifier an
// action can set
var overwrites = [...]func(Buff) Buff{
	func(b Buff) Buff { b.Manipulation = ManipulationTurns; return b },
	func(b Buff) Buff { b.Innovation = InnovationTurns; return b },
	func(b Buff) Buff { b.GreatStrides = GreatStridesTurns; return b },
	func(b Buff) Buff { b.WasteNot = WasteNotTurns; return b },
	func(b Buff) Buff { b.WasteNot = WasteNot2Turns; return b },
	func(b Buff) Buff { b.BasicTouch = 1; return b },
	func(b Buff) Buff { b.Observe = 1; return b },
	func(b Buff) Buff { b.InnerQuiet = 0; return b },
}

// sustainedLengths are the extra timer values considered under sustain
var sustainedLengths = [...]func(Buff) Buff{
	func(b Buff) Buff { b.Manipulation = ManipulationTurns + SustainBonusTurns; return b },
	func(b Buff) Buff { b.Innovation = InnovationTurns + SustainBonusTurns; return b },
	func(b Buff) Buff { b.GreatStrides = GreatStridesTurns + SustainBonusTurns; return b },
	func(b Buff) Buff { b.WasteNot = WasteNotTurns + SustainBonusTurns; return b },
	func(b Buff) Buff { b.WasteNot = WasteNot2Turns + SustainBonusTurns; return b },
}

// successors returns the decayed buff and every single-field overwrite of it.
// Every action effect is reachable this way: an effect that also clears
// Great Strides matches the path that never set it.
func successors(b Buff, sustain bool) []Buff {
	ns := b.NextTurn()

	out := make([]Buff, 0, 1+len(overwrites)+len(sustainedLengths))
	for _, set := range overwrites {
		out = append(out, set(ns))
	}
	if sustain {
		for _, set := range sustainedLengths {
			out = append(out, set(ns))
		}
	}
	return append(out, ns)
}

// ReachableBuffs returns the closure of the initial buff under successors,
// in discovery order.
func ReachableBuffs(sustain bool) []Buff {
	start := InitialBuff()
	visited := map[Buff]struct{}{start: {}}
	order := []Buff{start}
	stack := []Buff{start}

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nb := range successors(b, sustain) {
			if _, seen := visited[nb]; seen {
				continue
			}
			visited[nb] = struct{}{}
			order = append(order, nb)
			stack = append(stack, nb)
		}
	}
	return order
}

// NewStateSpace enumerates the buffs for a setting and builds the lookup table
func NewStateSpace(setting models.Setting) *StateSpace {
	buffs := ReachableBuffs(setting.Sustain)

	buffToIndex := make([]int32, buffAddressSpace)
	for i := range buffToIndex {
		buffToIndex[i] = -1
	}
	for i, b := range buffs {
		addr := b.address()
		if buffToIndex[addr] != -1 {
			// Reachable buffs only ever hold Inner Quiet 0 or its start value
			panic("craft: buff address collision for " + b.String())
		}
		buffToIndex[addr] = int32(i)
	}

	return &StateSpace{
		maxDurability: setting.MaxDurability,
		maxCP:         setting.MaxCP,
		buffs:         buffs,
		buffToIndex:   buffToIndex,
	}
}

// Buffs returns the reachable buffs in index order
func (sp *StateSpace) Buffs() []Buff {
	return sp.buffs
}

// MaxCP returns the highest CP layer
func (sp *StateSpace) MaxCP() int {
	return sp.maxCP
}

// MaxDurability returns the highest durability
func (sp *StateSpace) MaxDurability() int {
	return sp.maxDurability
}

// LayerSize returns the number of states sharing one CP value
func (sp *StateSpace) LayerSize() int {
	return sp.maxDurability / DurabilityStep * len(sp.buffs)
}

// Size returns the number of states in the table
func (sp *StateSpace) Size() int {
	return (sp.maxCP + 1) * sp.LayerSize()
}

// BuffIndex returns the dense index of a buff, or false if it is unreachable
func (sp *StateSpace) BuffIndex(b Buff) (int, bool) {
	if !b.addressable() {
		return 0, false
	}
	i := sp.buffToIndex[b.address()]
	if i < 0 || sp.buffs[i] != b {
		return 0, false
	}
	return int(i), true
}

// Index returns the table offset of a state, or false if it is out of domain
func (sp *StateSpace) Index(s State) (int, bool) {
	if s.Durability <= 0 || s.Durability%DurabilityStep != 0 || s.Durability > sp.maxDurability {
		return 0, false
	}
	if s.CP < 0 || s.CP > sp.maxCP {
		return 0, false
	}
	bi, ok := sp.BuffIndex(s.Buff)
	if !ok {
		return 0, false
	}

	buckets := sp.maxDurability / DurabilityStep
	d := s.Durability/DurabilityStep - 1
	return (s.CP*buckets+d)*len(sp.buffs) + bi, true
}

// Contains reports whether a state is in the table's domain
func (sp *StateSpace) Contains(s State) bool {
	_, ok := sp.Index(s)
	return ok
}

// StateAt returns the state at position i of a CP layer
func (sp *StateSpace) StateAt(cp, i int) State {
	n := len(sp.buffs)
	return State{
		Durability: (i/n + 1) * DurabilityStep,
		CP:         cp,
		Buff:       sp.buffs[i%n],
	}
}
