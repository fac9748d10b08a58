package craft

// Crafting mechanics constants
const (
	// InitialInnerQuiet is the Inner Quiet stack count at the start of an attempt
	InitialInnerQuiet = 11

	// Timer lengths set by the buff actions
	WasteNotTurns     = 4
	WasteNot2Turns    = 8
	GreatStridesTurns = 3
	InnovationTurns   = 4
	ManipulationTurns = 8

	// SustainBonusTurns extends the timer lengths the state space covers under sustain
	SustainBonusTurns = 2

	// MastersMendRestore is the durability restored by Master's Mend
	MastersMendRestore = 30

	// ManipulationRestore is the durability restored each turn while Manipulation is active
	ManipulationRestore = 5

	// DurabilityStep is the granularity of durability values in the table
	DurabilityStep = 5
)

// Radixes of the direct-addressed buff table. Each is the largest value the
// field can hold under sustain, plus one. Inner Quiet is stored as a flag.
const (
	radixManipulation = ManipulationTurns + SustainBonusTurns + 1
	radixInnovation   = InnovationTurns + SustainBonusTurns + 1
	radixGreatStrides = GreatStridesTurns + SustainBonusTurns + 1
	radixWasteNot     = WasteNot2Turns + SustainBonusTurns + 1
	radixBasicTouch   = 2
	radixObserve      = 2
	radixInnerQuiet   = 2

	buffAddressSpace = radixManipulation * radixInnovation * radixGreatStrides *
		radixWasteNot * radixBasicTouch * radixObserve * radixInnerQuiet
)
