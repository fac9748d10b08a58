package craft

import "fmt"

// Buff is the set of modifiers active on a crafting attempt.
// Timers count remaining turns; BasicTouch and Observe are one-turn flags.
type Buff struct {
	InnerQuiet   uint8
	Manipulation uint8
	Innovation   uint8
	GreatStrides uint8
	WasteNot     uint8
	BasicTouch   uint8
	Observe      uint8
}

// InitialBuff returns the modifiers at the start of an attempt
func InitialBuff() Buff {
	return Buff{InnerQuiet: InitialInnerQuiet}
}

func decrement(x uint8) uint8 {
	if x > 0 {
		return x - 1
	}
	return 0
}

// NextTurn applies one turn of natural decay. Inner Quiet does not decay.
func (b Buff) NextTurn() Buff {
	return Buff{
		InnerQuiet:   b.InnerQuiet,
		Manipulation: decrement(b.Manipulation),
		Innovation:   decrement(b.Innovation),
		GreatStrides: decrement(b.GreatStrides),
		WasteNot:     decrement(b.WasteNot),
		BasicTouch:   decrement(b.BasicTouch),
		Observe:      decrement(b.Observe),
	}
}

// address maps a buff onto the mixed-radix direct table.
// Distinct Inner Quiet values above zero share an address.
func (b Buff) address() int {
	iq := 0
	if b.InnerQuiet > 0 {
		iq = 1
	}

	x := int(b.Manipulation)
	x = x*radixInnovation + int(b.Innovation)
	x = x*radixGreatStrides + int(b.GreatStrides)
	x = x*radixWasteNot + int(b.WasteNot)
	x = x*radixBasicTouch + int(b.BasicTouch)
	x = x*radixObserve + int(b.Observe)
	x = x*radixInnerQuiet + iq
	return x
}

// addressable reports whether every field fits its radix
func (b Buff) addressable() bool {
	return int(b.Manipulation) < radixManipulation &&
		int(b.Innovation) < radixInnovation &&
		int(b.GreatStrides) < radixGreatStrides &&
		int(b.WasteNot) < radixWasteNot &&
		int(b.BasicTouch) < radixBasicTouch &&
		int(b.Observe) < radixObserve
}

func (b Buff) String() string {
	return fmt.Sprintf("IQ:%d Manip:%d Inno:%d GS:%d WN:%d BT:%d Obs:%d",
		b.InnerQuiet, b.Manipulation, b.Innovation, b.GreatStrides, b.WasteNot, b.BasicTouch, b.Observe)
}
