package craft

import (
	"testing"
)

func FuzzApplyInvariants(f *testing.F) {
	// Add seed corpus: durability, cp, buff fields, action
	f.Add(uint8(55), uint16(657), uint8(11), uint8(0), uint8(0), uint8(0), uint8(0), uint8(0), uint8(0), uint8(1))
	f.Add(uint8(10), uint16(40), uint8(11), uint8(5), uint8(3), uint8(2), uint8(4), uint8(1), uint8(0), uint8(2))
	f.Add(uint8(5), uint16(18), uint8(0), uint8(1), uint8(0), uint8(0), uint8(8), uint8(0), uint8(1), uint8(4))
	f.Add(uint8(80), uint16(300), uint8(11), uint8(10), uint8(6), uint8(5), uint8(10), uint8(0), uint8(0), uint8(13))

	f.Fuzz(func(t *testing.T, dur uint8, cp uint16, iq, manip, inno, gs, wn, bt, obs, action uint8) {
		setting := newTestSetting(80, 1000, wn > 8 || manip > 8)

		s := State{
			Durability: RoundDurability(int(dur % 81)),
			CP:         int(cp % 1001),
			Buff: Buff{
				InnerQuiet:   iq % 12,
				Manipulation: manip % 11,
				Innovation:   inno % 7,
				GreatStrides: gs % 6,
				WasteNot:     wn % 11,
				BasicTouch:   bt % 2,
				Observe:      obs % 2,
			},
		}
		if s.Durability > setting.MaxDurability {
			return
		}
		a := Action(action%uint8(len(CandidateActions))) + BasicTouch

		if !s.CanApply(a) {
			return
		}
		next, q := s.Apply(setting, a)

		// Invariant 1: CP strictly decreases and never goes negative
		if next.CP >= s.CP || next.CP < 0 {
			t.Errorf("%v: CP %d -> %d", a, s.CP, next.CP)
		}

		// Invariant 2: durability stays in [0, max] and on the 5 grid
		if next.Durability < 0 || next.Durability > setting.MaxDurability {
			t.Errorf("%v: durability %d out of [0, %d]", a, next.Durability, setting.MaxDurability)
		}
		if next.Durability%DurabilityStep != 0 {
			t.Errorf("%v: durability %d off the grid", a, next.Durability)
		}

		// Invariant 3: only touches produce quality
		if !a.IsTouch() && q != 0 {
			t.Errorf("%v produced quality %d", a, q)
		}

		// Invariant 4: timers never increase except the one the action sets
		if a != Manipulation && next.Buff.Manipulation > s.Buff.Manipulation {
			t.Errorf("%v increased Manipulation", a)
		}
		if a != Innovation && next.Buff.Innovation > s.Buff.Innovation {
			t.Errorf("%v increased Innovation", a)
		}
		if a != GreatStrides && next.Buff.GreatStrides > s.Buff.GreatStrides {
			t.Errorf("%v increased Great Strides", a)
		}
		if a != WasteNot && a != WasteNot2 && next.Buff.WasteNot > s.Buff.WasteNot {
			t.Errorf("%v increased Waste Not", a)
		}

		// Invariant 5: Inner Quiet never grows
		if next.Buff.InnerQuiet > s.Buff.InnerQuiet {
			t.Errorf("%v increased Inner Quiet", a)
		}
	})
}
