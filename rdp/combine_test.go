package rdp

import "testing"

func TestDecodeCombineZeroIsAllCombined(t *testing.T) {
	c := DecodeCombine(0)
	if c.ColorCycle[0].A != CombCombined || c.AlphaCycle[0].A != CombCombinedAlpha {
		t.Fatalf("expected zero pattern to decode to index-0 inputs, got %+v", c.ColorCycle[0])
	}
}

func TestDecodeCombinePreservesRaw(t *testing.T) {
	c := DecodeCombine(0xDEADBEEFCAFEBABE)
	if c.Raw != 0xDEADBEEFCAFEBABE {
		t.Fatalf("expected raw pattern preserved, got %x", c.Raw)
	}
}

func TestLookupOutOfRangeFallsBackToZero(t *testing.T) {
	if got := lookup(colorInputsA, 99); got != CombZero {
		t.Fatalf("expected CombZero for out-of-range index, got %v", got)
	}
}

func TestDecodeCombineColorCycleAInput(t *testing.T) {
	// a0 field occupies bits 52-55; set it to 3 (Primitive) with everything
	// else zero.
	raw := uint64(3) << 52
	c := DecodeCombine(raw)
	if c.ColorCycle[0].A != CombPrimitive {
		t.Fatalf("expected CombPrimitive, got %v", c.ColorCycle[0].A)
	}
}
