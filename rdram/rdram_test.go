package rdram

import "testing"

func TestFromSegmented(t *testing.T) {
	m := New(1 << 20)
	m.SetSegment(6, 0x80100000)
	got := m.FromSegmented(0x60001234)
	want := uint32(0x80100000 + 0x001234)
	if got != want {
		t.Errorf("FromSegmented = %#x, want %#x", got, want)
	}
}

func TestFromSegmentedDMAAlignment(t *testing.T) {
	m := New(1 << 20)
	m.SetSegment(0, 0)
	got := m.FromSegmentedDMA(0x0000000B)
	if got != 0x00000008 {
		t.Errorf("FromSegmentedDMA = %#x, want 0x8", got)
	}
}

func TestExtendedModeBypassesSegmentMask(t *testing.T) {
	m := New(1 << 20)
	m.SetExtended(true)
	m.SetSegment(8, 0xDEADBEEF) // should be ignored in extended mode
	got := m.FromSegmented(0x81234567)
	if got != 0x01234567 {
		t.Errorf("FromSegmented(extended) = %#x, want 0x01234567", got)
	}
}

func TestReadU8WordSwap(t *testing.T) {
	m := New(16)
	m.bytes[3] = 0xAB
	if got := m.ReadU8(0); got != 0xAB {
		t.Errorf("ReadU8(0) = %#x, want 0xab", got)
	}
}

func TestReadU32Aligned(t *testing.T) {
	m := New(16)
	m.WriteU32(4, 0x01020304)
	if got := m.ReadU32(4); got != 0x01020304 {
		t.Errorf("ReadU32 = %#x, want 0x01020304", got)
	}
}

func TestOutOfBoundsReadsReturnZero(t *testing.T) {
	m := New(16)
	if got := m.ReadU32(1000); got != 0 {
		t.Errorf("out of bounds ReadU32 = %#x, want 0", got)
	}
}
