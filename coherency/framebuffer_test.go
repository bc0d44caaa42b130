package coherency

import (
	"testing"

	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdram"
)

func TestRegistryRecordWriteCreatesEntry(t *testing.T) {
	r := NewRegistry()
	fb := r.RecordWrite(0x1000, 320, 240, 2, 0, WriteColor, fixed.Rect{})
	if fb.AddressStart != 0x1000 || fb.Width != 320 || fb.Height != 240 {
		t.Fatalf("unexpected framebuffer: %+v", fb)
	}
	got, ok := r.Get(0x1000)
	if !ok || got != fb {
		t.Fatal("expected Get to return the recorded framebuffer")
	}
}

func TestRegistryMostRecentContainingPrefersLatestTimestamp(t *testing.T) {
	r := NewRegistry()
	r.RecordWrite(0x1000, 320, 240, 2, 0, WriteColor, fixed.Rect{})
	later := r.RecordWrite(0x0800, 320, 240, 2, 0, WriteColor, fixed.Rect{})

	fb, ok := r.MostRecentContaining(0x1000, 100)
	if !ok || fb != later {
		t.Fatalf("expected most recent write to win, got %+v", fb)
	}
}

func TestRegistryMostRecentContainingRequiresFullContainment(t *testing.T) {
	r := NewRegistry()
	r.RecordWrite(0x1000, 320, 240, 2, 0, WriteColor, fixed.Rect{})
	if _, ok := r.MostRecentContaining(0x1000, 320*240*2+100); ok {
		t.Fatal("expected no containing framebuffer for an out-of-range span")
	}
}

func TestRegistryWriteMarksOverlappingFBsChanged(t *testing.T) {
	r := NewRegistry()
	a := r.RecordWrite(0x1000, 320, 240, 2, 0, WriteColor, fixed.Rect{})
	r.RecordWrite(0x2000, 320, 240, 2, 0, WriteDepth, fixed.Rect{})
	if !a.RDRAMChanged {
		t.Fatal("expected overlapping framebuffer marked changed")
	}
}

func TestRegistryCheckRAMProducesWriteChangesOnHashMismatch(t *testing.T) {
	mem := rdram.New(0x10000)
	r := NewRegistry()
	r.RecordWrite(0, 4, 4, 2, 0, WriteColor, fixed.Rect{})
	ops := r.CheckRAM(mem)
	if len(ops) != 1 || ops[0].Kind != OpWriteChanges {
		t.Fatalf("expected one WriteChanges op on first hash check, got %+v", ops)
	}
}

func TestRegistryCheckRAMDiscardsIrrecoverableFB(t *testing.T) {
	mem := rdram.New(0x10000)
	r := NewRegistry()
	fb := r.RecordWrite(0, 4, 4, 2, 0, WriteColor, fixed.Rect{})
	fb.ModifiedBytes = uint32(fb.AddressEnd())
	r.CheckRAM(mem)
	discards := r.Discards()
	if len(discards) != 1 || discards[0] != 0 {
		t.Fatalf("expected framebuffer discarded, got %v", discards)
	}
	if _, ok := r.Get(0); ok {
		t.Fatal("expected discarded framebuffer removed from registry")
	}
}
