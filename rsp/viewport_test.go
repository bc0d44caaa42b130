package rsp

import (
	"testing"

	"github.com/gogpu/n64hle/rdram"
)

// TestDecodeViewportScaleAndTranslate hand-traces ReadU16's (addr&^1)^2 swap:
// for a word written as WriteU32(base, (A<<16)|B), ReadU16(base) yields B
// (the low-packed field) and ReadU16(base+2) yields A (the high-packed
// field) once the read-side swap is applied.
func TestDecodeViewportScaleAndTranslate(t *testing.T) {
	mem := rdram.New(0x100)
	// ReadU16(0)=B=400 -> ScaleX=100; ReadU16(2)=A=800 -> ScaleY=200.
	mem.WriteU32(0, (800<<16)|400)
	// ReadU16(4) reads the low field of the word at 4 -> ScaleZ.
	mem.WriteU32(4, uint32(uint16(int16(-400))))
	// ReadU16(8)=B=40 -> TranslateX=10; ReadU16(10)=A=80 -> TranslateY=20.
	mem.WriteU32(8, (80<<16)|40)
	// ReadU16(12) reads the low field of the word at 12 -> TranslateZ.
	mem.WriteU32(12, 120)

	v := DecodeViewport(mem, 0)
	if v.ScaleX != 100 || v.ScaleY != 200 {
		t.Fatalf("unexpected scale xy: %v %v", v.ScaleX, v.ScaleY)
	}
	if v.ScaleZ != -100 {
		t.Fatalf("unexpected scale z: %v", v.ScaleZ)
	}
	if v.TranslateX != 10 || v.TranslateY != 20 {
		t.Fatalf("unexpected translate xy: %v %v", v.TranslateX, v.TranslateY)
	}
	if v.TranslateZ != 30 {
		t.Fatalf("unexpected translate z: %v", v.TranslateZ)
	}
}
