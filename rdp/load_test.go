package rdp

import (
	"testing"

	"github.com/gogpu/n64hle/rdram"
)

func TestLoadTileReturnsOperationRecord(t *testing.T) {
	mem := rdram.New(0x40000)
	s := New()
	s.SetTextureImage(FmtRGBA, Siz16b, 64, 0x30000)
	s.SetTile(0, FmtRGBA, Siz16b, 16, 0, 0, 0, 0, 0, 0, 0, 0)

	op := s.LoadTile(mem, 0, 0, 0, 252, 252)
	if op.Kind != LoadKindTile {
		t.Fatalf("expected LoadKindTile, got %v", op.Kind)
	}
	if op.SrcAddr != 0x30000 || op.LRS != 252 || op.LRT != 252 {
		t.Fatalf("unexpected op: %+v", op)
	}
}

func TestLoadBlockAdvancesDestByDXTAccumulator(t *testing.T) {
	mem := rdram.New(0x10000)
	s := New()
	s.SetTextureImage(FmtRGBA, Siz16b, 32, 0)
	s.SetTile(0, FmtRGBA, Siz16b, 4, 0, 0, 0, 0, 0, 0, 0, 0)

	mem.WriteU32(8, 0x11223344)

	op := s.LoadBlock(mem, 0, 16, 2048)
	if op.Kind != LoadKindBlock || op.Words != 16 || op.DXT != 2048 {
		t.Fatalf("unexpected op: %+v", op)
	}
	// Line 4 gives a 32-byte stride and dxt 2048 crosses the accumulator on
	// every word, so source word 1 lands at TMEM byte 32.
	if got := s.TMEM.ReadByte(32); got != 0x44 {
		t.Fatalf("expected word 1 at TMEM byte 32, got %x", got)
	}
}

func TestLoadTLUTWritesPalette(t *testing.T) {
	mem := rdram.New(0x10000)
	mem.WriteU32(0, 0x12345678)
	s := New()
	s.SetTextureImage(FmtRGBA, Siz16b, 16, 0)
	s.SetTile(4, FmtCI, Siz4b, 0, 256, 0, 0, 0, 0, 0, 0, 0)

	op := s.LoadTLUT(mem, 4, 2)
	if op.Kind != LoadKindTLUT || op.Count != 2 {
		t.Fatalf("unexpected op: %+v", op)
	}
	if s.TMEM.ReadByte(256*8) != 0x56 {
		t.Fatalf("expected TLUT byte written, got %x", s.TMEM.ReadByte(256*8))
	}
}
