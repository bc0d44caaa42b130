package rdp

import (
	"testing"

	"github.com/gogpu/n64hle/rdram"
)

func TestTMEMReadWriteByteWraps(t *testing.T) {
	var tmem TMEM
	tmem.WriteByte(TMEMBytes+5, 0x42)
	if got := tmem.ReadByte(5); got != 0x42 {
		t.Fatalf("expected wraparound write, got %x", got)
	}
}

func TestLoadTileCopiesRGBA16Span(t *testing.T) {
	mem := rdram.New(0x10000)
	mem.WriteU32(0, 0xAABBCCDD)
	var tmem TMEM
	tile := Tile{Size: Siz16b, Line: 1, TMEM: 0}
	tmem.LoadTile(mem, 0, 8, tile, 0, 0, 2, 1)
	// Byte reads apply the addr^3 word-swap correction per-byte, so a texel's
	// two source bytes land reversed in TMEM.
	if tmem.ReadByte(0) != 0xDD || tmem.ReadByte(1) != 0xCC {
		t.Fatalf("unexpected first texel: %x %x", tmem.ReadByte(0), tmem.ReadByte(1))
	}
}

func TestLoadTileRGBA32SplitsHalves(t *testing.T) {
	mem := rdram.New(0x10000)
	mem.WriteU32(0, 0x11223344)
	var tmem TMEM
	tile := Tile{Size: Siz32b, Line: 1, TMEM: 0}
	tmem.LoadTile(mem, 0, 16, tile, 0, 0, 1, 1)
	// RGBA32 loads split across the TMEM halves via 16-bit reads, which
	// apply the addr^2 halfword-swap correction: the lower half ends up
	// holding the source's high halfword and vice versa.
	if tmem.ReadByte(0) != 0x33 || tmem.ReadByte(1) != 0x44 {
		t.Fatalf("unexpected lower half: %x %x", tmem.ReadByte(0), tmem.ReadByte(1))
	}
	if tmem.ReadByte(TMEMHalfBytes) != 0x11 || tmem.ReadByte(TMEMHalfBytes+1) != 0x22 {
		t.Fatalf("unexpected upper half: %x %x", tmem.ReadByte(TMEMHalfBytes), tmem.ReadByte(TMEMHalfBytes+1))
	}
}

func TestLoadBlockCrossesDXTBoundary(t *testing.T) {
	mem := rdram.New(0x10000)
	for i := 0; i < 32; i++ {
		mem.WriteU32(uint32(i*4), uint32(i))
	}
	var tmem TMEM
	tile := Tile{Line: 2, TMEM: 0}
	tmem.LoadBlock(mem, 0, tile, 4, 2048)
	if tmem.ReadByte(0) == 0 && tmem.ReadByte(16) == 0 {
		t.Fatalf("expected bytes written across the dxt-crossed destination")
	}
}

func TestLoadTLUTPacksEntries(t *testing.T) {
	mem := rdram.New(0x10000)
	mem.WriteU32(0, 0xAABBCCDD)
	var tmem TMEM
	tile := Tile{TMEM: 0}
	tmem.LoadTLUT(mem, 0, tile, 2)
	if tmem.ReadByte(0) != 0xCC || tmem.ReadByte(1) != 0xDD {
		t.Fatalf("unexpected tlut bytes: %x %x", tmem.ReadByte(0), tmem.ReadByte(1))
	}
}
