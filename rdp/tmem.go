package rdp

import "github.com/gogpu/n64hle/rdram"

// TMEMWords is the size of TMEM in 64-bit words (4 KiB / 8).
const TMEMWords = 512

// TMEMBytes is the size of TMEM in bytes.
const TMEMBytes = TMEMWords * 8

// TMEMHalfBytes is the size of one RGBA32 TMEM half (2 KiB).
const TMEMHalfBytes = TMEMBytes / 2

// TMEM is the RDP's 4 KiB on-chip texture memory.
type TMEM struct {
	bytes [TMEMBytes]byte
}

// ReadByte returns the TMEM byte at addr (masked to TMEMBytes).
func (t *TMEM) ReadByte(addr int) byte {
	return t.bytes[addr&(TMEMBytes-1)]
}

// WriteByte writes the TMEM byte at addr (masked to TMEMBytes).
func (t *TMEM) WriteByte(addr int, v byte) {
	t.bytes[addr&(TMEMBytes-1)] = v
}

// Raw exposes the full backing array for hashing (texture-replacement
// lookups) and CPU-side shadow comparisons.
func (t *TMEM) Raw() []byte { return t.bytes[:] }

// LoadTile copies a rectangular [ult..lrt) x [uls..lrs) pixel span from
// RDRAM into TMEM starting at tile.TMEM, following the RDP's source and
// destination byte-swap quirks: every source fetch is read through
// rdram.Memory (which already XORs addr by 3 for byte reads), and the TMEM
// write address is additionally XORed with 0x4 on odd destination rows. A
// RGBA32 load is split symmetrically between the lower and upper 2 KiB
// TMEM halves.
func (t *TMEM) LoadTile(mem *rdram.Memory, srcAddr uint32, srcLineBytes int, tile Tile, ulS, ulT, lrS, lrT int) {
	bpp := PixelBytes(tile.Size)
	dstLineBytes := int(tile.Line) * 8
	for row := ulT; row < lrT; row++ {
		localRow := row - ulT
		rowOdd := localRow&1 == 1
		for col := ulS; col < lrS; col++ {
			localCol := col - ulS
			srcOff := srcAddr + uint32(row*srcLineBytes+col*bpp)
			dstOff := int(tile.TMEM)*8 + localRow*dstLineBytes + localCol*bpp
			if rowOdd {
				dstOff ^= 4
			}
			if tile.Size == Siz32b {
				// Lower half gets bytes 0-1 (R,G), upper half gets bytes 2-3 (B,A).
				lo := mem.ReadU16(srcOff)
				hi := mem.ReadU16(srcOff + 2)
				lowerAddr := dstOff / 2
				upperAddr := TMEMHalfBytes + dstOff/2
				t.WriteByte(lowerAddr, byte(lo>>8))
				t.WriteByte(lowerAddr+1, byte(lo))
				t.WriteByte(upperAddr, byte(hi>>8))
				t.WriteByte(upperAddr+1, byte(hi))
				continue
			}
			for b := 0; b < bpp; b++ {
				t.WriteByte(dstOff+b, mem.ReadU8(srcOff+uint32(b)))
			}
		}
	}
}

// LoadBlock copies a single packed run of words words from RDRAM starting
// at srcAddr into TMEM starting at tile.TMEM, using a DXT accumulator: the
// destination TMEM word address advances by tmemStride (in bytes) every
// time a running fractional counter, incremented by dxt each word, crosses
// 2048.
func (t *TMEM) LoadBlock(mem *rdram.Memory, srcAddr uint32, tile Tile, words int, dxt uint16) {
	dstBase := int(tile.TMEM) * 8
	tmemStride := int(tile.Line) * 8
	acc := 0
	dstOff := dstBase
	for w := 0; w < words; w++ {
		for b := 0; b < 8; b++ {
			t.WriteByte(dstOff+b, mem.ReadU8(srcAddr+uint32(w*8+b)))
		}
		acc += int(dxt)
		for acc >= 2048 {
			acc -= 2048
			dstOff += tmemStride
		}
	}
}

// LoadTLUT writes a palette of count RGBA16 entries from RDRAM into the
// upper half of TMEM, the region reserved for TLUT data, starting at
// tile.TMEM.
func (t *TMEM) LoadTLUT(mem *rdram.Memory, srcAddr uint32, tile Tile, count int) {
	dstOff := int(tile.TMEM) * 8
	for i := 0; i < count; i++ {
		v := mem.ReadU16(srcAddr + uint32(i*2))
		// TLUT entries occupy every other 16-bit TMEM slot (quadruplicated
		// in hardware); we keep a single packed representation and let the
		// sampler duplicate as needed.
		off := dstOff + i*2
		t.WriteByte(off, byte(v>>8))
		t.WriteByte(off+1, byte(v))
	}
}
