package rdram

import "encoding/binary"

// SegmentCount is the number of entries in the segment table: the top 4
// bits of a segmented address select one of these.
const SegmentCount = 16

// DMAMask is applied to segmented-address-derived DMA source addresses,
// rounding down to 8-byte (display-list command) alignment.
const DMAMask = 0x00FFFFF8

// addressMask strips everything but the low 24 bits of a segmented address
// before adding the segment base.
const addressMask = 0x00FFFFFF

// Memory is the emulated RDRAM backing store plus its segment table.
type Memory struct {
	bytes    []byte
	segments [SegmentCount]uint32
	extended bool
}

// New allocates size bytes of zeroed RDRAM.
func New(size int) *Memory {
	return &Memory{bytes: make([]byte, size)}
}

// Size returns the size of the backing store in bytes.
func (m *Memory) Size() int { return len(m.bytes) }

// SetExtended toggles extended-RDRAM mode, under which addresses whose top
// nibble is 0x8 bypass the normal 0x00FFFFFF segment mask.
func (m *Memory) SetExtended(enabled bool) { m.extended = enabled }

// SetSegment installs the physical base address for segment seg (0-15).
func (m *Memory) SetSegment(seg int, address uint32) {
	if seg < 0 || seg >= SegmentCount {
		return
	}
	m.segments[seg] = address
}

// Segment returns the physical base address currently installed for seg.
func (m *Memory) Segment(seg int) uint32 {
	if seg < 0 || seg >= SegmentCount {
		return 0
	}
	return m.segments[seg]
}

// FromSegmented resolves a segmented address to a physical RDRAM address:
// physical = segments[top4] + (addr & 0x00FFFFFF), except in extended mode
// when the top nibble is 0x8, where the low 28 bits are used directly and
// no segment base is added.
func (m *Memory) FromSegmented(addr uint32) uint32 {
	top4 := addr >> 28
	if m.extended && top4 == 0x8 {
		return addr & 0x0FFFFFFF
	}
	return m.segments[top4&0xF] + (addr & addressMask)
}

// FromSegmentedDMA resolves a segmented address the way DMA-style reads
// (display-list fetches, vertex loads, matrix loads) do: through
// FromSegmented and then masked to 8-byte alignment.
func (m *Memory) FromSegmentedDMA(addr uint32) uint32 {
	return m.FromSegmented(addr) & DMAMask
}

func (m *Memory) inBounds(addr uint32, n int) bool {
	return addr <= uint32(len(m.bytes)-n) || (n == 0 && int(addr) <= len(m.bytes))
}

// ReadU8 reads a single byte, applying the N64 DMA word-swap correction
// (addr XOR 3).
func (m *Memory) ReadU8(addr uint32) uint8 {
	a := addr ^ 3
	if !m.inBounds(a, 1) {
		return 0
	}
	return m.bytes[a]
}

// ReadU16 reads a big-endian halfword, applying the word-swap correction
// (addr XOR 2) to the aligned start of the 2-byte span.
func (m *Memory) ReadU16(addr uint32) uint16 {
	a := (addr &^ 1) ^ 2
	if !m.inBounds(a, 2) {
		return 0
	}
	return binary.BigEndian.Uint16(m.bytes[a : a+2])
}

// ReadU32 reads a big-endian word. Word-aligned 32-bit reads need no
// swap correction.
func (m *Memory) ReadU32(addr uint32) uint32 {
	a := addr &^ 3
	if !m.inBounds(a, 4) {
		return 0
	}
	return binary.BigEndian.Uint32(m.bytes[a : a+4])
}

// ReadU64 reads a big-endian doubleword, the natural unit of a display-list
// command.
func (m *Memory) ReadU64(addr uint32) uint64 {
	a := addr &^ 7
	if !m.inBounds(a, 8) {
		return 0
	}
	return binary.BigEndian.Uint64(m.bytes[a : a+8])
}

// WriteU8 writes a single byte with the same word-swap correction ReadU8
// uses.
func (m *Memory) WriteU8(addr uint32, v uint8) {
	a := addr ^ 3
	if m.inBounds(a, 1) {
		m.bytes[a] = v
	}
}

// WriteU32 writes a big-endian word.
func (m *Memory) WriteU32(addr uint32, v uint32) {
	a := addr &^ 3
	if m.inBounds(a, 4) {
		binary.BigEndian.PutUint32(m.bytes[a:a+4], v)
	}
}

// Raw returns a direct slice of n bytes starting at the (already physical)
// address with no swap correction applied, for code that parses a
// multi-byte struct (vertex, matrix, light) field-by-field using explicit
// big-endian accessors of its own.
func (m *Memory) Raw(addr uint32, n int) []byte {
	if addr > uint32(len(m.bytes)) || int(addr)+n > len(m.bytes) {
		if int(addr) >= len(m.bytes) {
			return nil
		}
		n = len(m.bytes) - int(addr)
	}
	return m.bytes[addr : addr+uint32(n)]
}

// InBounds reports whether a read of n bytes at addr stays inside RDRAM.
func (m *Memory) InBounds(addr uint32, n int) bool {
	return addr <= uint32(len(m.bytes)) && int(addr)+n <= len(m.bytes)
}

// WriteRaw copies data into RDRAM starting at addr with no swap correction,
// clipping to the backing store's bounds.
func (m *Memory) WriteRaw(addr uint32, data []byte) {
	if !m.InBounds(addr, len(data)) {
		return
	}
	copy(m.bytes[addr:], data)
}
