package rsp

import "github.com/gogpu/n64hle/rdram"

// MaxLights is the number of light slots the RSP keeps plus the trailing
// ambient light, matching RSP_MAX_LIGHTS+1 in the original implementation.
const MaxLights = 12

// RawLight is the undecoded 16-byte light record as loaded from RDRAM.
type RawLight [4]uint32

// DirLight is a directional light: a color, a copy color used for the
// copy-mode shader path, and a signed direction.
type DirLight struct {
	Color     [3]uint8 // r, g, b
	CopyColor [3]uint8
	Dir       [3]int8 // x, y, z
}

// PosLight is a positional (point) light: color, copy color, position and
// the three N64 light falloff coefficients (constant/linear/quadratic).
type PosLight struct {
	Color     [3]uint8
	CopyColor [3]uint8
	Pos       [3]int16
	KC, KL, KQ uint8
}

// DecodeRawLight reads the undecoded 16-byte light block at addr.
func DecodeRawLight(mem *rdram.Memory, addr uint32) RawLight {
	return RawLight{
		mem.ReadU32(addr),
		mem.ReadU32(addr + 4),
		mem.ReadU32(addr + 8),
		mem.ReadU32(addr + 12),
	}
}

// DecodeDirLight reinterprets the 16-byte light block at addr as a
// directional light, matching RSP::DirLight's field layout: pad, color
// bytes, pad, copy-color bytes, pad, then three signed direction bytes.
func DecodeDirLight(mem *rdram.Memory, addr uint32) DirLight {
	raw := mem.Raw(addr, 16)
	var d DirLight
	if len(raw) < 16 {
		return d
	}
	d.Color = [3]uint8{raw[3], raw[2], raw[1]}
	d.CopyColor = [3]uint8{raw[7], raw[6], raw[5]}
	d.Dir = [3]int8{int8(raw[11]), int8(raw[10]), int8(raw[9])}
	return d
}

// DecodePosLight reinterprets the 16-byte light block at addr as a
// positional light, matching RSP::PosLight's field layout.
func DecodePosLight(mem *rdram.Memory, addr uint32) PosLight {
	var p PosLight
	p.KC = mem.ReadU8(addr)
	p.Color = [3]uint8{mem.ReadU8(addr + 1), mem.ReadU8(addr + 2), mem.ReadU8(addr + 3)}
	p.KL = mem.ReadU8(addr + 4)
	p.CopyColor = [3]uint8{mem.ReadU8(addr + 5), mem.ReadU8(addr + 6), mem.ReadU8(addr + 7)}
	p.Pos[1] = int16(mem.ReadU16(addr + 8))
	p.Pos[0] = int16(mem.ReadU16(addr + 10))
	p.KQ = mem.ReadU8(addr + 13)
	p.Pos[2] = int16(mem.ReadU16(addr + 14))
	return p
}

// DecodeLight picks DecodePosLight or DecodeDirLight depending on whether
// the current lighting mode is positional (point lighting), mirroring
// RSP::Light's union reinterpretation driven by the geometry mode's
// point-lighting bit.
func DecodeLight(mem *rdram.Memory, addr uint32, positional bool) (PosLight, DirLight, bool) {
	if positional {
		return DecodePosLight(mem, addr), DirLight{}, true
	}
	return PosLight{}, DecodeDirLight(mem, addr), false
}
