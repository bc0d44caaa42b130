package rsp

import "github.com/gogpu/n64hle/rdram"

// Viewport is the RSP's viewport scale/translate pair, both stored as
// signed shorts in the wire format and converted to float here by dividing
// by 4.
type Viewport struct {
	ScaleX, ScaleY, ScaleZ         float32
	TranslateX, TranslateY, TranslateZ float32
}

// DecodeViewport unpacks the 16-byte RSP viewport struct (four shorts scale,
// four shorts translate; the fourth component of each is unused padding).
func DecodeViewport(mem *rdram.Memory, addr uint32) Viewport {
	s16 := func(a uint32) float32 { return float32(int16(mem.ReadU16(a))) / 4 }
	return Viewport{
		ScaleX: s16(addr), ScaleY: s16(addr + 2), ScaleZ: s16(addr + 4),
		TranslateX: s16(addr + 8), TranslateY: s16(addr + 10), TranslateZ: s16(addr + 12),
	}
}

// Fog is the RSP's fog multiplier/offset pair (setFog's mul, offset).
type Fog struct {
	Mul, Offset int16
}

// LookAt is the pair of basis vectors used for linear texgen (setLookAt /
// setLookAtVectors).
type LookAt struct {
	X, Y [3]float32
}

// ExtendedAlignment carries the supplemented viewport-origin/offset state
// set by setViewportAlign: an origin enum (none/left/center/right, mirrored
// on the vertical axis by convention) plus a pixel offset applied after the
// normal viewport scale/translate, used by widescreen-hack-aware titles to
// re-anchor the viewport without altering game logic.
type ExtendedAlignment struct {
	Origin  uint16
	OffsetX int16
	OffsetY int16
}

// Origin values for ExtendedAlignment, mirroring gbi.ExOrigin*.
const (
	OriginNone = iota
	OriginLeft
	OriginCenter
	OriginRight
)
