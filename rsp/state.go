package rsp

import (
	"math"

	"github.com/gogpu/n64hle/rdram"
)

// TextureState is the RSP's small texture-scroll binding (setTexture):
// which tile/mipmap level count is active and the (sc, tc) texture
// coordinate scale applied to loaded vertices' raw s/t.
type TextureState struct {
	Tile, Levels uint8
	On           bool
	SC, TC       uint16
}

// LightBlock is one decoded light slot plus the raw address it was last
// loaded from, so setLightColor can patch just the color without
// re-reading the rest of the record.
type LightBlock struct {
	Addr       uint32
	Positional bool
	Pos        PosLight
	Dir        DirLight
}

// State is the full RSP register file: matrix stacks, vertex cache,
// lighting/fog/lookat/viewport, geometry mode, and the deferred-dirty
// flags spec.md §4.2 describes for lights/fog/lookat/viewport.
type State struct {
	Matrix *MatrixState
	Cache  *VertexCache

	GeometryMode GeometryMode

	Viewport        Viewport
	ViewportChanged bool
	Alignment       ExtendedAlignment

	Fog        Fog
	FogChanged bool

	LookAt        LookAt
	LookAtChanged bool

	Lights     [MaxLights]LightBlock
	LightCount int
	LightsChanged bool

	Texture TextureState

	// VertexTestZ state (the supplemented depth-pretest path): when armed,
	// the next triangle submission tests against a cached vertex's depth
	// instead of drawing, resetting to "none" on EndVertexTestZ.
	VertexTestZArmed bool
	VertexTestZSlot  int

	ForceBranch bool

	segments [16]uint32

	fogIndexCounter    uint32
	lightIndexCounter  uint32
	lookAtIndexCounter uint32
}

// New returns a freshly reset RSP state.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores power-on state: identity matrices, empty vertex cache,
// zeroed geometry mode.
func (s *State) Reset() {
	*s = State{}
	s.Matrix = NewMatrixState()
	s.Cache = NewVertexCache()
	s.GeometryMode = 0
	s.Viewport = Viewport{}
	s.Fog = Fog{}
	s.LookAt = LookAt{}
	s.Lights = [MaxLights]LightBlock{}
	s.LightCount = 0
	s.Texture = TextureState{}
	s.VertexTestZArmed = false
	s.segments = [16]uint32{}
}

// SetSegment installs the RSP's own shadow of segment seg's base address,
// mirroring the copy the original implementation keeps alongside RDRAM's.
func (s *State) SetSegment(seg int, address uint32) {
	if seg >= 0 && seg < len(s.segments) {
		s.segments[seg] = address
	}
}

// SetGeometryMode replaces the geometry mode bitfield wholesale.
func (s *State) SetGeometryMode(mode GeometryMode) { s.GeometryMode = mode }

// SetGeometryModeBits ORs mask into the geometry mode.
func (s *State) SetGeometryModeBits(mask GeometryMode) { s.GeometryMode |= mask }

// ClearGeometryModeBits ANDs the complement of mask into the geometry mode.
func (s *State) ClearGeometryModeBits(mask GeometryMode) { s.GeometryMode &^= mask }

// SetTexture installs the texture-scroll binding (setTexture command).
func (s *State) SetTexture(tile, levels uint8, on bool, sc, tc uint16) {
	s.Texture = TextureState{Tile: tile, Levels: levels, On: on, SC: sc, TC: tc}
}

// SetViewport installs the viewport scale/translate, deferring the dirty
// flag to the next vertex load.
func (s *State) SetViewport(v Viewport) {
	s.Viewport = v
	s.ViewportChanged = true
}

// SetViewportAlign installs the supplemented extended-alignment origin and
// pixel offset (SPEC_FULL.md's viewport-alignment feature).
func (s *State) SetViewportAlign(origin uint16, offX, offY int16) {
	s.Alignment = ExtendedAlignment{Origin: origin, OffsetX: offX, OffsetY: offY}
	s.ViewportChanged = true
}

// SetFog installs the fog multiplier/offset, deferring the dirty flag.
func (s *State) SetFog(mul, offset int16) {
	s.Fog = Fog{Mul: mul, Offset: offset}
	s.FogChanged = true
}

// SetLookAt installs one of the two lookat basis vectors by index (0 or 1),
// reading it from RDRAM as three floats packed the way setLookAt's wire
// format carries them.
func (s *State) SetLookAt(mem *rdram.Memory, index int, addr uint32) {
	x := readFloat3(mem, addr)
	if index == 0 {
		s.LookAt.X = x
	} else {
		s.LookAt.Y = x
	}
	s.LookAtChanged = true
}

// SetLookAtVectors installs both lookat basis vectors directly.
func (s *State) SetLookAtVectors(x, y [3]float32) {
	s.LookAt = LookAt{X: x, Y: y}
	s.LookAtChanged = true
}

func readFloat3(mem *rdram.Memory, addr uint32) [3]float32 {
	raw := mem.Raw(addr, 12)
	if len(raw) < 12 {
		return [3]float32{}
	}
	bits := func(off int) float32 {
		u := uint32(raw[off])<<24 | uint32(raw[off+1])<<16 | uint32(raw[off+2])<<8 | uint32(raw[off+3])
		return math.Float32frombits(u)
	}
	return [3]float32{bits(0), bits(4), bits(8)}
}

// SetLight loads light index from RDRAM at addr, reinterpreting it as
// positional or directional depending on the geometry mode's point-
// lighting bit.
func (s *State) SetLight(mem *rdram.Memory, index int, addr uint32) {
	if index < 0 || index >= MaxLights {
		return
	}
	positional := s.GeometryMode&GeomPointLighting != 0
	pos, dir, isPos := DecodeLight(mem, addr, positional)
	s.Lights[index] = LightBlock{Addr: addr, Positional: isPos, Pos: pos, Dir: dir}
	s.LightsChanged = true
}

// SetLightColor patches just the color of an already-loaded light slot.
func (s *State) SetLightColor(index int, value uint32) {
	if index < 0 || index >= MaxLights {
		return
	}
	color := [3]uint8{byte(value >> 24), byte(value >> 16), byte(value >> 8)}
	if s.Lights[index].Positional {
		s.Lights[index].Pos.Color = color
	} else {
		s.Lights[index].Dir.Color = color
	}
	s.LightsChanged = true
}

// SetLightCount installs the number of lights the next lit vertex
// iterates, plus the implicit trailing ambient light.
func (s *State) SetLightCount(count int) {
	s.LightCount = count
	s.LightsChanged = true
}

// VertexTestZ arms the depth-pretest path against the cached vertex at
// slot, per SPEC_FULL.md's supplemented vertexTestZ/endVertexTestZ pair.
func (s *State) VertexTestZ(slot int) {
	s.VertexTestZArmed = true
	s.VertexTestZSlot = slot
}

// EndVertexTestZ disarms the depth pretest.
func (s *State) EndVertexTestZ() {
	s.VertexTestZArmed = false
}

// ForceBranchSet installs the supplemented extended force-branch override:
// when set, branchZ/branchW take their DL branch unconditionally
// regardless of the tested depth/clip-w value.
func (s *State) ForceBranchSet(force bool) {
	s.ForceBranch = force
}
