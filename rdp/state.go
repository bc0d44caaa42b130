package rdp

import (
	"github.com/gogpu/n64hle/drawattr"
	"github.com/gogpu/n64hle/fixed"
)

// Color is an RGBA color in the float4 form the RDP's env/prim/blend/fog
// registers are stored as.
type Color [4]float32

// ImageDescriptor names a color, depth or texture image binding: its
// format/size/width and the (already segment-resolved) RDRAM address the
// image starts at.
type ImageDescriptor struct {
	Format  uint8
	Size    uint8
	Width   uint16
	Address uint32
	Changed bool
}

// RowBytes returns the byte stride of one scanline of the image.
func (d ImageDescriptor) RowBytes() int {
	return LineBytes(int(d.Width), d.Size)
}

// State is the full RDP register file: image bindings, tiles, TMEM, other
// mode, combiner, and the seven extended push/pop stacks.
type State struct {
	ColorImage   ImageDescriptor
	DepthImage   ImageDescriptor
	TextureImage ImageDescriptor

	Tiles [8]Tile
	TMEM  TMEM

	OtherMode OtherMode
	Combine   Combine

	EnvColor   Stack[Color]
	PrimColor  Stack[Color]
	BlendColor Stack[Color]
	FogColor   Stack[Color]
	FillColor  Stack[uint32]
	Scissor    Stack[ScissorState]
	CombineStk Stack[Combine]

	PrimLODFrac  uint8
	PrimLODMin   uint8
	PrimDepthZ   uint16
	PrimDepthDZ  uint16

	ConvertK           [6]int32
	KeyCenter, KeyScale [3]float32

	Dirty drawattr.Set

	fault error
}

// ScissorState is the RDP scissor rect plus its clamp mode, matching the
// setScissor command's (mode, rect) pair.
type ScissorState struct {
	Rect fixed.Rect
	Mode uint8
}

// New returns a freshly reset RDP state (spec.md §4.3 "initial state on
// reset").
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the power-on state: identity combine, other-mode
// {L:0,H:0x080CFF}, scissor {0,0,8192,8192}, all colors zero, TMEM
// uninitialized.
func (s *State) Reset() {
	*s = State{}
	s.OtherMode = DefaultOtherMode()
	s.Scissor.Set(ScissorState{Rect: fixed.FromPixels(0, 0, 8192, 8192)})
}

// Fault returns the sticky crash/fault state, if any (SPEC_FULL.md §4, RDP
// crash bookkeeping).
func (s *State) Fault() error { return s.fault }

// SetFault latches a fault; once set it is never cleared except by Reset.
func (s *State) SetFault(err error) {
	if s.fault == nil {
		s.fault = err
	}
}
