// Package drawattr defines the small bitset of "draw attribute dirty" bits
// shared by rdp and rsp (producers) and workload (consumer). It is split
// out from both so that neither state-machine package needs to depend on
// the draw-call accumulator to report what changed.
package drawattr

// Attr identifies one piece of per-draw state whose change forces a flush
// of the in-progress DrawCall (spec.md §4.5 checkDrawState).
type Attr uint32

const (
	Scissor Attr = 1 << iota
	OtherMode
	Combine
	GeometryMode
	FillColor
	PrimColor
	EnvColor
	BlendColor
	FogColor
	PrimDepth
	ConvertK
	KeyCenterScale
	TileState
	ProjectionOrViewport
	FramebufferPair
)

// Set is a bitset of Attr values.
type Set uint32

// Mark sets the bit for attr.
func (s *Set) Mark(attr Attr) { *s |= Set(attr) }

// Has reports whether attr's bit is set.
func (s Set) Has(attr Attr) bool { return s&Set(attr) != 0 }

// Any reports whether any bit is set.
func (s Set) Any() bool { return s != 0 }

// Clear resets every bit.
func (s *Set) Clear() { *s = 0 }
