package interp

import (
	"github.com/gogpu/n64hle/workload"
)

// flushOnDrawStateChange implements spec.md §4.5's checkDrawState call
// every draw-triggering opcode makes first: if any RDP register or the RSP
// geometry mode changed since the last committed DrawCall, the in-progress
// one is flushed and a fresh register snapshot is taken.
func (i *Interpreter) flushOnDrawStateChange() {
	i.Build.CheckDrawState(&i.RDP.Dirty, i.RDP, uint32(i.RSP.GeometryMode))
}

// currentViewProjIndex returns the view-projection pool slot the most
// recently loaded vertices were stamped with (spec.md §4.2's lazy dirty-
// index rule; the matrix state itself owns the counter).
func (i *Interpreter) currentViewProjIndex() uint32 {
	return i.RSP.Matrix.CurViewProjIndex
}

// currentViewportIndex advances the interpreter's own viewport dirty-index
// counter on a change and ensures the workload's viewport pool has an entry
// for it, mirroring the matrix/fog/light pools' "bump the counter once,
// then fill the pool lazily" pattern (spec.md §4.2) for a piece of state
// rsp.State does not itself keep a pool index for.
func (i *Interpreter) currentViewportIndex() uint32 {
	if i.RSP.ViewportChanged {
		i.viewportIndexCounter++
		i.RSP.ViewportChanged = false
	}
	return i.Build.EnsureViewportSlot(i.viewportIndexCounter, i.RSP.Viewport)
}

// ensureTriangleProjection starts a new Projection of type Perspective if
// the active matrix/viewport binding changed, per spec.md §3: "a new
// [projection] is created implicitly whenever the projection matrix, the
// viewport, or the projection type changes." RSP-driven 3D geometry is
// always classified Perspective; orthographic titles use the same
// projection matrix mechanism and do not need a distinct wire type.
func (i *Interpreter) ensureTriangleProjection() {
	i.Build.EnsureProjection(workload.ProjectionPerspective, i.currentViewProjIndex(), i.currentViewportIndex())
}

// ensureRectProjection is FillRect/TexRect's counterpart: rectangles always
// draw through the identity/screen-space projection path, so they get their
// own stable Projection type that never mixes with 3D geometry batches.
func (i *Interpreter) ensureRectProjection() {
	i.Build.EnsureProjection(workload.ProjectionRectangle, 0, 0)
}
