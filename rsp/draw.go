package rsp

import (
	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdram"
)

// dirtyIndex bumps counter whenever changed is true, returning the
// (possibly just-bumped) value — the "create a new block if state changed"
// rule spec.md §4.2 applies uniformly to viewProj/transform/fog/light/
// lookat indices.
func dirtyIndex(counter *uint32, changed *bool) uint32 {
	if *changed {
		*counter++
		*changed = false
	}
	return *counter
}

// SetVertex executes setVertex(addr, count, dstIndex): decodes count
// 16-byte vertex structs starting at the already segment-resolved address
// addr, transforms each by the current (lazily recomputed) MVP and
// viewport, and loads them into the cache starting at dstIndex. Returns
// the transformed vertices in load order for the caller (the workload
// accumulator) to append to its columnar vertex stream.
func (s *State) SetVertex(mem *rdram.Memory, addr uint32, count int, dstIndex int) []TransformedVertex {
	s.Matrix.ComputeModelViewProj()
	out := make([]TransformedVertex, 0, count)
	for i := 0; i < count; i++ {
		v := DecodeVertex(mem, addr+uint32(i*16))
		tv := s.transformVertex(v)
		slot := dstIndex + i
		s.Cache.Load(slot, tv, -1)
		out = append(out, tv)
	}
	return out
}

// SetVertexPD executes setVertexPD: like SetVertex but decodes the reduced
// packed-color VertexPD struct, carrying the CI palette index instead of
// separate shade bytes.
func (s *State) SetVertexPD(mem *rdram.Memory, addr uint32, count int, dstIndex int) []TransformedVertex {
	s.Matrix.ComputeModelViewProj()
	out := make([]TransformedVertex, 0, count)
	for i := 0; i < count; i++ {
		pd := DecodeVertexPD(mem, addr+uint32(i*12))
		v := Vertex{X: pd.X, Y: pd.Y, Z: pd.Z, S: pd.S, T: pd.T}
		v.ColorOrNormal = [4]uint8{byte(pd.CI >> 8), byte(pd.CI), 0, 0}
		tv := s.transformVertex(v)
		slot := dstIndex + i
		s.Cache.Load(slot, tv, -1)
		out = append(out, tv)
	}
	return out
}

func (s *State) transformVertex(v Vertex) TransformedVertex {
	tv := TransformedVertex{Vertex: v}
	tv.ViewProjIndex = dirtyIndex(&s.Matrix.CurViewProjIndex, &s.Matrix.ProjectionChanged)
	tv.TransformIndex = dirtyIndex(&s.Matrix.CurTransformIndex, &s.Matrix.ModelViewProjChanged)
	tv.FogIndex = dirtyIndex(&s.fogIndexCounter, &s.FogChanged)
	tv.LookAtIndex = s.lookAtEncoded()

	if s.GeometryMode&GeomLighting != 0 {
		tv.LightIndex = dirtyIndex(&s.lightIndexCounter, &s.LightsChanged)
		tv.LightCount = uint32(s.LightCount)
	}

	mvp := s.Matrix.ModelViewProj
	tx, ty, tz, tw := mvp.Vec4(float32(v.X), float32(v.Y), float32(v.Z), 1)
	tv.TX, tv.TY, tv.TZ, tv.TW = tx, ty, tz, tw

	if tw != 0 {
		tv.SX = (tx/tw)*s.Viewport.ScaleX + s.Viewport.TranslateX
		tv.SY = (ty/-tw)*s.Viewport.ScaleY + s.Viewport.TranslateY
		tv.SZ = (tz/tw)*s.Viewport.ScaleZ + s.Viewport.TranslateZ
	}
	return tv
}

// lookAtEncoded packs the lookat state the way setVertex's per-vertex
// lookat index is encoded: bit 0 enabled, bit 1 linear texgen, the rest the
// block index.
func (s *State) lookAtEncoded() uint32 {
	var bits uint32
	if s.GeometryMode&GeomTextureGen != 0 {
		bits |= 1
	}
	if s.GeometryMode&GeomTextureGenLinear != 0 {
		bits |= 2
	}
	idx := dirtyIndex(&s.lookAtIndexCounter, &s.LookAtChanged)
	return bits | (idx << 2)
}

// ModifyVertex patches one attribute of an already-loaded vertex. If that
// slot has already been referenced by a triangle, the cache entry is left
// untouched and the modified copy is returned for the caller to append as
// a new columnar entry (clone-on-write); otherwise the slot is mutated in
// place and needsClone is false.
func (s *State) ModifyVertex(slot int, attr VertexAttr, value uint32) (tv TransformedVertex, needsClone bool) {
	cur, loaded := s.Cache.Get(slot)
	if !loaded {
		return TransformedVertex{}, false
	}
	modified := cur
	switch attr {
	case AttrColor:
		modified.ColorOrNormal = [4]uint8{byte(value >> 24), byte(value >> 16), byte(value >> 8), byte(value)}
	case AttrTexCoord:
		modified.S = int16(value >> 16)
		modified.T = int16(value)
	case AttrScreenXY:
		modified.SX = float32(int16(value >> 16))
		modified.SY = float32(int16(value))
	case AttrScreenZ:
		modified.SZ = float32(int16(value))
	}

	if s.Cache.IsReferenced(slot) {
		return modified, true
	}
	s.Cache.Set(slot, modified)
	return modified, false
}

// VertexAttr selects which field of a cached vertex modifyVertex patches.
type VertexAttr uint8

const (
	AttrColor VertexAttr = iota
	AttrTexCoord
	AttrScreenXY
	AttrScreenZ
)

// TriResult is the resolved outcome of a drawIndexedTri submission.
type TriResult struct {
	Rejected bool
	// A, B, C are the (possibly front-cull-swapped) cache slot indices.
	A, B, C int
	Rect    fixed.Rect
}

// DrawIndexedTri executes drawIndexedTri(a, b, c): applies the geometry
// mode's culling rules, computes the screen-space AABB of the three cached
// vertices intersected with scissor, and reports whether the triangle
// survives.
func (s *State) DrawIndexedTri(a, b, c int, scissor fixed.Rect) TriResult {
	if s.GeometryMode.CullBoth() {
		return TriResult{Rejected: true}
	}
	if s.GeometryMode.CullFrontOnly() {
		a, c = c, a
	}

	va, _ := s.Cache.Get(a)
	vb, _ := s.Cache.Get(b)
	vc, _ := s.Cache.Get(c)

	if s.GeometryMode.CullingEnabled() && isBackface(va, vb, vc) {
		return TriResult{Rejected: true}
	}

	s.Cache.MarkReferenced(a)
	s.Cache.MarkReferenced(b)
	s.Cache.MarkReferenced(c)

	aabb := triAABB(va, vb, vc)
	rect := aabb.Intersection(scissor)
	return TriResult{A: a, B: b, C: c, Rect: rect}
}

func isBackface(a, b, c TransformedVertex) bool {
	ax, ay := a.SX, a.SY
	bx, by := b.SX, b.SY
	cx, cy := c.SX, c.SY
	cross := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	return cross <= 0
}

func triAABB(a, b, c TransformedVertex) fixed.Rect {
	minX := minF(a.SX, minF(b.SX, c.SX))
	maxX := maxF(a.SX, maxF(b.SX, c.SX))
	minY := minF(a.SY, minF(b.SY, c.SY))
	maxY := maxF(a.SY, maxF(b.SY, c.SY))
	return fixed.Rect{
		ULX: int32(minX * fixed.Subpixel),
		ULY: int32(minY * fixed.Subpixel),
		LRX: int32(maxX * fixed.Subpixel),
		LRY: int32(maxY * fixed.Subpixel),
	}
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// BranchZ reads the screen-space z of the vertex at vtxIndex and reports
// whether it is below zValue (taking a DL branch), or unconditionally true
// if the extended force-branch override is armed.
func (s *State) BranchZ(vtxIndex int, zValue float32) bool {
	if s.ForceBranch {
		return true
	}
	v, ok := s.Cache.Get(vtxIndex)
	if !ok {
		return false
	}
	return v.SZ < zValue
}

// BranchW reads the clip-space w of the vertex at vtxIndex and reports
// whether it is below wValue, or unconditionally true under force-branch.
func (s *State) BranchW(vtxIndex int, wValue float32) bool {
	if s.ForceBranch {
		return true
	}
	v, ok := s.Cache.Get(vtxIndex)
	if !ok {
		return false
	}
	return v.TW < wValue
}

// MatrixID executes the rigid-body matrixId command: pushes a
// TransformGroup on the matrix-id stack, or replaces the current top when
// push is false.
func (s *State) MatrixID(group TransformGroup, push bool) {
	if !push && s.Matrix.MatrixIDStack.Size() > 0 {
		s.Matrix.MatrixIDStack.Pop(1)
	}
	s.Matrix.MatrixIDStack.Push(group)
}

// PopMatrixID pops up to count entries off the matrix-id stack.
func (s *State) PopMatrixID(count int) {
	s.Matrix.MatrixIDStack.Pop(count)
}
