// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package workload

import (
	"github.com/gogpu/n64hle/coherency"
	"github.com/gogpu/n64hle/drawattr"
	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdp"
	"github.com/gogpu/n64hle/rsp"
)

// CommandWarning is one entry of the developer-mode warning stream spec.md
// §7 describes: a recoverable error kind plus enough indices for a
// debugger UI to jump to the offending call/load/tile.
type CommandWarning struct {
	Kind     string
	CallIdx  int
	LoadIdx  int
	TileIdx  int
	Detail   string
}

// Builder is the rolling DrawCall/Projection/FramebufferPair accumulator
// described in spec.md §4.5: it owns the in-progress DrawCall, the active
// Projection and FramebufferPair, and the workload-wide columnar data the
// interpreter appends vertices and faces to as it walks a display list.
type Builder struct {
	Data            DrawData
	Pairs           []FramebufferPair
	LoadOperations  []rdp.LoadOperation
	TileDescriptors []rdp.Tile
	Warnings        []CommandWarning
	DeveloperMode   bool

	pair *FramebufferPair
	proj *Projection
	call DrawCall
	dirty bool
}

// NewBuilder returns an empty Builder ready to accumulate one frame.
func NewBuilder() *Builder {
	b := &Builder{}
	b.call = newDrawCall()
	return b
}

// AppendVertex records one transformed vertex into the columnar soup,
// lazily growing whichever shared pool (view-proj, world, fog, light,
// lookat) the vertex's dirty-index advanced into, per spec.md §4.2's
// "flushed to the workload on the next vertex that actually uses it" rule.
// Returns the vertex's workload-wide index.
func (b *Builder) AppendVertex(s *rsp.State, tv rsp.TransformedVertex) int {
	d := &b.Data

	ensureMat4Pool(&d.ViewTransforms, int(tv.ViewProjIndex), func() rsp.Mat4 { return s.Matrix.View })
	ensureMat4Pool(&d.ProjTransforms, int(tv.ViewProjIndex), func() rsp.Mat4 { return s.Matrix.Proj })
	ensureMat4Pool(&d.ViewProjTransforms, int(tv.ViewProjIndex), func() rsp.Mat4 { return s.Matrix.ViewProj })
	ensureMat4Pool(&d.WorldTransforms, int(tv.TransformIndex), func() rsp.Mat4 { return s.Matrix.ModelTop() })
	ensureFogPool(&d.FogEntries, int(tv.FogIndex), func() rsp.Fog { return s.Fog })
	ensureLightPool(&d.LightGroups, int(tv.LightIndex), func() LightGroup {
		n := int(tv.LightCount)
		if n > len(s.Lights) {
			n = len(s.Lights)
		}
		g := LightGroup{Lights: make([]rsp.LightBlock, n)}
		copy(g.Lights, s.Lights[:n])
		return g
	})
	ensureLookAtPool(&d.LookAts, int(tv.LookAtIndex>>2), func() rsp.LookAt { return s.LookAt })

	idx := d.Len()
	d.PosX = append(d.PosX, tv.X)
	d.PosY = append(d.PosY, tv.Y)
	d.PosZ = append(d.PosZ, tv.Z)
	d.TexS = append(d.TexS, float32(tv.S)/32)
	d.TexT = append(d.TexT, float32(tv.T)/32)
	d.NormOrColor = append(d.NormOrColor, tv.ColorOrNormal)
	d.ViewProjIndex = append(d.ViewProjIndex, tv.ViewProjIndex)
	d.WorldIndex = append(d.WorldIndex, tv.TransformIndex)
	d.FogIndex = append(d.FogIndex, tv.FogIndex)
	d.LightIndex = append(d.LightIndex, tv.LightIndex)
	d.LightCount = append(d.LightCount, tv.LightCount)
	d.LookAtIndex = append(d.LookAtIndex, tv.LookAtIndex)
	d.TransformedX = append(d.TransformedX, tv.TX)
	d.TransformedY = append(d.TransformedY, tv.TY)
	d.TransformedZ = append(d.TransformedZ, tv.TZ)
	d.TransformedW = append(d.TransformedW, tv.TW)
	d.ScreenX = append(d.ScreenX, tv.SX)
	d.ScreenY = append(d.ScreenY, tv.SY)
	d.ScreenZ = append(d.ScreenZ, tv.SZ)
	return idx
}

// AppendFace records a surviving triangle's three workload vertex indices
// (already culling/clone-on-write resolved by rsp.State.DrawIndexedTri),
// widens the current call's matrix-index range, and merges its screen rect
// into the active FramebufferPair's accumulated draw-color rect.
func (b *Builder) AppendFace(a, vb, c int, screenRect fixed.Rect) {
	d := &b.Data
	d.Faces = append(d.Faces, uint32(a), uint32(vb), uint32(c))
	b.call.TriangleCount++
	b.call.widenMatrixRange(d.WorldIndex[a])
	b.call.widenMatrixRange(d.WorldIndex[vb])
	b.call.widenMatrixRange(d.WorldIndex[c])
	b.dirty = true
	b.MergeColorRect(screenRect)
	if b.call.OtherMode.ZCompare() || b.call.OtherMode.ZUpdate() {
		b.MergeDepthRect(screenRect)
	}
}

// AppendRawVertex appends one vertex directly to the raw-vertex stream used
// by rectangle and triangle-as-primitive projections (texRect's two-triangle
// quad, drawTris), returning its workload index.
func (b *Builder) AppendRawVertex(v rdp.TriVertex, viewProjIndex, viewportIndex uint32) int {
	d := &b.Data
	idx := d.Len()
	d.PosX = append(d.PosX, 0)
	d.PosY = append(d.PosY, 0)
	d.PosZ = append(d.PosZ, 0)
	d.TexS = append(d.TexS, v.S)
	d.TexT = append(d.TexT, v.T)
	d.NormOrColor = append(d.NormOrColor, v.Color)
	d.ViewProjIndex = append(d.ViewProjIndex, viewProjIndex)
	d.WorldIndex = append(d.WorldIndex, 0)
	d.FogIndex = append(d.FogIndex, 0)
	d.LightIndex = append(d.LightIndex, 0)
	d.LightCount = append(d.LightCount, 0)
	d.LookAtIndex = append(d.LookAtIndex, 0)
	d.TransformedX = append(d.TransformedX, v.X)
	d.TransformedY = append(d.TransformedY, v.Y)
	d.TransformedZ = append(d.TransformedZ, v.Z)
	d.TransformedW = append(d.TransformedW, 1)
	d.ScreenX = append(d.ScreenX, v.X)
	d.ScreenY = append(d.ScreenY, v.Y)
	d.ScreenZ = append(d.ScreenZ, v.Z)
	b.dirty = true
	return idx
}

// UpdateVertex overwrites the columnar entry at idx in place: the
// "mutate in place" half of rsp.State.ModifyVertex's clone-on-write
// contract, used when the slot being modified has not yet been referenced
// by a triangle, so no already-batched geometry depends on the old values.
// Out-of-range idx (an unloaded cache slot's sentinel -1) is a no-op.
func (b *Builder) UpdateVertex(idx int, tv rsp.TransformedVertex) {
	d := &b.Data
	if idx < 0 || idx >= d.Len() {
		return
	}
	d.PosX[idx], d.PosY[idx], d.PosZ[idx] = tv.X, tv.Y, tv.Z
	d.TexS[idx] = float32(tv.S) / 32
	d.TexT[idx] = float32(tv.T) / 32
	d.NormOrColor[idx] = tv.ColorOrNormal
	d.TransformedX[idx], d.TransformedY[idx], d.TransformedZ[idx], d.TransformedW[idx] = tv.TX, tv.TY, tv.TZ, tv.TW
	d.ScreenX[idx], d.ScreenY[idx], d.ScreenZ[idx] = tv.SX, tv.SY, tv.SZ
}

// EnsureViewportSlot grows the viewport pool to contain idx, filling any
// newly-created slots with current, and returns idx unchanged — the
// viewport-pool counterpart of AppendVertex's lazy matrix/fog/light pool
// growth, driven by the interpreter's own viewport dirty-index instead of a
// per-vertex one (spec.md §4.2, §3).
func (b *Builder) EnsureViewportSlot(idx uint32, current rsp.Viewport) uint32 {
	ensureViewportPool(&b.Data.Viewports, int(idx), func() rsp.Viewport { return current })
	return idx
}

// SyncRegisterState refreshes the in-progress DrawCall's register snapshot
// from the current RDP state and RSP geometry mode. Callers invoke this
// after CheckDrawState has flushed the call that used the OLD snapshot, so
// the next DrawCall starts from the state now in effect.
func (b *Builder) SyncRegisterState(s *rdp.State, geometryMode uint32) {
	b.call.Combine = s.Combine
	b.call.OtherMode = s.OtherMode
	b.call.GeometryMode = geometryMode
	b.call.Scissor = s.Scissor.Current().Rect
	b.call.FillColor = s.FillColor.Current()
	b.call.PrimColor = s.PrimColor.Current()
	b.call.PrimLODFrac, b.call.PrimLODMin = s.PrimLODFrac, s.PrimLODMin
	b.call.PrimDepthZ, b.call.PrimDepthDZ = s.PrimDepthZ, s.PrimDepthDZ
	b.call.EnvColor = s.EnvColor.Current()
	b.call.BlendColor = s.BlendColor.Current()
	b.call.FogColor = s.FogColor.Current()
	b.call.ConvertK = s.ConvertK
	b.call.KeyCenter = s.KeyCenter
	b.call.KeyScale = s.KeyScale
	b.call.Tiles = s.Tiles
}

// CheckDrawState implements spec.md §4.5's checkDrawState: if any draw
// attribute has changed since the last committed call, the in-progress
// call is flushed (using its old snapshot) and the template is refreshed
// from the current state before the dirty bits are cleared.
func (b *Builder) CheckDrawState(dirty *drawattr.Set, s *rdp.State, geometryMode uint32) {
	if !dirty.Any() {
		return
	}
	b.Flush()
	b.SyncRegisterState(s, geometryMode)
	dirty.Clear()
}

// SetExtendedDraw tags the in-progress call with the supplemented
// vertex-z-test marker (SPEC_FULL.md §4's extended-draw tag), marking the
// call dirty so it flushes as its own unit.
func (b *Builder) SetExtendedDraw(tag ExtendedDraw) {
	b.call.Extended = tag
	b.dirty = true
}

// SetRect installs a resolved rectangle draw (fillRect/texRect) on the
// in-progress call and marks it dirty so the next Flush commits it.
func (b *Builder) SetRect(rect RectDraw) {
	r := rect
	b.call.Rect = &r
	b.dirty = true
	b.MergeColorRect(rect.Rect)
	if b.call.OtherMode.ZCompare() || b.call.OtherMode.ZUpdate() {
		b.MergeDepthRect(rect.Rect)
	}
}

// EnsureProjection starts a new Projection of the given type/matrix/
// viewport binding if the active one does not already match, flushing and
// committing whatever projection was in progress first (spec.md §3: "a new
// one is created implicitly whenever the projection matrix, the viewport,
// or the projection type changes").
func (b *Builder) EnsureProjection(t ProjectionType, viewProjIndex, viewportIndex uint32) {
	if b.proj != nil && b.proj.Type == t && b.proj.ViewProjIndex == viewProjIndex && b.proj.ViewportIndex == viewportIndex {
		return
	}
	b.commitProjection()
	b.proj = &Projection{Type: t, ViewProjIndex: viewProjIndex, ViewportIndex: viewportIndex}
}

// Flush appends the in-progress DrawCall to the active Projection if it
// carries any geometry, then resets the call's geometry ranges while
// keeping its register-state snapshot (spec.md §4.5's flush()).
func (b *Builder) Flush() {
	if !b.dirty {
		return
	}
	if b.proj == nil {
		b.proj = &Projection{}
	}
	b.proj.Calls = append(b.proj.Calls, b.call)
	b.resetCall()
}

func (b *Builder) resetCall() {
	next := b.call
	next.Indices = VertexRange{Start: len(b.Data.Faces)}
	next.RawVertices = VertexRange{Start: b.Data.Len()}
	next.Rect = nil
	next.TriangleCount = 0
	next.MinWorldMatrix = ^uint32(0)
	next.MaxWorldMatrix = 0
	next.Extended = ExtendedDrawNone
	b.call = next
	b.dirty = false
}

func (b *Builder) commitProjection() {
	b.Flush()
	if b.proj == nil {
		return
	}
	b.ensurePair()
	b.pair.Projections = append(b.pair.Projections, *b.proj)
	b.proj = nil
}

func (b *Builder) ensurePair() {
	if b.pair == nil {
		b.pair = &FramebufferPair{DrawColorRect: fixed.NullRect(), DrawDepthRect: fixed.NullRect()}
	}
}

// ActivePairRects reports the color/depth rects accumulated by the
// in-progress FramebufferPair so far, for the interpreter to register with
// the coherency engine before closing the pair out. ok is false if no pair
// is active (nothing has drawn yet).
func (b *Builder) ActivePairRects() (color, depth fixed.Rect, ok bool) {
	if b.pair == nil {
		return fixed.NullRect(), fixed.NullRect(), false
	}
	return b.pair.DrawColorRect, b.pair.DrawDepthRect, true
}

// BeginFramebufferPair installs the color/depth image bindings the next
// FramebufferPair targets. Call this once after SubmitFramebufferPair has
// closed the previous pair out.
func (b *Builder) BeginFramebufferPair(color, depth rdp.ImageDescriptor) {
	b.ensurePair()
	b.pair.ColorImage = color
	b.pair.DepthImage = depth
}

// AppendStartOp / AppendEndOp queue a coherency.Operation to run before or
// after the active FramebufferPair's draws, per spec.md §4.4's "ordered
// lists of framebuffer operations" and §5's ordering guarantee
// (startFbOperations, then draws, then endFbOperations).
func (b *Builder) AppendStartOp(op coherency.Operation) {
	b.ensurePair()
	b.pair.StartOps = append(b.pair.StartOps, op)
}

func (b *Builder) AppendEndOp(op coherency.Operation) {
	b.ensurePair()
	b.pair.EndOps = append(b.pair.EndOps, op)
}

// MergeColorRect / MergeDepthRect widen the active FramebufferPair's
// accumulated draw rects (spec.md §4.2).
func (b *Builder) MergeColorRect(rect fixed.Rect) {
	b.ensurePair()
	b.pair.mergeColorRect(rect)
}

func (b *Builder) MergeDepthRect(rect fixed.Rect) {
	b.ensurePair()
	b.pair.mergeDepthRect(rect)
}

// SubmitFramebufferPair finalizes the active FramebufferPair: flushes the
// in-progress call and projection into it, stamps the flush reason, and
// appends it to the workload unless it carries zero draws (spec.md §5).
func (b *Builder) SubmitFramebufferPair(reason coherency.FlushReason) {
	b.commitProjection()
	if b.pair == nil {
		return
	}
	b.pair.Reason = reason
	if !b.pair.empty() {
		b.Pairs = append(b.Pairs, *b.pair)
	}
	b.pair = nil
}

// RecordLoadOperation appends a LoadOperation to the workload's load-op
// buffer (spec.md §3/§4.1's "deferred step, always" recording rule).
func (b *Builder) RecordLoadOperation(op rdp.LoadOperation) {
	b.LoadOperations = append(b.LoadOperations, op)
}

// InternTile records tile as one of the workload's unique tile descriptors
// if it has not already been seen, returning its index either way.
func (b *Builder) InternTile(tile rdp.Tile) int {
	for i, t := range b.TileDescriptors {
		if t == tile {
			return i
		}
	}
	b.TileDescriptors = append(b.TileDescriptors, tile)
	return len(b.TileDescriptors) - 1
}

// Warn appends a developer-mode CommandWarning if DeveloperMode is set,
// per spec.md §7.
func (b *Builder) Warn(kind string, callIdx, loadIdx, tileIdx int, detail string) {
	if !b.DeveloperMode {
		return
	}
	b.Warnings = append(b.Warnings, CommandWarning{Kind: kind, CallIdx: callIdx, LoadIdx: loadIdx, TileIdx: tileIdx, Detail: detail})
}

// Finish returns the immutable Workload assembled so far. Call only after
// SubmitFramebufferPair(FlushProcessDisplayListsEnd) has closed out the
// final pair.
func (b *Builder) Finish() *Workload {
	return &Workload{
		Pairs:           b.Pairs,
		Data:            b.Data,
		LoadOperations:  b.LoadOperations,
		TileDescriptors: b.TileDescriptors,
		Warnings:        b.Warnings,
	}
}
