package interp

import (
	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/gbi"
	"github.com/gogpu/n64hle/rsp"
)

// opVtx executes setVertex(addr, count, dstIndex): decode, transform and
// load count vertices into the cache, appending each to the workload's
// columnar vertex stream (spec.md §4.2).
func (i *Interpreter) opVtx(cmd gbi.Command) {
	count := int(u8(cmd.W0, 16))
	dst := int(cmd.W0 & 0x0FFF)
	addr := i.Mem.FromSegmentedDMA(cmd.W1)

	if count <= 0 || dst+count > rsp.MaxVertices {
		i.Build.Warn("MalformedVertexRange", -1, -1, -1, "setVertex count/dstIndex out of range")
		return
	}
	tvs := i.RSP.SetVertex(i.Mem, addr, count, dst)
	for n, tv := range tvs {
		slot := dst + n
		idx := i.Build.AppendVertex(i.RSP, tv)
		i.RSP.Cache.SetWorkloadIndex(slot, idx)
	}
}

// opVtxPD executes the supplemented setVertexPD path.
func (i *Interpreter) opVtxPD(cmd gbi.Command) {
	count := int(u8(cmd.W0, 16))
	dst := int(cmd.W0 & 0x0FFF)
	addr := i.Mem.FromSegmentedDMA(cmd.W1)

	if count <= 0 || dst+count > rsp.MaxVertices {
		i.Build.Warn("MalformedVertexRange", -1, -1, -1, "setVertexPD count/dstIndex out of range")
		return
	}
	tvs := i.RSP.SetVertexPD(i.Mem, addr, count, dst)
	for n, tv := range tvs {
		slot := dst + n
		idx := i.Build.AppendVertex(i.RSP, tv)
		i.RSP.Cache.SetWorkloadIndex(slot, idx)
	}
}

// opSetVertexColorPD resolves the palette address VertexPD colors would be
// looked up through but does not store it: opVtxPD carries each vertex's
// raw CI value in its color bytes instead, and palette resolution happens
// at present-time in the renderer, not during interpretation (texel
// lookups are a GPU concern per spec.md §1).
func (i *Interpreter) opSetVertexColorPD(cmd gbi.Command) {
	_ = i.Mem.FromSegmentedDMA(cmd.W1)
}

// opModifyVtx executes modifyVertex(slot, attr, value): patch an
// already-loaded vertex, cloning into a new columnar entry if a triangle
// has already referenced it (spec.md §4.2).
func (i *Interpreter) opModifyVtx(cmd gbi.Command) {
	attr := rsp.VertexAttr(u8(cmd.W0, 16))
	slot := int(cmd.W0 & 0xFFFF)
	value := cmd.W1

	tv, needsClone := i.RSP.ModifyVertex(slot, attr, value)
	if needsClone {
		idx := i.Build.AppendVertex(i.RSP, tv)
		i.RSP.Cache.SetWorkloadIndex(slot, idx)
		i.RSP.Cache.Set(slot, tv)
		return
	}
	idx := i.RSP.Cache.WorkloadIndex(slot)
	i.Build.UpdateVertex(idx, tv)
}

func (i *Interpreter) scissorRect() fixed.Rect {
	return i.RDP.Scissor.Current().Rect
}

// submitTri appends one surviving triangle's three cache-slot indices to
// the workload after mapping them to columnar vertex indices, merging the
// scissor-clipped screen AABB into the active FramebufferPair (spec.md
// §4.2's drawIndexedTri contract).
func (i *Interpreter) submitTri(a, b, c int) {
	i.flushOnDrawStateChange()
	i.ensureTriangleProjection()

	res := i.RSP.DrawIndexedTri(a, b, c, i.scissorRect())
	if res.Rejected {
		return
	}
	wa := i.RSP.Cache.WorkloadIndex(res.A)
	wb := i.RSP.Cache.WorkloadIndex(res.B)
	wc := i.RSP.Cache.WorkloadIndex(res.C)
	if wa < 0 || wb < 0 || wc < 0 {
		i.Build.Warn("MalformedVertexRange", -1, -1, -1, "triangle referenced an unloaded vertex slot")
		return
	}
	i.Build.AppendFace(wa, wb, wc, res.Rect)
}

// opTri1 executes one-triangle submission (a, b, c cache slot indices).
func (i *Interpreter) opTri1(cmd gbi.Command) {
	a, b, c := param3(cmd)
	i.submitTri(int(a), int(b), int(c))
}

// opTri2 executes a packed pair of triangle submissions, one per word.
func (i *Interpreter) opTri2(cmd gbi.Command) {
	a0, b0, c0 := param3(cmd)
	i.submitTri(int(a0), int(b0), int(c0))

	w1 := gbi.Command{W0: cmd.W1}
	a1, b1, c1 := param3(w1)
	i.submitTri(int(a1), int(b1), int(c1))
}

// opQuad executes a quad submission (a, b, c, d cache slot indices),
// expanding it into the two triangles (a,b,c) and (a,c,d).
func (i *Interpreter) opQuad(cmd gbi.Command) {
	a, b, c := param3(cmd)
	d := u8(cmd.W1, 24)
	i.submitTri(int(a), int(b), int(c))
	i.submitTri(int(a), int(c), int(d))
}

// opBranchZ executes branchZ(addr, vtxIndex, zValue): reads vtxIndex's
// screen-space Z and takes the branch (no-push jump) if below threshold,
// or unconditionally under the extended force-branch override.
func (i *Interpreter) opBranchZ(cmd gbi.Command) (next uint32, branch bool) {
	vtx := int(u8(cmd.W0, 16))
	zRaw := int16(cmd.W0 & 0xFFFF)
	target := i.Mem.FromSegmentedDMA(cmd.W1)
	if i.RSP.BranchZ(vtx, float32(zRaw)) {
		return target, true
	}
	return 0, false
}

// opBranchW is branchZ's clip-space-w counterpart.
func (i *Interpreter) opBranchW(cmd gbi.Command) (next uint32, branch bool) {
	vtx := int(u8(cmd.W0, 16))
	wRaw := int16(cmd.W0 & 0xFFFF)
	target := i.Mem.FromSegmentedDMA(cmd.W1)
	if i.RSP.BranchW(vtx, float32(wRaw)) {
		return target, true
	}
	return 0, false
}
