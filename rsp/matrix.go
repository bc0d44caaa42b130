package rsp

import (
	math "github.com/chewxy/math32"

	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdram"
)

// ModelMatrixStackDepth is the depth of the modelview matrix stack.
const ModelMatrixStackDepth = 32

// MatrixParam is the bitfield of the matrix() command's params byte.
type MatrixParam uint8

const (
	MatrixPush MatrixParam = 1 << iota
	MatrixLoad
	MatrixProjection
)

// matrixStack holds the modelview stack plus the matching segmented and
// physical source addresses, mirroring modelMatrixSegmentedAddressStack /
// modelMatrixPhysicalAddressStack from the original implementation (used to
// detect redundant loads of an address already on top of the stack).
type matrixStack struct {
	entries     [ModelMatrixStackDepth]Mat4
	segAddr     [ModelMatrixStackDepth]uint32
	physAddr    [ModelMatrixStackDepth]uint32
	size        int
}

func newMatrixStack() *matrixStack {
	s := &matrixStack{}
	s.entries[0] = IdentityMat4()
	s.size = 1
	return s
}

func (s *matrixStack) top() Mat4 { return s.entries[s.size-1] }

func (s *matrixStack) setTop(m Mat4, segAddr, physAddr uint32) {
	s.entries[s.size-1] = m
	s.segAddr[s.size-1] = segAddr
	s.physAddr[s.size-1] = physAddr
}

// push duplicates the top entry, growing the stack up to its fixed depth.
func (s *matrixStack) push() {
	if s.size < ModelMatrixStackDepth {
		s.entries[s.size] = s.entries[s.size-1]
		s.segAddr[s.size] = s.segAddr[s.size-1]
		s.physAddr[s.size] = s.physAddr[s.size-1]
		s.size++
	}
}

// pop removes up to count entries, never below one (spec.md §4.2).
func (s *matrixStack) pop(count int) {
	for ; count > 0 && s.size > 1; count-- {
		s.size--
	}
}

// MatrixState holds every piece of matrix-related RSP state: the modelview
// stack, the derived view/projection/viewProj/invViewProj/mvp matrices, and
// the dirty flags spec.md §4.2 describes.
type MatrixState struct {
	model *matrixStack

	View, Proj, ViewProj, InvViewProj, ModelViewProj Mat4

	ProjectionChanged   bool
	ProjectionInversed  bool
	ModelViewProjChanged bool
	ModelViewProjInserted bool

	CurViewProjIndex  uint32
	CurTransformIndex uint32

	MatrixIDStack      MatrixIDStack
	ViewProjMatrixID   TransformGroup
}

// NewMatrixState returns a freshly reset matrix state: an identity on the
// modelview stack and identity view/projection matrices.
func NewMatrixState() *MatrixState {
	return &MatrixState{
		model:       newMatrixStack(),
		View:        IdentityMat4(),
		Proj:        IdentityMat4(),
		ViewProj:    IdentityMat4(),
		InvViewProj: IdentityMat4(),
		ModelViewProj: IdentityMat4(),
	}
}

// ModelTop returns the matrix currently on top of the modelview stack.
func (m *MatrixState) ModelTop() Mat4 { return m.model.top() }

// ModelDepth returns the number of entries on the modelview stack.
func (m *MatrixState) ModelDepth() int { return m.model.size }

// Matrix executes a matrix() command: decode the 64-byte fixed-point
// matrix at the segmented address segAddr (resolved here through
// FromSegmentedDMA), then load or
// multiply it into the modelview or projection matrix per params,
// optionally pushing the modelview stack first.
//
// Loading a combined view·projection matrix is detected the way
// isMatrixViewProj does (original: rt64_math.cpp's isMatrixViewProj): if
// the bottom-right element is neither ~0 nor ~1, the matrix already
// contains a perspective divide and is decomposed into separate view and
// projection matrices (matrixDecomposeViewProj, rt64_math.cpp:44-72) so
// the two halves can later be interpolated independently; otherwise the
// loaded matrix is the projection outright and the view is reset to
// identity.
func (m *MatrixState) Matrix(mem *rdram.Memory, segAddr uint32, params MatrixParam) {
	physAddr := mem.FromSegmentedDMA(segAddr)
	raw := mem.Raw(physAddr, 64)
	if len(raw) < 64 {
		return
	}
	decoded := FromFixed(fixed.ParseMatrix(raw).ToFloat4x4())

	isProjection := params&MatrixProjection != 0
	isLoad := params&MatrixLoad != 0
	isPush := params&MatrixPush != 0

	if !isProjection && isPush {
		m.model.push()
	}

	if isProjection {
		if isLoad {
			m.ViewProj = decoded
			if isMatrixViewProj(decoded) {
				m.View, m.Proj = decomposeViewProj(decoded)
			} else {
				m.Proj = decoded
				m.View = IdentityMat4()
			}
		} else {
			m.ViewProj = MulMat4(m.ViewProj, decoded)
			if isMatrixAffine(decoded) && decoded != IdentityMat4() {
				m.View = MulMat4(m.View, decoded)
			} else {
				m.Proj = MulMat4(m.Proj, decoded)
			}
		}
		m.ProjectionChanged = true
		m.ProjectionInversed = false
		return
	}

	if isLoad {
		m.model.setTop(decoded, segAddr, physAddr)
	} else {
		m.model.setTop(MulMat4(m.model.top(), decoded), segAddr, physAddr)
	}
	m.ModelViewProjChanged = true
	m.ModelViewProjInserted = false
}

// isMatrixViewProj reports whether m's bottom-right element is neither ~0
// nor ~1, meaning it already contains a perspective divide and should be
// decomposed rather than treated as a bare projection (original:
// rt64_math.cpp's isMatrixViewProj).
func isMatrixViewProj(m Mat4) bool {
	const eps = 1e-6
	return fabs(m[3][3]) >= eps && fabs(1.0-m[3][3]) >= eps
}

// isMatrixAffine reports whether m has no perspective terms (original:
// rt64_math.cpp's isMatrixAffine) — the test Matrix uses to decide whether
// a multiplied-in matrix belongs to the view half or the projection half.
func isMatrixAffine(m Mat4) bool {
	return m[0][3] == 0 && m[1][3] == 0 && m[2][3] == 0 && m[3][3] == 1
}

func fabs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// decomposeViewProj splits a combined view·projection matrix vp into a
// view matrix and a projection matrix such that MulMat4(view, proj)
// reproduces vp, mirroring matrixDecomposeViewProj (original:
// rt64_math.cpp:44-72). It assumes a standard perspective projection (a
// fixed -1/0 in the bottom-right 2x2 block) and pulls the translation
// lanes into the view matrix, leaving a diagonal scale-only projection. If
// the inputs produce a degenerate (NaN) result, view falls back to
// identity and proj to vp itself, exactly as the original does.
func decomposeViewProj(vp Mat4) (view, proj Mat4) {
	view = IdentityMat4()
	proj = IdentityMat4()

	proj[2][3] = -1.0
	proj[3][3] = 0.0
	view[0][2] = -vp[0][3]
	view[1][2] = -vp[1][3]
	view[2][2] = -vp[2][3]
	view[3][2] = -vp[3][3]

	proj[2][2] = vp[0][2] / view[0][2]
	proj[3][2] = vp[3][2] - proj[2][2]*view[3][2]

	proj[0][0] = math.Sqrt(vp[0][0]*vp[0][0] + vp[1][0]*vp[1][0] + vp[2][0]*vp[2][0])
	proj[1][1] = math.Sqrt(vp[0][1]*vp[0][1] + vp[1][1]*vp[1][1] + vp[2][1]*vp[2][1])

	view[0][0] = vp[0][0] / proj[0][0]
	view[1][0] = vp[1][0] / proj[0][0]
	view[2][0] = vp[2][0] / proj[0][0]
	view[3][0] = vp[3][0] / proj[0][0]

	view[0][1] = vp[0][1] / proj[1][1]
	view[1][1] = vp[1][1] / proj[1][1]
	view[2][1] = vp[2][1] / proj[1][1]
	view[3][1] = vp[3][1] / proj[1][1]

	if mat4HasNaN(view) || mat4HasNaN(proj) {
		view = IdentityMat4()
		proj = vp
	}
	return view, proj
}

func mat4HasNaN(m Mat4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.IsNaN(m[i][j]) {
				return true
			}
		}
	}
	return false
}

// PopMatrix pops up to count entries off the modelview stack, never
// leaving it empty.
func (m *MatrixState) PopMatrix(count int) {
	m.model.pop(count)
	m.ModelViewProjChanged = true
}

// Sub-region boundaries insertMatrix dispatches addresses against, mirroring
// ModelAddress/ViewProjAddress/ModelViewProjAddress from the original
// implementation (rt64_rsp.cpp:225-257): three consecutive 64-byte matrix
// slots (32 bytes integer half, 32 bytes fractional half each).
const (
	matrixRegionSize     = 0x40
	fractionalRegionSize = matrixRegionSize / 2
	modelRegionAddr      = 0x0
	viewProjRegionAddr   = modelRegionAddr + matrixRegionSize
	mvpRegionAddr        = viewProjRegionAddr + matrixRegionSize
)

// InsertMatrix patches two consecutive 16-bit lanes of the modelview,
// view·projection or model·view·projection matrix's integer or fractional
// half, selected by addr's sub-region per spec.md §4.2's insertMatrix
// contract (original: rt64_rsp.cpp's RSP::insertMatrix). It marks the MVP
// as "inserted" rather than freshly derived, the N64 idiom used for
// billboard rotations, when the targeted region is the MVP itself; a
// view·projection target instead dirties the projection so a later vertex
// load recomputes its dependents.
//
// addr is interpreted as a byte offset into the flattened 0xC0-byte
// three-matrix region described above; bit 5 (0x20) of the offset within
// a region selects the fractional half, and the remaining bits select the
// row and the pair of logical columns (0-1 or 2-3) whose lanes value's high
// and low halves replace. Unaligned
// addresses and addresses past the end of the MVP region are rejected with
// no effect, per spec.md §9's open-question resolution and the original's
// own out-of-bounds assertion.
func (m *MatrixState) InsertMatrix(addr uint32, value uint32) {
	if addr&0x3 != 0 {
		return
	}

	dstAddr := addr & 0xFFFF
	if dstAddr >= mvpRegionAddr+matrixRegionSize {
		return
	}

	var target Mat4
	var relAddr uint32
	isModel := false
	switch {
	case dstAddr >= mvpRegionAddr:
		target = m.ModelViewProj
		relAddr = dstAddr - mvpRegionAddr
	case dstAddr >= viewProjRegionAddr:
		target = m.ViewProj
		relAddr = dstAddr - viewProjRegionAddr
	default:
		target = m.model.top()
		relAddr = dstAddr - modelRegionAddr
		isModel = true
	}

	frac := relAddr >= fractionalRegionSize
	if frac {
		relAddr -= fractionalRegionSize
	}
	index := relAddr / 2
	row := int(index / 4)
	col := int(index % 4)
	if row > 3 || col > 3 {
		return
	}

	// The high half patches logical column col and the low half col+1;
	// fixed.Matrix stores logical column j in storage column j^1.
	hi := uint16(value >> 16)
	lo := uint16(value)
	mat := fixed.FromFloat4x4([4][4]float32(target))
	if frac {
		mat.Frac[row][col+1] = hi
		mat.Frac[row][col] = lo
	} else {
		mat.Int[row][col+1] = int16(hi)
		mat.Int[row][col] = int16(lo)
	}
	target = FromFixed(mat.ToFloat4x4())

	switch {
	case dstAddr >= mvpRegionAddr:
		m.ModelViewProj = target
		m.ModelViewProjInserted = true
	case dstAddr >= viewProjRegionAddr:
		m.ViewProj = target
		m.ProjectionChanged = true
		m.ProjectionInversed = false
	case isModel:
		m.model.setTop(target, m.model.segAddr[m.model.size-1], m.model.physAddr[m.model.size-1])
	}
}

// ForceMatrix overwrites the model·view·projection matrix directly from the
// 64-byte fixed-point matrix at the segmented address segAddr (resolved
// here through FromSegmentedDMA), bypassing the normal
// view/projection/model composition.
func (m *MatrixState) ForceMatrix(mem *rdram.Memory, segAddr uint32) {
	physAddr := mem.FromSegmentedDMA(segAddr)
	raw := mem.Raw(physAddr, 64)
	if len(raw) < 64 {
		return
	}
	m.ModelViewProj = FromFixed(fixed.ParseMatrix(raw).ToFloat4x4())
	m.ModelViewProjChanged = false
	m.ModelViewProjInserted = false
}

// ComputeModelViewProj recomputes InvViewProj (lazily, only once per
// ViewProj change — ProjectionInversed guards that cache, mirroring
// computeModelViewProj/the projectionMatrixInversed cache in the original)
// and ModelViewProj from the current view·projection and modelview
// matrices, clearing the changed flags. A projection change advances
// CurViewProjIndex and a modelview change advances CurTransformIndex, so
// the vertices loaded next reference new pool entries. Called lazily, the
// next time a vertex load actually needs an up-to-date matrix (spec.md
// §4.2's dirty-flushed-at-vertex-time rule). ViewProj itself is not
// recomputed here: Matrix/InsertMatrix/ForceMatrix already keep it
// authoritative.
func (m *MatrixState) ComputeModelViewProj() {
	projChanged := m.ProjectionChanged
	if projChanged {
		m.CurViewProjIndex++
		m.ProjectionChanged = false
	}
	if !m.ProjectionInversed {
		m.InvViewProj = m.ViewProj.Inverse()
		m.ProjectionInversed = true
	}
	if m.ModelViewProjChanged {
		m.CurTransformIndex++
	}
	if m.ModelViewProjChanged || projChanged {
		m.ModelViewProj = MulMat4(m.ViewProj, m.model.top())
		m.ModelViewProjChanged = false
	}
}
