package rsp

import (
	"testing"

	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdram"
)

func TestSetVertexTransformsWithIdentity(t *testing.T) {
	mem := rdram.New(0x100)
	// word0 packs (X<<16)|Y, word1 packs (Z<<16)|Flag, word2 packs (S<<16)|T,
	// per the swap mapping established in TestDecodeVertexFieldOrder.
	mem.WriteU32(0, (10<<16)|20)
	mem.WriteU32(4, 0)
	mem.WriteU32(8, 0)
	mem.WriteU32(12, 0)

	s := New()
	s.SetViewport(Viewport{ScaleX: 1, ScaleY: 1, ScaleZ: 1})
	out := s.SetVertex(mem, 0, 1, 0)
	if len(out) != 1 {
		t.Fatalf("expected 1 transformed vertex, got %d", len(out))
	}
	v := out[0]
	if v.SX != 10 || v.SY != -20 {
		t.Fatalf("unexpected screen position: sx=%v sy=%v", v.SX, v.SY)
	}
	cached, ok := s.Cache.Get(0)
	if !ok || cached.SX != 10 {
		t.Fatalf("expected vertex loaded into cache slot 0, got %+v ok=%v", cached, ok)
	}
}

func TestModifyVertexInPlaceWhenNotReferenced(t *testing.T) {
	s := New()
	s.Cache.Load(0, TransformedVertex{}, -1)
	_, needsClone := s.ModifyVertex(0, AttrScreenXY, (uint32(uint16(int16(5)))<<16)|uint32(uint16(int16(6))))
	if needsClone {
		t.Fatal("expected in-place modification when slot not referenced")
	}
	got, _ := s.Cache.Get(0)
	if got.SX != 5 || got.SY != 6 {
		t.Fatalf("unexpected in-place modified vertex: %+v", got)
	}
}

func TestModifyVertexClonesWhenReferenced(t *testing.T) {
	s := New()
	s.Cache.Load(0, TransformedVertex{}, -1)
	s.Cache.MarkReferenced(0)
	modified, needsClone := s.ModifyVertex(0, AttrScreenXY, (uint32(uint16(int16(5)))<<16)|uint32(uint16(int16(6))))
	if !needsClone {
		t.Fatal("expected clone-on-write when slot already referenced")
	}
	if modified.SX != 5 || modified.SY != 6 {
		t.Fatalf("unexpected cloned vertex: %+v", modified)
	}
	unchanged, _ := s.Cache.Get(0)
	if unchanged.SX != 0 || unchanged.SY != 0 {
		t.Fatal("expected original cache entry left untouched")
	}
}

func loadTri(s *State, ax, ay, bx, by, cx, cy float32) {
	s.Cache.Load(0, TransformedVertex{SX: ax, SY: ay}, -1)
	s.Cache.Load(1, TransformedVertex{SX: bx, SY: by}, -1)
	s.Cache.Load(2, TransformedVertex{SX: cx, SY: cy}, -1)
}

func TestDrawIndexedTriCullBothRejects(t *testing.T) {
	s := New()
	s.SetGeometryModeBits(GeomCullFront | GeomCullBack)
	loadTri(s, 0, 0, 10, 0, 0, 10)
	res := s.DrawIndexedTri(0, 1, 2, fixed.FromPixels(0, 0, 100, 100))
	if !res.Rejected {
		t.Fatal("expected triangle rejected with both cull bits set")
	}
}

func TestDrawIndexedTriFrontCullSwapsVertices(t *testing.T) {
	s := New()
	s.SetGeometryModeBits(GeomCullFront)
	// As given, the winding has cross product -100 (back-facing by the
	// cross <= 0 convention here); front-cull swaps a/c, which flips the
	// cross product to +100, so the swapped triangle passes the backface
	// check.
	loadTri(s, 0, 0, 0, 10, 10, 0)
	res := s.DrawIndexedTri(0, 1, 2, fixed.FromPixels(0, 0, 100, 100))
	if res.Rejected {
		t.Fatal("expected triangle to survive front-cull-only mode")
	}
	if res.A != 2 || res.C != 0 {
		t.Fatalf("expected a/c swapped, got a=%d c=%d", res.A, res.C)
	}
}

func TestDrawIndexedTriBackfaceRejected(t *testing.T) {
	s := New()
	s.SetGeometryModeBits(GeomCullBack)
	// Winding with cross product -100 -> cross <= 0 -> rejected as backface.
	loadTri(s, 0, 0, 0, 10, 10, 0)
	res := s.DrawIndexedTri(0, 1, 2, fixed.FromPixels(0, 0, 100, 100))
	if !res.Rejected {
		t.Fatal("expected backface triangle rejected when culling enabled")
	}
}

func TestDrawIndexedTriAABBIntersectsScissor(t *testing.T) {
	s := New()
	loadTri(s, 0, 0, 0, 10, 10, 0)
	scissor := fixed.FromPixels(2, 2, 5, 5)
	res := s.DrawIndexedTri(0, 1, 2, scissor)
	if res.Rejected {
		t.Fatal("expected triangle to survive with no culling")
	}
	if res.Rect != scissor {
		t.Fatalf("expected rect clipped to scissor, got %+v", res.Rect)
	}
	if !s.Cache.IsReferenced(0) || !s.Cache.IsReferenced(1) || !s.Cache.IsReferenced(2) {
		t.Fatal("expected all three vertices marked referenced")
	}
}

func TestBranchZHonorsForceBranch(t *testing.T) {
	s := New()
	s.Cache.Load(0, TransformedVertex{SZ: 100}, -1)
	if s.BranchZ(0, 0) {
		t.Fatal("expected no branch: cached z is above threshold")
	}
	s.ForceBranchSet(true)
	if !s.BranchZ(0, 0) {
		t.Fatal("expected force branch to always take the branch")
	}
}

func TestBranchWHonorsForceBranch(t *testing.T) {
	s := New()
	s.Cache.Load(0, TransformedVertex{TW: 5}, -1)
	if s.BranchW(0, 0) {
		t.Fatal("expected no branch: cached w is above threshold")
	}
	s.ForceBranchSet(true)
	if !s.BranchW(0, 0) {
		t.Fatal("expected force branch to always take the branch")
	}
}

func TestMatrixIDPushAndReplace(t *testing.T) {
	s := New()
	s.MatrixID(TransformGroup{ID: 1}, true)
	s.MatrixID(TransformGroup{ID: 2}, true)
	if s.Matrix.MatrixIDStack.Size() != 2 {
		t.Fatalf("expected size 2 after two pushes, got %d", s.Matrix.MatrixIDStack.Size())
	}
	s.MatrixID(TransformGroup{ID: 3}, false)
	if s.Matrix.MatrixIDStack.Size() != 2 {
		t.Fatalf("expected replace to keep size 2, got %d", s.Matrix.MatrixIDStack.Size())
	}
	top, _ := s.Matrix.MatrixIDStack.Top()
	if top.ID != 3 {
		t.Fatalf("expected top replaced with id 3, got %d", top.ID)
	}
}

func TestPopMatrixIDDelegatesToStack(t *testing.T) {
	s := New()
	s.MatrixID(TransformGroup{ID: 1}, true)
	s.MatrixID(TransformGroup{ID: 2}, true)
	s.PopMatrixID(5)
	if s.Matrix.MatrixIDStack.Size() != 1 {
		t.Fatalf("expected floor at size 1, got %d", s.Matrix.MatrixIDStack.Size())
	}
}

func BenchmarkSetVertex(b *testing.B) {
	mem := rdram.New(0x200)
	mem.WriteU32(0, (10<<16)|20)
	mem.WriteU32(4, 0)
	mem.WriteU32(8, 0)
	mem.WriteU32(12, 0)

	s := New()
	s.SetViewport(Viewport{ScaleX: 1, ScaleY: 1, ScaleZ: 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SetVertex(mem, 0, 1, 0)
	}
}
