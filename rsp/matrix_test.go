package rsp

import (
	"testing"

	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdram"
)

func writeMatrix(mem *rdram.Memory, addr uint32, m fixed.Matrix) {
	for i := 0; i < 4; i++ {
		for c := 0; c < 4; c++ {
			off := addr + uint32((i*4+c)*2)
			mem.WriteRaw(off, []byte{byte(uint16(m.Int[i][c]) >> 8), byte(uint16(m.Int[i][c]))})
		}
	}
	base := addr + 32
	for i := 0; i < 4; i++ {
		for c := 0; c < 4; c++ {
			off := base + uint32((i*4+c)*2)
			mem.WriteRaw(off, []byte{byte(m.Frac[i][c] >> 8), byte(m.Frac[i][c])})
		}
	}
}

func writeIdentityMatrix(mem *rdram.Memory, addr uint32) {
	writeMatrix(mem, addr, fixed.Identity())
}

func TestMatrixLoadModelviewReplacesTop(t *testing.T) {
	mem := rdram.New(0x1000)
	writeIdentityMatrix(mem, 0)
	ms := NewMatrixState()
	ms.Matrix(mem, 0, MatrixLoad)
	if ms.ModelTop() != IdentityMat4() {
		t.Fatalf("expected identity loaded, got %+v", ms.ModelTop())
	}
	if !ms.ModelViewProjChanged {
		t.Fatal("expected ModelViewProjChanged set")
	}
}

func TestMatrixPushGrowsStack(t *testing.T) {
	mem := rdram.New(0x1000)
	writeIdentityMatrix(mem, 0)
	ms := NewMatrixState()
	if ms.ModelDepth() != 1 {
		t.Fatalf("expected initial depth 1, got %d", ms.ModelDepth())
	}
	ms.Matrix(mem, 0, MatrixLoad|MatrixPush)
	if ms.ModelDepth() != 2 {
		t.Fatalf("expected depth 2 after push, got %d", ms.ModelDepth())
	}
}

func TestPopMatrixNeverGoesBelowOne(t *testing.T) {
	mem := rdram.New(0x1000)
	writeIdentityMatrix(mem, 0)
	ms := NewMatrixState()
	for i := 0; i < 34; i++ {
		ms.Matrix(mem, 0, MatrixLoad|MatrixPush)
	}
	if ms.ModelDepth() != ModelMatrixStackDepth {
		t.Fatalf("expected stack ceiling %d, got %d", ModelMatrixStackDepth, ms.ModelDepth())
	}
	ms.PopMatrix(40)
	if ms.ModelDepth() != 1 {
		t.Fatalf("expected depth clamped to 1, got %d", ms.ModelDepth())
	}
}

func TestForceMatrixOverwritesMVPDirectly(t *testing.T) {
	mem := rdram.New(0x1000)
	writeIdentityMatrix(mem, 0)
	ms := NewMatrixState()
	ms.ForceMatrix(mem, 0)
	if ms.ModelViewProj != IdentityMat4() {
		t.Fatalf("expected identity MVP, got %+v", ms.ModelViewProj)
	}
	if ms.ModelViewProjChanged || ms.ModelViewProjInserted {
		t.Fatal("expected force matrix to clear both flags")
	}
}

func TestInsertMatrixMarksInserted(t *testing.T) {
	mem := rdram.New(0x1000)
	writeIdentityMatrix(mem, 0)
	ms := NewMatrixState()
	ms.Matrix(mem, 0, MatrixLoad)
	ms.ModelViewProjInserted = false
	ms.InsertMatrix(mvpRegionAddr, 0x00010000)
	if !ms.ModelViewProjInserted {
		t.Fatal("expected InsertMatrix to mark MVP inserted")
	}
}

func TestInsertMatrixPatchesModelRegion(t *testing.T) {
	ms := NewMatrixState()
	ms.InsertMatrix(0x10, 0x00010002)
	got := ms.ModelTop()
	if got[2][0] != 1 || got[2][1] != 2 {
		t.Fatalf("expected model lane (2,0)=1 (2,1)=2, got %+v", got)
	}
	if ms.ModelViewProjInserted {
		t.Fatal("patching the model region should not mark MVP inserted")
	}
}

func TestInsertMatrixPatchesViewProjRegion(t *testing.T) {
	ms := NewMatrixState()
	ms.ProjectionChanged = false
	ms.InsertMatrix(viewProjRegionAddr, 0x00030004)
	if ms.ViewProj[0][0] != 3 || ms.ViewProj[0][1] != 4 {
		t.Fatalf("expected viewProj lane (0,0)=3 (0,1)=4, got %+v", ms.ViewProj)
	}
	if !ms.ProjectionChanged {
		t.Fatal("patching the view-projection region should dirty the projection")
	}
}

func TestInsertMatrixPatchesMVPRegion(t *testing.T) {
	ms := NewMatrixState()
	ms.InsertMatrix(mvpRegionAddr, 0x00050006)
	if ms.ModelViewProj[0][0] != 5 || ms.ModelViewProj[0][1] != 6 {
		t.Fatalf("expected mvp lane (0,0)=5 (0,1)=6, got %+v", ms.ModelViewProj)
	}
	if !ms.ModelViewProjInserted {
		t.Fatal("patching the MVP region should mark MVP inserted")
	}
}

func TestInsertMatrixRejectsUnalignedAddress(t *testing.T) {
	ms := NewMatrixState()
	before := ms.ModelTop()
	ms.InsertMatrix(1, 0xFFFFFFFF)
	if ms.ModelTop() != before {
		t.Fatal("expected unaligned InsertMatrix to leave state unchanged")
	}
}

func TestMatrixLoadCombinedViewProjDecomposes(t *testing.T) {
	mem := rdram.New(0x1000)
	combined := fixed.FromFloat4x4([4][4]float32{
		{2, 0, 1, -1},
		{0, 3, 0, 0},
		{0, 0, 1, -1},
		{0, 0, -1, 2},
	})
	writeMatrix(mem, 0, combined)

	ms := NewMatrixState()
	ms.Matrix(mem, 0, MatrixLoad|MatrixProjection)

	if ms.View == IdentityMat4() {
		t.Fatal("expected a combined view-projection load to decompose into a non-identity view")
	}
	if ms.Proj == IdentityMat4() {
		t.Fatal("expected a combined view-projection load to decompose into a non-identity projection")
	}
	recombined := MulMat4(ms.View, ms.Proj)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if diff := recombined[i][j] - ms.ViewProj[i][j]; diff > 1e-2 || diff < -1e-2 {
				t.Fatalf("view*proj does not reproduce viewProj at (%d,%d): %v vs %v", i, j, recombined[i][j], ms.ViewProj[i][j])
			}
		}
	}
}

func TestMatrixLoadPlainProjectionResetsView(t *testing.T) {
	mem := rdram.New(0x1000)
	writeIdentityMatrix(mem, 0)
	ms := NewMatrixState()
	ms.View = MulMat4(ms.View, IdentityMat4())
	ms.Matrix(mem, 0, MatrixLoad|MatrixProjection)
	if ms.View != IdentityMat4() {
		t.Fatalf("expected plain projection load to reset view to identity, got %+v", ms.View)
	}
	if ms.Proj != IdentityMat4() {
		t.Fatalf("expected plain projection load to set proj directly, got %+v", ms.Proj)
	}
}

func TestComputeModelViewProjClearsFlags(t *testing.T) {
	mem := rdram.New(0x1000)
	writeIdentityMatrix(mem, 0)
	ms := NewMatrixState()
	ms.Matrix(mem, 0, MatrixLoad|MatrixProjection)
	ms.Matrix(mem, 0, MatrixLoad)
	ms.ComputeModelViewProj()
	if ms.ProjectionChanged || ms.ModelViewProjChanged {
		t.Fatal("expected ComputeModelViewProj to clear dirty flags")
	}
	if ms.ModelViewProj != IdentityMat4() {
		t.Fatalf("expected identity MVP, got %+v", ms.ModelViewProj)
	}
}
