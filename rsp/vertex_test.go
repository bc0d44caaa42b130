package rsp

import (
	"testing"

	"github.com/gogpu/n64hle/rdram"
)

func TestDecodeVertexFieldOrder(t *testing.T) {
	mem := rdram.New(0x100)
	mem.WriteU32(0, 0x00010002)
	mem.WriteU32(4, 0x00030004)
	mem.WriteU32(8, 0x00050006)
	mem.WriteU32(12, 0x11223344)

	// Each halfword read applies the addr^2 swap correction, so within a
	// 4-byte word the two halfwords land reversed from their RDRAM write
	// order.
	v := DecodeVertex(mem, 0)
	if v.Y != 2 || v.X != 1 || v.Flag != 4 || v.Z != 3 || v.T != 6 || v.S != 5 {
		t.Fatalf("unexpected vertex: %+v", v)
	}
	if v.ColorOrNormal != [4]uint8{0x11, 0x22, 0x33, 0x44} {
		t.Fatalf("unexpected color/normal: %v", v.ColorOrNormal)
	}
}

func TestVertexCacheLoadAndGet(t *testing.T) {
	c := NewVertexCache()
	if _, ok := c.Get(0); ok {
		t.Fatal("expected empty cache slot to report not loaded")
	}
	c.Load(0, TransformedVertex{Vertex: Vertex{X: 5}}, -1)
	v, ok := c.Get(0)
	if !ok || v.X != 5 {
		t.Fatalf("expected loaded vertex, got %+v ok=%v", v, ok)
	}
}

func TestVertexCacheReferencedResetsOnReload(t *testing.T) {
	c := NewVertexCache()
	c.Load(3, TransformedVertex{}, -1)
	c.MarkReferenced(3)
	if !c.IsReferenced(3) {
		t.Fatal("expected slot marked referenced")
	}
	c.Load(3, TransformedVertex{}, -1)
	if c.IsReferenced(3) {
		t.Fatal("expected reload to clear referenced flag")
	}
}

func TestVertexCacheOutOfRangeIsSafe(t *testing.T) {
	c := NewVertexCache()
	c.Load(-1, TransformedVertex{}, -1)
	c.Load(MaxVertices, TransformedVertex{}, -1)
	if _, ok := c.Get(-1); ok {
		t.Fatal("expected out-of-range get to report not loaded")
	}
}
