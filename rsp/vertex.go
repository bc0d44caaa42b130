package rsp

import "github.com/gogpu/n64hle/rdram"

// MaxVertices is the size of the RSP vertex cache (the F3DEX2 32-slot cache;
// some microcodes extend this, but 32 covers every command in spec.md §4.2).
const MaxVertices = 32

// Vertex is one 16-byte N64 vertex struct as loaded by setVertex: a position,
// a texture coordinate, and either an RGBA color or a signed normal packed
// into the same four bytes depending on whether lighting is enabled.
type Vertex struct {
	X, Y, Z int16
	Flag    uint16
	T, S    int16

	// ColorOrNormal holds either {r,g,b,a} (shading) or {nx,ny,nz,na} (the
	// normal, with na reused as an unlit alpha) depending on the geometry
	// mode's lighting bit at load time.
	ColorOrNormal [4]uint8
}

// DecodeVertex unpacks one 16-byte vertex struct from the already
// segment-resolved RDRAM address addr, matching the RSP::Vertex field
// order.
func DecodeVertex(mem *rdram.Memory, addr uint32) Vertex {
	var v Vertex
	v.Y = int16(mem.ReadU16(addr))
	v.X = int16(mem.ReadU16(addr + 2))
	v.Flag = mem.ReadU16(addr + 4)
	v.Z = int16(mem.ReadU16(addr + 6))
	v.T = int16(mem.ReadU16(addr + 8))
	v.S = int16(mem.ReadU16(addr + 10))
	raw := mem.Raw(addr+12, 4)
	if len(raw) == 4 {
		copy(v.ColorOrNormal[:], raw)
	}
	return v
}

// VertexPD is the reduced packed-color vertex format S2D commands load,
// carrying a packed CI/RGBA16 color index (ci) instead of separate shade
// bytes.
type VertexPD struct {
	X, Y, Z int16
	CI      uint16
	S, T    int16
}

// DecodeVertexPD unpacks one VertexPD struct (rt64_rsp.h RSP::VertexPD).
func DecodeVertexPD(mem *rdram.Memory, addr uint32) VertexPD {
	var v VertexPD
	v.Y = int16(mem.ReadU16(addr))
	v.X = int16(mem.ReadU16(addr + 2))
	v.CI = mem.ReadU16(addr + 4)
	v.Z = int16(mem.ReadU16(addr + 6))
	v.T = int16(mem.ReadU16(addr + 8))
	v.S = int16(mem.ReadU16(addr + 10))
	return v
}

// TransformedVertex is the per-vertex record appended to the workload's
// columnar vertex stream once a cache slot is loaded: the source vertex
// plus every piece of resolved draw state that contributed to its
// transform (spec.md §4.2's setVertex contract).
type TransformedVertex struct {
	Vertex

	ViewProjIndex  uint32
	TransformIndex uint32
	FogIndex       uint32
	LightIndex     uint32
	LightCount     uint32
	LookAtIndex    uint32

	// TX, TY, TZ, TW is mvp * (x, y, z, 1).
	TX, TY, TZ, TW float32
	// SX, SY, SZ is the viewport-mapped screen position.
	SX, SY, SZ float32
}

// VertexCache holds the RSP's loaded-vertex slots, their columnar workload
// indices, and a used-bitset so modifyVertex can tell whether a slot has
// already been referenced by a triangle and must clone-on-write instead of
// mutating shared geometry.
type VertexCache struct {
	slots      [MaxVertices]TransformedVertex
	workloadID [MaxVertices]int // index into the workload's vertex stream, or -1
	referenced [MaxVertices]bool
	used       uint64 // bitset, one bit per slot
}

// NewVertexCache returns an empty vertex cache.
func NewVertexCache() *VertexCache {
	c := &VertexCache{}
	for i := range c.workloadID {
		c.workloadID[i] = -1
	}
	return c
}

// Load installs v at slot index, marking it used and un-referenced (a fresh
// load always starts a new, unshared columnar entry).
func (c *VertexCache) Load(index int, v TransformedVertex, workloadIndex int) {
	if index < 0 || index >= MaxVertices {
		return
	}
	c.slots[index] = v
	c.workloadID[index] = workloadIndex
	c.referenced[index] = false
	c.used |= 1 << uint(index)
}

// Get returns the vertex at index and whether that slot has been loaded.
func (c *VertexCache) Get(index int) (TransformedVertex, bool) {
	if index < 0 || index >= MaxVertices || c.used&(1<<uint(index)) == 0 {
		return TransformedVertex{}, false
	}
	return c.slots[index], true
}

// MarkReferenced flags that a triangle now references the vertex at index,
// forcing any subsequent ModifyVertex on that slot to clone instead of
// mutate.
func (c *VertexCache) MarkReferenced(index int) {
	if index >= 0 && index < MaxVertices {
		c.referenced[index] = true
	}
}

// IsReferenced reports whether the slot has been referenced by a triangle
// since it was last loaded.
func (c *VertexCache) IsReferenced(index int) bool {
	if index < 0 || index >= MaxVertices {
		return false
	}
	return c.referenced[index]
}

// WorkloadIndex returns the columnar vertex-stream index a cache slot's
// current vertex lives at.
func (c *VertexCache) WorkloadIndex(index int) int {
	if index < 0 || index >= MaxVertices {
		return -1
	}
	return c.workloadID[index]
}

// SetWorkloadIndex rebinds the columnar vertex-stream index a slot points
// at — set by the interpreter after each vertex load and after it appends
// the clone ModifyVertex returns for a referenced vertex.
func (c *VertexCache) SetWorkloadIndex(index, workloadIndex int) {
	if index >= 0 && index < MaxVertices {
		c.workloadID[index] = workloadIndex
		c.referenced[index] = false
	}
}

// Set replaces the cached vertex at index in place, without touching its
// referenced flag or workload index (the in-place half of ModifyVertex's
// clone-on-write contract).
func (c *VertexCache) Set(index int, v TransformedVertex) {
	if index >= 0 && index < MaxVertices {
		c.slots[index] = v
	}
}
