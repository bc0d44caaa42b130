// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package workload

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/n64hle/rdp"
)

// Workload is the immutable per-frame result spec.md §3/§5 describes: every
// FramebufferPair the display list produced, the columnar vertex soup they
// index into, the deferred TMEM load operations, and the unique tile
// descriptors they reference. A GPU renderer consumes one Workload at a
// time; nothing in this package hands it back for mutation.
type Workload struct {
	Pairs           []FramebufferPair
	Data            DrawData
	LoadOperations  []rdp.LoadOperation
	TileDescriptors []rdp.Tile
	Warnings        []CommandWarning
}

// vertexStride is the byte size of one VertexBufferLayout-described record,
// the packed float32 form a renderer uploads Data's columns as: position,
// texture coordinate, color/normal (widened from its packed byte form), and
// the pool indices (widened to float32 and recovered with a bitcast in the
// vertex shader, the way the teacher widens its own packed attributes).
const vertexStride = 4*2 + 4 + 4*2 + 4*4 + 4*6

// VertexBufferLayout describes the Data soup's per-vertex record the way
// the teacher's convexVertexLayout describes its own pipeline's vertex
// buffer: one interleaved buffer, vertex step mode, with an attribute per
// column a vertex shader would bind.
//
// The workload does not itself interleave Data's columns into this layout
// (they stay columnar, spec.md §3, for CPU-side batching); this method only
// names the wire format a renderer should pack them into before upload.
func (w *Workload) VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // PosX, PosY
			{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},    // PosZ
			{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 2}, // TexS, TexT
			{Format: gputypes.VertexFormatFloat32x4, Offset: 20, ShaderLocation: 3}, // NormOrColor
			{Format: gputypes.VertexFormatFloat32, Offset: 36, ShaderLocation: 4},   // ViewProjIndex
			{Format: gputypes.VertexFormatFloat32, Offset: 40, ShaderLocation: 5},   // WorldIndex
			{Format: gputypes.VertexFormatFloat32, Offset: 44, ShaderLocation: 6},   // FogIndex
			{Format: gputypes.VertexFormatFloat32, Offset: 48, ShaderLocation: 7},   // LightIndex
			{Format: gputypes.VertexFormatFloat32, Offset: 52, ShaderLocation: 8},   // LightCount
			{Format: gputypes.VertexFormatFloat32, Offset: 56, ShaderLocation: 9},   // LookAtIndex
		},
	}
}

// IndexFormat reports the wire format of Data.Faces: N64 display lists never
// exceed the 32-slot vertex cache's addressable range per draw call, but the
// workload's global face stream indexes across the whole frame, so it is
// always emitted as 32-bit indices.
func (w *Workload) IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// PrimitiveTopology is always a triangle list; the N64 RDP has no strip or
// fan primitive, each triangle command expands to one independent face.
func (w *Workload) PrimitiveTopology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}

// ColorTargetFormat maps an RDP image size/format pair to the gputypes
// texture format a renderer should create its color target with, per
// spec.md §4.3's image format table.
func ColorTargetFormat(format, size uint8) gputypes.TextureFormat {
	switch {
	case format == rdp.FmtRGBA && size == rdp.Siz16b:
		return gputypes.TextureFormatRGBA8Unorm // upsampled from 5551 on read
	case format == rdp.FmtRGBA && size == rdp.Siz32b:
		return gputypes.TextureFormatRGBA8Unorm
	case format == rdp.FmtI && size == rdp.Siz8b:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
