// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package workload

import (
	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdp"
)

// ExtendedDraw tags the vertex-z-test hack a DrawCall may carry (spec.md
// §3's "extended-draw tag" field, supplemented in SPEC_FULL.md §4).
type ExtendedDraw uint8

const (
	ExtendedDrawNone ExtendedDraw = iota
	ExtendedDrawVertexTestZ
	ExtendedDrawEndVertexTestZ
)

// VertexRange is a half-open [Start, Start+Count) span into a vertex or
// index buffer.
type VertexRange struct {
	Start, Count int
}

// RectDraw carries the resolved geometry of a rectangle-shaped DrawCall
// (fillRect/texRect), appended directly rather than through the indexed
// triangle path.
type RectDraw struct {
	Rect       fixed.Rect
	Tile       int
	S, T       float32
	DSDX, DTDY float32
}

// DrawCall is one batched emission unit (spec.md §3/§4.5): the RDP/RSP
// state in effect plus either an index range into the workload-wide face
// stream (3D projections) or a raw-vertex range / RectDraw (rectangle and
// triangle-as-primitive projections).
type DrawCall struct {
	// Geometry.
	Indices     VertexRange // into Workload.Faces, 3D triangle projections
	RawVertices VertexRange // into the columnar vertex stream, primitive projections
	Rect        *RectDraw
	TriangleCount int

	MinWorldMatrix, MaxWorldMatrix uint32

	// RDP/RSP register-file snapshot in effect for this call.
	Combine      rdp.Combine
	OtherMode    rdp.OtherMode
	GeometryMode uint32
	Scissor      fixed.Rect

	FillColor             uint32
	PrimColor             rdp.Color
	PrimLODFrac, PrimLODMin uint8
	PrimDepthZ, PrimDepthDZ uint16
	EnvColor              rdp.Color
	BlendColor            rdp.Color
	FogColor              rdp.Color

	ConvertK  [6]int32
	KeyCenter [3]float32
	KeyScale  [3]float32

	Tiles [8]rdp.Tile

	Extended ExtendedDraw
}

// newDrawCall returns a zero-value DrawCall with its matrix-index range
// inverted (Min > Max) so the first triangle appended always widens it.
func newDrawCall() DrawCall {
	return DrawCall{MinWorldMatrix: ^uint32(0), MaxWorldMatrix: 0}
}

// widenMatrixRange grows the call's [MinWorldMatrix, MaxWorldMatrix] range
// to include idx, per spec.md §4.2's "refreshes min/max world-matrix
// indices on the current DrawCall" rule.
func (c *DrawCall) widenMatrixRange(idx uint32) {
	if idx < c.MinWorldMatrix {
		c.MinWorldMatrix = idx
	}
	if idx > c.MaxWorldMatrix {
		c.MaxWorldMatrix = idx
	}
}
