// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package workload

// ProjectionType classifies what kind of geometry a Projection's DrawCalls
// carry (spec.md §3).
type ProjectionType uint8

const (
	ProjectionPerspective ProjectionType = iota
	ProjectionOrthographic
	ProjectionRectangle
	ProjectionTriangle
)

// Projection is a contiguous run of DrawCalls sharing a projection matrix
// and viewport; a new one is created implicitly whenever the projection
// matrix, the viewport, or the projection type itself changes mid-draw
// (spec.md §3, §4.5).
type Projection struct {
	Type ProjectionType

	ViewProjIndex uint32
	ViewportIndex uint32

	Calls []DrawCall
}
