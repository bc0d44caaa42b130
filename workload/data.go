// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package workload

import "github.com/gogpu/n64hle/rsp"

// LightGroup is one block of simultaneously-active lights, captured the
// moment a lit vertex's LightIndex advances (spec.md §4.2's "creates new
// block of RSPLight records if lighting enabled and changed").
type LightGroup struct {
	Lights []rsp.LightBlock
}

// DrawData is the per-frame columnar vertex soup spec.md §4.5 describes:
// every vector below is indexed by the same global vertex index, so a GPU
// renderer can upload one batched buffer per kind instead of per draw call.
type DrawData struct {
	// Per-vertex columns.
	PosX, PosY, PosZ []int16
	TexS, TexT       []float32
	NormOrColor      [][4]uint8

	ViewProjIndex []uint32
	WorldIndex    []uint32
	FogIndex      []uint32
	LightIndex    []uint32
	LightCount    []uint32
	LookAtIndex   []uint32

	// mvp * (x, y, z, 1).
	TransformedX, TransformedY, TransformedZ, TransformedW []float32
	// Viewport-mapped screen position.
	ScreenX, ScreenY, ScreenZ []float32

	// Shared pools, grown lazily as their matching *Changed flag fires on
	// the RSP side (spec.md §4.2).
	ViewTransforms     []rsp.Mat4
	ProjTransforms     []rsp.Mat4
	ViewProjTransforms []rsp.Mat4
	WorldTransforms    []rsp.Mat4
	TransformGroups    []rsp.TransformGroup
	Viewports          []rsp.Viewport
	FogEntries         []rsp.Fog
	LightGroups        []LightGroup
	LookAts            []rsp.LookAt

	// Faces holds (a, b, c) vertex-index triples for every surviving 3D
	// triangle, appended in submission order.
	Faces []uint32
}

// Len reports the number of vertices recorded so far.
func (d *DrawData) Len() int { return len(d.PosX) }

// ensureMat4Pool grows pool until it contains index idx, appending value()
// for every missing entry, so an idx that skips ahead fills the gap with
// copies of the current value.
func ensureMat4Pool(pool *[]rsp.Mat4, idx int, value func() rsp.Mat4) {
	for len(*pool) <= idx {
		*pool = append(*pool, value())
	}
}

func ensureFogPool(pool *[]rsp.Fog, idx int, value func() rsp.Fog) {
	for len(*pool) <= idx {
		*pool = append(*pool, value())
	}
}

func ensureLookAtPool(pool *[]rsp.LookAt, idx int, value func() rsp.LookAt) {
	for len(*pool) <= idx {
		*pool = append(*pool, value())
	}
}

func ensureLightPool(pool *[]LightGroup, idx int, value func() LightGroup) {
	for len(*pool) <= idx {
		*pool = append(*pool, value())
	}
}

func ensureViewportPool(pool *[]rsp.Viewport, idx int, value func() rsp.Viewport) {
	for len(*pool) <= idx {
		*pool = append(*pool, value())
	}
}
