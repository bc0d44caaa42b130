// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package workload

import (
	"github.com/gogpu/n64hle/coherency"
	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdp"
)

// FramebufferPair aggregates every Projection drawn to one color+depth
// target pair between flush points (spec.md §3). Its lifecycle is
// bracketed by a coherency.FlushReason, reusing the coherency package's
// enum rather than duplicating the same five values here.
type FramebufferPair struct {
	ColorImage rdp.ImageDescriptor
	DepthImage rdp.ImageDescriptor

	DrawColorRect fixed.Rect
	DrawDepthRect fixed.Rect

	DepthRead, DepthWrite bool

	StartOps []coherency.Operation
	EndOps   []coherency.Operation

	Projections []Projection

	Reason coherency.FlushReason
}

// mergeColorRect widens DrawColorRect by rect, per spec.md §4.2's "merges
// into the framebuffer pair's drawColorRect" rule.
func (p *FramebufferPair) mergeColorRect(rect fixed.Rect) {
	p.DrawColorRect = p.DrawColorRect.Merge(rect)
}

// mergeDepthRect widens DrawDepthRect, only called when the active
// other-mode updates Z (spec.md §4.2).
func (p *FramebufferPair) mergeDepthRect(rect fixed.Rect) {
	p.DrawDepthRect = p.DrawDepthRect.Merge(rect)
}

// empty reports whether the pair has accumulated zero draws across every
// Projection, the condition under which spec.md §5 says it must not be
// emitted ("partial FramebufferPairs with zero draws are not emitted").
func (p *FramebufferPair) empty() bool {
	for _, proj := range p.Projections {
		if len(proj.Calls) > 0 {
			return false
		}
	}
	return true
}
