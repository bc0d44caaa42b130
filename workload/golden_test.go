// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package workload

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gogpu/n64hle/coherency"
	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdp"
	"github.com/gogpu/n64hle/rsp"
)

// buildFingerprint runs the same tiny single-triangle scene a scenario
// fingerprint test exercises: one FramebufferPair, one Projection, one
// DrawCall, one face.
func buildFingerprint() *Workload {
	s := rsp.New()
	b := NewBuilder()
	b.BeginFramebufferPair(rdp.ImageDescriptor{Width: 320}, rdp.ImageDescriptor{})

	v0 := b.AppendVertex(s, newVertex(0, 0, 0))
	v1 := b.AppendVertex(s, newVertex(4, 0, 0))
	v2 := b.AppendVertex(s, newVertex(0, 4, 0))
	b.EnsureProjection(ProjectionPerspective, 0, 0)
	b.AppendFace(v0, v1, v2, fixed.FromPixels(0, 0, 4, 4))
	b.SubmitFramebufferPair(coherency.FlushProcessDisplayListsEnd)

	return b.Finish()
}

// TestFinishIsDeterministic builds the same scene twice and structurally
// diffs the two resulting Workloads, the way a scenario fingerprint test
// guards against accidental nondeterminism (ordering, stale pointers)
// creeping into the accumulator.
func TestFinishIsDeterministic(t *testing.T) {
	a := buildFingerprint()
	b := buildFingerprint()

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("two runs of the same scene diverged (-want +got):\n%s", diff)
	}
}

// TestFinishDiffersWhenGeometryChanges is the inverse check: cmp.Diff must
// actually detect a real divergence, not just report "equal" unconditionally
// due to an ignored field.
func TestFinishDiffersWhenGeometryChanges(t *testing.T) {
	a := buildFingerprint()

	s := rsp.New()
	b := NewBuilder()
	b.BeginFramebufferPair(rdp.ImageDescriptor{Width: 320}, rdp.ImageDescriptor{})
	v0 := b.AppendVertex(s, newVertex(0, 0, 0))
	v1 := b.AppendVertex(s, newVertex(8, 0, 0))
	v2 := b.AppendVertex(s, newVertex(0, 8, 0))
	b.EnsureProjection(ProjectionPerspective, 0, 0)
	b.AppendFace(v0, v1, v2, fixed.FromPixels(0, 0, 8, 8))
	b.SubmitFramebufferPair(coherency.FlushProcessDisplayListsEnd)
	other := b.Finish()

	if diff := cmp.Diff(a, other); diff == "" {
		t.Error("expected a structural difference between the two scenes, got none")
	}
}
