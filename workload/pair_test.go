// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package workload

import (
	"testing"

	"github.com/gogpu/n64hle/fixed"
	"github.com/stretchr/testify/require"
)

func TestFramebufferPairEmpty(t *testing.T) {
	p := FramebufferPair{}
	require.True(t, p.empty())

	p.Projections = append(p.Projections, Projection{})
	require.True(t, p.empty())

	p.Projections[0].Calls = append(p.Projections[0].Calls, DrawCall{})
	require.False(t, p.empty())
}

func TestFramebufferPairMergeRect(t *testing.T) {
	p := FramebufferPair{DrawColorRect: fixed.NullRect()}
	require.True(t, p.DrawColorRect.Null())

	p.mergeColorRect(fixed.FromPixels(0, 0, 10, 10))
	require.False(t, p.DrawColorRect.Null())
	require.Equal(t, int32(10), p.DrawColorRect.Right())

	p.mergeColorRect(fixed.FromPixels(5, 5, 20, 20))
	require.Equal(t, int32(20), p.DrawColorRect.Right())
	require.Equal(t, int32(0), p.DrawColorRect.Left())
}
