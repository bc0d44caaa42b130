// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package workload implements the draw-call batching layer (spec.md §4.5):
// it groups RSP/RDP state changes into DrawCalls, DrawCalls into
// Projections, Projections into FramebufferPairs, and FramebufferPairs into
// the immutable per-frame Workload a downstream GPU renderer consumes.
//
// # Architecture
//
//	interp ─▶ rsp/rdp state ─▶ workload.Builder ─▶ Workload
//	                                │
//	                          coherency.Engine
//	                       (pre/post-render ops)
//
// The Builder owns a rolling DrawCall (spec.md §4.5) and flushes it into
// the active Projection/FramebufferPair whenever a "draw attribute" dirty
// bit fires (drawattr.Set) or the caller explicitly requests a new
// projection/pair. Columnar vertex data (spec.md §3's DrawData soup) is
// described through gputypes.VertexBufferLayout/VertexAttribute descriptors
// the way the teacher's internal/gpu pipelines describe their own vertex
// streams, so this module does not invent its own vertex-format
// vocabulary. The columns themselves stay separate (positions as int16);
// a renderer packs them into that interleaved float32 layout before
// upload.
//
// # Thread Safety
//
// A Builder is single-producer (spec.md §5's HLE thread). The Workload
// returned by Builder.Finish is read-only from that point on; only a fresh
// Builder mutates it further.
package workload
