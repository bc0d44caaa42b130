// Package coherency implements the framebuffer coherency engine: the
// cross-cutting subsystem that tracks which regions of emulated RDRAM hold
// rendered (GPU-owned) pixels versus CPU-written pixels, detects when a
// texture load samples from a still-live framebuffer, and produces the
// operation records (WriteChanges, CreateTileCopy, ReinterpretTile) the
// downstream GPU renderer replays to keep CPU and GPU memory views in sync.
//
// # Key Principle
//
// The core never talks to a GPU device. It only maintains bookkeeping
// (Framebuffer registry, TMEM region list, TileCopy arena) and emits
// Operation records for a renderer to execute later. Cyclic references
// between a Framebuffer, its TMEM regions and its TileCopy are avoided by an
// arena+id design: TileCopies live in an id-keyed map, TMEM regions hold the
// integer id rather than a pointer, and Framebuffers hold no TileCopy
// reference at all.
//
// # Architecture
//
//	interp (display-list dispatch)
//	      │  setColorImage/setTextureImage/loadTile/fillRect/...
//	      ▼
//	coherency.Engine ──► Registry (Framebuffer by address)
//	      │          ──► RegionList (TMEM region algebra)
//	      │          ──► TileCopyArena (id-keyed GPU snapshots)
//	      ▼
//	workload.FramebufferPair (pre/post Operation lists, replayed by the GPU)
//
// # Thread Safety
//
// An Engine is owned by a single display-list-processing goroutine, the
// same way rsp.State and rdp.State are; it holds no internal locking.
package coherency
