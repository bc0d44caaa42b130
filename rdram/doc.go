// Package rdram models the N64's emulated RDRAM as seen by the HLE core:
// a flat byte slice, a 16-entry segment table for segmented-address
// translation, and the word-swap correction the real hardware's DMA engine
// applies to every sub-32-bit read.
//
// # Key Principle
//
// RDRAM is big-endian-per-32-bit but the N64's DMA hardware interleaves
// bytes within a word, so any byte or halfword read through a segmented
// address must XOR the low address bits before indexing the backing slice.
// This package is the only place that XOR correction is applied; every
// consumer (rsp, rdp, gbi) reads through Memory rather than slicing RAM
// directly.
//
// # Thread Safety
//
// Memory is owned exclusively by the single HLE producer thread (see
// SPEC_FULL.md §5); it has no internal synchronization.
package rdram
