// Package rdp models the Reality Display Processor state machine: the
// eight tile descriptors and their TMEM backing store, the other-mode and
// color-combiner registers, the color/depth/texture image bindings, and the
// sixteen-entry extended color/state stacks the RT64 hook commands push and
// pop (spec.md §4.3, SPEC_FULL.md §4).
//
// # Key Principle
//
// The RDP never executes a load or a draw synchronously against "the"
// framebuffer — it only knows about TMEM bytes and image descriptors.
// Anything that requires knowing whether a texture load is reading back a
// live framebuffer is handled one layer up, in the coherency package; each
// rdp load returns a LoadOperation record describing what it copied for
// that layer to inspect, and rdp otherwise behaves as if RDRAM were the
// only backing store.
//
// # Thread Safety
//
// State is owned exclusively by the single HLE producer thread.
package rdp
