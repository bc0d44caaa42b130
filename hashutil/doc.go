// Package hashutil wraps the content hash used by the framebuffer coherency
// engine to detect when CPU writes have changed a region of RDRAM backing a
// live framebuffer (SPEC_FULL.md §2 domain stack, spec.md §4.4(d)).
//
// # Thread Safety
//
// Sum64 is a pure function; it has no shared state.
package hashutil
