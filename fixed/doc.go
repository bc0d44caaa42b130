// Package fixed provides the fixed-point math shared by every other
// package in this module: 10.2 subpixel rectangles for scissor and draw-area
// accounting, and 16.16 matrices in the N64's column-swapped lane layout.
//
// # Key Principle
//
// The RDP never works in floating point for rectangle bookkeeping — scissor,
// tile bounds and draw-rect accumulation all happen in 10.2 fixed subpixels,
// and the rounding bias of each accessor (floor on the upper-left edge,
// ceiling on the lower-right edge) is part of the observable behavior of the
// hardware it emulates. Treat the helpers here as the single place that bias
// is allowed to live; every other package must go through them rather than
// re-deriving rounding rules.
//
// # Thread Safety
//
// All types in this package are plain value types with no shared mutable
// state; they are safe to copy and use concurrently.
package fixed
