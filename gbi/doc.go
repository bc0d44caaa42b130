// Package gbi defines the Graphics Binary Interface constants and the
// raw 8-byte command representation the interpreter walks: opcode IDs for
// the F3D and F3DEX2 microcode families, the RT64 extended-hook opcode and
// its 45 sub-commands, and the bit-packing helpers used to pull parameters
// out of a command's two 32-bit words.
//
// # Key Principle
//
// This package has no notion of interpreter state — it is pure data and
// decode helpers, so the interp package can build a 256-entry dispatch
// table per microcode without gbi needing to know what an RSP or RDP is.
//
// # Thread Safety
//
// All exported values are constants or pure functions.
package gbi
