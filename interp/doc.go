// Package interp is the display-list interpreter: the microcode-dispatched
// walker over variable-length 8-byte commands described in spec.md §4.1. It
// owns the DL call stack, the segment table, the RT64 extended-hook state
// machine, and the per-microcode opcode tables (gbi.F3DTable/F3DEX2Table),
// and it is the one package that drives rsp.State, rdp.State,
// coherency.Engine and workload.Builder together to turn one frame's
// command stream into a workload.Workload.
//
// # Key Principle
//
// interp never duplicates state the packages below it already own. A
// handler decodes a command's two words, then calls straight through to
// rsp.State/rdp.State/coherency.Engine/workload.Builder methods; interp's
// own state is limited to what the display-list walk itself needs to
// track: the call stack, the segment table, the active microcode table,
// and the extended-hook enable/sub-opcode bytes.
//
// # Thread Safety
//
// An Interpreter is built and driven by a single producer ("HLE") thread,
// per spec.md §5; nothing in this package is safe for concurrent use.
package interp
