// Package rsp implements the Reality Signal Processor state machine: the
// modelview/projection matrix stacks, vertex cache, lighting/fog/lookat
// tables and the triangle-submission path that turns cached vertices into
// screen-space geometry for the workload accumulator.
//
// # Key Principle
//
// Nothing here touches the GBI dispatch table — methods take raw command
// fields, and those that read RDRAM take an *rdram.Memory explicitly.
// Vertex, light and lookat loads take already-resolved addresses; Matrix
// and ForceMatrix take the segmented address and resolve it themselves.
// State changes to lights, fog,
// lookat and the viewport are deferred: they only take effect in the
// workload the next time a vertex actually consumes them, never at the
// moment the command runs.
//
// # Thread Safety
//
// State is not safe for concurrent use; one RSP state machine serves one
// display-list interpreter goroutine.
package rsp
