package interp

import (
	"github.com/gogpu/n64hle/coherency"
	"github.com/gogpu/n64hle/gbi"
	"github.com/gogpu/n64hle/internal/diag"
	"github.com/gogpu/n64hle/rdp"
	"github.com/gogpu/n64hle/rdram"
	"github.com/gogpu/n64hle/rsp"
	"github.com/gogpu/n64hle/workload"
)

// Fault is the one error kind spec.md §7 says propagates out of the core:
// AllocationFailure. Every other recoverable condition is absorbed locally
// and, in developer mode, recorded on the workload's CommandWarning stream.
type Fault struct {
	Reason string
}

func (f *Fault) Error() string { return "interp: fatal fault: " + f.Reason }

// extendedStacks holds the four push/pop register stacks the RT64 extended
// hook commands operate that don't already live on rdp.State or rsp.State
// (env/prim/blend/fog/fill/scissor/combine do): other-mode, geometry mode,
// viewport and the projection matrix. Modeled as the same generic
// rdp.Stack[T] shape spec.md §9's design note says is conforming for every
// extended stack, RSP- and RDP-owned alike.
type extendedStacks struct {
	OtherMode rdp.Stack[rdp.OtherMode]
	Geometry  rdp.Stack[rsp.GeometryMode]
	Viewport  rdp.Stack[rsp.Viewport]
	ProjMat   rdp.Stack[rsp.Mat4]
}

// Interpreter is the display-list walker spec.md §4.1 describes: it owns
// the DL call stack, the segment table (via rdram.Memory), the active
// microcode's opcode table, and the RT64 extended-hook state, and it
// drives rsp.State/rdp.State/coherency.Engine/workload.Builder as it
// decodes each 8-byte command.
type Interpreter struct {
	Mem   *rdram.Memory
	RSP   *rsp.State
	RDP   *rdp.State
	Coh   *coherency.Engine
	Build *workload.Builder

	table     gbi.Table
	microcode gbi.Microcode

	stack callStack
	pc    uint32

	hookEnabled   bool
	extOpcodeByte uint8

	ext extendedStacks

	viewportIndexCounter uint32

	logger        diag.Logger
	loggedUnknown map[uint8]bool

	fault error
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithLogger installs the sink UnknownOpcode-class warnings are printed
// to; defaults to diag.NopLogger{}.
func WithLogger(l diag.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// WithMicrocode selects the opcode table commands are dispatched through;
// defaults to F3DEX2, the family the large majority of retail titles use.
func WithMicrocode(mc gbi.Microcode) Option {
	return func(i *Interpreter) { i.setMicrocode(mc) }
}

// WithDeveloperMode turns on workload.Builder's CommandWarning stream.
func WithDeveloperMode(on bool) Option {
	return func(i *Interpreter) { i.Build.DeveloperMode = on }
}

// New returns an Interpreter over mem, wired to fresh rsp/rdp/coherency/
// workload state, with the F3DEX2 opcode table active by default.
func New(mem *rdram.Memory, opts ...Option) *Interpreter {
	i := &Interpreter{
		Mem:           mem,
		RSP:           rsp.New(),
		RDP:           rdp.New(),
		Coh:           coherency.New(rdp.TMEMWords),
		Build:         workload.NewBuilder(),
		extOpcodeByte: gbi.DefaultExtendedOpcode,
		logger:        diag.NopLogger{},
		loggedUnknown: make(map[uint8]bool),
	}
	i.setMicrocode(gbi.F3DEX2)
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interpreter) setMicrocode(mc gbi.Microcode) {
	i.microcode = mc
	if mc == gbi.F3D {
		i.table = gbi.F3DTable
	} else {
		i.table = gbi.F3DEX2Table
	}
}

// Fault returns the sticky AllocationFailure-class fault, if the walk was
// aborted as fatal (spec.md §7).
func (i *Interpreter) Fault() error { return i.fault }

func (i *Interpreter) warnOnce(opcode uint8, format string, args ...any) {
	if i.loggedUnknown[opcode] {
		return
	}
	i.loggedUnknown[opcode] = true
	i.logger.Printf(format, args...)
}
