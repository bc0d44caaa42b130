package interp

import (
	"github.com/gogpu/n64hle/coherency"
	"github.com/gogpu/n64hle/gbi"
	"github.com/gogpu/n64hle/workload"
)

// Run walks the display list starting at the segmented address entryAddr
// until the call stack empties, a fault aborts the frame, or the RDRAM
// boundary is exceeded, then closes out the final FramebufferPair and
// returns the frame's Workload (spec.md §4.1, §4.5, §7).
//
// Run resets the call stack but reuses whatever rsp/rdp/coherency state is
// already installed on the Interpreter, so segment tables, matrix stacks
// and TMEM persist across calls the way they do across consecutive frames
// on real hardware. Callers that want a clean frame call Reset first.
func (i *Interpreter) Run(entryAddr uint32) (*workload.Workload, error) {
	i.stack.reset()
	i.pc = i.Mem.FromSegmentedDMA(entryAddr)

	for {
		if !i.Mem.InBounds(i.pc, 8) {
			// spec.md §4.1: malformed/runaway DL pointer abandons the
			// current list; the frame still publishes whatever work has
			// accumulated so far.
			i.Build.Warn("DLStackUnderflow", len(i.Build.Pairs), -1, -1, "DL pointer left RDRAM bounds")
			break
		}

		cmd := gbi.Decode(i.Mem.ReadU64(i.pc))
		op := i.table[cmd.Opcode()]

		next, done := i.execute(op, cmd)
		if i.fault != nil {
			return nil, i.fault
		}
		if done {
			break
		}
		i.pc = next
	}

	i.closeFramebufferPair(coherency.FlushProcessDisplayListsEnd)
	return i.Build.Finish(), nil
}

// Reset discards all accumulated rsp/rdp/coherency/workload state and
// starts a fresh frame, the way a new display-list task from the CPU does
// on real hardware.
func (i *Interpreter) Reset() {
	i.RSP.Reset()
	i.RDP.Reset()
	i.Coh = coherency.New(i.Coh.TMEMMask + 1)
	developerMode := i.Build.DeveloperMode
	i.Build = workload.NewBuilder()
	i.Build.DeveloperMode = developerMode
	i.stack.reset()
	i.hookEnabled = false
	i.extOpcodeByte = gbi.DefaultExtendedOpcode
	i.viewportIndexCounter = 0
}

// execute dispatches one command, returning the next command address and
// whether the display-list walk has ended (ENDDL with an empty call
// stack).
func (i *Interpreter) execute(op gbi.Op, cmd gbi.Command) (next uint32, done bool) {
	switch op {
	case gbi.OpNoop, gbi.OpSyncLoad, gbi.OpSyncPipe, gbi.OpSyncTile, gbi.OpSyncFull, gbi.OpLine3D:
		// Sync commands exist for real hardware's pipeline hazards, which
		// this emulator has none of (spec.md non-goal: cycle counts);
		// Line3D is a non-graphics-critical legacy op this module does not
		// special-case (spec.md non-goal: non-graphics microcodes).
		return i.pc + 8, false

	case gbi.OpDL:
		return i.opDL(cmd)
	case gbi.OpEndDL:
		return i.opEndDL()

	case gbi.OpVtx:
		i.opVtx(cmd)
	case gbi.OpVtxPD:
		i.opVtxPD(cmd)
	case gbi.OpModifyVtx:
		i.opModifyVtx(cmd)
	case gbi.OpSetVertexColorPD:
		i.opSetVertexColorPD(cmd)
	case gbi.OpTri1:
		i.opTri1(cmd)
	case gbi.OpTri2:
		i.opTri2(cmd)
	case gbi.OpQuad:
		i.opQuad(cmd)
	case gbi.OpBranchZ:
		if nxt, branch := i.opBranchZ(cmd); branch {
			return nxt, false
		}
	case gbi.OpBranchW:
		if nxt, branch := i.opBranchW(cmd); branch {
			return nxt, false
		}

	case gbi.OpMatrix:
		i.opMatrix(cmd)
	case gbi.OpPopMatrix:
		i.opPopMatrix(cmd)
	case gbi.OpMoveWord:
		i.opMoveWord(cmd)
	case gbi.OpMoveMem:
		i.opMoveMem(cmd)
	case gbi.OpTexture:
		i.opTexture(cmd)
	case gbi.OpSetGeometryMode:
		i.opSetGeometryMode(cmd)
	case gbi.OpClearGeometryMode:
		i.opClearGeometryMode(cmd)

	case gbi.OpSetOtherModeH:
		i.opSetOtherModeH(cmd)
	case gbi.OpSetOtherModeL:
		i.opSetOtherModeL(cmd)
	case gbi.OpRDPSetOtherMode:
		i.opSetOtherModeBoth(cmd)
	case gbi.OpSetCombine:
		i.opSetCombine(cmd)

	case gbi.OpSetTImg:
		i.opSetTImg(cmd)
	case gbi.OpSetCImg:
		i.opSetCImg(cmd)
	case gbi.OpSetZImg:
		i.opSetZImg(cmd)
	case gbi.OpSetTile:
		i.opSetTile(cmd)
	case gbi.OpSetTileSize:
		i.opSetTileSize(cmd)
	case gbi.OpLoadTile:
		i.opLoadTile(cmd)
	case gbi.OpLoadBlock:
		i.opLoadBlock(cmd)
	case gbi.OpLoadTLUT:
		i.opLoadTLUT(cmd)

	case gbi.OpSetEnvColor:
		i.opSetEnvColor(cmd)
	case gbi.OpSetPrimColor:
		i.opSetPrimColor(cmd)
	case gbi.OpSetBlendColor:
		i.opSetBlendColor(cmd)
	case gbi.OpSetFogColor:
		i.opSetFogColor(cmd)
	case gbi.OpSetFillColor:
		i.opSetFillColor(cmd)
	case gbi.OpSetPrimDepth:
		i.opSetPrimDepth(cmd)
	case gbi.OpSetConvert:
		i.opSetConvert(cmd)
	case gbi.OpSetKeyR:
		i.opSetKeyR(cmd)
	case gbi.OpSetKeyGB:
		i.opSetKeyGB(cmd)

	case gbi.OpFillRect:
		i.opFillRect(cmd)
	case gbi.OpTexRect:
		i.opTexRect(cmd, false)
	case gbi.OpTexRectFlip:
		i.opTexRect(cmd, true)
	case gbi.OpSetScissor:
		i.opSetScissor(cmd)

	case gbi.OpExtendedHook:
		if nxt, handled := i.opExtendedHook(cmd); handled {
			return nxt, false
		}

	default:
		i.warnOnce(cmd.Opcode(), "interp: unknown opcode %#x (microcode %d)", cmd.Opcode(), i.microcode)
	}

	return i.pc + 8, false
}
