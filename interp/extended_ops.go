package interp

import (
	"github.com/gogpu/n64hle/gbi"
	"github.com/gogpu/n64hle/rsp"
	"github.com/gogpu/n64hle/workload"
)

// opExtendedHook executes the RT64 out-of-band command channel (spec.md
// §4.1, §6): w0's low 24 bits should carry gbi.HookMagic, and w1's top byte
// selects either a top-level HookOp (enable/disable/getVersion/dl/branch)
// or, once enabled, one of the extended sub-commands from gbi.ExtendedOp.
// handled is always true; a missing magic number is logged once and
// otherwise treated as a harmless no-op rather than aborting the walk.
//
// DL/branch targets don't fit alongside the magic and sub-opcode byte in
// one 8-byte command, so those two sub-ops read one extra 8-byte word
// (the segmented address) immediately following and advance the program
// counter by 16 instead of 8.
func (i *Interpreter) opExtendedHook(cmd gbi.Command) (next uint32, handled bool) {
	if cmd.W0&0x00FFFFFF != gbi.HookMagic {
		i.warnOnce(cmd.Opcode(), "interp: extended-hook opcode %#x missing magic", cmd.Opcode())
		return i.pc + 8, true
	}
	sub := u8(cmd.W1, 24)
	arg := cmd.W1 & 0x00FFFFFF

	switch sub {
	case gbi.HookOpGetVersion:
		return i.pc + 8, true
	case gbi.HookOpEnable:
		i.hookEnabled = true
		return i.pc + 8, true
	case gbi.HookOpDisable:
		i.hookEnabled = false
		return i.pc + 8, true
	case gbi.HookOpDL:
		target := i.Mem.FromSegmentedDMA(uint32(i.Mem.ReadU64(i.pc + 8)))
		if !i.stack.push(i.pc + 16) {
			i.Build.Warn("DLStackOverflow", -1, -1, -1, "extended-hook DL call stack overflow")
			return i.pc + 16, true
		}
		return target, true
	case gbi.HookOpBranch:
		target := i.Mem.FromSegmentedDMA(uint32(i.Mem.ReadU64(i.pc + 8)))
		return target, true
	}

	if !i.hookEnabled {
		i.warnOnce(0xE1, "interp: extended sub-opcode %#x used before hook enable", sub)
		return i.pc + 8, true
	}

	switch gbi.ExtendedOp(sub) {
	case gbi.ExVertexZTestV1:
		i.RSP.VertexTestZ(int(arg & 0xFFFF))
		i.Build.SetExtendedDraw(workload.ExtendedDrawVertexTestZ)
		i.Build.Flush()
	case gbi.ExEndVertexZTestV1:
		i.RSP.EndVertexTestZ()
		i.Build.SetExtendedDraw(workload.ExtendedDrawEndVertexTestZ)
		i.Build.Flush()

	case gbi.ExMatrixGroupV1:
		group := rsp.DefaultTransformGroup()
		group.ID = arg
		i.RSP.MatrixID(group, true)
	case gbi.ExPopMatrixGroupV1:
		i.RSP.PopMatrixID(int(arg & 0xFF))

	case gbi.ExForceBranchV1:
		i.RSP.ForceBranchSet(arg&1 != 0)

	case gbi.ExSetViewportAlignV1:
		origin := uint16(arg >> 16)
		offX := int16(int8(arg >> 8))
		offY := int16(int8(arg))
		i.RSP.SetViewportAlign(origin, offX, offY)

	case gbi.ExPushViewportV1:
		i.ext.Viewport.Set(i.RSP.Viewport)
		i.ext.Viewport.Push()
	case gbi.ExPopViewportV1:
		i.ext.Viewport.Pop()
		i.RSP.SetViewport(i.ext.Viewport.Current())

	case gbi.ExPushScissorV1:
		i.RDP.PushScissor()
	case gbi.ExPopScissorV1:
		i.RDP.PopScissor()

	case gbi.ExPushOtherModeV1:
		i.ext.OtherMode.Set(i.RDP.OtherMode)
		i.ext.OtherMode.Push()
	case gbi.ExPopOtherModeV1:
		i.ext.OtherMode.Pop()
		m := i.ext.OtherMode.Current()
		i.RDP.SetOtherMode(m.High, m.Low)

	case gbi.ExPushCombineV1:
		i.RDP.PushCombine()
	case gbi.ExPopCombineV1:
		i.RDP.PopCombine()

	case gbi.ExPushProjMatrixV1:
		i.ext.ProjMat.Set(i.RSP.Matrix.Proj)
		i.ext.ProjMat.Push()
	case gbi.ExPopProjMatrixV1:
		i.ext.ProjMat.Pop()
		i.RSP.Matrix.Proj = i.ext.ProjMat.Current()
		i.RSP.Matrix.ProjectionChanged = true

	case gbi.ExPushEnvColorV1:
		i.RDP.PushEnvColor()
	case gbi.ExPopEnvColorV1:
		i.RDP.PopEnvColor()
	case gbi.ExPushBlendColorV1:
		i.RDP.PushBlendColor()
	case gbi.ExPopBlendColorV1:
		i.RDP.PopBlendColor()
	case gbi.ExPushFogColorV1:
		i.RDP.PushFogColor()
	case gbi.ExPopFogColorV1:
		i.RDP.PopFogColor()
	case gbi.ExPushFillColorV1:
		i.RDP.PushFillColor()
	case gbi.ExPopFillColorV1:
		i.RDP.PopFillColor()
	case gbi.ExPushPrimColorV1:
		i.RDP.PushPrimColor()
	case gbi.ExPopPrimColorV1:
		i.RDP.PopPrimColor()

	case gbi.ExPushGeometryModeV1:
		i.ext.Geometry.Set(i.RSP.GeometryMode)
		i.ext.Geometry.Push()
	case gbi.ExPopGeometryModeV1:
		i.ext.Geometry.Pop()
		i.RSP.SetGeometryMode(i.ext.Geometry.Current())

	case gbi.ExNoop, gbi.ExPrint, gbi.ExSetRefreshRateV1, gbi.ExForceUpscale2DV1,
		gbi.ExForceTrueBilerpV1, gbi.ExForceScaleLODV1, gbi.ExSetRenderToRAMV1,
		gbi.ExEditGroupByAddressV1, gbi.ExSetDitherNoiseStrengthV1, gbi.ExSetRDRAMExtendedV1,
		gbi.ExTexRectV1, gbi.ExFillRectV1, gbi.ExSetViewportV1, gbi.ExSetScissorV1,
		gbi.ExSetRectAlignV1, gbi.ExSetScissorAlignV1, gbi.ExVertexV1:
		// Recognized but not wired to the pipeline: presentation hints
		// (print/refresh rate/upscale/bilerp/LOD/dither), address-keyed
		// group editing, and the alternate rect/viewport/scissor-by-struct
		// encodings already reachable through the plain gbi.Op path.

	default:
		i.warnOnce(sub, "interp: unknown extended sub-opcode %#x", sub)
	}

	return i.pc + 8, true
}
