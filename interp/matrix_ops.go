package interp

import (
	"github.com/gogpu/n64hle/drawattr"
	"github.com/gogpu/n64hle/gbi"
	"github.com/gogpu/n64hle/rsp"
)

// opMatrix executes matrix(addr, params): load/multiply the 64-byte
// fixed-point matrix at the segment-resolved address into the modelview or
// projection matrix (spec.md §4.2).
func (i *Interpreter) opMatrix(cmd gbi.Command) {
	params := rsp.MatrixParam(u8(cmd.W0, 0))
	i.RSP.Matrix.Matrix(i.Mem, cmd.W1, params)
	i.RDP.Dirty.Mark(drawattr.ProjectionOrViewport)
}

// opPopMatrix executes popMatrix(count): pop up to count entries off the
// modelview stack.
func (i *Interpreter) opPopMatrix(cmd gbi.Command) {
	i.RSP.Matrix.PopMatrix(int(cmd.W1))
	i.RDP.Dirty.Mark(drawattr.ProjectionOrViewport)
}

// moveWord sub-opcode indices, this module's own convention for the
// 8-bit index field documented in command.go's packing table.
const (
	mwSegment     uint8 = 0
	mwFog         uint8 = 1
	mwLightCol    uint8 = 2
	mwNumLight    uint8 = 3
	mwForceBranch uint8 = 4
	mwInsertMat   uint8 = 5
	mwForceMat    uint8 = 6
)

// opMoveWord executes moveWord(index, offset, value): a multiplexed
// setter covering the segment table, fog, per-light color, light count,
// and the supplemented force-branch/insert-matrix/force-matrix paths
// (spec.md §4.2, §9).
func (i *Interpreter) opMoveWord(cmd gbi.Command) {
	index := u8(cmd.W0, 16)
	offset := uint16(cmd.W0 & 0xFFFF)
	value := cmd.W1

	switch index {
	case mwSegment:
		i.RSP.SetSegment(int(offset/4), value)
		i.Mem.SetSegment(int(offset/4), value)
	case mwFog:
		i.RSP.SetFog(int16(value>>16), int16(value))
	case mwLightCol:
		i.RSP.SetLightColor(int(offset), value)
	case mwNumLight:
		i.RSP.SetLightCount(int(value))
	case mwForceBranch:
		i.RSP.ForceBranchSet(value != 0)
	case mwInsertMat:
		if offset&0x3 != 0 {
			i.Build.Warn("UnalignedInsertMatrix", -1, -1, -1, "insertMatrix offset is not 4-byte aligned")
		}
		i.RSP.Matrix.InsertMatrix(uint32(offset), value)
		i.RDP.Dirty.Mark(drawattr.ProjectionOrViewport)
	case mwForceMat:
		i.RSP.Matrix.ForceMatrix(i.Mem, value)
		i.RDP.Dirty.Mark(drawattr.ProjectionOrViewport)
	default:
		i.warnOnce(0xBC, "interp: unknown moveWord index %d", index)
	}
}

// moveMem sub-opcode indices: which RDRAM-backed struct a moveMem command
// installs.
const (
	mmViewport uint8 = 0
	mmLookAt0  uint8 = 1
	mmLookAt1  uint8 = 2
	mmLightBase uint8 = 0x10 // + light index, index in [0, rsp.MaxLights)
)

// opMoveMem executes moveMem(index, addr): loads a viewport, lookat vector,
// or light record from RDRAM at the segment-resolved address (spec.md
// §4.2, §6).
func (i *Interpreter) opMoveMem(cmd gbi.Command) {
	index := u8(cmd.W0, 0)
	addr := i.Mem.FromSegmentedDMA(cmd.W1)

	switch {
	case index == mmViewport:
		i.RSP.SetViewport(rsp.DecodeViewport(i.Mem, addr))
	case index == mmLookAt0:
		i.RSP.SetLookAt(i.Mem, 0, addr)
	case index == mmLookAt1:
		i.RSP.SetLookAt(i.Mem, 1, addr)
	case index >= mmLightBase:
		i.RSP.SetLight(i.Mem, int(index-mmLightBase), addr)
	default:
		i.warnOnce(0xDC, "interp: unknown moveMem index %d", index)
	}
}
