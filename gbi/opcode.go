package gbi

// Microcode identifies which display-list opcode table is in effect.
// Different microcodes assign different raw opcode bytes to the same
// logical operation; the interpreter dispatches through a table keyed by
// Microcode rather than hard-coding one family.
type Microcode uint8

const (
	F3D Microcode = iota
	F3DEX2
)

// Op is a microcode-independent logical display-list operation. Every
// microcode's raw opcode table maps its byte values onto this set so the
// interp package's handlers are written once, not once per microcode.
type Op uint8

const (
	OpUnknown Op = iota
	OpNoop
	OpVtx
	OpModifyVtx
	OpTri1
	OpTri2
	OpQuad
	OpLine3D
	OpDL
	OpEndDL
	OpBranchZ
	OpBranchW
	OpMatrix
	OpPopMatrix
	OpMoveWord
	OpMoveMem
	OpTexture
	OpSetGeometryMode
	OpClearGeometryMode
	OpSetOtherModeH
	OpSetOtherModeL
	OpSetCombine
	OpSetTImg
	OpSetCImg
	OpSetZImg
	OpSetTile
	OpSetTileSize
	OpLoadTile
	OpLoadBlock
	OpLoadTLUT
	OpSetEnvColor
	OpSetPrimColor
	OpSetBlendColor
	OpSetFogColor
	OpSetFillColor
	OpFillRect
	OpTexRect
	OpTexRectFlip
	OpSetScissor
	OpSetConvert
	OpSetKeyR
	OpSetKeyGB
	OpSetPrimDepth
	OpRDPSetOtherMode
	OpSyncLoad
	OpSyncPipe
	OpSyncTile
	OpSyncFull
	OpSetVertexColorPD
	OpVtxPD
	OpExtendedHook
)

// Table maps the 256 possible opcode bytes of one microcode to logical
// operations. Unmapped entries default to OpUnknown.
type Table [256]Op

// F3DTable is the opcode table for the original F3D microcode family. The
// hook opcode for F3D is the otherwise-unused G_SPNOOP byte, 0x00.
var F3DTable = buildF3DTable()

// F3DEX2Table is the opcode table for the F3DEX2 microcode family, used by
// the large majority of retail N64 titles. Its hook opcode is 0xE0.
var F3DEX2Table = buildF3DEX2Table()

func buildF3DTable() Table {
	var t Table
	t[0x00] = OpExtendedHook // G_SPNOOP doubles as the RT64 hook on F3D.
	t[0x01] = OpMatrix
	t[0x03] = OpMoveMem
	t[0x04] = OpVtx
	t[0x06] = OpDL
	t[0x07] = OpLine3D
	t[0x09] = OpSetGeometryMode
	t[0x0A] = OpClearGeometryMode
	t[0x0D] = OpMoveWord
	t[0x0E] = OpPopMatrix
	t[0xB1] = OpTri2
	t[0xB2] = OpModifyVtx
	t[0xB3] = OpBranchZ
	t[0xB4] = OpTri1
	t[0xB6] = OpQuad
	t[0xB8] = OpEndDL
	t[0xB9] = OpSetOtherModeL
	t[0xBA] = OpSetOtherModeH
	t[0xBB] = OpTexture
	addRDPOps(&t)
	return t
}

func buildF3DEX2Table() Table {
	var t Table
	t[0xE0] = OpExtendedHook
	t[0xDA] = OpMatrix
	t[0xDC] = OpMoveWord
	t[0xDD] = OpMoveMem
	t[0x01] = OpVtx
	t[0x02] = OpModifyVtx
	t[0x03] = OpBranchZ
	t[0x04] = OpBranchW
	t[0x05] = OpTri1
	t[0x06] = OpTri2
	t[0x07] = OpQuad
	t[0xD8] = OpPopMatrix
	t[0xD7] = OpTexture
	t[0xD9] = OpSetGeometryMode
	t[0xB7] = OpClearGeometryMode
	t[0xB9] = OpSetOtherModeL
	t[0xB8] = OpSetOtherModeH
	t[0xDE] = OpDL
	t[0xDF] = OpEndDL
	t[0xAF] = OpLine3D
	addRDPOps(&t)
	return t
}

// addRDPOps installs the RDP-side opcodes shared by both F3D and F3DEX2
// display lists: every microcode forwards these bytes straight through to
// the RDP state machine regardless of the geometry-side opcode layout.
func addRDPOps(t *Table) {
	t[0xFF] = OpSetCImg
	t[0xFE] = OpSetZImg
	t[0xFD] = OpSetTImg
	t[0xFC] = OpSetCombine
	t[0xFB] = OpSetEnvColor
	t[0xFA] = OpSetPrimColor
	t[0xF9] = OpSetBlendColor
	t[0xF8] = OpSetFogColor
	t[0xF7] = OpSetFillColor
	t[0xF6] = OpFillRect
	t[0xF5] = OpSetTile
	t[0xF4] = OpLoadTile
	t[0xF3] = OpLoadBlock
	t[0xF2] = OpSetTileSize
	t[0xF1] = OpLoadTLUT
	t[0xF0] = OpRDPSetOtherMode
	t[0xEF] = OpSetOtherModeH // legacy alias used by some microcodes
	t[0xEE] = OpSetScissor
	t[0xED] = OpSetPrimDepth
	t[0xEC] = OpSetConvert
	t[0xEB] = OpSetKeyR
	t[0xEA] = OpSetKeyGB
	t[0xE5] = OpTexRect
	t[0xE4] = OpTexRectFlip
	t[0xE7] = OpSyncFull
	t[0xE6] = OpSyncPipe
	t[0xE9] = OpSyncLoad
	t[0xE8] = OpSyncTile
}
