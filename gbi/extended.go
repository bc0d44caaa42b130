package gbi

// The RT64 extended hook: a reserved opcode (G_SPNOOP on F3D, 0xE0 on
// F3DEX2) carrying a 24-bit magic number in W0 that signals an out-of-band
// command channel, and a handful of top-level hook operations selected by
// the top byte of W1.
const (
	// HookMagic is 0x5254 ("RT" in ASCII) followed by 0x64, packed into
	// the low 24 bits of W0.
	HookMagic = 0x525464

	HookOpGetVersion = 0x0
	HookOpEnable     = 0x1
	HookOpDisable    = 0x2
	HookOpDL         = 0x3
	HookOpBranch     = 0x4
)

// DefaultExtendedOpcode is the sub-opcode byte (top nibble of W1 in the
// hook command, per spec.md §4.1) that dispatches into the secondary table
// of extended commands once HookOpEnable has been issued.
const DefaultExtendedOpcode = 0x64

// ExtendedOp identifies one of the ~45 extended commands unlocked by the
// RT64 hook once enabled, numbered identically to the original G_EX_*
// constants.
type ExtendedOp uint32

const (
	ExNoop                  ExtendedOp = 0x00
	ExPrint                 ExtendedOp = 0x01
	ExTexRectV1             ExtendedOp = 0x02
	ExFillRectV1            ExtendedOp = 0x03
	ExSetViewportV1         ExtendedOp = 0x04
	ExSetScissorV1          ExtendedOp = 0x05
	ExSetRectAlignV1        ExtendedOp = 0x06
	ExSetViewportAlignV1    ExtendedOp = 0x07
	ExSetScissorAlignV1     ExtendedOp = 0x08
	ExSetRefreshRateV1      ExtendedOp = 0x09
	ExVertexZTestV1         ExtendedOp = 0x0A
	ExEndVertexZTestV1      ExtendedOp = 0x0B
	ExMatrixGroupV1         ExtendedOp = 0x0C
	ExPopMatrixGroupV1      ExtendedOp = 0x0D
	ExForceUpscale2DV1      ExtendedOp = 0x0E
	ExForceTrueBilerpV1     ExtendedOp = 0x0F
	ExForceScaleLODV1       ExtendedOp = 0x10
	ExForceBranchV1         ExtendedOp = 0x11
	ExSetRenderToRAMV1      ExtendedOp = 0x12
	ExEditGroupByAddressV1  ExtendedOp = 0x13
	ExVertexV1              ExtendedOp = 0x14
	ExPushViewportV1        ExtendedOp = 0x15
	ExPopViewportV1         ExtendedOp = 0x16
	ExPushScissorV1         ExtendedOp = 0x17
	ExPopScissorV1          ExtendedOp = 0x18
	ExPushOtherModeV1       ExtendedOp = 0x19
	ExPopOtherModeV1        ExtendedOp = 0x1A
	ExPushCombineV1         ExtendedOp = 0x1B
	ExPopCombineV1          ExtendedOp = 0x1C
	ExPushProjMatrixV1      ExtendedOp = 0x1D
	ExPopProjMatrixV1       ExtendedOp = 0x1E
	ExPushEnvColorV1        ExtendedOp = 0x1F
	ExPopEnvColorV1         ExtendedOp = 0x20
	ExPushBlendColorV1      ExtendedOp = 0x21
	ExPopBlendColorV1       ExtendedOp = 0x22
	ExPushFogColorV1        ExtendedOp = 0x23
	ExPopFogColorV1         ExtendedOp = 0x24
	ExPushFillColorV1       ExtendedOp = 0x25
	ExPopFillColorV1        ExtendedOp = 0x26
	ExPushPrimColorV1       ExtendedOp = 0x27
	ExPopPrimColorV1        ExtendedOp = 0x28
	ExPushGeometryModeV1    ExtendedOp = 0x29
	ExPopGeometryModeV1     ExtendedOp = 0x2A
	ExSetDitherNoiseStrengthV1 ExtendedOp = 0x2B
	ExSetRDRAMExtendedV1    ExtendedOp = 0x2C
	ExMax                   ExtendedOp = 0x2D
)

// Origin alignment anchors used by the extended viewport/scissor/rect
// alignment commands.
const (
	ExOriginNone   uint16 = 0x800
	ExOriginLeft   uint16 = 0x0
	ExOriginCenter uint16 = 0x200
	ExOriginRight  uint16 = 0x400
)
