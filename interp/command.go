package interp

import "github.com/gogpu/n64hle/gbi"

// Command word packing.
//
// spec.md §6 fixes the wire format of the data *structures* a display list
// points at (vertex, matrix, viewport, light) byte-for-byte, but leaves the
// bit layout of each individual command's own two words unspecified beyond
// "top byte of w0 is the opcode ID". This file is the one place that
// packing is defined for every handler below, chosen to carry exactly the
// fields spec.md §4 describes for each operation:
//
//	OpVtx            w0: count(8)@16, dstIndex(12)@0           w1: addr
//	OpModifyVtx       w0: attr(8)@16, slot(16)@0                w1: value
//	OpTri1            w0: a(8)@16, b(8)@8, c(8)@0               w1: unused
//	OpTri2            w0: a0(8)@16,b0(8)@8,c0(8)@0              w1: a1(8)@16,b1(8)@8,c1(8)@0
//	OpQuad            w0: a(8)@16, b(8)@8, c(8)@0               w1: d(8)@24
//	OpDL              w0: push(1)@16                            w1: segmented addr
//	OpEndDL           w0: -                                     w1: -
//	OpBranchZ         w0: vtxIndex(8)@16, zValue(16)@0          w1: target addr
//	OpBranchW         w0: vtxIndex(8)@16, wValue(16)@0          w1: target addr
//	OpMatrix          w0: params(8)@0                           w1: segmented addr
//	OpPopMatrix       w0: -                                     w1: count
//	OpMoveWord        w0: index(8)@16, offset(16)@0             w1: value
//	OpMoveMem         w0: index(8)@0                            w1: segmented addr
//	OpTexture         w0: levels(8)@16, tile(8)@8, on(8)@0      w1: sc(16)@16, tc(16)@0
//	SetGeometryMode/Clear  w0: -                                w1: mask
//	SetOtherModeH/L   w0: -                                     w1: value
//	SetCombine        w0: hi(24)@0                              w1: lo(32)
//	SetTImg/CImg/ZImg w0: fmt(3)@21,siz(2)@19,width(12)@0       w1: addr
//	SetTile           w0: fmt(3)@29,siz(2)@27,line(9)@18,tmem(9)@9,palette(4)@5  w1: cmt(2)@28,maskt(4)@24,shiftt(4)@20,cms(2)@12,masks(4)@8,shifts(4)@4, index(3)@0
//	SetTileSize       w0: index(3)@0, uls(12)@12, ult(12)@0... (see decodeTileSize)  w1: lrs(12)@12, lrt(12)@0
//	LoadTile          same fields as SetTileSize (decodeTileSize)
//	LoadBlock         w0: words(12)@12, index(3)@0              w1: dxt(16)@0
//	LoadTLUT          w0: index(3)@0                            w1: count
//	SetEnv/Blend/Fog/FillColor  w0: -                           w1: packed RGBA8888 (fill: raw 32-bit)
//	SetPrimColor      w0: lodMin(8)@8, lodFrac(8)@0             w1: packed RGBA8888
//	FillRect          w0: lrx(12)@12,lry(12)@0                  w1: ulx(12)@12,uly(12)@0 (all whole pixels)
//	TexRect/Flip      see decodeRectCoords/decodeTexRect        w1: see decodeRectCoords/decodeTexRect
//	SetScissor        w0: mode(2)@24,lrx(12)@12,lry(12)@0       w1: ulx(12)@12,uly(12)@0
//	SetConvert        w0: k0..k2 packed                         w1: k3..k5 packed (see decodeConvert)
//	SetKeyR/GB        w1-packed center/scale triples
//	SetPrimDepth      w0: -                                     w1: z(16)@16, dz(16)@0
//
// Extended-hook commands (gbi.OpExtendedHook) keep the RT64 wire format
// spec.md §4.1/§6 and gbi.HookMagic/gbi.DefaultExtendedOpcode already
// define: w0's low 24 bits carry gbi.HookMagic, and — once the hook has
// been enabled — the RT64-extended command's own opcode byte (the second
// word's top byte) selects a gbi.ExtendedOp from the secondary table.

func u8(v uint32, shift uint) uint8  { return uint8(v >> shift) }
func u16(v uint32, shift uint) uint16 { return uint16(v >> shift) }

func param3(c gbi.Command) (a, b, d uint8) {
	return u8(c.W0, 16), u8(c.W0, 8), u8(c.W0, 0)
}
