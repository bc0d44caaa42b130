package interp

import (
	"github.com/gogpu/n64hle/coherency"
	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/gbi"
	"github.com/gogpu/n64hle/rdp"
	"github.com/gogpu/n64hle/workload"
)

// decodeImageHeader unpacks the common fmt(3)@21,siz(2)@19,width(12)@0
// layout this module uses for setTImg/setCImg/setZImg (command.go's
// packing table).
func decodeImageHeader(w0 uint32) (format, size uint8, width uint16) {
	return uint8((w0 >> 21) & 0x7), uint8((w0 >> 19) & 0x3), uint16(w0 & 0xFFF)
}

// opSetTImg executes setTextureImage: binds the source image subsequent
// load operations read from.
func (i *Interpreter) opSetTImg(cmd gbi.Command) {
	fmtv, siz, width := decodeImageHeader(cmd.W0)
	addr := i.Mem.FromSegmentedDMA(cmd.W1)
	i.RDP.SetTextureImage(fmtv, siz, width, addr)
}

// closeFramebufferPair registers whatever the in-progress FramebufferPair
// actually drew against the coherency engine's framebuffer registry, then
// finalizes it (spec.md §4.4's "writes invalidate other FBs" rule, §5's
// pair lifecycle).
func (i *Interpreter) closeFramebufferPair(reason coherency.FlushReason) {
	if colorRect, depthRect, ok := i.Build.ActivePairRects(); ok {
		if !colorRect.Null() && !colorRect.Empty() {
			img := i.RDP.ColorImage
			i.Coh.RecordColorWrite(img.Address, uint32(img.Width), uint32(colorRect.Bottom()), img.Size, img.Format, colorRect)
		}
		if !depthRect.Null() && !depthRect.Empty() {
			i.Coh.RecordDepthWrite(i.RDP.DepthImage.Address, uint32(i.RDP.ColorImage.Width), uint32(depthRect.Bottom()), rdp.Siz16b, depthRect)
		}
	}
	i.Build.SubmitFramebufferPair(reason)
}

// opSetCImg executes setColorImage: rebinding the render target closes out
// whatever FramebufferPair was accumulating against the old one and opens
// a fresh pair against the new binding (spec.md §4.4, §5).
func (i *Interpreter) opSetCImg(cmd gbi.Command) {
	fmtv, siz, width := decodeImageHeader(cmd.W0)
	addr := i.Mem.FromSegmentedDMA(cmd.W1)
	i.closeFramebufferPair(coherency.FlushColorImageChanged)
	i.RDP.SetColorImage(fmtv, siz, width, addr)
	i.Build.BeginFramebufferPair(i.RDP.ColorImage, i.RDP.DepthImage)
}

// opSetZImg executes setDepthImage.
func (i *Interpreter) opSetZImg(cmd gbi.Command) {
	addr := i.Mem.FromSegmentedDMA(cmd.W1)
	i.closeFramebufferPair(coherency.FlushDepthImageChanged)
	i.RDP.SetDepthImage(addr)
	i.Build.BeginFramebufferPair(i.RDP.ColorImage, i.RDP.DepthImage)
}

// decodeTileHeader unpacks setTile's w0/w1 fields per command.go's table.
func decodeTileHeader(w0, w1 uint32) (fmtv, siz uint8, line, tmem uint16, palette, cmt, cms, maskt, masks, shiftt, shifts uint8, index uint8) {
	fmtv = uint8((w0 >> 29) & 0x7)
	siz = uint8((w0 >> 27) & 0x3)
	line = uint16((w0 >> 18) & 0x1FF)
	tmem = uint16((w0 >> 9) & 0x1FF)
	palette = uint8((w0 >> 5) & 0xF)
	cmt = uint8((w1 >> 28) & 0x3)
	maskt = uint8((w1 >> 24) & 0xF)
	shiftt = uint8((w1 >> 20) & 0xF)
	cms = uint8((w1 >> 12) & 0x3)
	masks = uint8((w1 >> 8) & 0xF)
	shifts = uint8((w1 >> 4) & 0xF)
	index = uint8(w1 & 0x7)
	return
}

// opSetTile executes setTile: installs a tile descriptor's static fields.
func (i *Interpreter) opSetTile(cmd gbi.Command) {
	fmtv, siz, line, tmem, palette, cmt, cms, maskt, masks, shiftt, shifts, index := decodeTileHeader(cmd.W0, cmd.W1)
	i.RDP.SetTile(int(index), fmtv, siz, line, tmem, palette, cmt, cms, maskt, masks, shiftt, shifts)
}

// decodeTileSize unpacks setTileSize's index(3)@0 plus the two packed
// (uls,ult)/(lrs,lrt) 12-bit subpixel pairs.
func decodeTileSize(w0, w1 uint32) (index int, uls, ult, lrs, lrt int32) {
	index = int(w0 & 0x7)
	uls = int32((w0 >> 12) & 0xFFF)
	ult = int32(w0 & 0xFFF)
	lrs = int32((w1 >> 12) & 0xFFF)
	lrt = int32(w1 & 0xFFF)
	return
}

// opSetTileSize executes setTileSize.
func (i *Interpreter) opSetTileSize(cmd gbi.Command) {
	index, uls, ult, lrs, lrt := decodeTileSize(cmd.W0, cmd.W1)
	i.RDP.SetTileSize(index, uls, ult, lrs, lrt)
}

// recordLoad runs a resolved LoadOperation past the coherency engine,
// appending whatever operations it returns to the active FramebufferPair's
// pre-draw list and flushing first if the load samples from the currently
// bound render target (spec.md §4.4(a)-(b)).
func (i *Interpreter) recordLoad(op rdp.LoadOperation, width, height uint32, siz uint8) {
	i.Build.RecordLoadOperation(op)
	tile := i.RDP.Tiles[op.TileIndex]
	load := coherency.TextureLoad{
		SrcAddr: op.SrcAddr, Width: width, Height: height,
		Siz: siz, Format: tile.Format, LineBytes: op.SrcLineBytes,
		TMEMStart: int(tile.TMEM), TMEMWords: int(width*height) / 2,
		ULS: int32(op.ULS), ULT: int32(op.ULT),
	}
	ops, flush := i.Coh.CheckTextureLoad(load)
	if flush == coherency.FlushSamplingFromColor {
		i.closeFramebufferPair(flush)
		i.Build.BeginFramebufferPair(i.RDP.ColorImage, i.RDP.DepthImage)
	}
	for _, o := range ops {
		i.Build.AppendStartOp(o)
	}
}

// opLoadTile executes loadTile(tile, uls, ult, lrs, lrt).
func (i *Interpreter) opLoadTile(cmd gbi.Command) {
	index, uls, ult, lrs, lrt := decodeTileSize(cmd.W0, cmd.W1)
	ulsPix, ultPix := int(uls/fixed.Subpixel), int(ult/fixed.Subpixel)
	lrsPix, lrtPix := int(lrs/fixed.Subpixel), int(lrt/fixed.Subpixel)
	op := i.RDP.LoadTile(i.Mem, index, ulsPix, ultPix, lrsPix, lrtPix)
	tile := i.RDP.Tiles[index]
	i.recordLoad(op, uint32(lrsPix-ulsPix), uint32(lrtPix-ultPix), tile.Size)
}

// opLoadBlock executes loadBlock(tile, words, dxt).
func (i *Interpreter) opLoadBlock(cmd gbi.Command) {
	index := int(cmd.W0 & 0x7)
	words := int((cmd.W0 >> 12) & 0xFFF)
	dxt := uint16(cmd.W1)
	op := i.RDP.LoadBlock(i.Mem, index, words, dxt)
	tile := i.RDP.Tiles[index]
	i.recordLoad(op, uint32(words), 1, tile.Size)
}

// opLoadTLUT executes loadTLUT(tile, count).
func (i *Interpreter) opLoadTLUT(cmd gbi.Command) {
	index := int(cmd.W0 & 0x7)
	count := int(cmd.W1)
	op := i.RDP.LoadTLUT(i.Mem, index, count)
	i.recordLoad(op, uint32(count), 1, rdp.Siz16b)
}

// decodeColor unpacks a packed RGBA8888 color word into the RDP's float4
// Color form.
func decodeColor(v uint32) rdp.Color {
	return rdp.Color{
		float32(byte(v>>24)) / 255,
		float32(byte(v>>16)) / 255,
		float32(byte(v>>8)) / 255,
		float32(byte(v)) / 255,
	}
}

func (i *Interpreter) opSetEnvColor(cmd gbi.Command)  { i.RDP.SetEnvColor(decodeColor(cmd.W1)) }
func (i *Interpreter) opSetBlendColor(cmd gbi.Command) { i.RDP.SetBlendColor(decodeColor(cmd.W1)) }
func (i *Interpreter) opSetFogColor(cmd gbi.Command)  { i.RDP.SetFogColor(decodeColor(cmd.W1)) }
func (i *Interpreter) opSetFillColor(cmd gbi.Command) { i.RDP.SetFillColor(cmd.W1) }

func (i *Interpreter) opSetPrimColor(cmd gbi.Command) {
	lodMin := u8(cmd.W0, 8)
	lodFrac := u8(cmd.W0, 0)
	i.RDP.SetPrimColor(lodFrac, lodMin, decodeColor(cmd.W1))
}

func (i *Interpreter) opSetPrimDepth(cmd gbi.Command) {
	z := u16(cmd.W1, 16)
	dz := u16(cmd.W1, 0)
	i.RDP.SetPrimDepth(z, dz)
}

// decodeConvert unpacks setConvert's six signed 9-bit YUV-to-RGB
// coefficients, three per word.
func decodeConvert(w0, w1 uint32) [6]int32 {
	k := func(v uint32, shift uint) int32 {
		raw := int32(v>>shift) & 0x1FF
		if raw&0x100 != 0 {
			raw -= 0x200
		}
		return raw
	}
	return [6]int32{
		k(w0, 18), k(w0, 9), k(w0, 0),
		k(w1, 18), k(w1, 9), k(w1, 0),
	}
}

func (i *Interpreter) opSetConvert(cmd gbi.Command) {
	i.RDP.SetConvert(decodeConvert(cmd.W0, cmd.W1))
}

// decodeKeyTriple unpacks a packed (center, scale) triple, one byte pair
// per channel.
func decodeKeyTriple(v uint64) (center, scale [3]float32) {
	c := func(shift uint) float32 { return float32(uint8(v>>shift)) / 255 }
	return [3]float32{c(40), c(24), c(8)}, [3]float32{c(36), c(20), c(4)}
}

func (i *Interpreter) opSetKeyR(cmd gbi.Command) {
	center, scale := decodeKeyTriple(uint64(cmd.W0)<<32 | uint64(cmd.W1))
	i.RDP.SetKeyCenter([3]float32{center[0], i.RDP.KeyCenter[1], i.RDP.KeyCenter[2]})
	i.RDP.SetKeyScale([3]float32{scale[0], i.RDP.KeyScale[1], i.RDP.KeyScale[2]})
}

func (i *Interpreter) opSetKeyGB(cmd gbi.Command) {
	center, scale := decodeKeyTriple(uint64(cmd.W0)<<32 | uint64(cmd.W1))
	i.RDP.SetKeyCenter([3]float32{i.RDP.KeyCenter[0], center[1], center[2]})
	i.RDP.SetKeyScale([3]float32{i.RDP.KeyScale[0], scale[1], scale[2]})
}

// decodeRectCoords unpacks the 10.2 fixed-point (lrx,lry)/(ulx,uly) pairs
// shared by fillRect, texRect and setScissor, keeping them in subpixel
// units.
func decodeRectCoords(w0, w1 uint32) fixed.Rect {
	lrx := int32((w0 >> 12) & 0xFFF)
	lry := int32(w0 & 0xFFF)
	ulx := int32((w1 >> 12) & 0xFFF)
	uly := int32(w1 & 0xFFF)
	return fixed.Rect{ULX: ulx, ULY: uly, LRX: lrx, LRY: lry}
}

// opFillRect executes fillRect.
func (i *Interpreter) opFillRect(cmd gbi.Command) {
	i.flushOnDrawStateChange()
	i.ensureRectProjection()
	rect := decodeRectCoords(cmd.W0, cmd.W1)
	draw := i.RDP.FillRect(rect)
	i.Build.SetRect(workload.RectDraw{Rect: draw.Rect})
}

// decodeTexRect unpacks texRect's tile(3)@24 plus the four 10.5 fixed-point
// texture-space fields packed across both words' low halves.
func decodeTexRect(w0, w1 uint32) (tile int, s, t, dsdx, dtdy float32) {
	tile = int((w0 >> 24) & 0x7)
	s16 := func(v uint32) float32 { return float32(int16(v)) / 32 }
	s = s16(uint32(w1 >> 16))
	t = s16(w1)
	dsdx = s16(uint32(w0 >> 16))
	dtdy = s16(w0)
	return
}

// opTexRect executes texRect/texRectFlip.
func (i *Interpreter) opTexRect(cmd gbi.Command, flip bool) {
	i.flushOnDrawStateChange()
	i.ensureRectProjection()
	rect := decodeRectCoords(cmd.W0, cmd.W1)
	tile, s, t, dsdx, dtdy := decodeTexRect(cmd.W0, cmd.W1)
	copyMode := i.RDP.OtherMode.CycleType() == rdp.CycleCopy
	draw := i.RDP.TexRect(tile, rect, s, t, dsdx, dtdy, copyMode)
	rd := workload.RectDraw{Rect: draw.Rect, Tile: draw.Tile, S: draw.S, T: draw.T, DSDX: draw.DSDX, DTDY: draw.DTDY}
	if flip {
		rd.DSDX, rd.DTDY = draw.DTDY, draw.DSDX
	}
	i.Build.SetRect(rd)
}

// opSetScissor executes setScissor.
func (i *Interpreter) opSetScissor(cmd gbi.Command) {
	mode := uint8(cmd.W0 >> 24)
	rect := decodeRectCoords(cmd.W0, cmd.W1)
	i.RDP.SetScissor(mode, rect)
}
