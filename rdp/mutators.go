package rdp

import (
	"github.com/gogpu/n64hle/drawattr"
	"github.com/gogpu/n64hle/fixed"
)

// SetColorImage binds the color (render target) image. Any RDP command
// that rebinds a framebuffer image always marks FramebufferPair dirty so
// the accumulator flushes before the new binding takes effect.
func (s *State) SetColorImage(fmt, siz uint8, width uint16, address uint32) {
	s.ColorImage = ImageDescriptor{Format: fmt, Size: siz, Width: width, Address: address, Changed: true}
	s.Dirty.Mark(drawattr.FramebufferPair)
}

// SetDepthImage binds the depth image.
func (s *State) SetDepthImage(address uint32) {
	s.DepthImage.Address = address
	s.DepthImage.Changed = true
	s.Dirty.Mark(drawattr.FramebufferPair)
}

// SetTextureImage binds the source image subsequent load operations read
// from.
func (s *State) SetTextureImage(fmt, siz uint8, width uint16, address uint32) {
	s.TextureImage = ImageDescriptor{Format: fmt, Size: siz, Width: width, Address: address}
}

// SetCombine installs the two-cycle color combiner pattern.
func (s *State) SetCombine(raw uint64) {
	s.Combine = DecodeCombine(raw)
	s.Dirty.Mark(drawattr.Combine)
}

// PushCombine / PopCombine manage the combine extended stack.
func (s *State) PushCombine() { s.CombineStk.Set(s.Combine); s.CombineStk.Push() }
func (s *State) PopCombine() {
	s.CombineStk.Pop()
	s.Combine = s.CombineStk.Current()
	s.Dirty.Mark(drawattr.Combine)
}

// SetTile installs the static fields of tile descriptor index.
func (s *State) SetTile(index int, fmt, siz uint8, line uint16, tmem uint16, palette, cmt, cms, maskt, masks, shiftt, shifts uint8) {
	if index < 0 || index >= len(s.Tiles) {
		return
	}
	t := &s.Tiles[index]
	t.Format, t.Size, t.Line, t.TMEM, t.Palette = fmt, siz, line, tmem, palette
	t.CMT, t.CMS, t.MaskT, t.MaskS, t.ShiftT, t.ShiftS = cmt, cms, maskt, masks, shiftt, shifts
	s.Dirty.Mark(drawattr.TileState)
}

// SetTileSize installs the subpixel sampling window for tile index.
func (s *State) SetTileSize(index int, uls, ult, lrs, lrt int32) {
	if index < 0 || index >= len(s.Tiles) {
		return
	}
	s.Tiles[index].SetTileSize(uls, ult, lrs, lrt)
	s.Dirty.Mark(drawattr.TileState)
}

func (s *State) SetEnvColor(c Color)   { s.EnvColor.Set(c); s.Dirty.Mark(drawattr.EnvColor) }
func (s *State) PushEnvColor()         { s.EnvColor.Push() }
func (s *State) PopEnvColor()          { s.EnvColor.Pop(); s.Dirty.Mark(drawattr.EnvColor) }

func (s *State) SetBlendColor(c Color) { s.BlendColor.Set(c); s.Dirty.Mark(drawattr.BlendColor) }
func (s *State) PushBlendColor()       { s.BlendColor.Push() }
func (s *State) PopBlendColor()        { s.BlendColor.Pop(); s.Dirty.Mark(drawattr.BlendColor) }

func (s *State) SetFogColor(c Color) { s.FogColor.Set(c); s.Dirty.Mark(drawattr.FogColor) }
func (s *State) PushFogColor()       { s.FogColor.Push() }
func (s *State) PopFogColor()        { s.FogColor.Pop(); s.Dirty.Mark(drawattr.FogColor) }

func (s *State) SetFillColor(v uint32) { s.FillColor.Set(v); s.Dirty.Mark(drawattr.FillColor) }
func (s *State) PushFillColor()        { s.FillColor.Push() }
func (s *State) PopFillColor()         { s.FillColor.Pop(); s.Dirty.Mark(drawattr.FillColor) }

// SetPrimColor also carries the LOD fraction/min fields packed alongside
// the color in the real command.
func (s *State) SetPrimColor(lodFrac, lodMin uint8, c Color) {
	s.PrimColor.Set(c)
	s.PrimLODFrac, s.PrimLODMin = lodFrac, lodMin
	s.Dirty.Mark(drawattr.PrimColor)
}
func (s *State) PushPrimColor() { s.PrimColor.Push() }
func (s *State) PopPrimColor()  { s.PrimColor.Pop(); s.Dirty.Mark(drawattr.PrimColor) }

func (s *State) SetPrimDepth(z, dz uint16) {
	s.PrimDepthZ, s.PrimDepthDZ = z, dz
	s.Dirty.Mark(drawattr.PrimDepth)
}

func (s *State) SetConvert(k [6]int32) {
	s.ConvertK = k
	s.Dirty.Mark(drawattr.ConvertK)
}

func (s *State) SetKeyCenter(c [3]float32) { s.KeyCenter = c; s.Dirty.Mark(drawattr.KeyCenterScale) }
func (s *State) SetKeyScale(c [3]float32)  { s.KeyScale = c; s.Dirty.Mark(drawattr.KeyCenterScale) }

// SetScissor installs the scissor rect and clamp mode.
func (s *State) SetScissor(mode uint8, rect fixed.Rect) {
	s.Scissor.Set(ScissorState{Rect: rect, Mode: mode})
	s.Dirty.Mark(drawattr.Scissor)
}
func (s *State) PushScissor() { s.Scissor.Push() }
func (s *State) PopScissor()  { s.Scissor.Pop(); s.Dirty.Mark(drawattr.Scissor) }

// SetOtherMode installs both halves of the other-mode register.
func (s *State) SetOtherMode(high, low uint32) {
	s.OtherMode = OtherMode{High: high, Low: low}
	s.Dirty.Mark(drawattr.OtherMode)
}
