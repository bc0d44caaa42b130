package rdp

import (
	"testing"

	"github.com/gogpu/n64hle/drawattr"
	"github.com/gogpu/n64hle/fixed"
)

func TestSetColorImageMarksFramebufferPair(t *testing.T) {
	s := New()
	s.Dirty.Clear()
	s.SetColorImage(FmtRGBA, Siz16b, 320, 0x10000)
	if !s.Dirty.Has(drawattr.FramebufferPair) {
		t.Fatal("expected FramebufferPair dirty bit")
	}
	if s.ColorImage.Address != 0x10000 || s.ColorImage.Width != 320 {
		t.Fatalf("unexpected color image: %+v", s.ColorImage)
	}
}

func TestCombineStackRoundTrip(t *testing.T) {
	s := New()
	s.SetCombine(0x1)
	first := s.Combine
	s.PushCombine()
	s.SetCombine(0x2)
	if s.Combine == first {
		t.Fatal("combine should have changed")
	}
	s.PopCombine()
	if s.Combine.Raw != first.Raw {
		t.Fatalf("expected combine restored to %v, got %v", first, s.Combine)
	}
}

func TestScissorPushPop(t *testing.T) {
	s := New()
	initial := s.Scissor.Current()
	s.PushScissor()
	s.SetScissor(0, fixed.FromPixels(10, 10, 100, 100))
	s.PushScissor()
	s.SetScissor(0, fixed.FromPixels(0, 0, 50, 50))
	s.PopScissor()
	if s.Scissor.Current().Rect.ULX != 10*fixed.Subpixel {
		t.Fatalf("expected scissor restored, got %+v", s.Scissor.Current())
	}
	s.PopScissor()
	if s.Scissor.Current() != initial {
		t.Fatalf("expected scissor back to reset state, got %+v", s.Scissor.Current())
	}
}

func TestSetTileMarksTileState(t *testing.T) {
	s := New()
	s.Dirty.Clear()
	s.SetTile(0, FmtRGBA, Siz16b, 16, 0, 0, 0, 0, 0, 0, 0, 0)
	if !s.Dirty.Has(drawattr.TileState) {
		t.Fatal("expected TileState dirty bit")
	}
	if s.Tiles[0].Format != FmtRGBA || s.Tiles[0].Line != 16 {
		t.Fatalf("unexpected tile: %+v", s.Tiles[0])
	}
}

func TestSetTileSizeOutOfRangeIsNoop(t *testing.T) {
	s := New()
	s.SetTileSize(99, 0, 0, 10, 10)
}

func TestFillColorStack(t *testing.T) {
	s := New()
	s.SetFillColor(0xAABBCCDD)
	s.PushFillColor()
	s.SetFillColor(0x11223344)
	s.PopFillColor()
	if s.FillColor.Current() != 0xAABBCCDD {
		t.Fatalf("expected fill color restored, got %x", s.FillColor.Current())
	}
}

func TestSetOtherModeMarksDirty(t *testing.T) {
	s := New()
	s.Dirty.Clear()
	s.SetOtherMode(0x00080CFF, 0x3)
	if !s.Dirty.Has(drawattr.OtherMode) {
		t.Fatal("expected OtherMode dirty bit")
	}
	if s.OtherMode.Low != 0x3 {
		t.Fatalf("expected low word installed, got %x", s.OtherMode.Low)
	}
}
