package rdp

import (
	"testing"

	"github.com/gogpu/n64hle/fixed"
)

func TestFillRectRoundsLRUpToSubpixelBoundary(t *testing.T) {
	s := New()
	s.SetFillColor(0x0001)
	rect := fixed.FromPixels(0, 0, 319, 239)
	// Nudge lr by a non-multiple-of-4 subpixel amount to exercise rounding.
	rect.LRX += 1
	rect.LRY += 2

	draw := s.FillRect(rect)
	if draw.Rect.LRX%fixed.Subpixel != 0 || draw.Rect.LRY%fixed.Subpixel != 0 {
		t.Fatalf("expected lr rounded to subpixel boundary, got %+v", draw.Rect)
	}
	if draw.Color != 0x0001 {
		t.Fatalf("expected fill color carried through, got %x", draw.Color)
	}
}

func TestFillRectAlreadyAlignedIsUnchanged(t *testing.T) {
	s := New()
	rect := fixed.FromPixels(0, 0, 320, 240)
	draw := s.FillRect(rect)
	if draw.Rect != rect {
		t.Fatalf("expected already-aligned rect unchanged, got %+v", draw.Rect)
	}
}

func TestTexRectCopyModeDividesSlopeAndExtends(t *testing.T) {
	s := New()
	rect := fixed.FromPixels(100, 100, 163, 163)
	draw := s.TexRect(0, rect, 0, 0, 1024, 1024, true)
	if draw.DSDX != 256 {
		t.Fatalf("expected dsdx/4, got %v", draw.DSDX)
	}
	if draw.Rect.LRX != rect.LRX+fixed.Subpixel || draw.Rect.LRY != rect.LRY+fixed.Subpixel {
		t.Fatalf("expected lr extended by one pixel, got %+v", draw.Rect)
	}
}

func TestTexRectNonCopyModeLeavesRectAndSlope(t *testing.T) {
	s := New()
	rect := fixed.FromPixels(0, 0, 50, 50)
	draw := s.TexRect(1, rect, 4, 8, 1024, 2048, false)
	if draw.Rect != rect {
		t.Fatalf("expected rect unchanged in non-copy mode, got %+v", draw.Rect)
	}
	if draw.DSDX != 1024 || draw.DTDY != 2048 {
		t.Fatalf("expected slope unchanged, got dsdx=%v dtdy=%v", draw.DSDX, draw.DTDY)
	}
}

func TestDrawTrisForwardsVertices(t *testing.T) {
	s := New()
	verts := []TriVertex{
		{X: 0, Y: 0, Z: 0, S: 0, T: 0, Color: [4]uint8{255, 255, 255, 255}},
		{X: 10, Y: 0, Z: 0, S: 1, T: 0, Color: [4]uint8{255, 255, 255, 255}},
		{X: 0, Y: 10, Z: 0, S: 0, T: 1, Color: [4]uint8{255, 255, 255, 255}},
	}
	draw := s.DrawTris(2, 1, verts)
	if draw.Tile != 2 || draw.Levels != 1 || len(draw.Verts) != 3 {
		t.Fatalf("unexpected draw: %+v", draw)
	}
}
