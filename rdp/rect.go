package rdp

import "github.com/gogpu/n64hle/fixed"

// FillRectDraw is the resolved geometry of one fillRect command, ready for
// the workload layer to append as a screen-space quad.
type FillRectDraw struct {
	Rect  fixed.Rect
	Color uint32 // only meaningful outside fill-mode two-cycle blending
}

// FillRect rounds the lower-right corner of rect up to the next whole
// 4-subpixel boundary (spec.md §4.4's documented one-pixel hardware quirk,
// present in both fill and copy cycle types) and returns the draw geometry.
// The RDP itself does not know about "framebuffer pairs" or draw-call
// batching; it only resolves the command's geometry.
func (s *State) FillRect(rect fixed.Rect) FillRectDraw {
	rounded := rect
	rounded.LRX = roundUp4(rect.LRX)
	rounded.LRY = roundUp4(rect.LRY)
	return FillRectDraw{Rect: rounded, Color: s.FillColor.Current()}
}

func roundUp4(v int32) int32 {
	if v%fixed.Subpixel == 0 {
		return v
	}
	if v >= 0 {
		return v + (fixed.Subpixel - v%fixed.Subpixel)
	}
	return v - (v % fixed.Subpixel)
}

// TexRectDraw is the resolved geometry and UV ramp of one texRect command.
type TexRectDraw struct {
	Rect       fixed.Rect
	Tile       int
	S, T       float32 // upper-left texel coordinate (already /32 from the raw 10.5 fixed point)
	DSDX, DTDY float32 // per-pixel texel step
	Copy       bool
}

// TexRect resolves a texRect command. In copy-cycle mode the command's dsdx
// is divided by 4 (copy mode samples four texels per cycle) and the
// lower-right corner is extended by one pixel; in one/two-cycle mode the
// rect is left as specified and the caller (workload) is expected to emit
// it as a two-triangle screen-space quad with a bilinear UV ramp anchored
// at (s, t) and stepped by (dsdx, dtdy) per output pixel.
func (s *State) TexRect(tile int, rect fixed.Rect, sIn, tIn, dsdx, dtdy float32, copyMode bool) TexRectDraw {
	out := TexRectDraw{Tile: tile, S: sIn, T: tIn, DSDX: dsdx, DTDY: dtdy, Copy: copyMode}
	if copyMode {
		out.DSDX = dsdx / 4
		out.Rect = fixed.Rect{
			ULX: rect.ULX, ULY: rect.ULY,
			LRX: rect.LRX + fixed.Subpixel,
			LRY: rect.LRY + fixed.Subpixel,
		}
		return out
	}
	out.Rect = rect
	return out
}

// TriVertex is one of the three vertices drawTris feeds per triangle: a
// screen-space position, a texture coordinate and a packed shade color.
// rsp.Vertex supplies these already projected; the RDP layer only forwards
// them alongside the current tile/combiner binding.
type TriVertex struct {
	X, Y, Z float32
	S, T    float32
	Color   [4]uint8
}

// TrisDraw is the resolved RDP-side state a batch of 3D triangles is drawn
// against: which tile(s)/levels are bound and the vertex stream itself. The
// RDP does not decide how triangles are batched into draw calls — that is
// workload's job — it only resolves the tile/levels binding at the moment
// the command executes.
type TrisDraw struct {
	Tile   int
	Levels int
	Verts  []TriVertex
}

// DrawTris resolves a drawTris(count, pos, tc, col, tile, levels) command.
func (s *State) DrawTris(tile, levels int, verts []TriVertex) TrisDraw {
	return TrisDraw{Tile: tile, Levels: levels, Verts: verts}
}
