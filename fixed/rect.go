package fixed

// Subpixel is the fractional resolution of a Rect coordinate: 4 subpixel
// units per pixel (10.2 fixed point).
const Subpixel = 4

// Rect is a rectangle in 10.2 fixed-point subpixel coordinates, the format
// the RDP uses for scissor rects, tile bounds and draw-rect accumulation.
//
// A Rect is Null when ULX > LRX or ULY > LRY. A non-null Rect is additionally
// Empty when one of its dimensions is exactly zero.
type Rect struct {
	ULX, ULY, LRX, LRY int32
}

// FromPixels builds a Rect from whole-pixel coordinates.
func FromPixels(ulx, uly, lrx, lry int32) Rect {
	return Rect{ULX: ulx * Subpixel, ULY: uly * Subpixel, LRX: lrx * Subpixel, LRY: lry * Subpixel}
}

// NullRect returns a canonical Null rect suitable as a Merge accumulator's
// starting value — unlike the zero Rect{}, which is a real (empty) rect at
// the origin and would otherwise pull every accumulated rect's bounds
// toward (0, 0).
func NullRect() Rect {
	return Rect{ULX: 1, LRX: 0}
}

// Null reports whether the rect represents an empty, ill-formed interval.
func (r Rect) Null() bool {
	return r.ULX > r.LRX || r.ULY > r.LRY
}

// Empty reports whether the rect is non-null but has zero area.
func (r Rect) Empty() bool {
	if r.Null() {
		return false
	}
	return r.ULX == r.LRX || r.ULY == r.LRY
}

func floorDiv4(v int32) int32 {
	if v >= 0 {
		return v / Subpixel
	}
	return -((-v + Subpixel - 1) / Subpixel)
}

func ceilDiv4(v int32) int32 {
	if v >= 0 {
		return (v + Subpixel - 1) / Subpixel
	}
	return -((-v) / Subpixel)
}

// Left returns the whole-pixel left edge, flooring the upper-left subpixel
// coordinate.
func (r Rect) Left() int32 { return floorDiv4(r.ULX) }

// Top returns the whole-pixel top edge, flooring the upper-left subpixel
// coordinate.
func (r Rect) Top() int32 { return floorDiv4(r.ULY) }

// Right returns the whole-pixel right edge, ceiling the lower-right subpixel
// coordinate.
func (r Rect) Right() int32 { return ceilDiv4(r.LRX) }

// Bottom returns the whole-pixel bottom edge, ceiling the lower-right
// subpixel coordinate.
func (r Rect) Bottom() int32 { return ceilDiv4(r.LRY) }

// Width returns the whole-pixel width, computed from the biased Left/Right
// edges rather than raw subtraction.
func (r Rect) Width() int32 { return r.Right() - r.Left() }

// Height returns the whole-pixel height, computed from the biased Top/Bottom
// edges rather than raw subtraction.
func (r Rect) Height() int32 { return r.Bottom() - r.Top() }

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Merge returns the union (bounding rect) of r and o. A null operand does
// not contribute to the result; merging two null rects yields a null rect.
func (r Rect) Merge(o Rect) Rect {
	switch {
	case r.Null():
		return o
	case o.Null():
		return r
	}
	return Rect{
		ULX: minI32(r.ULX, o.ULX),
		ULY: minI32(r.ULY, o.ULY),
		LRX: maxI32(r.LRX, o.LRX),
		LRY: maxI32(r.LRY, o.LRY),
	}
}

// Intersection returns the overlap of r and o. The result may be Null if the
// two rects do not overlap.
func (r Rect) Intersection(o Rect) Rect {
	return Rect{
		ULX: maxI32(r.ULX, o.ULX),
		ULY: maxI32(r.ULY, o.ULY),
		LRX: minI32(r.LRX, o.LRX),
		LRY: minI32(r.LRY, o.LRY),
	}
}

// Contains reports whether the subpixel point (x, y) lies within the rect,
// including its upper-left edge and excluding its lower-right edge.
func (r Rect) Contains(x, y int32) bool {
	if r.Null() {
		return false
	}
	return x >= r.ULX && x < r.LRX && y >= r.ULY && y < r.LRY
}

// FullyInside reports whether r lies entirely within o.
func (r Rect) FullyInside(o Rect) bool {
	if r.Null() {
		return true
	}
	if o.Null() {
		return false
	}
	return r.ULX >= o.ULX && r.ULY >= o.ULY && r.LRX <= o.LRX && r.LRY <= o.LRY
}

// Scaled returns r with both axes scaled by fx and fy respectively. Used to
// convert a rect defined against one framebuffer resolution to another
// (e.g. a tile-copy source rect expressed at a different pixel size).
func (r Rect) Scaled(fx, fy float64) Rect {
	return Rect{
		ULX: int32(float64(r.ULX) * fx),
		ULY: int32(float64(r.ULY) * fy),
		LRX: int32(float64(r.LRX) * fx),
		LRY: int32(float64(r.LRY) * fy),
	}
}
