package fixed

import "testing"

func TestRectNullEmpty(t *testing.T) {
	cases := []struct {
		name  string
		r     Rect
		null  bool
		empty bool
	}{
		{"normal", FromPixels(0, 0, 10, 10), false, false},
		{"null-x", Rect{ULX: 40, ULY: 0, LRX: 0, LRY: 40}, true, false},
		{"null-y", Rect{ULX: 0, ULY: 40, LRX: 40, LRY: 0}, true, false},
		{"empty-w", Rect{ULX: 0, ULY: 0, LRX: 0, LRY: 40}, false, true},
		{"empty-h", Rect{ULX: 0, ULY: 0, LRX: 40, LRY: 0}, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r.Null(); got != c.null {
				t.Errorf("Null() = %v, want %v", got, c.null)
			}
			if got := c.r.Empty(); got != c.empty {
				t.Errorf("Empty() = %v, want %v", got, c.empty)
			}
		})
	}
}

func TestRectEdgeBias(t *testing.T) {
	// 1 subpixel = quarter pixel; ul floors, lr ceils.
	r := Rect{ULX: 1, ULY: 1, LRX: 1277, LRY: 957} // spec scenario 1 rounding check nearby
	if got := r.Left(); got != 0 {
		t.Errorf("Left() = %d, want 0", got)
	}
	if got := r.Right(); got != 320 {
		t.Errorf("Right() = %d, want 320", got)
	}
}

func TestRectIntersectionSelf(t *testing.T) {
	r := FromPixels(10, 10, 50, 50)
	if got := r.Intersection(r); got != r {
		t.Errorf("A intersect A = %+v, want %+v", got, r)
	}
}

func TestRectIntersectionCommutative(t *testing.T) {
	a := FromPixels(0, 0, 100, 100)
	b := FromPixels(50, 50, 150, 150)
	if a.Intersection(b) != b.Intersection(a) {
		t.Errorf("intersection not commutative")
	}
}

func TestRectMergeContains(t *testing.T) {
	a := FromPixels(0, 0, 10, 10)
	b := FromPixels(20, 20, 30, 30)
	m := a.Merge(b)
	if !a.FullyInside(m) || !b.FullyInside(m) {
		t.Errorf("merge %+v does not contain both operands", m)
	}
}

func TestRectMergeNullOperand(t *testing.T) {
	var null Rect
	null.ULX, null.LRX = 10, 0 // force Null()
	a := FromPixels(1, 1, 2, 2)
	if got := a.Merge(null); got != a {
		t.Errorf("Merge with null operand = %+v, want %+v", got, a)
	}
}

func TestFillRectLRRounding(t *testing.T) {
	// spec scenario 1: fillRect(0,0,319,239) in fill mode rounds lr up to
	// the next 4-subpixel boundary producing a (0,0,1280,960) draw rect.
	ulx, uly := int32(0), int32(0)
	lrx, lry := int32(319*4+3), int32(239*4+3) // lr coordinates come in as subpixels already biased by the caller
	r := Rect{ULX: ulx, ULY: uly, LRX: (lrx + 3) &^ 3, LRY: (lry + 3) &^ 3}
	if r.LRX != 1280 || r.LRY != 960 {
		t.Errorf("got lr=(%d,%d), want (1280,960)", r.LRX, r.LRY)
	}
}
