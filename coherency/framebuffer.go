package coherency

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/hashutil"
	"github.com/gogpu/n64hle/rdram"
)

// WriteKind classifies the most recent write made to a Framebuffer's RDRAM
// range.
type WriteKind int

const (
	WriteNone WriteKind = iota
	WriteColor
	WriteDepth
	WriteRAMOnly
)

// Framebuffer is a per-RDRAM-address registry entry: the rectangular span of
// RDRAM a color or depth target occupies, plus the bookkeeping the coherency
// engine needs to decide whether a later texture load must be served from a
// GPU-side tile copy instead of raw RAM bytes.
type Framebuffer struct {
	AddressStart uint32
	Width        uint32
	Height       uint32 // max height ever written
	Siz          uint8
	Format       uint8

	LastWriteType      WriteKind
	LastWriteRect      fixed.Rect
	LastWriteTimestamp uint64

	RAMHash       uint64
	ModifiedBytes uint32
	RDRAMChanged  bool

	// discarded marks an FB the engine has given up reconciling with CPU
	// writes (more than a quarter of its bytes differ from RAMHash).
	discarded bool
}

// RowBytes returns the byte stride of one scanline at the FB's pixel size.
func (f *Framebuffer) RowBytes() int {
	return rowBytes(int(f.Width), f.Siz)
}

func rowBytes(width int, siz uint8) int {
	switch siz {
	case 0, 1: // 4bpp, 8bpp
		return width
	case 2: // 16bpp
		return width * 2
	case 3: // 32bpp
		return width * 4
	default:
		return width
	}
}

// AddressEnd returns the address one past the FB's last byte:
// addressStart + rowBytes(width)*height.
func (f *Framebuffer) AddressEnd() uint32 {
	return f.AddressStart + uint32(f.RowBytes()*int(f.Height))
}

// ContainsRange reports whether the FB's RDRAM span fully covers
// [start, start+n).
func (f *Framebuffer) ContainsRange(start uint32, n int) bool {
	end := start + uint32(n)
	return start >= f.AddressStart && end <= f.AddressEnd()
}

// Registry tracks every known Framebuffer by its starting RDRAM address.
type Registry struct {
	entries map[uint32]*Framebuffer
	clock   uint64
}

// NewRegistry returns an empty framebuffer registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uint32]*Framebuffer)}
}

// Get returns the Framebuffer registered at exactly addr, if any.
func (r *Registry) Get(addr uint32) (*Framebuffer, bool) {
	fb, ok := r.entries[addr]
	return fb, ok
}

// RecordWrite registers (or updates) the Framebuffer starting at addr,
// bumping its last-write bookkeeping and the registry's logical clock.
func (r *Registry) RecordWrite(addr uint32, width, height uint32, siz, format uint8, kind WriteKind, rect fixed.Rect) *Framebuffer {
	r.clock++
	fb, ok := r.entries[addr]
	if !ok {
		fb = &Framebuffer{AddressStart: addr}
		r.entries[addr] = fb
	}
	fb.Width = width
	if height > fb.Height {
		fb.Height = height
	}
	fb.Siz, fb.Format = siz, format
	fb.LastWriteType = kind
	fb.LastWriteRect = rect
	fb.LastWriteTimestamp = r.clock
	fb.discarded = false
	r.markOverlapsChanged(addr)
	return fb
}

// markOverlapsChanged sets RDRAMChanged on every other Framebuffer whose
// range overlaps the one just written (spec.md §4.4(d): writes invalidate
// other FBs sharing the same RAM).
func (r *Registry) markOverlapsChanged(writer uint32) {
	wfb := r.entries[writer]
	for addr, fb := range r.entries {
		if addr == writer {
			continue
		}
		if overlaps(fb.AddressStart, fb.AddressEnd(), wfb.AddressStart, wfb.AddressEnd()) {
			fb.RDRAMChanged = true
		}
	}
}

func overlaps(aStart, aEnd, bStart, bEnd uint32) bool {
	return aStart < bEnd && bStart < aEnd
}

// MostRecentContaining returns the Framebuffer whose range fully contains
// [addr, addr+n), breaking ties among equally-recent candidates by
// preferring the one with the smallest (tightest) containing range.
func (r *Registry) MostRecentContaining(addr uint32, n int) (*Framebuffer, bool) {
	var best *Framebuffer
	for _, fb := range r.entries {
		if fb.discarded || !fb.ContainsRange(addr, n) {
			continue
		}
		if best == nil {
			best = fb
			continue
		}
		if fb.LastWriteTimestamp > best.LastWriteTimestamp {
			best = fb
			continue
		}
		if fb.LastWriteTimestamp == best.LastWriteTimestamp && fb.AddressEnd()-fb.AddressStart < best.AddressEnd()-best.AddressStart {
			best = fb
		}
	}
	return best, best != nil
}

// CheckRAM hashes each Framebuffer's known RDRAM range and compares it with
// the stored RAMHash. A mismatch produces a WriteChanges operation carrying
// the CPU-side pixels; if more than a quarter of the FB's bytes differ the
// FB is deemed irrecoverable and queued for deletion (returned by Discards).
func (r *Registry) CheckRAM(mem *rdram.Memory) []Operation {
	var ops []Operation
	for addr, fb := range r.entries {
		if fb.discarded {
			continue
		}
		n := int(fb.AddressEnd() - fb.AddressStart)
		raw := mem.Raw(addr, n)
		sum := hashutil.Sum64(raw)
		if sum == fb.RAMHash {
			continue
		}
		diff := countDiffBytes(raw, fb.ModifiedBytes)
		fb.RAMHash = sum
		if diff*4 > n {
			fb.discarded = true
			continue
		}
		ops = append(ops, Operation{
			Kind: OpWriteChanges,
			WriteChanges: &WriteChangesOp{
				FBAddress: addr,
				Rect:      fixed.FromPixels(0, 0, int32(fb.Width), int32(fb.Height)),
				Pixels:    framebufferChangeImage(raw, int(fb.Width), int(fb.Height), fb.Siz),
			},
		})
	}
	return ops
}

// countDiffBytes is a coarse stand-in for a true byte-level RAM diff: in the
// absence of a shadow copy of "last known" bytes it reports the previously
// recorded modified-byte count, which CheckRAM's caller is expected to have
// kept current via write tracking.
func countDiffBytes(raw []byte, modified uint32) int {
	if int(modified) > len(raw) {
		return len(raw)
	}
	return int(modified)
}

// Discards returns the addresses of every Framebuffer CheckRAM has given up
// reconciling, and removes them from the registry.
func (r *Registry) Discards() []uint32 {
	var out []uint32
	for addr, fb := range r.entries {
		if fb.discarded {
			out = append(out, addr)
			delete(r.entries, addr)
		}
	}
	return out
}

// framebufferChangeImage decodes a framebuffer's raw RDRAM pixel bytes into
// an *image.RGBA staging resource, using golang.org/x/image/draw to perform
// the color-space conversion/copy the way the teacher's image pipeline
// stages pixmaps before a GPU upload.
func framebufferChangeImage(raw []byte, width, height int, siz uint8) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	src := &rdramPixelSource{raw: raw, width: width, height: height, siz: siz}
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	return dst
}

// rdramPixelSource adapts a raw RDRAM byte span into an image.Image so
// image/draw can perform the conversion into an RGBA staging buffer.
type rdramPixelSource struct {
	raw    []byte
	width  int
	height int
	siz    uint8
}

func (s *rdramPixelSource) ColorModel() color.Model { return color.RGBAModel }
func (s *rdramPixelSource) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }
func (s *rdramPixelSource) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return color.RGBA{}
	}
	switch s.siz {
	case 3: // 32bpp RGBA8888
		off := (y*s.width + x) * 4
		if off+4 > len(s.raw) {
			return color.RGBA{}
		}
		return color.RGBA{R: s.raw[off], G: s.raw[off+1], B: s.raw[off+2], A: s.raw[off+3]}
	default: // 16bpp RGBA5551
		off := (y*s.width + x) * 2
		if off+2 > len(s.raw) {
			return color.RGBA{}
		}
		v := uint16(s.raw[off])<<8 | uint16(s.raw[off+1])
		r := uint8((v>>11)&0x1F) << 3
		g := uint8((v>>6)&0x1F) << 3
		b := uint8((v>>1)&0x1F) << 3
		a := uint8(0)
		if v&1 != 0 {
			a = 0xFF
		}
		return color.RGBA{R: r, G: g, B: b, A: a}
	}
}
