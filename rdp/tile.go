package rdp

// Pixel sizes a tile or image descriptor can carry.
const (
	Siz4b  = 0
	Siz8b  = 1
	Siz16b = 2
	Siz32b = 3
)

// Image formats.
const (
	FmtRGBA = 0
	FmtYUV  = 1
	FmtCI   = 2
	FmtIA   = 3
	FmtI    = 4
)

// Tile is one of the eight RDP tile descriptors configuring a sampling
// window over TMEM.
type Tile struct {
	Format  uint8
	Size    uint8
	Line    uint16 // stride in 64-bit words
	TMEM    uint16 // TMEM word offset
	Palette uint8

	CMS, CMT     uint8 // mirror/clamp flags
	MaskS, MaskT uint8
	ShiftS, ShiftT uint8

	ULS, ULT, LRS, LRT int32 // subpixel bounds (10.2-ish s/t fixed point)

	ReplacementHash uint64
}

// SetTileSize installs the subpixel sampling bounds for the tile.
func (t *Tile) SetTileSize(uls, ult, lrs, lrt int32) {
	t.ULS, t.ULT, t.LRS, t.LRT = uls, ult, lrs, lrt
}

// PixelBytes returns the number of bytes one texel occupies for the tile's
// pixel size (4-bit and 8-bit both report a minimum of 1).
func PixelBytes(siz uint8) int {
	switch siz {
	case Siz4b:
		return 1 // packed two-per-byte; callers must handle separately.
	case Siz8b:
		return 1
	case Siz16b:
		return 2
	case Siz32b:
		return 4
	default:
		return 1
	}
}

// LineBytes returns the number of bytes in one scanline of width pixels at
// the given pixel size, matching the RDP's line/stride accounting.
func LineBytes(width int, siz uint8) int {
	switch siz {
	case Siz4b:
		return (width + 1) / 2
	case Siz8b:
		return width
	case Siz16b:
		return width * 2
	case Siz32b:
		return width * 4
	default:
		return width
	}
}
