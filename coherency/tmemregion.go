package coherency

import "github.com/gogpu/n64hle/fixed"

// FramebufferTile describes the rectangle of a live framebuffer a TMEM
// region's bytes were loaded from, when that region originated from a GPU
// target rather than CPU-written RAM.
type FramebufferTile struct {
	FBAddress uint32
	Rect      fixed.Rect
	LineBytes int
	Siz       uint8
}

// TMEMRegion is a half-open [Start, End) interval of TMEM words, optionally
// bound to a FramebufferTile and a tile-copy id.
type TMEMRegion struct {
	Start, End int

	HasTile    bool
	Tile       FramebufferTile
	TileCopyID int
}

func (r TMEMRegion) overlaps(start, end int) bool {
	return r.Start < end && start < r.End
}

// RegionList maintains activeRegionsTMEM: a non-overlapping list of
// half-open TMEM-word intervals ordered by insertion.
type RegionList struct {
	regions []TMEMRegion
}

// Regions returns the current non-overlapping region list in insertion
// order.
func (l *RegionList) Regions() []TMEMRegion {
	return l.regions
}

// Insert wraps [tmemStart, tmemStart+tmemWords) around tmemMask+1 and
// records it as a new region, first discarding whatever it overlaps so the
// non-overlap invariant holds. In rgba32 mode the insert is split into at
// most two sub-inserts, one per TMEM half (TMEM halves are (tmemMask+1)/2
// words wide), matching insertRegionsTMEM.
func (l *RegionList) Insert(tmemStart, tmemWords, tmemMask int, rgba32 bool, tile FramebufferTile, tileCopyID int) {
	span := tmemMask + 1
	start := tmemStart & tmemMask
	if !rgba32 {
		l.insertOne(start, tmemWords, span, tile, tileCopyID)
		return
	}
	half := span / 2
	lowerWords := tmemWords
	if lowerWords > half {
		lowerWords = half
	}
	l.insertOne(start%half, lowerWords, half, tile, tileCopyID)
	l.insertOne(half+(start%half), lowerWords, span, tile, tileCopyID)
}

// insertOne inserts a single [start, start+words) interval, wrapping at
// span and splitting across the wrap point if necessary.
func (l *RegionList) insertOne(start, words, span int, tile FramebufferTile, tileCopyID int) {
	end := start + words
	if end <= span {
		l.discard(start, end)
		l.regions = append(l.regions, TMEMRegion{Start: start, End: end, HasTile: true, Tile: tile, TileCopyID: tileCopyID})
		return
	}
	// Wraps around the end of TMEM: split into a tail piece and a
	// wrapped-around head piece at the start of the address space.
	l.discard(start, span)
	l.regions = append(l.regions, TMEMRegion{Start: start, End: span, HasTile: true, Tile: tile, TileCopyID: tileCopyID})
	l.discard(0, end-span)
	l.regions = append(l.regions, TMEMRegion{Start: 0, End: end - span, HasTile: true, Tile: tile, TileCopyID: tileCopyID})
}

// Discard removes [tmemStart, tmemStart+tmemWords) from every existing
// region, splitting any region that only partially overlaps into left/right
// residuals and dropping any region fully covered, matching
// discardRegionsTMEM.
func (l *RegionList) Discard(tmemStart, tmemWords int) {
	l.discard(tmemStart, tmemStart+tmemWords)
}

func (l *RegionList) discard(start, end int) {
	var out []TMEMRegion
	for _, r := range l.regions {
		if !r.overlaps(start, end) {
			out = append(out, r)
			continue
		}
		if r.Start < start {
			out = append(out, TMEMRegion{Start: r.Start, End: start, HasTile: r.HasTile, Tile: r.Tile, TileCopyID: r.TileCopyID})
		}
		if r.End > end {
			out = append(out, TMEMRegion{Start: end, End: r.End, HasTile: r.HasTile, Tile: r.Tile, TileCopyID: r.TileCopyID})
		}
	}
	l.regions = out
}

// Find returns the region (if any) whose interval overlaps
// [tmemStart, tmemStart+tmemWords), preferring the most recently inserted
// match (the end of the insertion-ordered list).
func (l *RegionList) Find(tmemStart, tmemWords int) (TMEMRegion, bool) {
	end := tmemStart + tmemWords
	for i := len(l.regions) - 1; i >= 0; i-- {
		if l.regions[i].overlaps(tmemStart, end) {
			return l.regions[i], true
		}
	}
	return TMEMRegion{}, false
}
