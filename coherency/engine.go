package coherency

import (
	"github.com/gogpu/n64hle/fixed"
	"github.com/gogpu/n64hle/rdram"
)

// FlushReason names why a FramebufferPair must be finalized and a new one
// started, mirroring the enum workload.FramebufferPair's lifecycle is
// bracketed by.
type FlushReason int

const (
	FlushNone FlushReason = iota
	FlushSamplingFromColor
	FlushSamplingFromDepth
	FlushColorImageChanged
	FlushDepthImageChanged
	FlushProcessDisplayListsEnd
)

// Engine ties together the framebuffer registry, the TMEM region algebra
// and the tile-copy arena: the full state the coherency subsystem needs to
// decide, for any given texture load, whether it must be served from a GPU
// snapshot instead of raw RDRAM bytes.
type Engine struct {
	Framebuffers *Registry
	Regions      *RegionList
	TileCopies   *TileCopyArena

	TMEMMask int
}

// New returns a coherency engine sized for a tmemWords-word TMEM (512 for
// the RDP's 4 KiB TMEM).
func New(tmemWords int) *Engine {
	return &Engine{
		Framebuffers: NewRegistry(),
		Regions:      &RegionList{},
		TileCopies:   NewTileCopyArena(),
		TMEMMask:     tmemWords - 1,
	}
}

// RecordColorWrite registers a color-target write against the framebuffer
// registry, per spec.md §4.4's "writes invalidate other FBs" rule.
func (e *Engine) RecordColorWrite(addr uint32, width, height uint32, siz, format uint8, rect fixed.Rect) {
	e.Framebuffers.RecordWrite(addr, width, height, siz, format, WriteColor, rect)
}

// RecordDepthWrite registers a depth-target write.
func (e *Engine) RecordDepthWrite(addr uint32, width, height uint32, siz uint8, rect fixed.Rect) {
	e.Framebuffers.RecordWrite(addr, width, height, siz, 0, WriteDepth, rect)
}

// TextureLoad describes a pending loadTile/loadBlock/loadTLUT's source span,
// enough for CheckTextureLoad to decide whether it overlaps a live
// framebuffer.
type TextureLoad struct {
	SrcAddr       uint32
	Width, Height uint32
	Siz, Format   uint8
	LineBytes     int
	TMEMStart     int
	TMEMWords     int
	ULS, ULT      int32
}

// CheckTextureLoad implements the deferred step of spec.md §4.4(a)-(b): if
// the load's source range is fully contained by a still-live framebuffer, a
// FramebufferTile is constructed, a TileCopy id is allocated, a
// CreateTileCopy operation is returned for the pair's pre-render list, and
// the TMEM region the load will occupy is tagged with the new tileCopyId.
// flush is FlushSamplingFromColor whenever a live framebuffer contains the
// source range, telling the caller to finalize the current FramebufferPair
// first; on a miss it is FlushNone and the load's TMEM span is only
// discarded from the region list.
func (e *Engine) CheckTextureLoad(load TextureLoad) (ops []Operation, flush FlushReason) {
	fb, ok := e.Framebuffers.MostRecentContaining(load.SrcAddr, int(load.Height)*load.LineBytes)
	if !ok {
		e.Regions.Discard(load.TMEMStart, load.TMEMWords)
		return nil, FlushNone
	}

	rect := fixed.FromPixels(load.ULS, load.ULT, load.ULS+int32(load.Width), load.ULT+int32(load.Height))
	tc := e.TileCopies.Create(fb.AddressStart, load.Width, load.Height, load.Width, load.Height, load.ULS, load.ULT)

	tile := FramebufferTile{FBAddress: fb.AddressStart, Rect: rect, LineBytes: load.LineBytes, Siz: load.Siz}
	e.Regions.Insert(load.TMEMStart, load.TMEMWords, e.TMEMMask, load.Siz == 3, tile, tc.ID)

	ops = append(ops, Operation{
		Kind: OpCreateTileCopy,
		CreateTileCopy: &CreateTileCopyOp{
			FBAddress:  fb.AddressStart,
			TileCopyID: tc.ID,
			SrcRect:    rect,
		},
	})
	return ops, FlushSamplingFromColor
}

// CheckTileCopyTMEM implements spec.md §4.4's checkTileCopyTMEM: when a
// draw's tile footprint overlaps a TMEM region bound to a tile copy, this
// resolves which tile copy id actually backs the sample, emitting a
// ReinterpretTile operation if the requested (lineWidth, siz) differs from
// the region's by a power-of-two factor the GPU can compensate for.
func (e *Engine) CheckTileCopyTMEM(tmemStart, tmemWords int, lineWidth int, siz uint8, fmt uint8) (op *Operation, tileCopyID int, ok bool) {
	region, found := e.Regions.Find(tmemStart, tmemWords)
	if !found || !region.HasTile {
		return nil, 0, false
	}
	if region.Tile.Siz == siz {
		return nil, region.TileCopyID, true
	}
	if !isPowerOfTwoRatio(region.Tile.Siz, siz) {
		return nil, region.TileCopyID, false
	}
	dst := e.TileCopies.Create(region.Tile.FBAddress, uint32(lineWidth), 1, uint32(lineWidth), 1, 0, 0)
	return &Operation{
		Kind: OpReinterpretTile,
		ReinterpretTile: &ReinterpretTileOp{
			SrcTileCopyID: region.TileCopyID, DstTileCopyID: dst.ID,
			SrcSiz: region.Tile.Siz, DstSiz: siz,
			SrcFmt: region.Tile.Siz, DstFmt: fmt,
		},
	}, dst.ID, true
}

func isPowerOfTwoRatio(a, b uint8) bool {
	if a == b {
		return true
	}
	diff := int(a) - int(b)
	return diff == 1 || diff == -1
}

// CheckRAM hashes every registered Framebuffer's known RDRAM range,
// producing WriteChanges operations for whatever has drifted. A framebuffer
// that has drifted beyond recovery is removed from the registry and its
// tile copies are marked Ignore (they stay in the arena).
func (e *Engine) CheckRAM(mem *rdram.Memory) []Operation {
	ops := e.Framebuffers.CheckRAM(mem)
	for _, addr := range e.Framebuffers.Discards() {
		e.TileCopies.InvalidateFB(addr)
	}
	return ops
}
