package rdp

import (
	"github.com/gogpu/n64hle/drawattr"
	"github.com/gogpu/n64hle/rdram"
)

// LoadKind distinguishes the three TMEM load command shapes.
type LoadKind uint8

const (
	LoadKindTile LoadKind = iota
	LoadKindBlock
	LoadKindTLUT
)

// LoadOperation is the record of one loadTile/loadBlock/loadTLUT command,
// handed to the coherency engine so it can decide (before the byte copy
// actually runs) whether the source range overlaps a live framebuffer and
// needs a deferred read-back instead of a direct RDRAM fetch.
//
// The RDP package only ever performs the "replay" half — copying bytes that
// are already known-good in RDRAM into TMEM. Recognizing and satisfying a
// live-framebuffer source is coherency's job; this struct is the contract
// between the two.
type LoadOperation struct {
	Kind LoadKind

	TileIndex int
	SrcAddr   uint32

	// Tile-shaped load bounds (LoadKindTile only), in whole texels.
	ULS, ULT, LRS, LRT int

	// Block load extent (LoadKindBlock only).
	Words int
	DXT   uint16

	// TLUT load extent (LoadKindTLUT only).
	Count int

	SrcLineBytes int
}

// LoadTile performs a loadTile command: copies the [ulS,ulT)-[lrS,lrT) texel
// span of the bound texture image into the TMEM region described by tile
// tileIndex, and returns the LoadOperation record for the coherency engine.
func (s *State) LoadTile(mem *rdram.Memory, tileIndex, ulS, ulT, lrS, lrT int) LoadOperation {
	tile := s.Tiles[tileIndex]
	srcLine := s.TextureImage.RowBytes()
	s.TMEM.LoadTile(mem, s.TextureImage.Address, srcLine, tile, ulS, ulT, lrS, lrT)
	s.Dirty.Mark(drawattr.TileState)
	return LoadOperation{
		Kind: LoadKindTile, TileIndex: tileIndex, SrcAddr: s.TextureImage.Address,
		ULS: ulS, ULT: ulT, LRS: lrS, LRT: lrT, SrcLineBytes: srcLine,
	}
}

// LoadBlock performs a loadBlock command using the bound texture image as
// source.
func (s *State) LoadBlock(mem *rdram.Memory, tileIndex int, words int, dxt uint16) LoadOperation {
	tile := s.Tiles[tileIndex]
	s.TMEM.LoadBlock(mem, s.TextureImage.Address, tile, words, dxt)
	s.Dirty.Mark(drawattr.TileState)
	return LoadOperation{
		Kind: LoadKindBlock, TileIndex: tileIndex, SrcAddr: s.TextureImage.Address,
		Words: words, DXT: dxt,
	}
}

// LoadTLUT performs a loadTLUT command.
func (s *State) LoadTLUT(mem *rdram.Memory, tileIndex int, count int) LoadOperation {
	tile := s.Tiles[tileIndex]
	s.TMEM.LoadTLUT(mem, s.TextureImage.Address, tile, count)
	s.Dirty.Mark(drawattr.TileState)
	return LoadOperation{
		Kind: LoadKindTLUT, TileIndex: tileIndex, SrcAddr: s.TextureImage.Address, Count: count,
	}
}
