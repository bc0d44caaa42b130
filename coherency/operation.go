package coherency

import (
	"image"

	"github.com/gogpu/n64hle/fixed"
)

// OperationKind tags which variant of the FB-operation sum type an
// Operation carries.
type OperationKind int

const (
	OpWriteChanges OperationKind = iota
	OpCreateTileCopy
	OpReinterpretTile
)

// Operation is the tagged union of framebuffer operations a FramebufferPair
// records and a GPU renderer later replays in order: WriteChanges uploads
// CPU-modified pixels back to the GPU; CreateTileCopy snapshots a live
// render target into a new TileCopy; ReinterpretTile derives a new TileCopy
// from an existing one under a different pixel size/format.
//
// Represented as a tag plus one non-nil payload pointer rather than the
// original's C-style union: the logical model here is a sum type, spelled
// out explicitly (spec.md's design note on tagged unions).
type Operation struct {
	Kind            OperationKind
	WriteChanges    *WriteChangesOp
	CreateTileCopy  *CreateTileCopyOp
	ReinterpretTile *ReinterpretTileOp
}

// WriteChangesOp uploads CPU-known pixels for a framebuffer range to a
// FramebufferChange staging resource.
type WriteChangesOp struct {
	FBAddress uint32
	Rect      fixed.Rect
	Pixels    *image.RGBA
}

// CreateTileCopyOp snapshots the FB's current pixels at SrcRect into a new
// TileCopy identified by TileCopyID.
type CreateTileCopyOp struct {
	FBAddress  uint32
	TileCopyID int
	SrcRect    fixed.Rect
}

// ReinterpretTileOp re-derives DstTileCopyID's pixels from SrcTileCopyID
// under a different pixel size/format, resolved by the GPU via a compute
// shader; the core only ever records the request.
type ReinterpretTileOp struct {
	SrcTileCopyID, DstTileCopyID int
	SrcSiz, DstSiz               uint8
	SrcFmt, DstFmt               uint8
}
