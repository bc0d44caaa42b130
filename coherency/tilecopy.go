package coherency

// TileCopy is a GPU texture snapshot of a rectangular region of a
// framebuffer, captured when a texture load samples from RDRAM a live
// render target still owns. A later sample that wants a different pixel
// size gets a new TileCopy reinterpreted from this one rather than a fresh
// capture.
type TileCopy struct {
	ID int

	FBAddress   uint32
	ActualWidth, ActualHeight uint32 // rounded up to a 32-multiple
	UsedWidth, UsedHeight     uint32

	SrcLeft, SrcTop int32

	ShiftAmount uint8
	Mask        uint8

	Dither uint8
	Ignore bool
}

// TileCopyArena owns every live TileCopy, keyed by a monotonically
// allocated id. Keeping copies in an id-keyed map instead of linking them
// directly from Framebuffers/TMEMRegions removes the cyclic-reference
// problem the original pointer-based design had (spec.md's design note),
// the way internal/cache keys renderer resources by hash instead of by
// pointer chains.
type TileCopyArena struct {
	entries map[int]*TileCopy
	nextID  int
}

// NewTileCopyArena returns an empty arena.
func NewTileCopyArena() *TileCopyArena {
	return &TileCopyArena{entries: make(map[int]*TileCopy)}
}

// Create allocates and registers a new TileCopy, returning its id.
func (a *TileCopyArena) Create(fbAddr uint32, actualW, actualH, usedW, usedH uint32, left, top int32) *TileCopy {
	a.nextID++
	tc := &TileCopy{
		ID: a.nextID, FBAddress: fbAddr,
		ActualWidth: roundUp32(actualW), ActualHeight: roundUp32(actualH),
		UsedWidth: usedW, UsedHeight: usedH,
		SrcLeft: left, SrcTop: top,
	}
	a.entries[tc.ID] = tc
	return tc
}

func roundUp32(v uint32) uint32 {
	return (v + 31) &^ 31
}

// Get returns the TileCopy with the given id.
func (a *TileCopyArena) Get(id int) (*TileCopy, bool) {
	tc, ok := a.entries[id]
	return tc, ok
}

// Discard removes a TileCopy from the arena entirely.
func (a *TileCopyArena) Discard(id int) {
	delete(a.entries, id)
}

// InvalidateFB marks every TileCopy sourced from fbAddr as Ignore, the way
// the original discards a framebuffer's GPU-side copies once the FB itself
// has been evicted from the registry rather than deleting them outright
// (debugger tooling may still want to inspect a just-invalidated copy).
func (a *TileCopyArena) InvalidateFB(fbAddr uint32) {
	for _, tc := range a.entries {
		if tc.FBAddress == fbAddr {
			tc.Ignore = true
		}
	}
}
