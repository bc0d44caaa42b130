package coherency

import "testing"

func TestTileCopyArenaCreateAssignsIncrementingIDs(t *testing.T) {
	a := NewTileCopyArena()
	first := a.Create(0x1000, 100, 100, 100, 100, 0, 0)
	second := a.Create(0x2000, 50, 50, 50, 50, 0, 0)
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected incrementing ids, got %d %d", first.ID, second.ID)
	}
}

func TestTileCopyArenaRoundsUpDimensions(t *testing.T) {
	a := NewTileCopyArena()
	tc := a.Create(0x1000, 33, 65, 33, 65, 0, 0)
	if tc.ActualWidth != 64 || tc.ActualHeight != 96 {
		t.Fatalf("expected dimensions rounded up to a 32-multiple, got %d %d", tc.ActualWidth, tc.ActualHeight)
	}
}

func TestTileCopyArenaGetAndDiscard(t *testing.T) {
	a := NewTileCopyArena()
	tc := a.Create(0x1000, 32, 32, 32, 32, 0, 0)
	if _, ok := a.Get(tc.ID); !ok {
		t.Fatal("expected created tile copy to be retrievable")
	}
	a.Discard(tc.ID)
	if _, ok := a.Get(tc.ID); ok {
		t.Fatal("expected discarded tile copy to be gone")
	}
}

func TestTileCopyArenaInvalidateFBMarksIgnore(t *testing.T) {
	a := NewTileCopyArena()
	tc := a.Create(0x1000, 32, 32, 32, 32, 0, 0)
	a.InvalidateFB(0x1000)
	got, _ := a.Get(tc.ID)
	if !got.Ignore {
		t.Fatal("expected tile copy marked ignore after its FB is invalidated")
	}
}
