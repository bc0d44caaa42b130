package coherency

import "testing"

func TestRegionListInsertNonOverlapping(t *testing.T) {
	var l RegionList
	l.Insert(0, 64, 511, false, FramebufferTile{}, 1)
	l.Insert(64, 64, 511, false, FramebufferTile{}, 2)
	regions := l.Regions()
	if len(regions) != 2 {
		t.Fatalf("expected 2 non-overlapping regions, got %d: %+v", len(regions), regions)
	}
	assertNoOverlap(t, regions)
}

func TestRegionListInsertSplitsExistingOverlap(t *testing.T) {
	var l RegionList
	l.Insert(0, 128, 511, false, FramebufferTile{}, 1)
	l.Insert(32, 32, 511, false, FramebufferTile{}, 2)
	regions := l.Regions()
	assertNoOverlap(t, regions)

	// The original [0,128) region should now be split into [0,32) and
	// [64,128) residuals around the new [32,64) insert.
	var sawLeft, sawRight, sawNew bool
	for _, r := range regions {
		switch {
		case r.Start == 0 && r.End == 32:
			sawLeft = true
		case r.Start == 64 && r.End == 128:
			sawRight = true
		case r.Start == 32 && r.End == 64 && r.TileCopyID == 2:
			sawNew = true
		}
	}
	if !sawLeft || !sawRight || !sawNew {
		t.Fatalf("expected left/right residuals plus new region, got %+v", regions)
	}
}

func TestRegionListDiscardRemovesFullyCoveredRegion(t *testing.T) {
	var l RegionList
	l.Insert(0, 64, 511, false, FramebufferTile{}, 1)
	l.Discard(0, 64)
	if len(l.Regions()) != 0 {
		t.Fatalf("expected region list empty after full discard, got %+v", l.Regions())
	}
}

func TestRegionListFindReturnsMostRecentMatch(t *testing.T) {
	var l RegionList
	l.Insert(0, 256, 511, false, FramebufferTile{}, 1)
	l.Insert(200, 50, 511, false, FramebufferTile{}, 2)
	region, ok := l.Find(210, 1)
	if !ok || region.TileCopyID != 2 {
		t.Fatalf("expected to find the most recently inserted overlapping region, got %+v ok=%v", region, ok)
	}
}

func TestRegionListRGBA32SplitsBothHalves(t *testing.T) {
	var l RegionList
	l.Insert(0, 32, 511, true, FramebufferTile{}, 1)
	regions := l.Regions()
	if len(regions) != 2 {
		t.Fatalf("expected rgba32 insert to split into two regions, got %d: %+v", len(regions), regions)
	}
}

func assertNoOverlap(t *testing.T, regions []TMEMRegion) {
	t.Helper()
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			a, b := regions[i], regions[j]
			if a.overlaps(b.Start, b.End) {
				t.Fatalf("regions overlap: %+v vs %+v", a, b)
			}
		}
	}
}
