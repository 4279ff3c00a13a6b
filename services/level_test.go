package services

import "testing"

func TestLevelFor(t *testing.T) {
	cases := []struct {
		xp        int
		wantLevel int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{149, 2},
		{150, 3},
		{500, 5},
		{1999, 7},
		{2000, 8},
		{99999, 8},
		{-10, 1},
	}
	for _, tc := range cases {
		got := LevelFor(tc.xp)
		if got.Current.Level != tc.wantLevel {
			t.Errorf("LevelFor(%d) = level %d, want %d", tc.xp, got.Current.Level, tc.wantLevel)
		}
	}
}

func TestLevelForNextTier(t *testing.T) {
	info := LevelFor(60)
	if info.Next == nil || info.Next.Level != 3 {
		t.Fatalf("LevelFor(60).Next = %+v, want level 3", info.Next)
	}

	top := LevelFor(2000)
	if top.Next != nil {
		t.Fatalf("LevelFor(2000).Next = %+v, want nil at top tier", top.Next)
	}
}

func TestLevelProgress(t *testing.T) {
	// level 2 spans 50..150
	xpToNext, pct := LevelProgress(100)
	if xpToNext != 50 {
		t.Errorf("xpToNext = %d, want 50", xpToNext)
	}
	if pct != 50 {
		t.Errorf("progress = %v, want 50", pct)
	}

	// top tier reports complete
	xpToNext, pct = LevelProgress(5000)
	if xpToNext != 0 || pct != 100 {
		t.Errorf("top tier = (%d, %v), want (0, 100)", xpToNext, pct)
	}

	// exactly at a threshold starts the new tier at 0%
	xpToNext, pct = LevelProgress(50)
	if xpToNext != 100 || pct != 0 {
		t.Errorf("at threshold = (%d, %v), want (100, 0)", xpToNext, pct)
	}
}
