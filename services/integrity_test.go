package services

import (
	"math"
	"testing"
)

func TestComputeIntegrity(t *testing.T) {
	cases := []struct {
		name      string
		streak    int
		totalDays int
		hours     float64
		wantScore float64
		wantBadge Badge
	}{
		{"long streak recent checkin", 45, 48, 1, 594.875, BadgeGold},
		{"zero streak stale checkin", 0, 10, 100, 0, BadgeNone},
		{"fresh first checkin", 1, 1, 0, 160, BadgeGold},
		{"recency floor at 50 hours", 10, 10, 50, 150, BadgeGold},
		{"recency clamped past 50 hours", 10, 10, 80, 150, BadgeGold},
		{"silver tier", 7, 10, 0, 205, BadgeSilver},
		{"bronze tier", 5, 10, 0, 175, BadgeBronze},
		{"below bronze", 4, 10, 0, 160, BadgeNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeIntegrity(tc.streak, tc.totalDays, tc.hours)
			if math.Abs(got.Score-tc.wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", got.Score, tc.wantScore)
			}
			if got.Badge != tc.wantBadge {
				t.Errorf("badge = %v, want %v", got.Badge, tc.wantBadge)
			}
		})
	}
}

func TestComputeIntegrityClampsInputs(t *testing.T) {
	got := ComputeIntegrity(-5, -3, -10)
	if got.Score != 100 { // recency bonus only, from hours clamped to 0
		t.Errorf("score = %v, want 100", got.Score)
	}
	if got.ConsistencyRate != 0 {
		t.Errorf("rate = %v, want 0", got.ConsistencyRate)
	}
}

func TestComputeIntegrityRateCappedAtOne(t *testing.T) {
	// streak can exceed goal age when check-ins outpace calendar days
	got := ComputeIntegrity(20, 5, 0)
	if got.ConsistencyRate != 1 {
		t.Errorf("rate = %v, want 1", got.ConsistencyRate)
	}
	if got.Badge != BadgeGold {
		t.Errorf("badge = %v, want gold", got.Badge)
	}
}

func TestBadgeMonotonicInStreak(t *testing.T) {
	order := map[Badge]int{BadgeNone: 0, BadgeBronze: 1, BadgeSilver: 2, BadgeGold: 3}
	prev := BadgeNone
	for streak := 0; streak <= 30; streak++ {
		got := ComputeIntegrity(streak, 30, 0).Badge
		if order[got] < order[prev] {
			t.Fatalf("badge regressed from %s to %s at streak %d", prev, got, streak)
		}
		prev = got
	}
}

func TestComputeIntegrityZeroDays(t *testing.T) {
	got := ComputeIntegrity(1, 0, 0)
	if got.ConsistencyRate != 1 {
		t.Errorf("rate = %v, want 1 (zero days treated as one)", got.ConsistencyRate)
	}
}
