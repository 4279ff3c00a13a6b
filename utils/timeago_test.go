package utils

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"under an hour", now.Add(-59 * time.Minute), "59m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"yesterday lower bound", now.Add(-24 * time.Hour), "Yesterday"},
		{"yesterday upper bound", now.Add(-47 * time.Hour), "Yesterday"},
		{"days", now.Add(-4 * 24 * time.Hour), "4d ago"},
		{"future clock skew", now.Add(10 * time.Minute), "Just now"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeAgo(tc.t, now); got != tc.want {
				t.Errorf("TimeAgo = %q, want %q", got, tc.want)
			}
		})
	}
}
