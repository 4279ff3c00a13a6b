package utils

import (
	"fmt"
	"time"
)

// TimeAgo formats the gap between t and now as a short human label:
// "Just now", "5m ago", "3h ago", "Yesterday", "4d ago".
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	hours := diff.Hours()
	switch {
	case hours < 1:
		mins := int(diff.Minutes())
		if mins <= 0 {
			return "Just now"
		}
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", int(hours))
	case hours < 48:
		return "Yesterday"
	default:
		return fmt.Sprintf("%dd ago", int(hours/24))
	}
}
