package models

import "time"

// Goal is a habit a user is building. The streak counters are maintained by
// the check-in flow; LongestStreak never decreases.
type Goal struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Category      string     `json:"category"`
	Frequency     string     `json:"frequency"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastCheckinAt *time.Time `json:"last_checkin_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
