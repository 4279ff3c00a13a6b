package models

import "time"

// CheckIn records a single qualifying action against a goal. Streak and
// TotalDays are captured at creation time so scoring stays reproducible even
// after the goal's counters move on. Immutable once stored.
type CheckIn struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	GoalID    string    `json:"goal_id"`
	Category  string    `json:"category"`
	Caption   string    `json:"caption,omitempty"`
	MediaURL  string    `json:"media_url,omitempty"`
	Streak    int       `json:"streak"`
	TotalDays int       `json:"total_days"`
	IsLate    bool      `json:"is_late"`
	CreatedAt time.Time `json:"created_at"`
}
