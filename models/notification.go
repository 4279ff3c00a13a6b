package models

import "time"

// Notification is a user-facing inbox entry. Icon/color/priority come from
// the static NotificationTypes table, resolved at read time.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ActionURL string    `json:"action_url,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationType describes how a notification category is displayed.
type NotificationType struct {
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Priority string `json:"priority"`
}

// NotificationTypes is the static display table. Unknown types fall back to
// daily_reminder via NotificationTypeFor.
var NotificationTypes = map[string]NotificationType{
	"streak_risk":         {Icon: "⚠️", Color: "warning", Priority: "high"},
	"streak_milestone":    {Icon: "🔥", Color: "success", Priority: "medium"},
	"achievement_unlocked": {Icon: "🏆", Color: "gold", Priority: "high"},
	"level_up":            {Icon: "⬆️", Color: "accent", Priority: "high"},
	"friend_request":      {Icon: "👤", Color: "info", Priority: "medium"},
	"friend_checkin":      {Icon: "📸", Color: "info", Priority: "low"},
	"challenge_joined":    {Icon: "🏁", Color: "accent", Priority: "medium"},
	"challenge_completed": {Icon: "🎉", Color: "success", Priority: "high"},
	"challenge_reminder":  {Icon: "⏰", Color: "warning", Priority: "medium"},
	"daily_reminder":      {Icon: "📢", Color: "info", Priority: "low"},
	"community_like":      {Icon: "❤️", Color: "accent", Priority: "low"},
}

// NotificationTypeFor resolves a type name, normalizing unknown names to
// daily_reminder so callers always get a displayable entry.
func NotificationTypeFor(name string) (string, NotificationType) {
	if nt, ok := NotificationTypes[name]; ok {
		return name, nt
	}
	return "daily_reminder", NotificationTypes["daily_reminder"]
}
