package models

import "time"

// User is a member of the platform. There is no account system; users are
// identified by an explicit id supplied by the client.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `json:"created_at"`
}
