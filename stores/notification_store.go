package stores

import (
	"sync"

	"github.com/goalsync/goalsync/models"
)

// maxPerUser caps each inbox; the oldest entries are trimmed past it.
const maxPerUser = 200

// NotificationStore holds per-user inboxes, newest first.
type NotificationStore struct {
	mu      sync.RWMutex
	inboxes map[string][]models.Notification
}

// NewNotificationStore creates an empty store.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{inboxes: map[string][]models.Notification{}}
}

// Add prepends a notification to the user's inbox and trims the tail.
func (s *NotificationStore) Add(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inbox := append([]models.Notification{n}, s.inboxes[n.UserID]...)
	if len(inbox) > maxPerUser {
		inbox = inbox[:maxPerUser]
	}
	s.inboxes[n.UserID] = inbox
}

// ByUser returns up to limit notifications, newest first. unreadOnly filters
// to unread entries.
func (s *NotificationStore) ByUser(userID string, limit int, unreadOnly bool) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notification
	for _, n := range s.inboxes[userID] {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// MarkRead flags one notification as read. Returns false when absent.
func (s *NotificationStore) MarkRead(userID, notificationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	inbox := s.inboxes[userID]
	for i := range inbox {
		if inbox[i].ID == notificationID {
			inbox[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flags the whole inbox as read.
func (s *NotificationStore) MarkAllRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inbox := s.inboxes[userID]
	for i := range inbox {
		inbox[i].Read = true
	}
}

// Summary returns total count, unread count, and whether any unread entry is
// high priority.
func (s *NotificationStore) Summary(userID string) (total, unread int, hasHighPriority bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.inboxes[userID] {
		total++
		if n.Read {
			continue
		}
		unread++
		if _, nt := models.NotificationTypeFor(n.Type); nt.Priority == "high" {
			hasHighPriority = true
		}
	}
	return total, unread, hasHighPriority
}

// Count returns the total number of stored notifications.
func (s *NotificationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, inbox := range s.inboxes {
		n += len(inbox)
	}
	return n
}
