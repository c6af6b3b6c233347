package repository

import (
	"sync"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
)

// NotificationRepository keeps the notification list in memory, seeded from
// the fixture set. Only the read flag is mutable.
type NotificationRepository struct {
	mu            sync.Mutex
	notifications []models.Notification
	index         map[string]int
}

// NewNotificationRepository creates a notification repository seeded with the
// given notifications
func NewNotificationRepository(seed []models.Notification) *NotificationRepository {
	notifications := make([]models.Notification, len(seed))
	copy(notifications, seed)
	index := make(map[string]int, len(notifications))
	for i, n := range notifications {
		index[n.ID] = i
	}
	return &NotificationRepository{
		notifications: notifications,
		index:         index,
	}
}

// List returns all notifications, newest first
func (r *NotificationRepository) List() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// UnreadCount returns the number of unread notifications
func (r *NotificationRepository) UnreadCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, n := range r.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags the notification as read. Marking an already-read
// notification is a no-op.
func (r *NotificationRepository) MarkRead(id string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return nil, ErrNotificationNotFound
	}
	r.notifications[i].Read = true
	n := r.notifications[i]
	return &n, nil
}
