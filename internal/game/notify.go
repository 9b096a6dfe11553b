package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

const DefaultNotificationDurationMs = int64(5000)

// Notification is a display request for whatever presentation layer is
// attached. It carries no game state.
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	DurationMs int64            `json:"duration_ms"`
	CreatedAt  time.Time        `json:"created_at"`
}

// Notifier accepts display requests. Implementations must not call back into
// the engine.
type Notifier interface {
	Notify(n Notification)
}

// NopNotifier drops everything. Used by tests that assert on state, not toasts.
type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}

// RingSink keeps the most recent notifications for polling clients.
type RingSink struct {
	mu    sync.Mutex
	cap   int
	items []Notification
}

func NewRingSink(capacity int) *RingSink {
	if capacity <= 0 {
		capacity = 50
	}
	return &RingSink{cap: capacity}
}

func (r *RingSink) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
	if len(r.items) > r.cap {
		r.items = r.items[len(r.items)-r.cap:]
	}
}

// Recent returns the retained notifications, oldest first.
func (r *RingSink) Recent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

func newNotification(kind NotificationType, title, message string) Notification {
	return Notification{
		ID:         uuid.NewString(),
		Type:       kind,
		Title:      title,
		Message:    message,
		DurationMs: DefaultNotificationDurationMs,
		CreatedAt:  time.Now().UTC(),
	}
}
