// Package notifications configures the notification inbox: a list with read
// state, an unread counter and a mark-all-as-read action.
package notifications

import (
	"cmp"
	"context"
	"time"

	"github.com/vendorhub/dashboard/internal/listengine"
)

const (
	ReadFilterRead   = "read"
	ReadFilterUnread = "unread"
)

// Notification is one inbox entry.
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title" validate:"notblank" label:"Title"`
	Message   string    `json:"message" validate:"notblank" label:"Message"`
	Type      string    `json:"type" validate:"oneof=order payment user system backup" label:"Type"`
	Priority  string    `json:"priority" validate:"oneof=high medium low" label:"Priority"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Patch carries the editable fields of a Notification.
type Patch struct {
	Title    *string `json:"title,omitempty"`
	Message  *string `json:"message,omitempty"`
	Priority *string `json:"priority,omitempty"`
	IsRead   *bool   `json:"is_read,omitempty"`
}

func (p Patch) Apply(n *Notification) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Message != nil {
		n.Message = *p.Message
	}
	if p.Priority != nil {
		n.Priority = *p.Priority
	}
	if p.IsRead != nil {
		n.IsRead = *p.IsRead
	}
}

var (
	markRead   = Patch{IsRead: ptr(true)}
	markUnread = Patch{IsRead: ptr(false)}
)

func ptr[T any](v T) *T { return &v }

func readState(n Notification) string {
	if n.IsRead {
		return ReadFilterRead
	}
	return ReadFilterUnread
}

// Config describes the inbox to the engine. Notifications cannot be duplicated.
func Config() *listengine.Config[Notification, int64] {
	return &listengine.Config[Notification, int64]{
		Entity: "notifications",
		Label:  listengine.Label{Singular: "Notification", Plural: "notifications"},
		Key:    func(n Notification) int64 { return n.ID },
		SetKey: func(n *Notification, id int64) { n.ID = id },
		NextID: listengine.NextInt64,
		Name:   func(n Notification) string { return n.Title },
		SearchFields: []func(Notification) string{
			func(n Notification) string { return n.Title },
			func(n Notification) string { return n.Message },
		},
		Filters: map[string]func(Notification) string{
			"read":     readState,
			"type":     func(n Notification) string { return n.Type },
			"priority": func(n Notification) string { return n.Priority },
		},
		Sorters: map[string]func(a, b Notification) int{
			"id":         func(a, b Notification) int { return cmp.Compare(a.ID, b.ID) },
			"created_at": func(a, b Notification) int { return a.CreatedAt.Compare(b.CreatedAt) },
		},
		OnCreate: func(n *Notification, now time.Time) {
			n.CreatedAt = now
			n.IsRead = false
			if n.Priority == "" {
				n.Priority = "medium"
			}
		},
		BulkActions: map[string]listengine.BulkAction[Notification]{
			"mark-read":   {Verb: "Mark as read", Patch: markRead},
			"mark-unread": {Verb: "Mark as unread", Patch: markUnread},
		},
	}
}

// Inbox wraps the notification store with the inbox-wide operations.
type Inbox struct {
	*listengine.Store[Notification, int64]
}

// NewInbox seeds the inbox relative to now.
func NewInbox(deps listengine.StoreDeps) (*Inbox, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	store, err := listengine.NewStore(Config(), Seed(now()), deps)
	if err != nil {
		return nil, err
	}
	return &Inbox{Store: store}, nil
}

// MarkAllRead marks every notification read, whatever the current filter.
func (i *Inbox) MarkAllRead(ctx context.Context) ([]Notification, error) {
	return i.UpdateAll(ctx, markRead, "Mark as read")
}

// UnreadCount counts unread notifications across the whole inbox.
func (i *Inbox) UnreadCount() int {
	var n int
	for _, it := range i.Snapshot().Items() {
		if !it.IsRead {
			n++
		}
	}
	return n
}

// Seed returns the inbox the dashboard starts with, timestamped relative to now.
func Seed(now time.Time) []Notification {
	ago := func(d time.Duration) time.Time { return now.Add(-d).Truncate(time.Second) }
	return []Notification{
		{ID: 1, Title: "New Order Received", Message: "Order #12345 has been placed by John Doe for $299.99", Type: "order", Priority: "high", CreatedAt: ago(2 * time.Minute)},
		{ID: 2, Title: "Payment Processed", Message: "Payment of $150.00 has been successfully processed", Type: "payment", Priority: "medium", CreatedAt: ago(15 * time.Minute)},
		{ID: 3, Title: "New User Registration", Message: "Sarah Johnson has created a new account", Type: "user", Priority: "low", IsRead: true, CreatedAt: ago(time.Hour)},
		{ID: 4, Title: "System Maintenance", Message: "Scheduled maintenance will begin at 2:00 AM tonight", Type: "system", Priority: "high", CreatedAt: ago(2 * time.Hour)},
		{ID: 5, Title: "Backup Completed", Message: "Daily backup has been completed successfully", Type: "backup", Priority: "low", IsRead: true, CreatedAt: ago(3 * time.Hour)},
		{ID: 6, Title: "Order Shipped", Message: "Order #12340 has been shipped to Jane Smith", Type: "order", Priority: "medium", IsRead: true, CreatedAt: ago(5 * time.Hour)},
		{ID: 7, Title: "Payment Failed", Message: "Payment for order #12338 could not be processed", Type: "payment", Priority: "high", CreatedAt: ago(24 * time.Hour)},
	}
}
