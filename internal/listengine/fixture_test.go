package listengine

import (
	"cmp"
	"context"
	"sync"
	"time"

	"github.com/vendorhub/dashboard/internal/feedback"
)

type member struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name" validate:"notblank" label:"Name"`
	Email    string   `json:"email" validate:"simpleemail"`
	Status   string   `json:"status" validate:"oneof=Active Inactive" label:"Status"`
	Plan     string   `json:"plan"`
	Nickname *string  `json:"nickname,omitempty"`
	Orders   int      `json:"orders" validate:"gte=0" label:"Orders"`
	Featured bool     `json:"featured"`
	Tags     []string `json:"tags"`
	JoinedAt string   `json:"joined_at"`
}

type memberPatch struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Status *string `json:"status"`
}

func (p memberPatch) Apply(m *member) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
}

func ptr[T any](v T) *T { return &v }

func memberConfig() *Config[member, int64] {
	return &Config[member, int64]{
		Entity: "members",
		Label:  Label{Singular: "Member", Plural: "members"},
		Key:    func(m member) int64 { return m.ID },
		SetKey: func(m *member, id int64) { m.ID = id },
		NextID: NextInt64,
		Name:   func(m member) string { return m.Name },
		SearchFields: []func(member) string{
			func(m member) string { return m.Name },
			func(m member) string { return m.Email },
			func(m member) string { return Deref(m.Nickname) },
		},
		Filters: map[string]func(member) string{
			"status": func(m member) string { return m.Status },
			"plan":   func(m member) string { return m.Plan },
		},
		Sorters: map[string]func(a, b member) int{
			"name":   func(a, b member) int { return cmp.Compare(a.Name, b.Name) },
			"orders": func(a, b member) int { return cmp.Compare(a.Orders, b.Orders) },
		},
		OnCreate: func(m *member, now time.Time) {
			m.Orders = 0
			m.JoinedAt = now.Format(time.DateOnly)
		},
		OnDuplicate: func(m *member) {
			m.Name += " (Copy)"
			m.Featured = false
		},
		BulkActions: map[string]BulkAction[member]{
			"activate": {Verb: "Activate", Patch: memberPatch{Status: ptr("Active")}},
		},
		DefaultPageSize: 3,
	}
}

func seedMembers() []member {
	return []member{
		{ID: 1, Name: "John Smith", Email: "john.smith@email.com", Status: "Active", Plan: "Premium", Orders: 24, Featured: true, Tags: []string{"vip"}},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah.j@email.com", Status: "Inactive", Plan: "Basic", Orders: 12},
		{ID: 3, Name: "Michael Brown", Email: "mike.brown@email.com", Status: "Active", Plan: "Enterprise", Orders: 45, Nickname: ptr("Mikey")},
		{ID: 4, Name: "Emily Davis", Email: "emily.davis@email.com", Status: "Inactive", Plan: "Premium", Orders: 18},
		{ID: 5, Name: "David Wilson", Email: "david.w@email.com", Status: "Active", Plan: "Basic", Orders: 8},
		{ID: 6, Name: "Lisa Anderson", Email: "lisa.anderson@email.com", Status: "Active", Plan: "Premium", Orders: 31},
		{ID: 7, Name: "Robert Taylor", Email: "robert.t@email.com", Status: "Inactive", Plan: "Enterprise", Orders: 2},
		{ID: 8, Name: "Jennifer Martinez", Email: "jen.martinez@email.com", Status: "Active", Plan: "Basic", Orders: 15},
		{ID: 9, Name: "Christopher Lee", Email: "chris.lee@email.com", Status: "Active", Plan: "Premium", Orders: 27},
		{ID: 10, Name: "Amanda White", Email: "amanda.white@email.com", Status: "Inactive", Plan: "Basic", Orders: 5},
	}
}

func ids(items []member) []int64 {
	out := make([]int64, 0, len(items))
	for _, m := range items {
		out = append(out, m.ID)
	}
	return out
}

type recordedMutation struct {
	entity, op, outcome string
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedMutation
}

func (f *fakeRecorder) ObserveMutation(entity, op, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedMutation{entity, op, outcome})
}

type failingChannel struct{ feedback.Discard }

func (failingChannel) Publish(context.Context, feedback.Severity, string) error {
	return context.DeadlineExceeded
}
