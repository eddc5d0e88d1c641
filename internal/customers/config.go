package customers

import (
	"cmp"
	"time"

	"github.com/vendorhub/dashboard/internal/listengine"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

func ptr[T any](v T) *T { return &v }

// Config describes the customer list to the engine.
func Config() *listengine.Config[Customer, int64] {
	return &listengine.Config[Customer, int64]{
		Entity: "customers",
		Label:  listengine.Label{Singular: "Customer", Plural: "customers"},
		Key:    func(c Customer) int64 { return c.ID },
		SetKey: func(c *Customer, id int64) { c.ID = id },
		NextID: listengine.NextInt64,
		Name:   func(c Customer) string { return c.Name },
		SearchFields: []func(Customer) string{
			func(c Customer) string { return c.Name },
			func(c Customer) string { return c.Email },
		},
		Filters: map[string]func(Customer) string{
			"status": func(c Customer) string { return c.Status },
			"plan":   func(c Customer) string { return c.Plan },
		},
		Sorters: map[string]func(a, b Customer) int{
			"name":        func(a, b Customer) int { return cmp.Compare(a.Name, b.Name) },
			"join_date":   func(a, b Customer) int { return cmp.Compare(a.JoinDate, b.JoinDate) },
			"total_spent": func(a, b Customer) int { return cmp.Compare(a.TotalSpent, b.TotalSpent) },
		},
		OnCreate: func(c *Customer, now time.Time) {
			today := now.Format(time.DateOnly)
			c.JoinDate = today
			c.LastActivity = today
			c.TotalOrders = 0
			c.TotalSpent = 0
			if c.Status == "" {
				c.Status = StatusActive
			}
			if c.Plan == "" {
				c.Plan = "Basic"
			}
		},
		OnDuplicate: func(c *Customer) {
			c.Name += " (Copy)"
		},
		BulkActions: map[string]listengine.BulkAction[Customer]{
			"activate":   {Verb: "Activate", Patch: Patch{Status: ptr(StatusActive)}},
			"deactivate": {Verb: "Deactivate", Patch: Patch{Status: ptr(StatusInactive)}},
		},
		DefaultPageSize: 8,
	}
}

// NewStore seeds the customer list.
func NewStore(deps listengine.StoreDeps) (*listengine.Store[Customer, int64], error) {
	return listengine.NewStore(Config(), Seed(), deps)
}
