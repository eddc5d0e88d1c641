// Package subscribers configures the subscriber list: customers on a paid plan
// with a subscription window.
package subscribers

import (
	"cmp"
	"time"

	"github.com/vendorhub/dashboard/internal/listengine"
)

// Subscriber is one row of the subscriber list.
type Subscriber struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"notblank" label:"Name"`
	Email       string  `json:"email" validate:"required,simpleemail" label:"Email"`
	Phone       string  `json:"phone" validate:"notblank" label:"Phone number"`
	Plan        string  `json:"plan" validate:"oneof=Basic Premium Enterprise" label:"Plan"`
	Status      string  `json:"status" validate:"oneof=Active Inactive" label:"Status"`
	Address     string  `json:"address" validate:"notblank" label:"Address"`
	Avatar      *string `json:"avatar,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalOrders int     `json:"total_orders" validate:"gte=0" label:"Total orders"`
	TotalSpent  float64 `json:"total_spent" validate:"gte=0" label:"Total spent"`
}

// Patch carries the editable fields of a Subscriber.
type Patch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Plan    *string `json:"plan,omitempty"`
	Status  *string `json:"status,omitempty"`
	Address *string `json:"address,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
	EndDate *string `json:"end_date,omitempty"`
}

func (p Patch) Apply(s *Subscriber) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Plan != nil {
		s.Plan = *p.Plan
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Avatar != nil {
		s.Avatar = p.Avatar
	}
	if p.EndDate != nil {
		s.EndDate = *p.EndDate
	}
}

// subscriptionLength is the default window of a new subscription.
const subscriptionLength = 30 * 24 * time.Hour

func Config() *listengine.Config[Subscriber, int64] {
	active := "Active"
	return &listengine.Config[Subscriber, int64]{
		Entity: "subscribers",
		Label:  listengine.Label{Singular: "Subscriber", Plural: "subscribers"},
		Key:    func(s Subscriber) int64 { return s.ID },
		SetKey: func(s *Subscriber, id int64) { s.ID = id },
		NextID: listengine.NextInt64,
		Name:   func(s Subscriber) string { return s.Name },
		SearchFields: []func(Subscriber) string{
			func(s Subscriber) string { return s.Name },
			func(s Subscriber) string { return s.Email },
		},
		Filters: map[string]func(Subscriber) string{
			"status": func(s Subscriber) string { return s.Status },
			"plan":   func(s Subscriber) string { return s.Plan },
		},
		Sorters: map[string]func(a, b Subscriber) int{
			"name":       func(a, b Subscriber) int { return cmp.Compare(a.Name, b.Name) },
			"start_date": func(a, b Subscriber) int { return cmp.Compare(a.StartDate, b.StartDate) },
			"end_date":   func(a, b Subscriber) int { return cmp.Compare(a.EndDate, b.EndDate) },
		},
		OnCreate: func(s *Subscriber, now time.Time) {
			s.StartDate = now.Format(time.DateOnly)
			if s.EndDate == "" {
				s.EndDate = now.Add(subscriptionLength).Format(time.DateOnly)
			}
			s.TotalOrders = 0
			s.TotalSpent = 0
			if s.Status == "" {
				s.Status = active
			}
			if s.Plan == "" {
				s.Plan = "Basic"
			}
		},
		OnDuplicate: func(s *Subscriber) {
			s.Name += " (Copy)"
		},
		BulkActions: map[string]listengine.BulkAction[Subscriber]{
			"activate": {Verb: "Activate", Patch: Patch{Status: &active}},
		},
		DefaultPageSize: 8,
	}
}

func NewStore(deps listengine.StoreDeps) (*listengine.Store[Subscriber, int64], error) {
	return listengine.NewStore(Config(), Seed(), deps)
}

// Seed returns the subscribers the dashboard starts with.
func Seed() []Subscriber {
	return []Subscriber{
		{ID: 1, Name: "John Smith", Email: "john.smith@email.com", Phone: "+1 (555) 123-4567", Plan: "Premium", Status: "Active", StartDate: "2024-01-15", EndDate: "2024-04-20", Address: "123 Main St, New York, NY 10001", TotalOrders: 24, TotalSpent: 2450.0},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah.j@email.com", Phone: "+1 (555) 987-6543", Plan: "Basic", Status: "Active", StartDate: "2024-02-10", EndDate: "2024-04-18", Address: "456 Oak Ave, Los Angeles, CA 90210", TotalOrders: 12, TotalSpent: 890.5},
		{ID: 3, Name: "Michael Brown", Email: "mike.brown@email.com", Phone: "+1 (555) 456-7890", Plan: "Enterprise", Status: "Inactive", StartDate: "2023-12-05", EndDate: "2024-04-10", Address: "789 Pine St, Chicago, IL 60604", TotalOrders: 45, TotalSpent: 5670.25},
		{ID: 4, Name: "Emily Davis", Email: "emily.davis@email.com", Phone: "+1 (555) 321-0987", Plan: "Premium", Status: "Active", StartDate: "2024-04-08", EndDate: "2024-04-19", Address: "321 Elm St, Miami, FL 33104", TotalOrders: 18, TotalSpent: 1890.75},
		{ID: 5, Name: "David Wilson", Email: "david.w@email.com", Phone: "+1 (555) 654-3210", Plan: "Basic", Status: "Active", StartDate: "2024-03-01", EndDate: "2024-05-01", Address: "654 Maple Dr, Seattle, WA 98101", TotalOrders: 8, TotalSpent: 420.0},
		{ID: 6, Name: "Lisa Anderson", Email: "lisa.anderson@email.com", Phone: "+1 (555) 789-0123", Plan: "Enterprise", Status: "Active", StartDate: "2023-11-20", EndDate: "2024-11-20", Address: "987 Cedar Ln, Austin, TX 73301", TotalOrders: 31, TotalSpent: 4120.4},
		{ID: 7, Name: "Robert Taylor", Email: "robert.t@email.com", Phone: "+1 (555) 234-5678", Plan: "Basic", Status: "Inactive", StartDate: "2024-01-28", EndDate: "2024-02-28", Address: "147 Birch Rd, Denver, CO 80201", TotalOrders: 2, TotalSpent: 59.98},
		{ID: 8, Name: "Jennifer Martinez", Email: "jen.martinez@email.com", Phone: "+1 (555) 876-5432", Plan: "Premium", Status: "Active", StartDate: "2024-02-22", EndDate: "2024-05-22", Address: "258 Spruce Ct, Boston, MA 02101", TotalOrders: 15, TotalSpent: 1675.1},
		{ID: 9, Name: "Christopher Lee", Email: "chris.lee@email.com", Phone: "+1 (555) 345-6789", Plan: "Enterprise", Status: "Active", StartDate: "2023-10-14", EndDate: "2024-10-14", Address: "369 Walnut Ave, Portland, OR 97201", TotalOrders: 27, TotalSpent: 3980.0},
		{ID: 10, Name: "Amanda White", Email: "amanda.white@email.com", Phone: "+1 (555) 567-8901", Plan: "Basic", Status: "Inactive", StartDate: "2024-03-18", EndDate: "2024-04-18", Address: "741 Ash Blvd, Phoenix, AZ 85001", TotalOrders: 5, TotalSpent: 210.35},
	}
}
