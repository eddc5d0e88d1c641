package app

import (
	"fmt"

	"github.com/vendorhub/dashboard/internal/customers"
	"github.com/vendorhub/dashboard/internal/faq"
	"github.com/vendorhub/dashboard/internal/listengine"
	"github.com/vendorhub/dashboard/internal/notifications"
	"github.com/vendorhub/dashboard/internal/plans"
	"github.com/vendorhub/dashboard/internal/profile"
	"github.com/vendorhub/dashboard/internal/subscribers"
	"github.com/vendorhub/dashboard/internal/vendors"
)

// Dashboard owns every list store and the profile service. Each is seeded once
// at startup and lives for the life of the process.
type Dashboard struct {
	Customers   *listengine.Store[customers.Customer, int64]
	Subscribers *listengine.Store[subscribers.Subscriber, int64]
	Vendors     *listengine.Store[vendors.Vendor, int64]
	Plans       *listengine.Store[plans.Plan, int64]
	Inbox       *notifications.Inbox
	FAQ         *listengine.Store[faq.Item, string]
	Profile     *profile.Service
}

// NewDashboard seeds all stores with shared side-effect collaborators.
func NewDashboard(cfg *Config, deps listengine.StoreDeps) (*Dashboard, error) {
	var (
		d   Dashboard
		err error
	)
	if d.Customers, err = customers.NewStore(deps); err != nil {
		return nil, fmt.Errorf("seed customers: %w", err)
	}
	if d.Subscribers, err = subscribers.NewStore(deps); err != nil {
		return nil, fmt.Errorf("seed subscribers: %w", err)
	}
	if d.Vendors, err = vendors.NewStore(deps); err != nil {
		return nil, fmt.Errorf("seed vendors: %w", err)
	}
	if d.Plans, err = plans.NewStore(deps); err != nil {
		return nil, fmt.Errorf("seed plans: %w", err)
	}
	if d.Inbox, err = notifications.NewInbox(deps); err != nil {
		return nil, fmt.Errorf("seed notifications: %w", err)
	}
	if d.FAQ, err = faq.NewStore(deps); err != nil {
		return nil, fmt.Errorf("seed faq: %w", err)
	}
	password := "change-me-please"
	if cfg != nil && cfg.ProfileInitialPassword != "" {
		password = cfg.ProfileInitialPassword
	}
	if d.Profile, err = profile.NewService(profile.Seed(), password, deps); err != nil {
		return nil, fmt.Errorf("seed profile: %w", err)
	}
	return &d, nil
}
