package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendorhub/dashboard/internal/customers"
	"github.com/vendorhub/dashboard/internal/faq"
	"github.com/vendorhub/dashboard/internal/feedback"
	"github.com/vendorhub/dashboard/internal/listengine"
	"github.com/vendorhub/dashboard/internal/listengine/httpapi"
	"github.com/vendorhub/dashboard/internal/notifications"
	"github.com/vendorhub/dashboard/internal/observability"
	"github.com/vendorhub/dashboard/internal/plans"
	"github.com/vendorhub/dashboard/internal/profile"
	"github.com/vendorhub/dashboard/internal/subscribers"
	"github.com/vendorhub/dashboard/internal/vendors"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger    *slog.Logger
	Config    *Config
	Metrics   *observability.Metrics
	Feedback  feedback.Channel
	Dashboard *Dashboard
}

// NewRouter constructs the chi.Router with dashboard defaults.
func NewRouter(params RouterParams) http.Handler {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	d := params.Dashboard
	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", httpapi.NewHandler[customers.Customer, int64, customers.Patch](logger, d.Customers, listengine.ParseInt64).MountRoutes)
		r.Route("/subscribers", httpapi.NewHandler[subscribers.Subscriber, int64, subscribers.Patch](logger, d.Subscribers, listengine.ParseInt64).MountRoutes)
		r.Route("/vendors", httpapi.NewHandler[vendors.Vendor, int64, vendors.Patch](logger, d.Vendors, listengine.ParseInt64).MountRoutes)
		r.Route("/plans", func(r chi.Router) {
			plans.NewSavingsHandler(d.Plans).MountRoutes(r)
			httpapi.NewHandler[plans.Plan, int64, plans.Patch](logger, d.Plans, listengine.ParseInt64).MountRoutes(r)
		})
		r.Route("/notifications", func(r chi.Router) {
			notifications.NewInboxHandler(d.Inbox).MountRoutes(r)
			httpapi.NewHandler[notifications.Notification, int64, notifications.Patch](logger, d.Inbox.Store, listengine.ParseInt64).MountRoutes(r)
		})
		r.Route("/faq", httpapi.NewHandler[faq.Item, string, faq.Patch](logger, d.FAQ, listengine.ParseString).MountRoutes)
		r.Route("/profile", profile.NewHandler(d.Profile).MountRoutes)
		r.Route("/feedback", newFeedbackHandler(logger, params.Feedback).MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
