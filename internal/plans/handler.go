package plans

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendorhub/dashboard/internal/listengine"
	"github.com/vendorhub/dashboard/internal/platform/httpx"
)

// SavingsHandler reports annual billing discounts for the current catalogue.
type SavingsHandler struct {
	store *listengine.Store[Plan, int64]
}

func NewSavingsHandler(store *listengine.Store[Plan, int64]) *SavingsHandler {
	return &SavingsHandler{store: store}
}

// SavingsResponse is the payload of GET /api/plans/savings.
type SavingsResponse struct {
	Percent int64           `json:"percent"`
	Plans   []PlanSavingDTO `json:"plans"`
}

type PlanSavingDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Percent int64  `json:"percent"`
}

func (h *SavingsHandler) MountRoutes(r chi.Router) {
	r.Get("/savings", h.Savings)
}

func (h *SavingsHandler) Savings(w http.ResponseWriter, r *http.Request) {
	items := h.store.Snapshot().Items()
	resp := SavingsResponse{Percent: AnnualSavings(items), Plans: make([]PlanSavingDTO, 0, len(items))}
	for _, p := range items {
		resp.Plans = append(resp.Plans, PlanSavingDTO{ID: p.ID, Name: p.Name, Percent: PlanSavings(p)})
	}
	httpx.JSON(w, http.StatusOK, resp)
}
