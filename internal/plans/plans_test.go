package plans

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorhub/dashboard/internal/listengine"
)

func TestSeedSavingsRoundToSeventeen(t *testing.T) {
	for _, p := range Seed() {
		assert.Equal(t, int64(17), PlanSavings(p), p.Name)
	}
	assert.Equal(t, int64(17), AnnualSavings(Seed()))
}

func TestSavingsZeroWhenAnnualIsNotCheaper(t *testing.T) {
	assert.Zero(t, PlanSavings(Plan{MonthlyPrice: 10, AnnualPrice: 120}))
	assert.Zero(t, PlanSavings(Plan{MonthlyPrice: 10, AnnualPrice: 150}))
	assert.Zero(t, AnnualSavings(nil))
}

func TestSavingsAvoidsFloatDrift(t *testing.T) {
	// 0.1*12 = 1.2 exactly in decimal; 1.2 - 1.14 = 0.06 => 5%
	assert.Equal(t, int64(5), PlanSavings(Plan{MonthlyPrice: 0.1, AnnualPrice: 1.14}))
}

func TestValidationMessages(t *testing.T) {
	err := listengine.ValidateRecord(Plan{Category: "pro"})

	var verr *listengine.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Plan name is required", verr.Fields["name"])
	assert.Equal(t, "Plan description is required", verr.Fields["description"])
	assert.Equal(t, "Monthly price must be greater than 0", verr.Fields["monthly_price"])
	assert.Equal(t, "Annual price must be greater than 0", verr.Fields["annual_price"])
	assert.Equal(t, "At least one feature is required", verr.Fields["features"])
}

func TestDuplicateIsNeverPopular(t *testing.T) {
	store, err := NewStore(listengine.StoreDeps{})
	require.NoError(t, err)

	dup, err := store.Duplicate(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), dup.ID)
	assert.Equal(t, "Pro Plan (Copy)", dup.Name)
	assert.False(t, dup.IsPopular)
	assert.Len(t, dup.Features, 6)

	orig, err := store.Get(2)
	require.NoError(t, err)
	assert.True(t, orig.IsPopular)
}

func TestEditFeaturesDoesNotAlias(t *testing.T) {
	store, err := NewStore(listengine.StoreDeps{})
	require.NoError(t, err)

	features := []Feature{{ID: "x", Name: "Only one"}}
	_, err = store.Edit(context.Background(), 1, Patch{Features: &features})
	require.NoError(t, err)
	features[0].Name = "mutated"

	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Only one", got.Features[0].Name)
}

func TestPopularFilter(t *testing.T) {
	st, err := listengine.NewState(Config(), Seed())
	require.NoError(t, err)
	st, err = st.WithFilter("popular", "true")
	require.NoError(t, err)

	view := st.View()
	require.Len(t, view, 1)
	assert.Equal(t, "Pro Plan", view[0].Name)
}

func TestSavingsEndpoint(t *testing.T) {
	store, err := NewStore(listengine.StoreDeps{})
	require.NoError(t, err)
	r := chi.NewRouter()
	r.Route("/api/plans", NewSavingsHandler(store).MountRoutes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/plans/savings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body SavingsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(17), body.Percent)
	assert.Len(t, body.Plans, 3)
}
