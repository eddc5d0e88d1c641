package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorhub/dashboard/internal/customers"
	"github.com/vendorhub/dashboard/internal/faq"
	"github.com/vendorhub/dashboard/internal/feedback"
	"github.com/vendorhub/dashboard/internal/listengine"
	"github.com/vendorhub/dashboard/internal/listengine/httpapi"
	"github.com/vendorhub/dashboard/internal/platform/httpx"
)

type fixture struct {
	router   chi.Router
	feedback *feedback.Memory
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	fb := feedback.NewMemory(0)
	store, err := customers.NewStore(listengine.StoreDeps{Feedback: fb})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api/customers", httpapi.NewHandler[customers.Customer, int64, customers.Patch](nil, store, listengine.ParseInt64).MountRoutes)
	return fixture{router: r, feedback: fb}
}

func (f fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[V any](t *testing.T, rec *httptest.ResponseRecorder) V {
	t.Helper()
	var out V
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestPageSnapshot(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/customers/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[listengine.PageView[customers.Customer, int64]](t, rec)
	assert.Len(t, page.Items, 8)
	assert.Equal(t, 10, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.NotNil(t, page.Selection.IDs)
}

func TestQueryFiltersAndSorts(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPut, "/api/customers/query",
		`{"search":"","filters":{"plan":"Enterprise","status":"All Status"},"sort_by":"total_spent","sort_dir":"desc"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[listengine.PageView[customers.Customer, int64]](t, rec)
	require.Len(t, page.Items, 3)
	assert.Equal(t, int64(3), page.Items[0].ID)
	assert.Equal(t, int64(6), page.Items[1].ID)
	assert.Equal(t, int64(9), page.Items[2].ID)
}

func TestQueryUnknownSortIsBadRequest(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPut, "/api/customers/query", `{"sort_by":"shoe_size"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCursorChangesPage(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPut, "/api/customers/page", `{"index":1,"size":8}`)
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[listengine.PageView[customers.Customer, int64]](t, rec)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Pagination.Page)
}

func TestCursorFarPastTheEndRendersEmptyPage(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPut, "/api/customers/page", `{"index":2305843009213693952,"size":8}`)
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[listengine.PageView[customers.Customer, int64]](t, rec)
	assert.Empty(t, page.Items)
	assert.Equal(t, 10, page.Pagination.Total)
}

func TestCreateRejectsNegativeID(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/customers/",
		`{"id":-4,"name":"Ada Lovelace","email":"ada@example.com","plan":"Premium"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[httpx.ProblemDetail](t, rec).Fields, "id")
}

func TestCreateAfterMaxIDStaysAddressable(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/customers/",
		`{"id":9223372036854775807,"name":"Ada Lovelace","email":"ada@example.com","plan":"Premium"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/customers/", `{"name":"Grace Hopper","email":"grace@example.com","plan":"Basic"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[customers.Customer](t, rec)
	assert.Equal(t, int64(11), created.ID)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/customers/11", "").Code)
}

func TestCreateValidationReturnsFields(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/customers/", `{"name":"","email":"nope"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[httpx.ProblemDetail](t, rec)
	assert.Equal(t, "Name is required", body.Fields["name"])
	assert.Equal(t, "Please enter a valid email address", body.Fields["email"])

	msg, err := f.feedback.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, feedback.SeverityError, msg.Severity)
}

func TestCreateThenShow(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/customers/",
		`{"name":"Ada Lovelace","email":"ada@example.com","phone":"+44 20 0000","address":"London","plan":"Premium"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[customers.Customer](t, rec)
	assert.Equal(t, int64(11), created.ID)

	rec = f.do(t, http.MethodGet, "/api/customers/11", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ada Lovelace", decode[customers.Customer](t, rec).Name)

	msg, err := f.feedback.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "Customer added successfully", msg.Text)
}

func TestPatchMergesFields(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPatch, "/api/customers/2", `{"plan":"Enterprise"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[customers.Customer](t, rec)
	assert.Equal(t, "Enterprise", updated.Plan)
	assert.Equal(t, "Sarah Johnson", updated.Name)
}

func TestPatchUnknownFieldRejected(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPatch, "/api/customers/2", `{"id":99}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMissingRecordIsNotFound(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/customers/404", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/api/customers/404", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/customers/abc", "").Code)
}

func TestSelectionAndBulkDelete(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"1", "3", "5"} {
		require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/customers/selection/"+id, "").Code)
	}

	rec := f.do(t, http.MethodPost, "/api/customers/bulk/delete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decode[httpapi.MutationResponse[customers.Customer]](t, rec).Count)

	page := decode[listengine.PageView[customers.Customer, int64]](t, f.do(t, http.MethodGet, "/api/customers/", ""))
	assert.Equal(t, 7, page.Pagination.Total)
	assert.Empty(t, page.Selection.IDs)

	msg, err := f.feedback.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "Delete applied to 3 customers", msg.Text)
}

func TestBulkAction(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/customers/selection", "").Code)

	rec := f.do(t, http.MethodPost, "/api/customers/bulk/deactivate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, decode[httpapi.MutationResponse[customers.Customer]](t, rec).Count)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/api/customers/bulk/archive", "").Code)
}

func TestSelectionClear(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/api/customers/selection", "")
	rec := f.do(t, http.MethodDelete, "/api/customers/selection", "")
	require.Equal(t, http.StatusOK, rec.Code)

	snap := decode[listengine.SelectionSnapshot[int64]](t, rec)
	assert.Zero(t, snap.Count)
	assert.False(t, snap.Checked)
	assert.False(t, snap.Indeterminate)
}

func TestDuplicate(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/customers/4/duplicate", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	dup := decode[customers.Customer](t, rec)
	assert.Equal(t, int64(11), dup.ID)
	assert.Equal(t, "Emily Davis (Copy)", dup.Name)
}

func TestStringKeyedResource(t *testing.T) {
	store, err := faq.NewStore(listengine.StoreDeps{})
	require.NoError(t, err)
	r := chi.NewRouter()
	r.Route("/api/faq", httpapi.NewHandler[faq.Item, string, faq.Patch](nil, store, listengine.ParseString).MountRoutes)

	req := httptest.NewRequest(http.MethodPost, "/api/faq/", strings.NewReader(`{"title":"Refunds?","content":"Within 30 days."}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[faq.Item](t, rec)
	require.NotEmpty(t, created.ID)

	req = httptest.NewRequest(http.MethodGet, "/api/faq/"+created.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Refunds?", decode[faq.Item](t, rec).Title)
}
