// Package httpapi exposes a listengine.Store as a JSON resource.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendorhub/dashboard/internal/listengine"
	"github.com/vendorhub/dashboard/internal/platform/httpx"
)

// Handler serves one list. P is the entity's partial update payload.
type Handler[T any, K listengine.ID, P listengine.Patch[T]] struct {
	logger  *slog.Logger
	store   *listengine.Store[T, K]
	parseID func(string) (K, error)
}

func NewHandler[T any, K listengine.ID, P listengine.Patch[T]](logger *slog.Logger, store *listengine.Store[T, K], parseID func(string) (K, error)) *Handler[T, K, P] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler[T, K, P]{logger: logger.With(slog.String("entity", store.Entity())), store: store, parseID: parseID}
}

func (h *Handler[T, K, P]) MountRoutes(r chi.Router) {
	r.Get("/", h.Page)
	r.Put("/query", h.Query)
	r.Put("/page", h.Cursor)

	r.Post("/selection", h.SelectAll)
	r.Delete("/selection", h.ClearSelection)
	r.Post("/selection/{id}", h.Toggle)

	r.Post("/bulk/delete", h.RemoveSelected)
	r.Post("/bulk/{action}", h.Bulk)

	r.Post("/", h.Create)
	r.Get("/{id}", h.Show)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/duplicate", h.Duplicate)
}

// QueryRequest replaces the search, filters and sort of the list.
type QueryRequest struct {
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters"`
	SortBy  string            `json:"sort_by"`
	SortDir string            `json:"sort_dir"`
}

// CursorRequest moves to a page or changes the page size.
type CursorRequest struct {
	Index int `json:"index"`
	Size  int `json:"size"`
}

// MutationResponse reports the records touched by a bulk operation.
type MutationResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func (h *Handler[T, K, P]) Page(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Page())
}

func (h *Handler[T, K, P]) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	page, err := h.store.SetQuery(
		listengine.FilterState{Search: req.Search, Equals: req.Filters},
		listengine.Sort{By: req.SortBy, Dir: req.SortDir},
	)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler[T, K, P]) Cursor(w http.ResponseWriter, r *http.Request) {
	var req CursorRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.store.SetCursor(listengine.Cursor{Index: req.Index, Size: req.Size}))
}

func (h *Handler[T, K, P]) SelectAll(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.SelectAll())
}

func (h *Handler[T, K, P]) ClearSelection(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.ClearSelection())
}

func (h *Handler[T, K, P]) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	snap, err := h.store.Toggle(id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, snap)
}

func (h *Handler[T, K, P]) Create(w http.ResponseWriter, r *http.Request) {
	var rec T
	if err := httpx.DecodeJSON(r, &rec); err != nil {
		httpx.RespondError(w, err)
		return
	}
	created, err := h.store.Add(r.Context(), rec)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler[T, K, P]) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	rec, err := h.store.Get(id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rec)
}

func (h *Handler[T, K, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	var patch P
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.RespondError(w, err)
		return
	}
	updated, err := h.store.Edit(r.Context(), id, patch)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler[T, K, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	removed, err := h.store.Remove(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, removed)
}

func (h *Handler[T, K, P]) Duplicate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	dup, err := h.store.Duplicate(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, dup)
}

func (h *Handler[T, K, P]) RemoveSelected(w http.ResponseWriter, r *http.Request) {
	removed, err := h.store.RemoveSelected(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MutationResponse[T]{Items: removed, Count: len(removed)})
}

func (h *Handler[T, K, P]) Bulk(w http.ResponseWriter, r *http.Request) {
	changed, err := h.store.ApplyBulk(r.Context(), chi.URLParam(r, "action"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MutationResponse[T]{Items: changed, Count: len(changed)})
}

func (h *Handler[T, K, P]) id(w http.ResponseWriter, r *http.Request) (K, bool) {
	raw := chi.URLParam(r, "id")
	id, err := h.parseID(raw)
	if err != nil {
		h.logger.Debug("reject path id", slog.String("id", raw), slog.Any("error", err))
		httpx.RespondError(w, err)
		return id, false
	}
	return id, true
}
