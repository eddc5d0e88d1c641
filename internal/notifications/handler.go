package notifications

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendorhub/dashboard/internal/platform/httpx"
)

// InboxHandler serves the inbox-wide endpoints next to the generic list routes.
type InboxHandler struct {
	inbox *Inbox
}

func NewInboxHandler(inbox *Inbox) *InboxHandler {
	return &InboxHandler{inbox: inbox}
}

func (h *InboxHandler) MountRoutes(r chi.Router) {
	r.Post("/read-all", h.ReadAll)
	r.Get("/unread", h.Unread)
}

type unreadResponse struct {
	Unread int `json:"unread"`
}

func (h *InboxHandler) ReadAll(w http.ResponseWriter, r *http.Request) {
	if _, err := h.inbox.MarkAllRead(r.Context()); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, unreadResponse{Unread: h.inbox.UnreadCount()})
}

func (h *InboxHandler) Unread(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, unreadResponse{Unread: h.inbox.UnreadCount()})
}
