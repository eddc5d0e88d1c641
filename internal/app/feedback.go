package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendorhub/dashboard/internal/feedback"
	"github.com/vendorhub/dashboard/internal/platform/httpx"
)

// feedbackHandler exposes the single feedback slot to the UI toast widget.
type feedbackHandler struct {
	logger  *slog.Logger
	channel feedback.Channel
}

func newFeedbackHandler(logger *slog.Logger, channel feedback.Channel) *feedbackHandler {
	if channel == nil {
		channel = feedback.Discard{}
	}
	return &feedbackHandler{logger: logger, channel: channel}
}

func (h *feedbackHandler) MountRoutes(r chi.Router) {
	r.Get("/", h.current)
	r.Delete("/", h.dismiss)
}

type feedbackResponse struct {
	Message *feedback.Message `json:"message"`
}

func (h *feedbackHandler) current(w http.ResponseWriter, r *http.Request) {
	msg, err := h.channel.Current(r.Context())
	if err != nil {
		h.logger.Error("read feedback", slog.Any("error", err))
		httpx.Problem(w, http.StatusServiceUnavailable, "Feedback Unavailable", "")
		return
	}
	httpx.JSON(w, http.StatusOK, feedbackResponse{Message: msg})
}

func (h *feedbackHandler) dismiss(w http.ResponseWriter, r *http.Request) {
	if err := h.channel.Dismiss(r.Context()); err != nil {
		h.logger.Error("dismiss feedback", slog.Any("error", err))
		httpx.Problem(w, http.StatusServiceUnavailable, "Feedback Unavailable", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
