package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorhub/dashboard/internal/feedback"
	"github.com/vendorhub/dashboard/internal/listengine"
	"github.com/vendorhub/dashboard/internal/observability"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, FeedbackBackendMemory, cfg.FeedbackBackend)
	assert.Equal(t, 5*time.Second, cfg.FeedbackTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("FEEDBACK_BACKEND", "kafka")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "FEEDBACK_BACKEND")
}

func TestLoadConfigRejectsShortPassword(t *testing.T) {
	t.Setenv("PROFILE_INITIAL_PASSWORD", "short")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "PROFILE_INITIAL_PASSWORD")
}

func TestTestModeFlag(t *testing.T) {
	t.Setenv(TestModeEnv, "1")
	RefreshTestMode()
	assert.True(t, InTestMode())

	t.Setenv(TestModeEnv, "")
	RefreshTestMode()
	assert.False(t, InTestMode())
}

func TestLoggerHonoursFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &Config{LogFormat: "json", LogLevel: "warn"})
	logger.Info("hidden")
	logger.Warn("shown", slog.String("entity", "faq"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "faq", entry["entity"])
}

type server struct {
	handler  http.Handler
	feedback *feedback.Memory
	metrics  *observability.Metrics
}

func newServer(t *testing.T) server {
	t.Helper()
	cfg := &Config{AppEnv: "test", RateLimitPerMinute: 1000, ProfileInitialPassword: "initial-pass"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fb := feedback.NewMemory(time.Minute)
	metrics := observability.NewMetrics()

	dash, err := NewDashboard(cfg, listengine.StoreDeps{Logger: logger, Feedback: fb, Metrics: metrics})
	require.NoError(t, err)
	return server{
		handler:  NewRouter(RouterParams{Logger: logger, Config: cfg, Metrics: metrics, Feedback: fb, Dashboard: dash}),
		feedback: fb,
		metrics:  metrics,
	}
}

func (s server) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newServer(t)
	rec := s.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestEveryListIsMounted(t *testing.T) {
	s := newServer(t)
	for _, path := range []string{"/api/customers", "/api/subscribers", "/api/vendors", "/api/plans", "/api/notifications", "/api/faq"} {
		rec := s.do(http.MethodGet, path+"/", "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/plans/savings", "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/notifications/unread", "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/profile/", "").Code)
}

func TestMutationPublishesFeedbackAndMetrics(t *testing.T) {
	s := newServer(t)
	rec := s.do(http.MethodDelete, "/api/vendors/3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/feedback/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body feedbackResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Message)
	assert.Equal(t, feedback.SeveritySuccess, body.Message.Severity)
	assert.Equal(t, `Vendor "Cozy Nest Home" deleted successfully`, body.Message.Text)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/feedback/", "").Code)
	msg, err := s.feedback.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, msg)

	metrics := s.do(http.MethodGet, "/metrics", "").Body.String()
	assert.Contains(t, metrics, `dashboard_list_mutations_total{entity="vendors",op="remove",outcome="applied"} 1`)
}

func TestNonJSONBodyRejected(t *testing.T) {
	s := newServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/faq/", strings.NewReader("title=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestDuplicateOfNotificationIsMethodNotAllowed(t *testing.T) {
	s := newServer(t)
	rec := s.do(http.MethodPost, "/api/notifications/1/duplicate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
