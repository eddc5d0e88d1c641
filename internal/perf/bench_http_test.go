package perf

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/vendorhub/dashboard/internal/app"
	"github.com/vendorhub/dashboard/internal/feedback"
	"github.com/vendorhub/dashboard/internal/listengine"
	"github.com/vendorhub/dashboard/internal/vendors"
)

func newRouter(tb testing.TB) http.Handler {
	tb.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &app.Config{RateLimitPerMinute: 1 << 20, ProfileInitialPassword: "perf-password"}
	fb := feedback.NewMemory(0)
	dash, err := app.NewDashboard(cfg, listengine.StoreDeps{Logger: logger, Feedback: fb})
	if err != nil {
		tb.Fatalf("seed dashboard: %v", err)
	}
	return app.NewRouter(app.RouterParams{Logger: logger, Config: cfg, Feedback: fb, Dashboard: dash})
}

func TestListLatencyTargets(t *testing.T) {
	router := newRouter(t)
	scenarios := []struct {
		name      string
		method    string
		path      string
		body      string
		threshold time.Duration
	}{
		{name: "page", method: http.MethodGet, path: "/api/customers/", threshold: 50 * time.Millisecond},
		{name: "query", method: http.MethodPut, path: "/api/vendors/query", body: `{"search":"a","sort_by":"rating","sort_dir":"desc"}`, threshold: 50 * time.Millisecond},
	}

	for _, scenario := range scenarios {
		samples := make([]time.Duration, 0, 50)
		for i := 0; i < 50; i++ {
			var body io.Reader
			if scenario.body != "" {
				body = strings.NewReader(scenario.body)
			}
			req := httptest.NewRequest(scenario.method, scenario.path, body)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			start := time.Now()
			router.ServeHTTP(rec, req)
			samples = append(samples, time.Since(start))
			if rec.Code != http.StatusOK {
				t.Fatalf("%s: unexpected status %d", scenario.name, rec.Code)
			}
		}
		p95 := percentile95(samples)
		if p95 > scenario.threshold {
			t.Fatalf("%s latency regression: p95=%s threshold=%s", scenario.name, p95, scenario.threshold)
		}
	}
}

func BenchmarkCustomerPage(b *testing.B) {
	router := newRouter(b)
	req := httptest.NewRequest(http.MethodGet, "/api/customers/", nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
	}
}

func BenchmarkQueryLargeCollection(b *testing.B) {
	seed := make([]vendors.Vendor, 0, 5000)
	for i := 0; i < 5000; i++ {
		v := vendors.Seed()[i%10]
		v.ID = int64(i + 1)
		seed = append(seed, v)
	}
	cfg := vendors.Config()
	filter := listengine.FilterState{Search: "living", Equals: map[string]string{"status": "Active"}}
	sortBy := listengine.Sort{By: "rating", Dir: listengine.SortDesc}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = listengine.Query(cfg, seed, filter, sortBy)
	}
}

func percentile95(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	index := int(float64(len(sorted)-1) * 0.95)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
