package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vendorhub/dashboard/internal/app"
	"github.com/vendorhub/dashboard/internal/feedback"
	"github.com/vendorhub/dashboard/internal/listengine"
	"github.com/vendorhub/dashboard/internal/observability"
	"github.com/vendorhub/dashboard/internal/platform/cache"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	channel, closeFeedback, err := newFeedback(ctx, cfg, logger)
	if err != nil {
		logger.Error("feedback backend", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeFeedback()

	metrics := observability.NewMetrics()
	dashboard, err := app.NewDashboard(cfg, listengine.StoreDeps{
		Logger:   logger,
		Feedback: channel,
		Metrics:  metrics,
	})
	if err != nil {
		logger.Error("seed dashboard", slog.Any("error", err))
		os.Exit(1)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:    logger,
		Config:    cfg,
		Metrics:   metrics,
		Feedback:  channel,
		Dashboard: dashboard,
	})

	if app.InTestMode() {
		logger.Info("test mode detected, skipping http listener")
		return
	}

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("feedback", cfg.FeedbackBackend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http server", slog.Any("error", err))
		os.Exit(1)
	}
}

// newFeedback picks the feedback slot backend. Test mode always stays in memory.
func newFeedback(ctx context.Context, cfg *app.Config, logger *slog.Logger) (feedback.Channel, func(), error) {
	if cfg.FeedbackBackend != app.FeedbackBackendRedis || app.InTestMode() {
		return feedback.NewMemory(cfg.FeedbackTTL), func() {}, nil
	}

	client, err := cache.New(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}
	return feedback.NewRedis(client, cfg.FeedbackKey, cfg.FeedbackTTL), closeFn, nil
}
