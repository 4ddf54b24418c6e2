package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pulsedeck-server/internal/config"
	"pulsedeck-server/internal/core"
	"pulsedeck-server/internal/core/auth"
	"pulsedeck-server/internal/core/metrics"
	"pulsedeck-server/internal/core/widget"
	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/logger"
	"pulsedeck-server/internal/storage/snapshot"
	"pulsedeck-server/internal/storage/sqlite"
	"pulsedeck-server/internal/transport/rest"
	"pulsedeck-server/internal/transport/websocket"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if cfg.JWTSecret == "" {
		log.Error("JWT_SECRET is required")
		return
	}

	store := snapshot.NewMetricsStore()
	hub := websocket.NewHub(log)
	widgetSvc := widget.NewService()
	sampler := metrics.NewSampler(log, metrics.Options{
		NetDevPath: cfg.NetDevPath,
		RootFSPath: cfg.RootFSPath,
	})

	sched := core.NewScheduler(cfg.SampleInterval, sampler.Collect, func(m domain.Metrics) {
		store.Set(m)
		hub.Emit("metrics.updated", widgetSvc.Build(m))
	})
	go sched.Start(ctx)
	go hub.Run()

	db, err := sqlite.NewDB(cfg.DBPath, log)
	if err != nil {
		log.Error("sqlite", "connect", err)
		return
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("sqlite", "close", err)
		}
	}()

	userRepo := sqlite.NewUserRepository(db)
	if err := auth.SeedAdmin(ctx, userRepo, cfg, log); err != nil {
		log.Error("failed to seed admin user", "error", err)
		return
	}
	authService := auth.NewService(userRepo, cfg)

	router := rest.NewRouter(cfg, &rest.RouterDeps{
		WS:      websocket.NewHandler(hub, cfg, log),
		Metrics: rest.NewMetricsHandler(store),
		Widgets: rest.NewWidgetHandler(store, widgetSvc),
		Auth:    rest.NewAuthHandler(authService, cfg),
	})

	srv := rest.NewServer(router, cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting http server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http server shutdown error", "error", err)
		}

	case err := <-errCh:
		log.Error("http server error", "error", err)
	}

	log.Info("server stopped")
}
