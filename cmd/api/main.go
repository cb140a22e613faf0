package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rozgar-darpan/go-mgnrega-backend/config"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/bootstrap"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/logging"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/storage/postgres"
)

const serviceName = "mgnrega-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logging.Init(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer lg.Closer()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		// The gate fails open without Redis, so a dead counter store is not fatal.
		lg.Sugar.Warnw("redis unreachable at startup, rate limiting will fail open", "error", err)
	}

	var db *sql.DB
	if cfg.SnapshotStoreEnabled() {
		db, err = postgres.NewConnection(&cfg.Database)
		if err != nil {
			lg.Sugar.Fatalw("failed to connect to postgres", "error", err)
		}
		defer db.Close()

		if err := postgres.EnsureSchema(ctx, db); err != nil {
			lg.Sugar.Fatalw("failed to ensure schema", "error", err)
		}
	} else {
		lg.Sugar.Info("DB_HOST not set, durable snapshot store disabled")
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Config:      cfg,
		Log:         lg.Sugar,
		Redis:       rdb,
		DB:          db,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		lg.Sugar.Infow("server starting", "port", cfg.Server.Port, "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Sugar.Fatalw("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Sugar.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Sugar.Errorw("forced shutdown", "error", err)
	}
}
