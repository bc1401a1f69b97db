package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hemolink/api/internal/auth"
	"github.com/hemolink/api/internal/config"
	"github.com/hemolink/api/internal/db"
	httpx "github.com/hemolink/api/internal/http"
	"github.com/hemolink/api/internal/observability"
	"github.com/hemolink/api/internal/repo/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load the config set up
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)

	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET is not set; signing with the built-in default secret, tokens are forgeable")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}

	tokens, err := auth.NewManager(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("token manager: %w", err)
	}

	// lazy: nothing is dialed until the first readiness check
	handle, err := db.Open(ctx, cfg.DBURL, cfg.DBName)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := httpx.NewRouter(log, cfg, httpx.Deps{
		Users:     memory.NewUsersRepo(memory.DefaultUsers()),
		Tokens:    tokens,
		BloodBank: memory.NewBloodBankRepo(memory.DefaultBloodBank()),
		DB:        handle,
		Registry:  reg,
	})

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env, "db_driver", handle.Driver(), "db_name", cfg.DBName)
		err := srv.ListenAndServe()

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful shutdown

	var runErr error

	select {
	case <-ctx.Done():
		log.Info("server shutting down")
	case err, ok := <-serveErr:
		if ok {
			log.Error("server failed", "err", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := config.WithTimeout(cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}

	// the database handle is released even when the server failed to start
	if err := handle.Close(shutdownCtx); err != nil {
		log.Error("database close failed", "err", err)
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Error("tracer shutdown failed", "err", err)
	}

	if runErr == nil {
		log.Info("shutdown complete")
	}

	return runErr
}
