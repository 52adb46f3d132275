// Command server runs the corrosion-rate prediction engine as an HTTP
// tool-dispatch service: one gin route per spec.md §6.1 operation, plus a
// go-chi debug mux for health checks, separated onto its own port so a
// load balancer's health probe never shares a listener with tool traffic.
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

	"corrosionengine/catalog"
	"corrosionengine/internal/config"
	"corrosionengine/internal/corrlog"
	"corrosionengine/internal/httpapi"
	"corrosionengine/tools"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	if err := run(); err != nil {
		corrlog.Default.Error("server exited: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := corrlog.New(levelFor(cfg.Log.Level))

	// The catalog must load fully before the process accepts a single
	// request (spec.md §6.4): a partially-loaded catalog is never served.
	cat, err := catalog.LoadCatalog(cfg.Data.DataDir)
	if err != nil {
		return fmt.Errorf("catalog load failed, refusing to start: %w", err)
	}
	logger.Info("catalog loaded from %s, hash=%s", cfg.Data.DataDir, cat.Hash)

	svc := tools.NewService(cat)

	toolServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           httpapi.NewRouter(svc, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	debugServer := &http.Server{
		Addr:              ":" + cfg.Server.DebugPort,
		Handler:           newDebugMux(cat),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("tool-dispatch server listening on %s", toolServer.Addr)
		if err := toolServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("tool server: %w", err)
		}
	}()
	go func() {
		logger.Info("debug server listening on %s", debugServer.Addr)
		if err := debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("debug server: %w", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = toolServer.Shutdown(shutdownCtx)
	_ = debugServer.Shutdown(shutdownCtx)
	return nil
}

// newDebugMux builds the go-chi mux serving health and readiness checks
// independently of the gin tool-dispatch router.
func newDebugMux(cat *catalog.Catalog) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if cat == nil || cat.Tables == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "catalog hash: %s\n", cat.Hash)
	})
	return r
}

func levelFor(name string) corrlog.Level {
	switch name {
	case "ERROR":
		return corrlog.LevelError
	case "WARN":
		return corrlog.LevelWarn
	case "DEBUG":
		return corrlog.LevelDebug
	default:
		return corrlog.LevelInfo
	}
}
