package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/snipsync/snipsync/internal/iocli"
	"github.com/snipsync/snipsync/internal/scheduler"
	"github.com/snipsync/snipsync/internal/sync"
)

// RunDaemon runs the background scheduler until ctx is cancelled. When a
// metrics address is configured the Prometheus endpoint is served alongside.
func RunDaemon(ctx context.Context, io iocli.IO, sched *scheduler.Scheduler, engine sync.Service, registry *prometheus.Registry, metricsAddr string, logger *slog.Logger) error {
	io.Println("snipsync daemon starting")

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			logger.Info("metrics endpoint listening", "addr", metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", "error", err)
			}
		}()
	}

	// Log every terminal state transition the engine publishes.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case status := <-engine.Updates():
				if !status.State.Terminal() {
					continue
				}
				if status.LastError != "" {
					logger.Warn("sync session finished",
						"state", status.State.String(),
						"trigger", status.Trigger,
						"error", status.LastError)
				} else {
					logger.Info("sync session finished",
						"state", status.State.String(),
						"trigger", status.Trigger)
				}
			}
		}
	}()

	err := sched.Run(ctx)
	if errors.Is(err, context.Canceled) {
		io.Println("snipsync daemon stopped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("scheduler stopped: %w", err)
	}
	return nil
}
