package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/smctpd/driver"
	"github.com/katalvlaran/smctpd/internal/cliconfig"
	"github.com/katalvlaran/smctpd/internal/demo"
	"github.com/katalvlaran/smctpd/metrics"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a demo workflow once and serve its metrics over /metrics",
		Long: `Schedule a demo workflow the same way "run" does, then serve the
resulting Snapshot as Prometheus gauges until interrupted (SIGINT/SIGTERM).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliconfig.Load(cmd, configPath)
			if err != nil {
				return err
			}

			in, err := demo.Build(cfg.Workflow, cfg.VMCount)
			if err != nil {
				return err
			}
			in.DataVolume = scaleByCCR(in.DataVolume, cfg.CCR)

			result, err := driver.Run(in)
			if err != nil {
				return err
			}

			exporter := metrics.NewExporter()
			exporter.Observe(result.Pass2.Metrics)

			mux := http.NewServeMux()
			mux.Handle("/metrics", exporter.Handler())

			srv := &http.Server{Addr: addr, Handler: mux}
			return serveUntilInterrupted(cmd.Context(), srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to serve /metrics on")
	return cmd
}

// serveUntilInterrupted starts srv and blocks until SIGINT/SIGTERM, then
// shuts it down gracefully with a bounded timeout.
func serveUntilInterrupted(ctx context.Context, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving metrics", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown initiated")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
