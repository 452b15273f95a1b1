package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/api"
	"github.com/dgallion1/docoutline/internal/pipeline"
)

func serveCmd(a *app) *cobra.Command {
	var port string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the outline HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Initialize pipeline.
			orch := pipeline.NewOrchestrator(cfg, a.log)
			orch.Start(context.WithoutCancel(ctx))

			// Initialize HTTP server.
			srv := api.NewServer(orch, a.log, cfg)

			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 120 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown.
			go func() {
				<-ctx.Done()
				a.log.Info("shutting down...")

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			a.log.Info("starting docoutline", "port", cfg.Port, "workers", cfg.WorkerCount, "format", cfg.OutputFormat)
			err := httpServer.ListenAndServe()
			orch.Stop()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error("server error", "error", err)
				return err
			}
			return nil
		},
	}

	c.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides PORT)")
	return c
}
