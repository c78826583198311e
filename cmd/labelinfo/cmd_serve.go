package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-labels/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the label tables as a JSON API",
		Long: `Starts an HTTP server exposing the label tables:

  GET /health
  GET /v1/categories
  GET /v1/filters[?category=]
  GET /v1/filters/:id
  GET /v1/metrics
  GET /v1/metrics/:id
  GET /v1/metrics/:id/key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := a.cfg.Listen
			if listen != "" {
				addr = listen
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(a.resolver, a.logger).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides the configuration)")

	return cmd
}
