package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the graph and game API with Prometheus metrics on /metrics.
Graphs are loaded on first use; with data.auto_build set, missing graphs are
built from the dictionaries. SIGINT or SIGTERM shuts the server down
gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if a.cfg.Logging.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			m := metrics.New(prometheus.DefaultRegisterer)
			reg, err := a.registry(m)
			if err != nil {
				return err
			}
			h := server.NewHandlers(reg, m, a.cfg.Algorithm(), a.logger.With("component", "http"),
				server.WithGameTTL(a.cfg.Server.GameTTL),
				server.WithMaxGames(a.cfg.Server.MaxGames))
			router := server.NewRouter(h, prometheus.DefaultGatherer)

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, a.cfg.Server, router, a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
