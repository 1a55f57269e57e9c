package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AliZeynalov/decision-arena/internal/arena"
	"github.com/AliZeynalov/decision-arena/internal/gateway"
	"github.com/AliZeynalov/decision-arena/internal/provider"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arena over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		dispatcher := provider.NewClient(cfg.DefaultModel, cfg.FallbackModels)
		orchestrator := arena.New(dispatcher)
		router := gateway.NewRouter(gateway.NewHandler(orchestrator))

		log.WithFields(log.Fields{
			"addr":          cfg.Addr(),
			"default_model": cfg.DefaultModel,
			"fallbacks":     len(cfg.FallbackModels),
			"event":         "server_starting",
		}).Info("Decision Arena starting")

		return router.Run(cfg.Addr())
	},
}
