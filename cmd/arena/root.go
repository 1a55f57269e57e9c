package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/AliZeynalov/decision-arena/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Decision Arena: a three-agent (Builder/Challenger/Judge) decision engine",
	Long: `Decision Arena runs a decision or goal through three role-prompted
agents — Builder argues for the strongest plan, Challenger attacks it, and
Judge synthesizes both into a final recommendation — with per-call model
fallback against the Groq API.

Requires GROQ_API_KEY in the environment (a local .env works too).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env, same as the original deployment.
		_ = gotenv.Load()

		cfg = config.Load()

		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = log.InfoLevel
		}
		log.SetLevel(level)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
}
