package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AliZeynalov/decision-arena/internal/arena"
	"github.com/AliZeynalov/decision-arena/internal/models"
	"github.com/AliZeynalov/decision-arena/internal/provider"
)

var (
	runRisk  string
	runDepth int
)

var runCmd = &cobra.Command{
	Use:   "run [decision or goal]",
	Short: "Run one arena pass and print the report",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		risk := models.RiskMode(runRisk)
		if !risk.Valid() {
			return fmt.Errorf("invalid --risk %q (use %q, %q, or %q)",
				runRisk, models.RiskLow, models.RiskBalanced, models.RiskHigh)
		}
		if runDepth < models.MinDepth || runDepth > models.MaxDepth {
			return fmt.Errorf("invalid --depth %d (use %d..%d)", runDepth, models.MinDepth, models.MaxDepth)
		}

		dispatcher := provider.NewClient(cfg.DefaultModel, cfg.FallbackModels)
		orchestrator := arena.New(dispatcher)

		problem := strings.Join(args, " ")
		report, meta, err := orchestrator.Run(cmd.Context(), problem, risk, runDepth)
		if err != nil {
			return err
		}

		fmt.Println(report)
		if meta != "" {
			fmt.Fprintln(os.Stderr, meta)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runRisk, "risk", string(models.RiskBalanced),
		`risk preference: "Low risk", "Balanced", or "High conviction"`)
	runCmd.Flags().IntVar(&runDepth, "depth", 3, "depth 1 (short) to 5 (deep)")
}
