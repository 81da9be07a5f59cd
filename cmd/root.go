package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "platewise",
	Short: "Contextual food and deal recommendation service",
	Long:  "Combines weather, festival calendar and market trends with a generative-text backend to rank food and deal suggestions, degrading to static fallbacks when collaborators are unavailable.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		if cfg.DemoMode() {
			zap.L().Warn("running in demo mode: collaborator credentials missing, all stages serve fallback data")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
