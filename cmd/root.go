package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lotworks/lotsplit/internal/config"
	"github.com/lotworks/lotsplit/internal/zoning"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "lotsplit",
	Short: "Austin residential lot-subdivision analyzer",
	Long:  "Screens residential listings for lot-split potential under Austin zoning rules and ranks them by investment desirability.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		if err := zoning.ApplyOverridesFile(cfg.Zoning.OverridesPath); err != nil {
			return fmt.Errorf("zoning overrides: %w", err)
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
