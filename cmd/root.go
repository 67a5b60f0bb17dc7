package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/recycling-sync/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "recycling-sync",
	Short: "Lead-recycling scrape batch reconciler",
	Long:  "Finds active lead-recycling campaigns with no scrape work in the tracker and materializes that work as size-bounded batches on the scraper dashboard.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
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
