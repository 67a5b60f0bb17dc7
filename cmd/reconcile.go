package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/recycling-sync/internal/catalog"
	"github.com/sells-group/recycling-sync/internal/reconcile"
	"github.com/sells-group/recycling-sync/internal/registry"
	"github.com/sells-group/recycling-sync/internal/tracker"
	"github.com/sells-group/recycling-sync/pkg/dashboard"
)

var reconcileDryRun bool

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Create scrape batches for campaigns with no existing work",
	Long:  "Reads active family campaigns from the registry, skips those with existing tracker batches, expands the rest into category×city queries, and submits them to the dashboard in batches of at most 2000 queries.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := registry.New(ctx, cfg.Registry.DatabaseURL)
		if err != nil {
			return eris.Wrap(err, "open registry store")
		}
		defer reg.Close()

		trk, err := tracker.Open(ctx, cfg.Tracker.Driver, cfg.Tracker.DatabaseURL)
		if err != nil {
			return eris.Wrap(err, "open tracker store")
		}
		defer trk.Close()

		dash := dashboard.NewClient(cfg.Dashboard.APIKey,
			dashboard.WithBaseURL(cfg.Dashboard.BaseURL),
			dashboard.WithTimeout(time.Duration(cfg.Dashboard.TimeoutSecs)*time.Second),
		)

		engine := reconcile.New(reg, trk, dash, reconcile.Config{
			Categories: catalog.Categories,
			Pause:      time.Duration(cfg.Reconcile.SubmitPauseSecs) * time.Second,
			DryRun:     reconcileDryRun,
		})

		sum, err := engine.Run(ctx)
		if err != nil {
			return err
		}

		fmt.Println(formatSummary(sum))
		return nil
	},
}

func init() {
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "plan every campaign but submit nothing")
	rootCmd.AddCommand(reconcileCmd)
}

// formatSummary renders the one-line run summary printed after a successful
// run.
func formatSummary(sum *reconcile.Summary) string {
	suffix := ""
	if sum.DryRun {
		suffix = " (dry run)"
	}
	return fmt.Sprintf("campaigns: %d, batches created: %d, skipped: %d%s",
		sum.Campaigns, sum.Created, sum.Skipped, suffix)
}
