package main

import (
	"fmt"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lemina/startup-cli/internal/pipeline"
	"github.com/lemina/startup-cli/internal/store"
)

var (
	runDryRun  bool
	runSources []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape all enabled sources, triangulate and persist",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var st store.Store
		if !runDryRun {
			var err error
			st, err = initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Migrate(ctx); err != nil {
				return eris.Wrap(err, "migrate store")
			}
		}

		p := pipeline.New(cfg, newRegistry(cfg), st)
		report, err := p.Run(ctx, pipeline.Options{
			DryRun:  runDryRun,
			Sources: runSources,
		})
		if err != nil {
			return err
		}

		reportDir := filepath.Join(cfg.Global.DataDir, "reports")
		path, err := pipeline.WriteReport(report, reportDir)
		if err != nil {
			zap.L().Warn("report write failed", zap.Error(err))
		} else {
			fmt.Printf("report written to %s\n", path)
		}

		fmt.Printf("companies: %d  funding rounds: %d  updates: %d  skipped: %d\n",
			report.Companies, report.FundingRounds, report.Updates, report.Skipped)
		for tier, n := range report.Verification {
			fmt.Printf("  %-18s %d\n", tier, n)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "scrape and triangulate without persisting")
	runCmd.Flags().StringSliceVar(&runSources, "sources", nil, "restrict the run to these sources")
	rootCmd.AddCommand(runCmd)
}
