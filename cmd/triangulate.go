package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/lemina/startup-cli/internal/pipeline"
	"github.com/lemina/startup-cli/internal/scraper"
	"github.com/lemina/startup-cli/internal/store"
)

var (
	triInput  string
	triOutput string
	triDryRun bool
)

var triangulateCmd = &cobra.Command{
	Use:   "triangulate",
	Short: "Re-run triangulation over saved raw snapshots",
	Long:  "Reads raw JSON snapshots from a directory, cross-references them into a verified roster without re-fetching, and persists unless --dry-run.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		raw, err := scraper.LoadRaw(triInput)
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			return eris.Errorf("no snapshots found in %s", triInput)
		}

		var st store.Store
		if !triDryRun {
			st, err = initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Migrate(ctx); err != nil {
				return eris.Wrap(err, "migrate store")
			}
		}

		p := pipeline.New(cfg, scraper.NewRegistry(), st)
		result, err := p.Triangulate(ctx, raw, triDryRun)
		if err != nil {
			return err
		}

		if triOutput != "" {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return eris.Wrap(err, "marshal result")
			}
			if err := os.WriteFile(triOutput, data, 0o644); err != nil {
				return eris.Wrapf(err, "write %s", triOutput)
			}
			fmt.Printf("result written to %s\n", triOutput)
		}

		fmt.Printf("companies: %d  funding rounds: %d  updates: %d  skipped: %d\n",
			len(result.Companies), len(result.FundingRounds), len(result.Updates), result.Skipped)
		return nil
	},
}

func init() {
	triangulateCmd.Flags().StringVar(&triInput, "input", "data/raw", "directory of raw JSON snapshots")
	triangulateCmd.Flags().StringVar(&triOutput, "output", "", "write the triangulated result as JSON to this file")
	triangulateCmd.Flags().BoolVar(&triDryRun, "dry-run", false, "triangulate without persisting")
	rootCmd.AddCommand(triangulateCmd)
}
