package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lemina/startup-cli/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show verification tier counts from the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		counts, err := st.CountByVerification(ctx)
		if err != nil {
			return err
		}

		total := 0
		for _, tier := range []string{
			model.VerificationVerified,
			model.VerificationCrossReferenced,
			model.VerificationSelfReported,
			model.VerificationUnverified,
		} {
			fmt.Printf("%-18s %d\n", tier, counts[tier])
			total += counts[tier]
		}
		fmt.Printf("%-18s %d\n", "total", total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
