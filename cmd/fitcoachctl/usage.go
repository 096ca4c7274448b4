package main

import (
	"fmt"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/store"
	"github.com/fitcoach-io/fitcoach/internal/subscription"
	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Inspect and maintain usage counters",
}

var usageRolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Roll over usage periods and expire lapsed subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(s *store.Store) error {
			n, err := subscription.Sweep(cmd.Context(), s, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d users\n", n)
			return nil
		})
	},
}

func init() {
	usageCmd.AddCommand(usageRolloverCmd)
	rootCmd.AddCommand(usageCmd)
}
