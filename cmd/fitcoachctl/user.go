package main

import (
	"encoding/json"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/store"
	"github.com/fitcoach-io/fitcoach/internal/subscription"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Look up accounts",
}

var userShowCmd = &cobra.Command{
	Use:   "show <email>",
	Short: "Print a user with entitlements and usage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(s *store.Store) error {
			u, err := s.GetUserByEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"user":         u,
				"entitlements": subscription.Evaluate(u, time.Now()),
			})
		})
	},
}

func init() {
	userCmd.AddCommand(userShowCmd)
	rootCmd.AddCommand(userCmd)
}
