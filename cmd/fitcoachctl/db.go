package main

import (
	"fmt"

	"github.com/fitcoach-io/fitcoach/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *database.DB) error {
			applied, err := db.AppliedMigrations(cmd.Context())
			if err != nil {
				return err
			}
			version := 0
			for v := range applied {
				if v > version {
					version = v
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database (%s) at schema version %d\n", db.Dialect(), version)
			return nil
		})
	},
}

var dbCheckCmd = &cobra.Command{
	Use:   "db-check",
	Short: "Verify the database is reachable and list applied migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *database.DB) error {
			if err := db.PingContext(cmd.Context()); err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}
			applied, err := db.AppliedMigrations(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "VERSION\tAPPLIED\tDESCRIPTION")
			for _, m := range database.GetMigrations(db.Dialect()) {
				fmt.Fprintf(out, "%d\t%t\t%s\n", m.Version, applied[m.Version], m.Description)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(dbCheckCmd)
}
