package main

import (
	"context"
	"os"

	"github.com/fitcoach-io/fitcoach/internal/config"
	"github.com/fitcoach-io/fitcoach/internal/database"
	"github.com/fitcoach-io/fitcoach/internal/store"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "fitcoachctl",
	Short: "fitcoachctl administers a FitCoach deployment",
	Long:  "fitcoachctl runs migrations, usage sweeps and account lookups against the FitCoach database.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Warnf("Could not load .env: %v", err)
		}
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(log.WarnLevel)
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "app.yml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}

// withDB opens the configured database (running pending migrations) for
// the duration of fn.
func withDB(ctx context.Context, fn func(db *database.DB) error) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func withStore(ctx context.Context, fn func(s *store.Store) error) error {
	return withDB(ctx, func(db *database.DB) error {
		return fn(store.New(db))
	})
}
