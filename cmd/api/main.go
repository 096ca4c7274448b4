package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fitcoach-io/fitcoach/internal/api"
	"github.com/fitcoach-io/fitcoach/internal/config"
	"github.com/fitcoach-io/fitcoach/internal/database"
	"github.com/fitcoach-io/fitcoach/internal/storage"
	"github.com/fitcoach-io/fitcoach/internal/store"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const version = "0.1.0"

// initializeAPI wires configuration, database and storage into an Api.
// The returned database must be closed by the caller.
func initializeAPI(ctx context.Context, configPath string) (*api.Api, *database.DB, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	cfg.ConfigureLogging()

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	objects, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	a, err := api.NewApi(*cfg, api.Deps{
		Store:   store.New(db),
		Objects: objects,
	})
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return a, db, nil
}

func main() {
	configPath := flag.String("config", "app.yml", "Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Could not load .env: %v", err)
	}

	log.Infof("Starting FitCoach API v%s with config: %s", version, *configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, db, err := initializeAPI(ctx, *configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := a.Serve(ctx); err != nil {
		log.Fatal(err)
	}
}
