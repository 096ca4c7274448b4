package database

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Migration represents a database migration
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// GetMigrations returns all database migrations for a dialect
func GetMigrations(dialect string) []Migration {
	if dialect == Postgres {
		return postgresMigrations
	}
	return sqliteMigrations
}

var postgresMigrations = []Migration{
	{
		Version:     1,
		Description: "Create users table",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			data JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Version:     2,
		Description: "Create diet and workout plan tables",
		SQL: `CREATE TABLE IF NOT EXISTS diet_plans (
			user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			data JSONB NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS workout_plans (
			user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			data JSONB NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Version:     3,
		Description: "Create workout progress table",
		SQL: `CREATE TABLE IF NOT EXISTS workout_progress (
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			day VARCHAR(10) NOT NULL,
			data JSONB NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, day)
		)`,
	},
	{
		Version:     4,
		Description: "Create body analyses table",
		SQL: `CREATE TABLE IF NOT EXISTS body_analyses (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			data JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_body_analyses_user ON body_analyses(user_id, created_at)`,
	},
	{
		Version:     5,
		Description: "Create orders table",
		SQL: `CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			order_number VARCHAR(32) UNIQUE NOT NULL,
			status VARCHAR(20) NOT NULL,
			data JSONB NOT NULL,
			expires_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id)`,
	},
	{
		Version:     6,
		Description: "Add users version column",
		SQL:         `ALTER TABLE users ADD COLUMN version INTEGER NOT NULL DEFAULT 0`,
	},
}

var sqliteMigrations = []Migration{
	{
		Version:     1,
		Description: "Create users table",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			data TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version:     2,
		Description: "Create diet and workout plan tables",
		SQL: `CREATE TABLE IF NOT EXISTS diet_plans (
			user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			data TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS workout_plans (
			user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			data TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version:     3,
		Description: "Create workout progress table",
		SQL: `CREATE TABLE IF NOT EXISTS workout_progress (
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			day TEXT NOT NULL,
			data TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, day)
		)`,
	},
	{
		Version:     4,
		Description: "Create body analyses table",
		SQL: `CREATE TABLE IF NOT EXISTS body_analyses (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			data TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_body_analyses_user ON body_analyses(user_id, created_at)`,
	},
	{
		Version:     5,
		Description: "Create orders table",
		SQL: `CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			order_number TEXT UNIQUE NOT NULL,
			status TEXT NOT NULL,
			data TEXT NOT NULL,
			expires_at DATETIME,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id)`,
	},
	{
		Version:     6,
		Description: "Add users version column",
		SQL:         `ALTER TABLE users ADD COLUMN version INTEGER NOT NULL DEFAULT 0`,
	},
}

func (db *DB) createMigrationsTable(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if db.dialect == Postgres {
		query = `CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`
	}

	_, err := db.ExecContext(ctx, query)
	return err
}

// AppliedMigrations returns the set of migration versions already applied.
func (db *DB) AppliedMigrations(ctx context.Context) (map[int]bool, error) {
	applied := make(map[int]bool)

	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return applied, err
	}
	defer rows.Close()

	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return applied, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// Migrate runs all pending migrations. Each migration runs in its own
// transaction together with its bookkeeping row.
func (db *DB) Migrate(ctx context.Context) error {
	if err := db.createMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.AppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, migration := range GetMigrations(db.dialect) {
		if applied[migration.Version] {
			log.Debugf("Migration %d already applied: %s", migration.Version, migration.Description)
			continue
		}

		log.Infof("Applying migration %d: %s", migration.Version, migration.Description)
		if err := db.apply(ctx, migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
		}
	}
	return nil
}

func (db *DB) apply(ctx context.Context, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range strings.Split(m.SQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, db.Rebind("INSERT INTO schema_migrations (version) VALUES (?)"), m.Version); err != nil {
		return err
	}
	return tx.Commit()
}
