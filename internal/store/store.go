package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/database"
	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/fitcoach-io/fitcoach/internal/subscription"
	log "github.com/sirupsen/logrus"
)

var ErrEmailExists = errors.New("email already registered")

// Store handles all database operations. Entities are kept as JSON
// documents next to the columns used for lookups.
type Store struct {
	db *database.DB
}

// New creates a new store instance
func New(db *database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.db.Rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.db.QueryRowContext(ctx, s.db.Rebind(query), args...)
}

func (s *Store) getJSON(ctx context.Context, dst interface{}, query string, args ...interface{}) error {
	var data []byte
	if err := s.queryRow(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func encode(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser inserts a new user. The email is unique across accounts.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	u.Email = normalizeEmail(u.Email)
	data, err := encode(u)
	if err != nil {
		return err
	}

	_, err = s.exec(ctx,
		"INSERT INTO users (id, email, password_hash, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		u.ID, u.Email, u.PasswordHash, data, u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// SaveUser writes back an existing user.
func (s *Store) SaveUser(ctx context.Context, u *models.User) error {
	u.Email = normalizeEmail(u.Email)
	data, err := encode(u)
	if err != nil {
		return err
	}

	res, err := s.exec(ctx,
		"UPDATE users SET email = ?, password_hash = ?, data = ?, updated_at = ?, version = version + 1 WHERE id = ?",
		u.Email, u.PasswordHash, data, u.UpdatedAt.UTC(), u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNotFound
	}
	u.Version++
	return nil
}

// UpdateUserIfUnchanged writes back a user only if the stored row still has
// the version the user was loaded with. Otherwise it returns
// models.ErrConflict and leaves the row alone.
func (s *Store) UpdateUserIfUnchanged(ctx context.Context, u *models.User) error {
	u.Email = normalizeEmail(u.Email)
	data, err := encode(u)
	if err != nil {
		return err
	}

	res, err := s.exec(ctx,
		"UPDATE users SET email = ?, password_hash = ?, data = ?, updated_at = ?, version = version + 1 WHERE id = ? AND version = ?",
		u.Email, u.PasswordHash, data, u.UpdatedAt.UTC(), u.ID, u.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return models.ErrConflict
	}
	u.Version++
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.scanUser(s.queryRow(ctx, "SELECT password_hash, version, data FROM users WHERE id = ?", id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanUser(s.queryRow(ctx, "SELECT password_hash, version, data FROM users WHERE email = ?", normalizeEmail(email)))
}

// ListUsers returns every registered user ordered by creation.
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT password_hash, version, data FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := s.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (s *Store) scanUser(row scanner) (*models.User, error) {
	var (
		hash    string
		version int64
		data    []byte
	)
	if err := row.Scan(&hash, &version, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	u := &models.User{}
	if err := json.Unmarshal(data, u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	u.PasswordHash = hash
	u.Version = version

	if err := subscription.Validate(u.Subscription); err != nil {
		log.Warnf("Dropping invalid subscription for user %s: %v", u.ID, err)
		u.Subscription = nil
	}
	return u, nil
}

func (s *Store) GetDietPlan(ctx context.Context, userID string) (*models.DietPlan, error) {
	plan := &models.DietPlan{}
	if err := s.getJSON(ctx, plan, "SELECT data FROM diet_plans WHERE user_id = ?", userID); err != nil {
		return nil, err
	}
	return plan, nil
}

// UpsertDietPlan replaces the user's plan wholesale.
func (s *Store) UpsertDietPlan(ctx context.Context, plan *models.DietPlan) error {
	data, err := encode(plan)
	if err != nil {
		return err
	}
	_, err = s.exec(ctx,
		`INSERT INTO diet_plans (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		plan.UserID, data, plan.UpdatedAt.UTC(),
	)
	return err
}

func (s *Store) GetWorkoutPlan(ctx context.Context, userID string) (*models.WorkoutPlan, error) {
	plan := &models.WorkoutPlan{}
	if err := s.getJSON(ctx, plan, "SELECT data FROM workout_plans WHERE user_id = ?", userID); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *Store) UpsertWorkoutPlan(ctx context.Context, plan *models.WorkoutPlan) error {
	data, err := encode(plan)
	if err != nil {
		return err
	}
	_, err = s.exec(ctx,
		`INSERT INTO workout_plans (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		plan.UserID, data, time.Now().UTC(),
	)
	return err
}

// GetWorkoutProgress loads the log for one user and calendar day (YYYY-MM-DD).
func (s *Store) GetWorkoutProgress(ctx context.Context, userID, date string) (*models.WorkoutProgress, error) {
	prog := &models.WorkoutProgress{}
	if err := s.getJSON(ctx, prog, "SELECT data FROM workout_progress WHERE user_id = ? AND day = ?", userID, date); err != nil {
		return nil, err
	}
	return prog, nil
}

func (s *Store) SaveWorkoutProgress(ctx context.Context, prog *models.WorkoutProgress) error {
	data, err := encode(prog)
	if err != nil {
		return err
	}
	_, err = s.exec(ctx,
		`INSERT INTO workout_progress (user_id, day, data, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, day) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		prog.UserID, prog.Date, data, prog.UpdatedAt.UTC(),
	)
	return err
}

func (s *Store) SaveBodyAnalysis(ctx context.Context, a *models.BodyAnalysis) error {
	data, err := encode(a)
	if err != nil {
		return err
	}
	_, err = s.exec(ctx,
		"INSERT INTO body_analyses (id, user_id, data, created_at) VALUES (?, ?, ?, ?)",
		a.ID, a.UserID, data, a.CreatedAt.UTC(),
	)
	return err
}

// LatestBodyAnalysis returns the most recent analysis for a user.
func (s *Store) LatestBodyAnalysis(ctx context.Context, userID string) (*models.BodyAnalysis, error) {
	a := &models.BodyAnalysis{}
	err := s.getJSON(ctx, a,
		"SELECT data FROM body_analyses WHERE user_id = ? ORDER BY created_at DESC LIMIT 1", userID)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// SaveOrder inserts or updates an order.
func (s *Store) SaveOrder(ctx context.Context, o *models.Order) error {
	data, err := encode(o)
	if err != nil {
		return err
	}
	var expires interface{}
	if o.ExpiresAt != nil {
		expires = o.ExpiresAt.UTC()
	}
	_, err = s.exec(ctx,
		`INSERT INTO orders (id, user_id, order_number, status, data, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET status = excluded.status, data = excluded.data, updated_at = excluded.updated_at`,
		o.ID, o.UserID, o.OrderNumber, string(o.Status), data, expires, o.CreatedAt.UTC(), o.UpdatedAt.UTC(),
	)
	return err
}

func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	o := &models.Order{}
	if err := s.getJSON(ctx, o, "SELECT data FROM orders WHERE id = ?", id); err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrders returns a user's orders, newest first.
func (s *Store) ListOrders(ctx context.Context, userID string) ([]*models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		s.db.Rebind("SELECT data FROM orders WHERE user_id = ? ORDER BY created_at DESC"), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		o := &models.Order{}
		if err := json.Unmarshal(data, o); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
