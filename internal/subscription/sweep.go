package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
	log "github.com/sirupsen/logrus"
)

// UserStore is what Sweep needs to walk and rewrite users.
// UpdateUserIfUnchanged must return models.ErrConflict when the user was
// written by someone else after ListUsers read it.
type UserStore interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUserIfUnchanged(ctx context.Context, u *models.User) error
}

// Sweep refreshes every user's subscription (usage rollover, expiry,
// downgrade flag) and saves the ones that changed. Users modified since the
// listing are skipped; their next request refreshes them. It returns how
// many users were updated.
func Sweep(ctx context.Context, users UserStore, now time.Time) (int, error) {
	all, err := users.ListUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	updated := 0
	for _, u := range all {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		if !Refresh(u, now) {
			continue
		}
		u.UpdatedAt = now
		if err := users.UpdateUserIfUnchanged(ctx, u); err != nil {
			if errors.Is(err, models.ErrConflict) {
				log.WithField("user_id", u.ID).Debug("user changed during sweep, skipping")
				continue
			}
			log.WithError(err).WithField("user_id", u.ID).Warn("failed to save refreshed subscription")
			continue
		}
		updated++
	}

	log.Debugf("Usage sweep: %d of %d users updated", updated, len(all))
	return updated, nil
}
