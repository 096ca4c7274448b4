package subscription

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

const (
	// Term is how long a paid subscription stays active.
	Term = 30 * 24 * time.Hour
	// UsagePeriod is the length of one usage-counter window.
	UsagePeriod = 30 * 24 * time.Hour
	// DowngradeLockMonths applies to every new subscription regardless of plan.
	DowngradeLockMonths = 4
)

var (
	ErrNoSubscription      = errors.New("no active subscription")
	ErrInvalidSubscription = errors.New("invalid subscription")
	ErrLimitReached        = errors.New("monthly limit reached")
	ErrDowngradeLocked     = errors.New("downgrade not yet allowed")
	ErrNotLowerTier        = errors.New("target plan is not a lower tier")
)

// NewSubscription builds the record attached to a user after payment.
func NewSubscription(plan models.PlanID, now time.Time) *models.Subscription {
	downgradable := now.AddDate(0, DowngradeLockMonths, 0)
	return &models.Subscription{
		Plan:                  plan,
		Status:                models.SubscriptionActive,
		StartDate:             now,
		EndDate:               now.Add(Term),
		CanDowngrade:          false,
		DowngradableDate:      &downgradable,
		DietsUsedThisMonth:    0,
		WorkoutsUsedThisMonth: 0,
		UsagePeriodStart:      now,
	}
}

// Validate rejects malformed subscription records.
func Validate(s *models.Subscription) error {
	if s == nil {
		return nil
	}
	if s.Plan.Rank() == 0 {
		return fmt.Errorf("%w: unknown plan %q", ErrInvalidSubscription, s.Plan)
	}
	switch s.Status {
	case models.SubscriptionActive, models.SubscriptionExpired, models.SubscriptionCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidSubscription, s.Status)
	}
	if s.DietsUsedThisMonth < 0 || s.WorkoutsUsedThisMonth < 0 {
		return fmt.Errorf("%w: negative usage counter", ErrInvalidSubscription)
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidSubscription)
	}
	return nil
}

// RolloverUsage zeroes the usage counters once now has crossed the end of
// the current usage period, advancing the period start by whole periods.
// It returns true when the record changed.
func RolloverUsage(s *models.Subscription, now time.Time) bool {
	if s == nil {
		return false
	}
	if s.UsagePeriodStart.IsZero() {
		s.UsagePeriodStart = s.StartDate
	}
	elapsed := now.Sub(s.UsagePeriodStart)
	if elapsed < UsagePeriod {
		return false
	}
	periods := elapsed / UsagePeriod
	s.UsagePeriodStart = s.UsagePeriodStart.Add(periods * UsagePeriod)
	s.DietsUsedThisMonth = 0
	s.WorkoutsUsedThisMonth = 0
	return true
}

// Expire marks an active subscription whose end date has passed as expired.
// Entitlements are time-based and do not depend on this marking.
func Expire(s *models.Subscription, now time.Time) bool {
	if s == nil || s.Status != models.SubscriptionActive || s.EndDate.After(now) {
		return false
	}
	s.Status = models.SubscriptionExpired
	return true
}

// Refresh applies rollover, expiry and the downgrade flag in one pass.
func Refresh(u *models.User, now time.Time) bool {
	if u == nil || u.Subscription == nil {
		return false
	}
	changed := RolloverUsage(u.Subscription, now)
	if Expire(u.Subscription, now) {
		changed = true
	}
	if can := CanDowngrade(u, now); can != u.Subscription.CanDowngrade {
		u.Subscription.CanDowngrade = can
		changed = true
	}
	return changed
}

// RecordDietUse consumes one diet from the user's quota.
func RecordDietUse(u *models.User, now time.Time) error {
	if !HasActiveSubscription(u, now) {
		return ErrNoSubscription
	}
	if !CanUseDiet(u, now) {
		return ErrLimitReached
	}
	u.Subscription.DietsUsedThisMonth++
	return nil
}

// RecordWorkoutUse consumes one workout from the user's quota.
func RecordWorkoutUse(u *models.User, now time.Time) error {
	if !HasActiveSubscription(u, now) {
		return ErrNoSubscription
	}
	if !CanUseWorkout(u, now) {
		return ErrLimitReached
	}
	u.Subscription.WorkoutsUsedThisMonth++
	return nil
}

// Downgrade moves an active subscription to a strictly lower tier once the
// downgrade lock has passed. Dates and usage counters are kept.
func Downgrade(u *models.User, target models.PlanID, now time.Time) error {
	if !HasActiveSubscription(u, now) {
		return ErrNoSubscription
	}
	if target.Rank() == 0 || target.Rank() >= u.Subscription.Plan.Rank() {
		return ErrNotLowerTier
	}
	if !CanDowngrade(u, now) {
		return ErrDowngradeLocked
	}
	u.Subscription.Plan = target
	return nil
}
