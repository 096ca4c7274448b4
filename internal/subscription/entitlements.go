// Package subscription evaluates what a user may do under their plan and
// manages the subscription record lifecycle.
//
// Every evaluator is pure: it reads the user record and the supplied clock
// value and never mutates either. A user without a subscription, or whose
// subscription is not active and unexpired, has no entitlements at all.
package subscription

import (
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

// HasActiveSubscription reports whether the user has an active subscription
// whose end date is strictly after now.
func HasActiveSubscription(u *models.User, now time.Time) bool {
	if u == nil || u.Subscription == nil {
		return false
	}
	s := u.Subscription
	if s.Plan.Rank() == 0 {
		return false
	}
	return s.Status == models.SubscriptionActive && s.EndDate.After(now)
}

// CanAccessAI is granted by any active subscription.
func CanAccessAI(u *models.User, now time.Time) bool {
	return HasActiveSubscription(u, now)
}

// CanUseDiet reports whether one more diet may be generated this period.
func CanUseDiet(u *models.User, now time.Time) bool {
	if !HasActiveSubscription(u, now) {
		return false
	}
	limits, _ := limitsFor(u.Subscription.Plan)
	return limits.DietsPerMonth.Allows(u.Subscription.DietsUsedThisMonth)
}

// CanChangeDiet reports whether the plan allows mid-period diet changes.
func CanChangeDiet(u *models.User, now time.Time) bool {
	if !HasActiveSubscription(u, now) {
		return false
	}
	limits, _ := limitsFor(u.Subscription.Plan)
	return limits.CanChangeDiet
}

// CanUseWorkout reports whether one more workout may be generated this period.
func CanUseWorkout(u *models.User, now time.Time) bool {
	if !HasActiveSubscription(u, now) {
		return false
	}
	limits, _ := limitsFor(u.Subscription.Plan)
	return limits.WorkoutsPerMonth.Allows(u.Subscription.WorkoutsUsedThisMonth)
}

func CanConsultSupplement(u *models.User, now time.Time) bool {
	if !HasActiveSubscription(u, now) {
		return false
	}
	limits, _ := limitsFor(u.Subscription.Plan)
	return limits.SupplementConsultation
}

// CanDowngrade is true once now has reached the downgradable date.
func CanDowngrade(u *models.User, now time.Time) bool {
	if !HasActiveSubscription(u, now) {
		return false
	}
	d := u.Subscription.DowngradableDate
	if d == nil || d.IsZero() {
		return false
	}
	return !now.Before(*d)
}

// GetSubscriptionLimits returns the catalog limits for the user's plan, or
// zero limits when the subscription is not active.
func GetSubscriptionLimits(u *models.User, now time.Time) models.PlanLimits {
	if !HasActiveSubscription(u, now) {
		return zeroLimits
	}
	limits, _ := limitsFor(u.Subscription.Plan)
	return limits
}

// GetUsageStatus reports used and remaining quota. All fields are zero when
// the subscription is not active.
func GetUsageStatus(u *models.User, now time.Time) models.UsageStatus {
	if !HasActiveSubscription(u, now) {
		return models.UsageStatus{}
	}
	s := u.Subscription
	limits := GetSubscriptionLimits(u, now)
	return models.UsageStatus{
		DietsUsed:         s.DietsUsedThisMonth,
		WorkoutsUsed:      s.WorkoutsUsedThisMonth,
		DietsRemaining:    limits.DietsPerMonth.Remaining(s.DietsUsedThisMonth),
		WorkoutsRemaining: limits.WorkoutsPerMonth.Remaining(s.WorkoutsUsedThisMonth),
	}
}

// Entitlements is a snapshot of every capability at one instant.
type Entitlements struct {
	Active               bool               `json:"active"`
	CanAccessAI          bool               `json:"canAccessAI"`
	CanUseDiet           bool               `json:"canUseDiet"`
	CanChangeDiet        bool               `json:"canChangeDiet"`
	CanUseWorkout        bool               `json:"canUseWorkout"`
	CanConsultSupplement bool               `json:"canConsultSupplement"`
	CanDowngrade         bool               `json:"canDowngrade"`
	Limits               models.PlanLimits  `json:"limits"`
	Usage                models.UsageStatus `json:"usage"`
}

func Evaluate(u *models.User, now time.Time) Entitlements {
	return Entitlements{
		Active:               HasActiveSubscription(u, now),
		CanAccessAI:          CanAccessAI(u, now),
		CanUseDiet:           CanUseDiet(u, now),
		CanChangeDiet:        CanChangeDiet(u, now),
		CanUseWorkout:        CanUseWorkout(u, now),
		CanConsultSupplement: CanConsultSupplement(u, now),
		CanDowngrade:         CanDowngrade(u, now),
		Limits:               GetSubscriptionLimits(u, now),
		Usage:                GetUsageStatus(u, now),
	}
}
