package subscription

import (
	"testing"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription(t *testing.T) {
	for _, plan := range []models.PlanID{models.PlanStarter, models.PlanStandard, models.PlanPremium} {
		s := NewSubscription(plan, now)
		assert.Equal(t, models.SubscriptionActive, s.Status)
		assert.Equal(t, now, s.StartDate)
		assert.Equal(t, now.Add(30*24*time.Hour), s.EndDate)
		assert.False(t, s.CanDowngrade)
		require.NotNil(t, s.DowngradableDate)
		assert.Equal(t, now.AddDate(0, 4, 0), *s.DowngradableDate, "lock applies to %s too", plan)
		assert.Zero(t, s.DietsUsedThisMonth)
		assert.Zero(t, s.WorkoutsUsedThisMonth)
		assert.NoError(t, Validate(s))
	}
}

func TestValidate(t *testing.T) {
	s := NewSubscription(models.PlanStandard, now)
	s.DietsUsedThisMonth = -1
	assert.ErrorIs(t, Validate(s), ErrInvalidSubscription)

	s = NewSubscription(models.PlanStandard, now)
	s.Status = "paused"
	assert.ErrorIs(t, Validate(s), ErrInvalidSubscription)

	assert.NoError(t, Validate(nil))
}

func TestRolloverUsage(t *testing.T) {
	s := NewSubscription(models.PlanStandard, now)
	s.DietsUsedThisMonth = 2
	s.WorkoutsUsedThisMonth = 1

	assert.False(t, RolloverUsage(s, now.Add(29*24*time.Hour)))
	assert.Equal(t, 2, s.DietsUsedThisMonth)

	later := now.Add(65 * 24 * time.Hour)
	assert.True(t, RolloverUsage(s, later))
	assert.Zero(t, s.DietsUsedThisMonth)
	assert.Zero(t, s.WorkoutsUsedThisMonth)
	assert.Equal(t, now.Add(60*24*time.Hour), s.UsagePeriodStart)

	assert.False(t, RolloverUsage(s, later), "second call in the same period is a no-op")
}

func TestRefreshExpiresAndFlagsDowngrade(t *testing.T) {
	u := &models.User{Subscription: NewSubscription(models.PlanPremium, now)}
	u.Subscription.EndDate = now.AddDate(1, 0, 0)

	assert.True(t, Refresh(u, now.AddDate(0, 4, 1)))
	assert.True(t, u.Subscription.CanDowngrade)

	assert.True(t, Refresh(u, now.AddDate(1, 0, 1)))
	assert.Equal(t, models.SubscriptionExpired, u.Subscription.Status)
	assert.False(t, u.Subscription.CanDowngrade)
}

func TestRecordUse(t *testing.T) {
	u := &models.User{Subscription: NewSubscription(models.PlanStarter, now)}
	require.NoError(t, RecordDietUse(u, now))
	assert.ErrorIs(t, RecordDietUse(u, now), ErrLimitReached)
	require.NoError(t, RecordWorkoutUse(u, now))
	assert.ErrorIs(t, RecordWorkoutUse(u, now), ErrLimitReached)

	assert.ErrorIs(t, RecordDietUse(&models.User{}, now), ErrNoSubscription)
}

func TestDowngrade(t *testing.T) {
	u := &models.User{Subscription: NewSubscription(models.PlanPremium, now)}
	u.Subscription.EndDate = now.AddDate(1, 0, 0)

	assert.ErrorIs(t, Downgrade(u, models.PlanStandard, now), ErrDowngradeLocked)
	assert.ErrorIs(t, Downgrade(u, models.PlanPremium, now.AddDate(0, 5, 0)), ErrNotLowerTier)

	require.NoError(t, Downgrade(u, models.PlanStarter, now.AddDate(0, 5, 0)))
	assert.Equal(t, models.PlanStarter, u.Subscription.Plan)
}

func TestCatalog(t *testing.T) {
	plans := Catalog()
	require.Len(t, plans, 3)
	assert.Equal(t, 19.97, plans[0].Price)
	assert.Equal(t, 29.97, plans[1].Price)
	assert.Equal(t, 49.97, plans[2].Price)
	assert.Equal(t, 4, plans[2].MinimumMonths)

	plans[0].Features[0] = "changed"
	p, ok := Plan(models.PlanStarter)
	require.True(t, ok)
	assert.NotEqual(t, "changed", p.Features[0])
}
