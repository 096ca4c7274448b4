package diet

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlanStore struct {
	mock.Mock
}

func (m *MockPlanStore) GetDietPlan(ctx context.Context, userID string) (*models.DietPlan, error) {
	args := m.Called(ctx, userID)
	plan, _ := args.Get(0).(*models.DietPlan)
	return plan, args.Error(1)
}

func (m *MockPlanStore) UpsertDietPlan(ctx context.Context, plan *models.DietPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func newTestService(store PlanStore) *Service {
	log.SetOutput(io.Discard)
	s := NewService(store)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestServiceEditSynthesizesMissingPlan(t *testing.T) {
	store := new(MockPlanStore)
	ctx := context.Background()
	u := &models.User{ID: "u1"}

	store.On("GetDietPlan", ctx, "u1").Return(nil, models.ErrNotFound)
	store.On("UpsertDietPlan", ctx, mock.AnythingOfType("*models.DietPlan")).Return(nil)

	plan, msg, err := newTestService(store).Edit(ctx, u, "jantar", "banana")
	require.NoError(t, err)
	assert.NotEmpty(t, msg)
	assert.Equal(t, "u1", plan.UserID)
	assert.Equal(t, []string{"Banana"}, foodNames(plan.Meals[3].Foods))
	store.AssertNumberOfCalls(t, "UpsertDietPlan", 2)
}

func TestServiceEditMealNotFoundDoesNotWrite(t *testing.T) {
	store := new(MockPlanStore)
	ctx := context.Background()
	store.On("GetDietPlan", ctx, "u1").Return(samplePlan(), nil)

	_, _, err := newTestService(store).Edit(ctx, &models.User{ID: "u1"}, "Ceia", "whey")
	assert.ErrorIs(t, err, ErrMealNotFound)
	store.AssertNotCalled(t, "UpsertDietPlan", mock.Anything, mock.Anything)
}

func TestServiceReassertsUserID(t *testing.T) {
	store := new(MockPlanStore)
	ctx := context.Background()
	stale := samplePlan()
	stale.UserID = ""
	store.On("GetDietPlan", ctx, "u1").Return(stale, nil)
	store.On("UpsertDietPlan", ctx, mock.MatchedBy(func(p *models.DietPlan) bool { return p.UserID == "u1" })).Return(nil)

	_, err := newTestService(store).Reshape(ctx, &models.User{ID: "u1"}, 3)
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestServiceReshapeRejectsBadCountBeforeLoading(t *testing.T) {
	store := new(MockPlanStore)
	_, err := newTestService(store).Reshape(context.Background(), &models.User{ID: "u1"}, 9)
	assert.ErrorIs(t, err, ErrInvalidMealCount)
	store.AssertNotCalled(t, "GetDietPlan", mock.Anything, mock.Anything)
}

func TestServiceChat(t *testing.T) {
	ctx := context.Background()
	u := &models.User{ID: "u1", Profile: sampleProfile()}

	t.Run("meal count routes to reshape", func(t *testing.T) {
		store := new(MockPlanStore)
		store.On("GetDietPlan", ctx, "u1").Return(samplePlan(), nil)
		store.On("UpsertDietPlan", ctx, mock.Anything).Return(nil)

		plan, msg, err := newTestService(store).Chat(ctx, u, "", "quero 5 refeições")
		require.NoError(t, err)
		assert.Len(t, plan.Meals, 5)
		assert.Contains(t, msg, "5 refeições")
	})

	t.Run("mentioned meal routes to edit", func(t *testing.T) {
		store := new(MockPlanStore)
		store.On("GetDietPlan", ctx, "u1").Return(samplePlan(), nil)
		store.On("UpsertDietPlan", ctx, mock.Anything).Return(nil)

		plan, _, err := newTestService(store).Chat(ctx, u, "", "no almoço quero aveia")
		require.NoError(t, err)
		assert.Equal(t, []string{"Aveia"}, foodNames(plan.Meals[1].Foods))
	})

	t.Run("no meal mentioned", func(t *testing.T) {
		store := new(MockPlanStore)
		store.On("GetDietPlan", ctx, "u1").Return(samplePlan(), nil)

		_, _, err := newTestService(store).Chat(ctx, u, "", "quero whey")
		assert.ErrorIs(t, err, ErrMealNotFound)
	})
}

func TestServiceStoreFailure(t *testing.T) {
	store := new(MockPlanStore)
	ctx := context.Background()
	store.On("GetDietPlan", ctx, "u1").Return(nil, errors.New("disk full"))

	_, err := newTestService(store).Current(ctx, &models.User{ID: "u1"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}
