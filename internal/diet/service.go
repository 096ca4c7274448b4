package diet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
	log "github.com/sirupsen/logrus"
)

// PlanStore holds one current diet plan per user. GetDietPlan returns an
// error wrapping models.ErrNotFound when the user has no plan yet.
type PlanStore interface {
	GetDietPlan(ctx context.Context, userID string) (*models.DietPlan, error)
	UpsertDietPlan(ctx context.Context, plan *models.DietPlan) error
}

// Service applies engine operations to the plans held in a PlanStore.
// Writes are last-writer-wins.
type Service struct {
	plans PlanStore
	now   func() time.Time
}

func NewService(plans PlanStore) *Service {
	return &Service{plans: plans, now: time.Now}
}

// Current loads the user's plan, synthesizing and saving one when absent.
func (s *Service) Current(ctx context.Context, u *models.User) (*models.DietPlan, error) {
	plan, err := s.plans.GetDietPlan(ctx, u.ID)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("load diet plan: %w", err)
	}

	now := s.now()
	if u.Profile != nil {
		plan = GeneratePlan(u.ID, u.Profile, nil, now)
	} else {
		plan = DefaultPlan(u.ID, now)
	}
	log.WithField("user_id", u.ID).Info("no diet plan found, created a starter plan")
	if err := s.plans.UpsertDietPlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("save starter diet plan: %w", err)
	}
	return plan, nil
}

// Edit runs EditMeal against the user's current plan and saves the result.
func (s *Service) Edit(ctx context.Context, u *models.User, target, change string) (*models.DietPlan, string, error) {
	plan, err := s.Current(ctx, u)
	if err != nil {
		return nil, "", err
	}
	updated, msg, err := EditMeal(plan, target, change, u.Goal())
	if err != nil {
		return nil, "", err
	}
	if err := s.save(ctx, u, updated); err != nil {
		return nil, "", err
	}
	return updated, msg, nil
}

// Reshape runs ReshapeMealSchedule against the user's current plan and saves the result.
func (s *Service) Reshape(ctx context.Context, u *models.User, count int) (*models.DietPlan, error) {
	if count < MinMeals || count > MaxMeals {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMealCount, count)
	}
	plan, err := s.Current(ctx, u)
	if err != nil {
		return nil, err
	}
	updated, err := ReshapeMealSchedule(plan, count, u.Goal())
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, u, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Chat interprets a free-text request. Meal-count requests reshape the
// plan; anything else edits the named meal, or the meal mentioned in the
// message when none is named.
func (s *Service) Chat(ctx context.Context, u *models.User, meal, message string) (*models.DietPlan, string, error) {
	if n, ok := ParseMealCount(message); ok {
		plan, err := s.Reshape(ctx, u, n)
		if err != nil {
			return nil, "", err
		}
		return plan, fmt.Sprintf("Sua dieta agora tem %d refeições, mantendo %d calorias diárias. As mudanças já estão salvas.", n, plan.DailyCalories), nil
	}

	if meal == "" {
		plan, err := s.Current(ctx, u)
		if err != nil {
			return nil, "", err
		}
		found, ok := MentionedMeal(plan, message)
		if !ok {
			return nil, "", fmt.Errorf("%w: no meal named in request", ErrMealNotFound)
		}
		meal = found
	}
	return s.Edit(ctx, u, meal, message)
}

// Generate builds a fresh plan from the user's profile and logged meals.
func (s *Service) Generate(ctx context.Context, u *models.User, logged []models.MealEntry) (*models.DietPlan, error) {
	if u.Profile == nil {
		return nil, errors.New("profile is required to generate a diet")
	}
	plan := GeneratePlan(u.ID, u.Profile, logged, s.now())
	if err := s.plans.UpsertDietPlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("save diet plan: %w", err)
	}
	return plan, nil
}

func (s *Service) save(ctx context.Context, u *models.User, plan *models.DietPlan) error {
	plan.UserID = u.ID
	plan.UpdatedAt = s.now()
	if err := s.plans.UpsertDietPlan(ctx, plan); err != nil {
		return fmt.Errorf("save diet plan: %w", err)
	}
	return nil
}
