package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitJSON(t *testing.T) {
	b, err := json.Marshal(PlanLimits{DietsPerMonth: Unlimited, WorkoutsPerMonth: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dietsPerMonth":"unlimited","workoutsPerMonth":4,"canChangeDiet":false,"supplementConsultation":false}`, string(b))

	var l PlanLimits
	require.NoError(t, json.Unmarshal(b, &l))
	assert.True(t, l.DietsPerMonth.IsUnlimited())
	assert.Equal(t, Limit(4), l.WorkoutsPerMonth)

	var bad Limit
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`-3`), &bad))
}

func TestLimitArithmetic(t *testing.T) {
	assert.True(t, Unlimited.Allows(1_000_000))
	assert.Equal(t, Unlimited, Unlimited.Remaining(50))
	assert.True(t, Limit(2).Allows(1))
	assert.False(t, Limit(2).Allows(2))
	assert.Equal(t, Limit(0), Limit(2).Remaining(7))
	assert.Equal(t, Limit(1), Limit(2).Remaining(1))
}

func TestParsePlanID(t *testing.T) {
	p, err := ParsePlanID(" Premium ")
	require.NoError(t, err)
	assert.Equal(t, PlanPremium, p)

	_, err = ParsePlanID("gold")
	assert.Error(t, err)
	assert.Less(t, PlanStarter.Rank(), PlanStandard.Rank())
	assert.Less(t, PlanStandard.Rank(), PlanPremium.Rank())
}

func TestMealEntryValidate(t *testing.T) {
	ok := MealEntry{Name: "Almoço", Time: "12:30", Foods: []FoodEntry{{Food: "Arroz", Quantity: "100", Measurement: MeasureGrams}}}
	assert.NoError(t, ok.Validate())

	err := MealEntry{Name: " ", Time: "25:00"}.Validate()
	require.Error(t, err)
	fe, isFieldErr := err.(FieldErrors)
	require.True(t, isFieldErr)
	assert.Contains(t, fe, "name")
	assert.Contains(t, fe, "time")
	assert.Contains(t, fe, "foods")

	err = MealEntry{Name: "Ceia", Time: "21:30", Foods: []FoodEntry{{Food: "Leite", Quantity: "1", Measurement: "copo"}}}.Validate()
	assert.Equal(t, "Medida inválida", err.(FieldErrors)["foods[0]"])
}

func TestProfileValidate(t *testing.T) {
	p := &Profile{Age: 30, Gender: GenderFemale, Height: 165, Weight: 60, ActivityLevel: ActivityModerate, Goal: GoalGainMass}
	assert.NoError(t, p.Validate())

	p.ActivityLevel = "atleta"
	p.Goal = "ficar-forte"
	err := p.Validate()
	require.Error(t, err)
	assert.Len(t, err.(FieldErrors), 2)
}

func TestDietPlanCloneAndTotals(t *testing.T) {
	plan := &DietPlan{
		UserID: "u1",
		Meals: []PlannedMeal{
			{Meal: "Café da Manhã", Time: "07:00", Foods: []PlannedFood{{Food: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3}}},
			{Meal: "Jantar", Time: "19:00", Foods: []PlannedFood{{Food: "Aveia", Calories: 190, Protein: 7, Carbs: 32, Fat: 3.5}}},
		},
	}

	c := plan.Clone()
	c.Meals[0].Foods[0].Food = "Maçã"
	assert.Equal(t, "Banana", plan.Meals[0].Foods[0].Food)

	plan.RecomputeTotals()
	assert.Equal(t, 279, plan.DailyCalories)
	assert.InDelta(t, 8.1, plan.Macros.Protein, 0.001)
	assert.InDelta(t, 55, plan.Macros.Carbs, 0.001)
	assert.InDelta(t, 3.8, plan.Macros.Fat, 0.001)
}

func TestOrderIsExpired(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	o := &Order{}
	assert.False(t, o.IsExpired(now))

	exp := now.Add(-time.Minute)
	o.ExpiresAt = &exp
	assert.True(t, o.IsExpired(now))
	assert.False(t, o.IsPaymentComplete())
}
