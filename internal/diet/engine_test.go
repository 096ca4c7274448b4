package diet

import (
	"testing"

	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *models.DietPlan {
	return &models.DietPlan{
		UserID:        "u1",
		TMB:           1700,
		DailyCalories: 2200,
		WaterIntake:   2.8,
		Macros:        models.Macros{Protein: 160, Carbs: 240, Fat: 73},
		Meals: []models.PlannedMeal{
			{Meal: "Café da Manhã", Time: "07:00", Foods: []models.PlannedFood{
				{Food: "Pão francês", Quantity: "1 unidade", Calories: 135, Protein: 4.5, Carbs: 28, Fat: 1},
			}},
			{Meal: "Almoço", Time: "12:00", Foods: []models.PlannedFood{
				{Food: "Arroz", Quantity: "100g", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
				{Food: "Frango", Quantity: "150g", Calories: 248, Protein: 46, Carbs: 0, Fat: 5.4},
			}},
		},
	}
}

func foodNames(foods []models.PlannedFood) []string {
	names := make([]string, len(foods))
	for i, f := range foods {
		names[i] = f.Food
	}
	return names
}

func TestEditMealWheyAndHipercalorico(t *testing.T) {
	plan := samplePlan()
	out, msg, err := EditMeal(plan, "Café da Manhã", "quero whey e hipercalórico", models.GoalGainMass)
	require.NoError(t, err)

	assert.ElementsMatch(t, []models.PlannedFood{wheyProtein, hipercalorico}, out.Meals[0].Foods)
	assert.Equal(t, plan.Meals[1], out.Meals[1], "other meals are untouched")
	assert.Contains(t, msg, "Café da Manhã")
	assert.Contains(t, msg, "Whey Protein")
	assert.Contains(t, msg, "Hipercalórico")

	assert.Equal(t, "Pão francês", plan.Meals[0].Foods[0].Food, "input plan is not mutated")
}

func TestEditMealRulePriority(t *testing.T) {
	tests := []struct {
		change string
		want   []string
	}{
		{"WHEY com HIPERCALORICO", []string{"Whey Protein", "Hipercalórico"}},
		{"troca por whey", []string{"Whey Protein"}},
		{"quero hipercalorico", []string{"Hipercalórico"}},
		{"banana com aveia", []string{"Banana"}},
		{"coloca aveia", []string{"Aveia"}},
	}
	for _, tt := range tests {
		t.Run(tt.change, func(t *testing.T) {
			out, _, err := EditMeal(samplePlan(), "almoço", tt.change, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, foodNames(out.Meals[1].Foods))
		})
	}
}

func TestEditMealGoalFallback(t *testing.T) {
	gain, _, err := EditMeal(samplePlan(), "Almoço", "algo diferente", models.GoalGainMass)
	require.NoError(t, err)
	cut, _, err := EditMeal(samplePlan(), "Almoço", "algo diferente", models.GoalLoseWeight)
	require.NoError(t, err)
	keep, _, err := EditMeal(samplePlan(), "Almoço", "algo diferente", models.GoalConditioning)
	require.NoError(t, err)

	assert.Equal(t, []string{"Whey Protein", "Aveia", "Banana"}, foodNames(gain.Meals[1].Foods))
	assert.Equal(t, []string{"Claras de ovo", "Aveia"}, foodNames(cut.Meals[1].Foods))
	assert.Equal(t, []string{"Iogurte natural", "Granola"}, foodNames(keep.Meals[1].Foods))

	for _, foods := range [][]models.PlannedFood{gain.Meals[1].Foods, cut.Meals[1].Foods, keep.Meals[1].Foods} {
		for _, f := range foods {
			assert.Positive(t, f.Calories)
			assert.GreaterOrEqual(t, f.Protein, 0.0)
			assert.GreaterOrEqual(t, f.Carbs, 0.0)
			assert.GreaterOrEqual(t, f.Fat, 0.0)
		}
	}
}

func TestEditMealRecomputesTotals(t *testing.T) {
	out, _, err := EditMeal(samplePlan(), "Almoço", "whey", "")
	require.NoError(t, err)
	assert.Equal(t, 255, out.DailyCalories)
	assert.InDelta(t, 29.5, out.Macros.Protein, 0.001)
}

func TestEditMealErrors(t *testing.T) {
	plan := samplePlan()
	_, _, err := EditMeal(plan, "Jantar", "whey", "")
	assert.ErrorIs(t, err, ErrMealNotFound)
	assert.Equal(t, samplePlan(), plan)

	_, _, err = EditMeal(plan, "Almoço", "   ", "")
	assert.ErrorIs(t, err, ErrEmptyChange)

	_, _, err = EditMeal(nil, "Almoço", "whey", "")
	assert.ErrorIs(t, err, ErrNoPlan)
}

func mealTotals(m models.PlannedMeal) (cal, p, c, f float64) {
	for _, food := range m.Foods {
		cal += food.Calories
		p += food.Protein
		c += food.Carbs
		f += food.Fat
	}
	return
}

func TestReshapeSingleMeal(t *testing.T) {
	out, err := ReshapeMealSchedule(samplePlan(), 1, models.GoalGainMass)
	require.NoError(t, err)
	require.Len(t, out.Meals, 1)
	assert.Equal(t, "Refeição Principal", out.Meals[0].Meal)
	assert.Equal(t, "12:00", out.Meals[0].Time)

	cal, p, c, f := mealTotals(out.Meals[0])
	assert.InDelta(t, 2200, cal, 0.5)
	assert.InDelta(t, 160, p, 0.05)
	assert.InDelta(t, 240, c, 0.05)
	assert.InDelta(t, 73, f, 0.05)
	assert.Len(t, out.Meals[0].Foods, 3)
}

func TestReshapeSixMeals(t *testing.T) {
	out, err := ReshapeMealSchedule(samplePlan(), 6, "")
	require.NoError(t, err)

	var got [][2]string
	for _, m := range out.Meals {
		got = append(got, [2]string{m.Meal, m.Time})
	}
	assert.Equal(t, [][2]string{
		{"Café da Manhã", "07:00"},
		{"Lanche da Manhã", "10:00"},
		{"Almoço", "12:30"},
		{"Lanche da Tarde", "15:30"},
		{"Jantar", "19:00"},
		{"Ceia", "21:30"},
	}, got)
}

func TestReshapePreservesTotalsAndBudgets(t *testing.T) {
	for _, goal := range []models.Goal{models.GoalGainMass, models.GoalLoseWeight, models.GoalConditioning} {
		for n := MinMeals; n <= MaxMeals; n++ {
			plan := samplePlan()
			out, err := ReshapeMealSchedule(plan, n, goal)
			require.NoError(t, err)
			assert.Len(t, out.Meals, n)
			assert.Equal(t, plan.DailyCalories, out.DailyCalories)
			assert.Equal(t, plan.Macros, out.Macros)

			var sum float64
			for _, m := range out.Meals {
				cal, _, _, _ := mealTotals(m)
				assert.InDelta(t, float64(plan.DailyCalories)/float64(n), cal, float64(plan.DailyCalories)/float64(n)*0.05)
				sum += cal
			}
			assert.InDelta(t, float64(plan.DailyCalories), sum, float64(plan.DailyCalories)*0.05)
		}
	}
}

func TestReshapeIsIdempotent(t *testing.T) {
	for n := MinMeals; n <= MaxMeals; n++ {
		first, err := ReshapeMealSchedule(samplePlan(), n, models.GoalLoseWeight)
		require.NoError(t, err)
		second, err := ReshapeMealSchedule(first, n, models.GoalLoseWeight)
		require.NoError(t, err)
		assert.Equal(t, first.Meals, second.Meals)
	}
}

func TestReshapeInvalidCount(t *testing.T) {
	for _, n := range []int{0, 7, -1} {
		plan := samplePlan()
		_, err := ReshapeMealSchedule(plan, n, "")
		assert.ErrorIs(t, err, ErrInvalidMealCount)
		assert.Equal(t, samplePlan(), plan)
	}
}
