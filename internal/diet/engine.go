// Package diet rewrites diet plans: targeted meal edits driven by free-text
// requests, meal-count reshaping, and plan generation from a profile.
//
// The engine functions never modify their input plan. They return a new
// plan that the caller persists as a whole.
package diet

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

const (
	MinMeals = 1
	MaxMeals = 6
)

var (
	ErrNoPlan           = errors.New("diet plan is required")
	ErrMealNotFound     = errors.New("meal not found")
	ErrEmptyChange      = errors.New("change description is empty")
	ErrInvalidMealCount = fmt.Errorf("meal count must be between %d and %d", MinMeals, MaxMeals)
)

// EditMeal replaces the food list of the meal named target with foods
// chosen from the change request. Meal names match case-insensitively.
// Daily totals are recomputed from the itemized meals.
func EditMeal(plan *models.DietPlan, target, change string, goal models.Goal) (*models.DietPlan, string, error) {
	if plan == nil {
		return nil, "", ErrNoPlan
	}
	if strings.TrimSpace(change) == "" {
		return nil, "", ErrEmptyChange
	}

	idx := findMeal(plan, target)
	if idx < 0 {
		return nil, "", fmt.Errorf("%w: %q", ErrMealNotFound, target)
	}

	out := plan.Clone()
	foods := selectFoods(change, goal)
	out.Meals[idx].Foods = foods
	out.RecomputeTotals()

	return out, confirmation(out.Meals[idx].Meal, foods), nil
}

func findMeal(plan *models.DietPlan, target string) int {
	t := strings.TrimSpace(target)
	if t == "" {
		return -1
	}
	for i, m := range plan.Meals {
		if strings.EqualFold(strings.TrimSpace(m.Meal), t) {
			return i
		}
	}
	return -1
}

func confirmation(meal string, foods []models.PlannedFood) string {
	names := make([]string, len(foods))
	var kcal float64
	for i, f := range foods {
		names[i] = fmt.Sprintf("%s (%s)", f.Food, f.Quantity)
		kcal += f.Calories
	}
	list := names[0]
	if n := len(names); n > 1 {
		list = strings.Join(names[:n-1], ", ") + " e " + names[n-1]
	}
	return fmt.Sprintf("%s atualizado! Adicionei %s, somando %.0f calorias. Sua dieta foi atualizada e as mudanças já estão salvas.",
		meal, list, kcal)
}

type mealKind int

const (
	kindBreakfast mealKind = iota
	kindSnack
	kindMain
	kindSupper
)

type mealSlot struct {
	name string
	time string
	kind mealKind
}

var (
	slotMain       = mealSlot{"Refeição Principal", "12:00", kindMain}
	slotBreakfast8 = mealSlot{"Café da Manhã", "08:00", kindBreakfast}
	slotBreakfast7 = mealSlot{"Café da Manhã", "07:00", kindBreakfast}
	slotMorning    = mealSlot{"Lanche da Manhã", "10:00", kindSnack}
	slotLunch      = mealSlot{"Almoço", "12:00", kindMain}
	slotLateLunch  = mealSlot{"Almoço", "12:30", kindMain}
	slotAfternoon  = mealSlot{"Lanche da Tarde", "15:30", kindSnack}
	slotDinner     = mealSlot{"Jantar", "19:00", kindMain}
	slotLateSupper = mealSlot{"Ceia", "21:30", kindSupper}
)

// schedules maps a meal count to its fixed (name, time) sequence.
var schedules = map[int][]mealSlot{
	1: {slotMain},
	2: {slotBreakfast8, slotDinner},
	3: {slotBreakfast8, slotLunch, slotDinner},
	4: {slotBreakfast7, slotLunch, slotAfternoon, slotDinner},
	5: {slotBreakfast7, slotMorning, slotLateLunch, slotAfternoon, slotDinner},
	6: {slotBreakfast7, slotMorning, slotLateLunch, slotAfternoon, slotDinner, slotLateSupper},
}

// ReshapeMealSchedule regenerates the whole meal list for count meals,
// splitting the existing daily calories and macros evenly. Daily totals
// are left unchanged.
func ReshapeMealSchedule(plan *models.DietPlan, count int, goal models.Goal) (*models.DietPlan, error) {
	if plan == nil {
		return nil, ErrNoPlan
	}
	slots, ok := schedules[count]
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMealCount, count)
	}

	out := plan.Clone()
	out.Meals = synthesizeMeals(slots, out.DailyCalories, out.Macros, goal)
	return out, nil
}

// budget is the nutrition allotted to one meal.
type budget struct {
	calories, protein, carbs, fat float64
}

func evenBudget(daily int, macros models.Macros, n int) budget {
	d := float64(n)
	return budget{
		calories: math.Round(float64(daily) / d),
		protein:  round1(macros.Protein / d),
		carbs:    round1(macros.Carbs / d),
		fat:      round1(macros.Fat / d),
	}
}

func synthesizeMeals(slots []mealSlot, daily int, macros models.Macros, goal models.Goal) []models.PlannedMeal {
	b := evenBudget(daily, macros, len(slots))
	branch := branchFor(goal)

	meals := make([]models.PlannedMeal, len(slots))
	for i, s := range slots {
		meals[i] = models.PlannedMeal{
			Meal:  s.name,
			Time:  s.time,
			Foods: splitBudget(b, mealFoods[s.kind][branch], proportions[branch]),
		}
	}
	return meals
}

// share holds one food's fraction of each nutrient in a meal.
type share struct {
	calories, protein, carbs, fat float64
}

// proportions per goal branch. Each column sums to 1 across the three foods.
var proportions = map[goalBranch][3]share{
	branchGain: {
		{0.35, 0.60, 0.10, 0.40},
		{0.45, 0.25, 0.65, 0.30},
		{0.20, 0.15, 0.25, 0.30},
	},
	branchCut: {
		{0.40, 0.70, 0.05, 0.30},
		{0.35, 0.20, 0.60, 0.20},
		{0.25, 0.10, 0.35, 0.50},
	},
	branchMaintain: {
		{0.34, 0.50, 0.20, 0.35},
		{0.33, 0.30, 0.50, 0.35},
		{0.33, 0.20, 0.30, 0.30},
	},
}

var mealFoods = map[mealKind]map[goalBranch][3]string{
	kindBreakfast: {
		branchGain:     {"Ovos mexidos", "Pão integral", "Banana"},
		branchCut:      {"Claras de ovo", "Aveia", "Morangos"},
		branchMaintain: {"Iogurte natural", "Granola", "Mamão"},
	},
	kindSnack: {
		branchGain:     {"Whey Protein", "Aveia", "Pasta de amendoim"},
		branchCut:      {"Iogurte desnatado", "Maçã", "Castanhas"},
		branchMaintain: {"Queijo cottage", "Torrada integral", "Fruta da estação"},
	},
	kindMain: {
		branchGain:     {"Peito de frango grelhado", "Arroz integral", "Azeite extra virgem"},
		branchCut:      {"Peixe grelhado", "Batata-doce", "Salada verde com azeite"},
		branchMaintain: {"Carne magra", "Arroz com feijão", "Legumes no vapor"},
	},
	kindSupper: {
		branchGain:     {"Leite", "Aveia", "Pasta de amendoim"},
		branchCut:      {"Iogurte grego", "Chia", "Frutas vermelhas"},
		branchMaintain: {"Queijo branco", "Torrada integral", "Chá de camomila"},
	},
}

// splitBudget divides a meal budget across three foods. The last food takes
// the remainder so each meal sums to its budget.
func splitBudget(b budget, names [3]string, shares [3]share) []models.PlannedFood {
	foods := make([]models.PlannedFood, 3)
	var used budget
	for i := 0; i < 3; i++ {
		f := models.PlannedFood{Food: names[i], Quantity: "1 porção"}
		if i < 2 {
			f.Calories = math.Round(b.calories * shares[i].calories)
			f.Protein = round1(b.protein * shares[i].protein)
			f.Carbs = round1(b.carbs * shares[i].carbs)
			f.Fat = round1(b.fat * shares[i].fat)
			used.calories += f.Calories
			used.protein += f.Protein
			used.carbs += f.Carbs
			used.fat += f.Fat
		} else {
			f.Calories = nonNegative(b.calories - used.calories)
			f.Protein = nonNegative(round1(b.protein - used.protein))
			f.Carbs = nonNegative(round1(b.carbs - used.carbs))
			f.Fat = nonNegative(round1(b.fat - used.fat))
		}
		foods[i] = f
	}
	return foods
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
