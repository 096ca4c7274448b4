package diet

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

const minDailyCalories = 1200

var activityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary:   1.2,
	models.ActivityLight:       1.375,
	models.ActivityModerate:    1.55,
	models.ActivityIntense:     1.725,
	models.ActivityVeryIntense: 1.9,
}

var goalAdjustments = map[models.Goal]float64{
	models.GoalLoseWeight:    -500,
	models.GoalGainMass:      400,
	models.GoalRecomposition: -250,
	models.GoalConditioning:  0,
}

// DefaultPlan is used when a user edits a diet before ever generating one
// and has no profile to derive it from.
func DefaultPlan(userID string, now time.Time) *models.DietPlan {
	plan := &models.DietPlan{
		UserID:        userID,
		TMB:           1800,
		DailyCalories: 2000,
		WaterIntake:   2.5,
		Macros:        models.Macros{Protein: 150, Carbs: 250, Fat: 70},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	plan.Meals = synthesizeMeals(schedules[4], plan.DailyCalories, plan.Macros, "")
	return plan
}

// BasalMetabolicRate uses the Mifflin-St Jeor equation.
func BasalMetabolicRate(p *models.Profile) float64 {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == models.GenderFemale {
		return bmr - 161
	}
	return bmr + 5
}

// GeneratePlan derives a plan from the profile. Logged meals, when present,
// keep their names and times; otherwise a four-meal schedule is used.
func GeneratePlan(userID string, p *models.Profile, logged []models.MealEntry, now time.Time) *models.DietPlan {
	tmb := math.Round(BasalMetabolicRate(p))

	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = activityFactors[models.ActivitySedentary]
	}
	daily := int(math.Round(tmb*factor + goalAdjustments[p.Goal]))
	if daily < minDailyCalories {
		daily = minDailyCalories
	}

	proteinPerKg := 2.0
	if p.Goal == models.GoalGainMass {
		proteinPerKg = 2.2
	}
	protein := math.Round(p.Weight * proteinPerKg)
	fat := math.Round(float64(daily) * 0.25 / 9)
	carbs := math.Round((float64(daily) - protein*4 - fat*9) / 4)
	if carbs < 0 {
		carbs = 0
	}

	plan := &models.DietPlan{
		UserID:        userID,
		TMB:           tmb,
		DailyCalories: daily,
		WaterIntake:   round1(p.Weight * 0.035),
		Macros:        models.Macros{Protein: protein, Carbs: carbs, Fat: fat},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	plan.Meals = synthesizeMeals(slotsFromLogged(logged), daily, plan.Macros, p.Goal)
	return plan
}

func slotsFromLogged(logged []models.MealEntry) []mealSlot {
	var slots []mealSlot
	for _, m := range logged {
		if m.Validate() != nil {
			continue
		}
		slots = append(slots, mealSlot{name: m.Name, time: m.Time, kind: kindForTime(m.Time)})
		if len(slots) == MaxMeals {
			break
		}
	}
	if len(slots) == 0 {
		return schedules[4]
	}
	return slots
}

func kindForTime(clock string) mealKind {
	h, _ := strconv.Atoi(clock[:2])
	switch {
	case h < 9:
		return kindBreakfast
	case h < 11:
		return kindSnack
	case h < 14:
		return kindMain
	case h < 18:
		return kindSnack
	case h < 21:
		return kindMain
	}
	return kindSupper
}

var mealCountRegex = regexp.MustCompile(`(\d+|uma|duas|três|tres|quatro|cinco|seis|sete|oito)\s+refei(?:ç|c)(?:ão|ao|ões|oes)`)

var countWords = map[string]int{
	"uma": 1, "duas": 2, "três": 3, "tres": 3, "quatro": 4,
	"cinco": 5, "seis": 6, "sete": 7, "oito": 8,
}

// ParseMealCount finds a request such as "quero 5 refeições" in chat text.
// The count is returned unvalidated.
func ParseMealCount(message string) (int, bool) {
	m := mealCountRegex.FindStringSubmatch(strings.ToLower(message))
	if m == nil {
		return 0, false
	}
	if n, ok := countWords[m[1]]; ok {
		return n, true
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// MentionedMeal returns the first plan meal whose name appears in message.
func MentionedMeal(plan *models.DietPlan, message string) (string, bool) {
	msg := strings.ToLower(message)
	for _, m := range plan.Meals {
		if strings.Contains(msg, strings.ToLower(m.Meal)) {
			return m.Meal, true
		}
	}
	return "", false
}
