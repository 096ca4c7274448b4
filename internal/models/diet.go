package models

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

type Measurement string

const (
	MeasureGrams      Measurement = "gramas"
	MeasureML         Measurement = "ml"
	MeasureUnit       Measurement = "unidade"
	MeasureTablespoon Measurement = "colher-sopa"
	MeasureTeaspoon   Measurement = "colher-cha"
	MeasureCup        Measurement = "xicara"
)

func (m Measurement) Valid() bool {
	switch m {
	case MeasureGrams, MeasureML, MeasureUnit, MeasureTablespoon, MeasureTeaspoon, MeasureCup:
		return true
	}
	return false
}

// FoodEntry is a food as logged by the user, without nutrition data.
type FoodEntry struct {
	Food        string      `json:"food"`
	Quantity    string      `json:"quantity"`
	Measurement Measurement `json:"measurement"`
}

// MealEntry is a meal as logged by the user during intake.
type MealEntry struct {
	Name  string      `json:"name"`
	Time  string      `json:"time"`
	Foods []FoodEntry `json:"foods"`
}

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidClock reports whether s is a 24-hour "HH:MM" time.
func ValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// Validate checks that the meal is complete enough to be submitted.
func (m MealEntry) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = "Nome da refeição é obrigatório"
	}
	if !ValidClock(m.Time) {
		errs["time"] = "Horário inválido (HH:MM)"
	}
	if len(m.Foods) == 0 {
		errs["foods"] = "Adicione pelo menos um alimento"
	}
	for i, f := range m.Foods {
		key := fmt.Sprintf("foods[%d]", i)
		switch {
		case strings.TrimSpace(f.Food) == "":
			errs[key] = "Nome do alimento é obrigatório"
		case strings.TrimSpace(f.Quantity) == "":
			errs[key] = "Quantidade é obrigatória"
		case !f.Measurement.Valid():
			errs[key] = "Medida inválida"
		}
	}
	return errs.OrNil()
}

// Macros are grams of protein, carbohydrate and fat.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// PlannedFood is a diet plan line item carrying nutrition values.
type PlannedFood struct {
	Food     string  `json:"food"`
	Quantity string  `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type PlannedMeal struct {
	Meal  string        `json:"meal"`
	Time  string        `json:"time"`
	Foods []PlannedFood `json:"foods"`
}

// DietPlan is the single current plan of a user. It is overwritten wholesale.
type DietPlan struct {
	UserID        string        `json:"userId"`
	TMB           float64       `json:"tmb"`
	DailyCalories int           `json:"dailyCalories"`
	WaterIntake   float64       `json:"waterIntake"`
	Macros        Macros        `json:"macros"`
	Meals         []PlannedMeal `json:"meals"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Clone returns a deep copy so mutations never leak into the caller's plan.
func (p *DietPlan) Clone() *DietPlan {
	if p == nil {
		return nil
	}
	c := *p
	c.Meals = make([]PlannedMeal, len(p.Meals))
	for i, m := range p.Meals {
		c.Meals[i] = PlannedMeal{Meal: m.Meal, Time: m.Time, Foods: append([]PlannedFood(nil), m.Foods...)}
	}
	return &c
}

// Totals sums the nutrition of every food in every meal.
func (p *DietPlan) Totals() (calories float64, macros Macros) {
	for _, m := range p.Meals {
		for _, f := range m.Foods {
			calories += f.Calories
			macros.Protein += f.Protein
			macros.Carbs += f.Carbs
			macros.Fat += f.Fat
		}
	}
	return calories, macros
}

// RecomputeTotals sets DailyCalories and Macros from the itemized meals.
func (p *DietPlan) RecomputeTotals() {
	cal, m := p.Totals()
	p.DailyCalories = int(math.Round(cal))
	p.Macros = Macros{
		Protein: round1(m.Protein),
		Carbs:   round1(m.Carbs),
		Fat:     round1(m.Fat),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
