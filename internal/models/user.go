package models

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "masculino"
	GenderFemale Gender = "feminino"
)

type ActivityLevel string

const (
	ActivitySedentary   ActivityLevel = "sedentario"
	ActivityLight       ActivityLevel = "leve"
	ActivityModerate    ActivityLevel = "moderado"
	ActivityIntense     ActivityLevel = "intenso"
	ActivityVeryIntense ActivityLevel = "muito-intenso"
)

type Goal string

const (
	GoalLoseWeight    Goal = "perder-peso"
	GoalGainMass      Goal = "ganhar-massa"
	GoalRecomposition Goal = "manter-peso-perder-gordura"
	GoalConditioning  Goal = "melhorar-condicionamento"
)

// User represents a registered account with its optional profile and subscription.
type User struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone,omitempty"`
	CPF          string        `json:"cpf,omitempty"`
	PasswordHash string        `json:"-"` // never sent to clients
	Profile      *Profile      `json:"profile,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	// Version is the stored row version, bumped on every write.
	Version int64 `json:"-"`
}

// Goal returns the profile goal, or an empty goal when no profile exists.
func (u *User) Goal() Goal {
	if u == nil || u.Profile == nil {
		return ""
	}
	return u.Profile.Goal
}

// Profile holds the body and preference data used to generate plans.
type Profile struct {
	Age              int           `json:"age"`
	Gender           Gender        `json:"gender"`
	Height           float64       `json:"height"` // cm
	Weight           float64       `json:"weight"` // kg
	ActivityLevel    ActivityLevel `json:"activityLevel"`
	Goal             Goal          `json:"goal"`
	FoodRestrictions []string      `json:"foodRestrictions"`
	FoodPreferences  []string      `json:"foodPreferences"`
	ProfilePhoto     string        `json:"profilePhoto,omitempty"`
}

// Validate checks enum membership and physical bounds.
func (p *Profile) Validate() error {
	errs := FieldErrors{}
	if p.Age <= 0 || p.Age > 120 {
		errs["age"] = "Idade inválida"
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		errs["gender"] = "Sexo inválido"
	}
	if p.Height <= 0 || p.Height > 260 {
		errs["height"] = "Altura inválida"
	}
	if p.Weight <= 0 || p.Weight > 400 {
		errs["weight"] = "Peso inválido"
	}
	switch p.ActivityLevel {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityIntense, ActivityVeryIntense:
	default:
		errs["activityLevel"] = "Nível de atividade inválido"
	}
	switch p.Goal {
	case GoalLoseWeight, GoalGainMass, GoalRecomposition, GoalConditioning:
	default:
		errs["goal"] = "Objetivo inválido"
	}
	return errs.OrNil()
}
