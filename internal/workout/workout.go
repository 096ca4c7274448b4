// Package workout generates training plans and tracks per-day progress.
package workout

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

var (
	ErrUnknownDay      = errors.New("workout day not found")
	ErrUnknownExercise = errors.New("exercise not found")
	ErrUnknownSet      = errors.New("set not found")
)

type split struct {
	name string
	days []dayTemplate
}

func splitFor(level models.ActivityLevel) split {
	switch level {
	case models.ActivityModerate:
		return split{"Superior/Inferior", []dayTemplate{upper, lower, upper, lower}}
	case models.ActivityIntense, models.ActivityVeryIntense:
		return split{"Push/Pull/Legs + Superior/Inferior", []dayTemplate{push, pull, legs, upper, lower}}
	}
	return split{"Full body", []dayTemplate{fullBody, fullBody, fullBody}}
}

// volume returns sets, reps and rest for a goal.
func volume(goal models.Goal) (int, string, string) {
	switch goal {
	case models.GoalGainMass:
		return 4, "8-12", "90s"
	case models.GoalLoseWeight, models.GoalRecomposition:
		return 3, "12-15", "45s"
	case models.GoalConditioning:
		return 3, "15-20", "30s"
	}
	return 3, "10-12", "60s"
}

var weekdays = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta"}

// Generate builds a deterministic plan from the profile's activity level and goal.
func Generate(userID string, p *models.Profile, now time.Time) *models.WorkoutPlan {
	s := splitFor(p.ActivityLevel)
	sets, reps, rest := volume(p.Goal)

	plan := &models.WorkoutPlan{
		UserID:      userID,
		Split:       s.name,
		DaysPerWeek: len(s.days),
		CreatedAt:   now,
	}
	// rotate picks so repeated templates vary across the week
	offsets := map[string]int{}
	for i, tmpl := range s.days {
		day := models.WorkoutDay{Day: weekdays[i], Focus: tmpl.focus}
		for _, pick := range tmpl.groups {
			pool := exercisesByGroup[pick.group]
			for j := 0; j < pick.count; j++ {
				name := pool[(offsets[pick.group]+j)%len(pool)]
				day.Exercises = append(day.Exercises, models.WorkoutExercise{Name: name, Sets: sets, Reps: reps, Rest: rest})
			}
			offsets[pick.group] += pick.count
		}
		plan.Days = append(plan.Days, day)
	}
	return plan
}

// NewProgress initializes the sets of a plan day with zeroed entries.
func NewProgress(plan *models.WorkoutPlan, day, date string, now time.Time) (*models.WorkoutProgress, error) {
	for _, d := range plan.Days {
		if d.Day != day {
			continue
		}
		prog := &models.WorkoutProgress{UserID: plan.UserID, Date: date, Day: day, UpdatedAt: now}
		for _, ex := range d.Exercises {
			prog.Exercises = append(prog.Exercises, models.ExerciseProgress{
				Exercise: ex.Name,
				Sets:     make([]models.SetLog, ex.Sets),
			})
		}
		return prog, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDay, day)
}

// DayFor picks the plan day for a date, cycling through the plan's days by weekday.
func DayFor(plan *models.WorkoutPlan, date time.Time) string {
	if len(plan.Days) == 0 {
		return ""
	}
	wd := int(date.Weekday()+6) % 7 // monday = 0
	return plan.Days[wd%len(plan.Days)].Day
}

// SetUpdate changes a single set. Nil fields are left untouched.
type SetUpdate struct {
	Exercise  string   `json:"exercise"`
	Set       int      `json:"set"`
	Weight    *float64 `json:"weight,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
	Toggle    bool     `json:"toggle,omitempty"`
}

// ApplyUpdate mutates prog in place.
func ApplyUpdate(prog *models.WorkoutProgress, u SetUpdate, now time.Time) error {
	for i := range prog.Exercises {
		ex := &prog.Exercises[i]
		if ex.Exercise != u.Exercise {
			continue
		}
		if u.Set < 0 || u.Set >= len(ex.Sets) {
			return fmt.Errorf("%w: %d", ErrUnknownSet, u.Set)
		}
		s := &ex.Sets[u.Set]
		if u.Weight != nil {
			s.Weight = *u.Weight
		}
		if u.Reps != nil {
			s.Reps = *u.Reps
		}
		if u.Completed != nil {
			s.Completed = *u.Completed
		}
		if u.Toggle {
			s.Completed = !s.Completed
		}
		prog.UpdatedAt = now
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownExercise, u.Exercise)
}

// Summary counts completed sets, e.g. "3/12 séries completas".
func Summary(prog *models.WorkoutProgress) (done, total int, text string) {
	for _, ex := range prog.Exercises {
		for _, s := range ex.Sets {
			total++
			if s.Completed {
				done++
			}
		}
	}
	return done, total, fmt.Sprintf("%d/%d séries completas", done, total)
}
