package models

import (
	"time"
)

type WorkoutExercise struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Rest  string `json:"rest"`
	Notes string `json:"notes,omitempty"`
}

type WorkoutDay struct {
	Day       string            `json:"day"`
	Focus     string            `json:"focus"`
	Exercises []WorkoutExercise `json:"exercises"`
}

// WorkoutPlan is the current generated training plan of a user.
type WorkoutPlan struct {
	UserID      string       `json:"userId"`
	Split       string       `json:"split"`
	DaysPerWeek int          `json:"daysPerWeek"`
	Days        []WorkoutDay `json:"days"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type SetLog struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

type ExerciseProgress struct {
	Exercise string   `json:"exercise"`
	Sets     []SetLog `json:"sets"`
}

// WorkoutProgress records the sets performed by a user on a given date.
type WorkoutProgress struct {
	UserID    string             `json:"userId"`
	Date      string             `json:"date"` // YYYY-MM-DD
	Day       string             `json:"day"`
	Exercises []ExerciseProgress `json:"exercises"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
