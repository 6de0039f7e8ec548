package models

import "time"

// MaxWorkoutExercises is the hard cap on exercises per saved workout.
// Creating or editing a workout past this limit is rejected with an error.
const MaxWorkoutExercises = 10

type Workout struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	Exercises   []Exercise `json:"exercises"`
}

//
// For TOML parsing only
//

type WorkoutTOML struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Exercises   []string `toml:"exercises"` // Exercise names, in order.
}
