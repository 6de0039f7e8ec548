package models

import "time"

type Exercise struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PrimaryMuscle string    `json:"primary_muscle"`
	CreatedAt     time.Time `json:"created_at"`
}

//
// For TOML parsing only
//

type ExerciseDefTOML struct {
	Name          string `toml:"name"`
	Description   string `toml:"description"`
	PrimaryMuscle string `toml:"primary_muscle"`
}

type ExerciseImport struct {
	Exercises []ExerciseDefTOML `toml:"exercise"`
}
