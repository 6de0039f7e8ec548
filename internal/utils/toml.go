package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ritmo/internal/models"
)

func ParseWorkoutFromTOML(path string) (*models.WorkoutTOML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var workout models.WorkoutTOML
	if err := toml.Unmarshal(data, &workout); err != nil {
		return nil, err
	}

	return &workout, nil
}

func ParseExercisesFromTOML(path string) (*models.ExerciseImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var imp models.ExerciseImport
	if err := toml.Unmarshal(data, &imp); err != nil {
		return nil, err
	}

	return &imp, nil
}
