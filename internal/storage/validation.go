package storage

import (
	"database/sql"
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/models"
)

func (s *Storage) WorkoutExists(name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM workouts WHERE name = ?)",
		name,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check workout existence: %w", err)
	}

	return exists, nil
}

func (s *Storage) ExerciseExists(name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM exercises WHERE name = ?)",
		name,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check exercise existence: %w", err)
	}

	return exists, nil
}

func validateWorkoutSize(n int) error {
	if n == 0 {
		return fmt.Errorf("workout has no exercises")
	}
	if n > models.MaxWorkoutExercises {
		return fmt.Errorf("workout cannot hold more than %d exercises", models.MaxWorkoutExercises)
	}
	return nil
}
