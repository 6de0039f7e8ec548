package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ritmo/internal/models"
)

func (s *Storage) CreateExercise(ex models.Exercise) error {
	ctx := context.Background()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO exercises
			(id, name, description, primary_muscle, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				description = excluded.description,
				primary_muscle = excluded.primary_muscle`,
		ex.ID,
		ex.Name,
		ex.Description,
		ex.PrimaryMuscle,
		ex.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// ImportExercises upserts the exercise definitions of a TOML catalog file,
// returning how many were created and how many updated in place.
func (s *Storage) ImportExercises(imp *models.ExerciseImport) (created, updated int, err error) {
	for _, def := range imp.Exercises {
		if def.Name == "" {
			continue
		}
		exists, err := s.ExerciseExists(def.Name)
		if err != nil {
			return created, updated, err
		}
		ex := models.Exercise{
			ID:            uuid.New().String(),
			Name:          def.Name,
			Description:   def.Description,
			PrimaryMuscle: def.PrimaryMuscle,
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.CreateExercise(ex); err != nil {
			return created, updated, err
		}
		if exists {
			updated++
		} else {
			created++
		}
	}
	return created, updated, nil
}

func (s *Storage) GetExerciseByName(name string) (*models.Exercise, error) {
	var ex models.Exercise
	var createdAt string

	err := s.DB.QueryRow(
		`SELECT id, name, description, primary_muscle, created_at
		FROM exercises WHERE name = ?`,
		name,
	).Scan(
		&ex.ID,
		&ex.Name,
		&ex.Description,
		&ex.PrimaryMuscle,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	ex.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &ex, nil
}

func (s *Storage) GetExerciseByID(id string) (*models.Exercise, error) {
	var ex models.Exercise
	var createdAt string

	err := s.DB.QueryRow(
		`SELECT id, name, description, primary_muscle, created_at
		FROM exercises WHERE id = ?`,
		id,
	).Scan(
		&ex.ID,
		&ex.Name,
		&ex.Description,
		&ex.PrimaryMuscle,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	ex.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &ex, nil
}

func (s *Storage) ListExercises() ([]models.Exercise, error) {
	rows, err := s.DB.Query(
		`SELECT id, name, description, primary_muscle, created_at
		FROM exercises ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		var createdAt string
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.PrimaryMuscle, &createdAt); err != nil {
			continue
		}
		ex.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		exercises = append(exercises, ex)
	}
	return exercises, nil
}
