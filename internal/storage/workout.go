package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ritmo/internal/models"
)

// CreateWorkout saves a workout and its ordered exercise list. The exercises
// must already exist in the catalog (referenced by name).
func (s *Storage) CreateWorkout(name, description string, exerciseNames []string) error {
	if err := validateWorkoutSize(len(exerciseNames)); err != nil {
		return err
	}

	exists, err := s.WorkoutExists(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("workout %q already exists, use edit-workout to change it", name)
	}

	exerciseIDs, err := s.resolveExerciseIDs(exerciseNames)
	if err != nil {
		return err
	}

	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	workoutID := uuid.New().String()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO workouts (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		workoutID, name, description, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert workout: %w", err)
	}

	if err := insertWorkoutExercises(ctx, tx, workoutID, exerciseIDs); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateWorkout replaces the workout's contents and regenerates its identity,
// so the edited copy is distinguishable from the original. Returns the old
// and new ids; the caller must remap schedule references at this moment.
func (s *Storage) UpdateWorkout(name, description string, exerciseNames []string) (oldID, newID string, err error) {
	if err := validateWorkoutSize(len(exerciseNames)); err != nil {
		return "", "", err
	}

	existing, err := s.GetWorkoutByName(name)
	if err != nil {
		return "", "", fmt.Errorf("workout %q not found: %w", name, err)
	}

	exerciseIDs, err := s.resolveExerciseIDs(exerciseNames)
	if err != nil {
		return "", "", err
	}

	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", "", err
	}
	defer tx.Rollback()

	newID = uuid.New().String()

	// Delete first so the UNIQUE name is free for the new identity.
	if _, err := tx.ExecContext(ctx, `DELETE FROM workout_exercises WHERE workout_id = ?`, existing.ID); err != nil {
		return "", "", err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, existing.ID); err != nil {
		return "", "", err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workouts (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		newID, name, description, existing.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", "", fmt.Errorf("failed to reinsert workout: %w", err)
	}

	if err := insertWorkoutExercises(ctx, tx, newID, exerciseIDs); err != nil {
		return "", "", err
	}

	if err := tx.Commit(); err != nil {
		return "", "", err
	}
	return existing.ID, newID, nil
}

// DeleteWorkoutByName removes the workout and returns its id so the caller
// can purge schedule references.
func (s *Storage) DeleteWorkoutByName(name string) (string, error) {
	existing, err := s.GetWorkoutByName(name)
	if err != nil {
		return "", fmt.Errorf("workout %q not found: %w", name, err)
	}

	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM workout_exercises WHERE workout_id = ?`, existing.ID); err != nil {
		return "", err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, existing.ID); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return existing.ID, nil
}

func (s *Storage) GetWorkoutByName(name string) (*models.Workout, error) {
	return s.getWorkout("name", name)
}

func (s *Storage) GetWorkoutByID(id string) (*models.Workout, error) {
	return s.getWorkout("id", id)
}

func (s *Storage) getWorkout(column, value string) (*models.Workout, error) {
	var w models.Workout
	var createdAt string

	query := fmt.Sprintf(
		`SELECT id, name, description, created_at FROM workouts WHERE %s = ?`, column)
	err := s.DB.QueryRow(query, value).Scan(&w.ID, &w.Name, &w.Description, &createdAt)
	if err != nil {
		return nil, err
	}
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	rows, err := s.DB.Query(`
        SELECT e.id, e.name, e.description, e.primary_muscle, e.created_at
        FROM workout_exercises we
        JOIN exercises e ON e.id = we.exercise_id
        WHERE we.workout_id = ?
        ORDER BY we.position ASC`,
		w.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ex models.Exercise
		var exCreatedAt string
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.PrimaryMuscle, &exCreatedAt); err != nil {
			continue
		}
		ex.CreatedAt, _ = time.Parse(time.RFC3339, exCreatedAt)
		w.Exercises = append(w.Exercises, ex)
	}
	return &w, nil
}

func (s *Storage) ListWorkouts() ([]models.Workout, error) {
	rows, err := s.DB.Query(
		`SELECT id, name, description, created_at FROM workouts ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		var createdAt string
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &createdAt); err != nil {
			continue
		}
		w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		workouts = append(workouts, w)
	}
	return workouts, nil
}

// WorkoutIDs returns the authoritative set of currently saved workout ids,
// used by the schedule cleanup sweep.
func (s *Storage) WorkoutIDs() ([]string, error) {
	rows, err := s.DB.Query(`SELECT id FROM workouts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Storage) resolveExerciseIDs(names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		ex, err := s.GetExerciseByName(name)
		if err != nil {
			return nil, fmt.Errorf("exercise %q not found: %w", name, err)
		}
		ids = append(ids, ex.ID)
	}
	return ids, nil
}

func insertWorkoutExercises(ctx context.Context, tx *sql.Tx, workoutID string, exerciseIDs []string) error {
	for i, exerciseID := range exerciseIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO workout_exercises (id, workout_id, exercise_id, position) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), workoutID, exerciseID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert workout exercise: %w", err)
		}
	}
	return nil
}
