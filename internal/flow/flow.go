package flow

import (
	"fmt"
	"time"
)

// Status of a guided flow session. Idle is represented by having no session
// at all (no state file on disk).
type Status string

const (
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Session is the guided-playback state for one workout: it steps through the
// workout's exercises in order. Persisted as TOML between invocations.
type Session struct {
	WorkoutID   string    `toml:"workout_id"`
	WorkoutName string    `toml:"workout_name"`
	DateKey     string    `toml:"date_key"`
	Exercises   []string  `toml:"exercises"` // Exercise ids, in workout order.
	Current     int       `toml:"current"`
	Status      Status    `toml:"status"`
	StartTime   time.Time `toml:"start_time"`
	PausedAt    time.Time `toml:"paused_at,omitempty"`
}

// Start opens a running session for the given workout on the given date key.
func Start(workoutID, workoutName, dateKey string, exerciseIDs []string, now time.Time) (*Session, error) {
	if workoutID == "" {
		return nil, fmt.Errorf("workout id is empty")
	}
	if len(exerciseIDs) == 0 {
		return nil, fmt.Errorf("workout has no exercises to flow through")
	}
	return &Session{
		WorkoutID:   workoutID,
		WorkoutName: workoutName,
		DateKey:     dateKey,
		Exercises:   exerciseIDs,
		Current:     0,
		Status:      StatusRunning,
		StartTime:   now,
	}, nil
}

// CurrentExercise returns the exercise id the session is currently on.
func (s *Session) CurrentExercise() string {
	if s.Current < 0 || s.Current >= len(s.Exercises) {
		return ""
	}
	return s.Exercises[s.Current]
}

func (s *Session) Pause(now time.Time) error {
	if s.Status != StatusRunning {
		return fmt.Errorf("cannot pause a %s session", s.Status)
	}
	s.Status = StatusPaused
	s.PausedAt = now
	return nil
}

func (s *Session) Resume() error {
	if s.Status != StatusPaused {
		return fmt.Errorf("cannot resume a %s session", s.Status)
	}
	s.Status = StatusRunning
	s.PausedAt = time.Time{}
	return nil
}

// Advance moves to the next exercise. Stepping past the last exercise
// completes the session and reports done.
func (s *Session) Advance() (done bool, err error) {
	if s.Status != StatusRunning {
		return false, fmt.Errorf("cannot advance a %s session", s.Status)
	}
	if s.Current+1 >= len(s.Exercises) {
		s.Status = StatusCompleted
		return true, nil
	}
	s.Current++
	return false, nil
}

// Complete ends the session from running or paused. Terminal.
func (s *Session) Complete() error {
	switch s.Status {
	case StatusRunning, StatusPaused:
		s.Status = StatusCompleted
		return nil
	default:
		return fmt.Errorf("cannot complete a %s session", s.Status)
	}
}
