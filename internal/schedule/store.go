package schedule

import (
	"github.com/misterclayt0n/ritmo/internal/models"
)

// SaveFunc receives a deep-copied snapshot after every effective mutation.
// Persistence is best-effort: the hook has no error return and a failed write
// must never fail the mutation that triggered it.
type SaveFunc func(models.ScheduleSnapshot)

// Store owns the three co-indexed maps of the schedule subsystem:
// date -> workout assignment, date -> completed, and
// date -> workout -> exercise -> log entry. All writes go through its
// methods; malformed input makes a method a silent no-op. Single writer,
// no internal locking.
type Store struct {
	schedule  map[string]string
	completed map[string]bool
	logs      map[string]map[string]map[string]models.LogEntry
	save      SaveFunc
}

// NewStore creates an empty store.
func NewStore(save SaveFunc) *Store {
	return &Store{
		schedule:  make(map[string]string),
		completed: make(map[string]bool),
		logs:      make(map[string]map[string]map[string]models.LogEntry),
		save:      save,
	}
}

// FromSnapshot builds a store from a repaired snapshot. Callers are expected
// to have run RepairSnapshot first; the maps are copied, the snapshot stays
// untouched.
func FromSnapshot(snap models.ScheduleSnapshot, save SaveFunc) *Store {
	s := NewStore(save)
	for k, v := range snap.Schedule {
		s.schedule[k] = v
	}
	for k, v := range snap.CompletedDates {
		if v {
			s.completed[k] = true
		}
	}
	for date, workouts := range snap.WorkoutLogs {
		for workoutID, entries := range workouts {
			for exerciseID, entry := range entries {
				s.setLog(date, workoutID, exerciseID, copyEntry(entry))
			}
		}
	}
	return s
}

// Snapshot returns a deep copy of the live state, ready to persist.
func (s *Store) Snapshot() models.ScheduleSnapshot {
	snap := models.ScheduleSnapshot{
		Version:        models.SnapshotVersion,
		Schedule:       make(map[string]string, len(s.schedule)),
		CompletedDates: make(map[string]bool, len(s.completed)),
		WorkoutLogs:    make(map[string]map[string]map[string]models.LogEntry, len(s.logs)),
	}
	for k, v := range s.schedule {
		snap.Schedule[k] = v
	}
	for k := range s.completed {
		snap.CompletedDates[k] = true
	}
	for date, workouts := range s.logs {
		dateCopy := make(map[string]map[string]models.LogEntry, len(workouts))
		for workoutID, entries := range workouts {
			entriesCopy := make(map[string]models.LogEntry, len(entries))
			for exerciseID, entry := range entries {
				entriesCopy[exerciseID] = copyEntry(entry)
			}
			dateCopy[workoutID] = entriesCopy
		}
		snap.WorkoutLogs[date] = dateCopy
	}
	return snap
}

// AssignmentFor returns the workout id assigned to the date, if any.
func (s *Store) AssignmentFor(dateKey string) (string, bool) {
	id, ok := s.schedule[dateKey]
	return id, ok
}

// IsCompleted reports whether the date is in the completion set.
func (s *Store) IsCompleted(dateKey string) bool {
	return s.completed[dateKey]
}

// LogsForDate returns a copy of the date's workout -> exercise -> entry
// branch, or nil when the date has no logs.
func (s *Store) LogsForDate(dateKey string) map[string]map[string]models.LogEntry {
	workouts, ok := s.logs[dateKey]
	if !ok {
		return nil
	}
	out := make(map[string]map[string]models.LogEntry, len(workouts))
	for workoutID, entries := range workouts {
		entriesCopy := make(map[string]models.LogEntry, len(entries))
		for exerciseID, entry := range entries {
			entriesCopy[exerciseID] = copyEntry(entry)
		}
		out[workoutID] = entriesCopy
	}
	return out
}

// AssignWorkoutToDate binds a workout to a calendar day. Switching the day to
// a different workout discards the previous workout's logs for that day: logs
// belong to the current assignment and never carry over.
func (s *Store) AssignWorkoutToDate(dateKey, workoutID string) {
	if !IsValidDateKey(dateKey) || workoutID == "" {
		return
	}

	prev, had := s.schedule[dateKey]
	s.schedule[dateKey] = workoutID
	if had && prev != workoutID {
		s.deleteLogBranch(dateKey, prev)
	}
	s.flush()
}

// ClearDateAssignment removes the date from all three maps. Clearing a date
// that holds nothing is a no-op.
func (s *Store) ClearDateAssignment(dateKey string) {
	if !IsValidDateKey(dateKey) {
		return
	}
	delete(s.schedule, dateKey)
	delete(s.completed, dateKey)
	delete(s.logs, dateKey)
	s.flush()
}

// SetDateCompleted inserts the date into the completion set, or removes it.
// False is never stored, the entry is deleted instead.
func (s *Store) SetDateCompleted(dateKey string, completed bool) {
	if !IsValidDateKey(dateKey) {
		return
	}
	if completed {
		s.completed[dateKey] = true
	} else {
		delete(s.completed, dateKey)
	}
	s.flush()
}

// ToggleDateCompleted flips the date's membership in the completion set.
func (s *Store) ToggleDateCompleted(dateKey string) {
	if !IsValidDateKey(dateKey) {
		return
	}
	s.SetDateCompleted(dateKey, !s.completed[dateKey])
}

// SetExerciseLog normalizes and stores the entry for the (date, workout,
// exercise) triple, replacing any previous entry wholesale.
func (s *Store) SetExerciseLog(dateKey, workoutID, exerciseID string, entry models.LogEntry) {
	if !IsValidDateKey(dateKey) || workoutID == "" || exerciseID == "" {
		return
	}
	s.setLog(dateKey, workoutID, exerciseID, NormalizeLogEntry(entry))
	s.flush()
}

// ClearLogsForDateWorkout drops the whole exercise-log branch for the
// (date, workout) pair, pruning an emptied date branch.
func (s *Store) ClearLogsForDateWorkout(dateKey, workoutID string) {
	if !IsValidDateKey(dateKey) || workoutID == "" {
		return
	}
	s.deleteLogBranch(dateKey, workoutID)
	s.flush()
}

// RemapWorkoutID rewrites every reference from the old workout id to the new
// one after an identity-regenerating edit. Both the schedule values and the
// log branches move: the edited workout is the same user-visible entity, so
// its history follows the new id. If the new id somehow already holds logs
// for a date, those win and the old branch is dropped.
func (s *Store) RemapWorkoutID(oldWorkoutID, newWorkoutID string) {
	if oldWorkoutID == "" || newWorkoutID == "" || oldWorkoutID == newWorkoutID {
		return
	}

	for date, id := range s.schedule {
		if id == oldWorkoutID {
			s.schedule[date] = newWorkoutID
		}
	}
	for date, workouts := range s.logs {
		entries, ok := workouts[oldWorkoutID]
		if !ok {
			continue
		}
		delete(workouts, oldWorkoutID)
		if _, taken := workouts[newWorkoutID]; !taken {
			workouts[newWorkoutID] = entries
		}
		if len(workouts) == 0 {
			delete(s.logs, date)
		}
	}
	s.flush()
}

// RemoveAssignmentsForWorkoutID purges every schedule entry and log branch
// referencing a deleted workout. Completion flags stay: they record that the
// user trained that day, independent of which workout it was.
func (s *Store) RemoveAssignmentsForWorkoutID(workoutID string) {
	if workoutID == "" {
		return
	}

	for date, id := range s.schedule {
		if id == workoutID {
			delete(s.schedule, date)
		}
	}
	for date := range s.logs {
		s.deleteLogBranch(date, workoutID)
	}
	s.flush()
}

// CleanupInvalidAssignments sweeps out malformed date keys and references to
// workouts not in the given authoritative id set. A safety net against drift,
// not the primary consistency mechanism (that is RemapWorkoutID and
// RemoveAssignmentsForWorkoutID being called at the moment of mutation).
func (s *Store) CleanupInvalidAssignments(validWorkoutIDs []string) {
	valid := make(map[string]bool, len(validWorkoutIDs))
	for _, id := range validWorkoutIDs {
		if id != "" {
			valid[id] = true
		}
	}

	for date, id := range s.schedule {
		if !IsValidDateKey(date) || !valid[id] {
			delete(s.schedule, date)
		}
	}
	for date := range s.completed {
		if !IsValidDateKey(date) {
			delete(s.completed, date)
		}
	}
	for date, workouts := range s.logs {
		if !IsValidDateKey(date) {
			delete(s.logs, date)
			continue
		}
		for workoutID := range workouts {
			if !valid[workoutID] {
				delete(workouts, workoutID)
			}
		}
		if len(workouts) == 0 {
			delete(s.logs, date)
		}
	}
	s.flush()
}

func (s *Store) setLog(dateKey, workoutID, exerciseID string, entry models.LogEntry) {
	workouts, ok := s.logs[dateKey]
	if !ok {
		workouts = make(map[string]map[string]models.LogEntry)
		s.logs[dateKey] = workouts
	}
	entries, ok := workouts[workoutID]
	if !ok {
		entries = make(map[string]models.LogEntry)
		workouts[workoutID] = entries
	}
	entries[exerciseID] = entry
}

// deleteLogBranch removes the (date, workout) branch and prunes the date
// level when it empties. Empty inner maps are never left behind.
func (s *Store) deleteLogBranch(dateKey, workoutID string) {
	workouts, ok := s.logs[dateKey]
	if !ok {
		return
	}
	delete(workouts, workoutID)
	if len(workouts) == 0 {
		delete(s.logs, dateKey)
	}
}

func (s *Store) flush() {
	if s.save != nil {
		s.save(s.Snapshot())
	}
}

func copyEntry(e models.LogEntry) models.LogEntry {
	out := e
	if e.Sets != nil {
		out.Sets = make([]models.SetRecord, len(e.Sets))
		copy(out.Sets, e.Sets)
	}
	return out
}
