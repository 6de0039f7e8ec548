package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/ritmo/internal/models"
)

func testEntry() models.LogEntry {
	return models.LogEntry{
		SetCount: 3,
		Sets: []models.SetRecord{
			{Reps: 8, Weight: 45},
			{Reps: 8, Weight: 45},
			{Reps: 8, Weight: 45},
		},
		UpdatedAt: "2025-03-10T10:00:00Z",
	}
}

func TestAssignWorkoutToDate(t *testing.T) {
	s := NewStore(nil)

	s.AssignWorkoutToDate("2025-01-05", "saved-100")
	id, ok := s.AssignmentFor("2025-01-05")
	require.True(t, ok)
	assert.Equal(t, "saved-100", id)

	// Reassigning the same workout is idempotent.
	s.SetExerciseLog("2025-01-05", "saved-100", "legs-1", testEntry())
	s.AssignWorkoutToDate("2025-01-05", "saved-100")
	assert.Len(t, s.LogsForDate("2025-01-05")["saved-100"], 1)
}

func TestAssignRejectsInvalidInput(t *testing.T) {
	s := NewStore(nil)

	s.AssignWorkoutToDate("2025-1-5", "saved-100")
	s.AssignWorkoutToDate("not a date", "saved-100")
	s.AssignWorkoutToDate("2025-01-05", "")

	assert.Empty(t, s.Snapshot().Schedule)
}

func TestAssignmentSwitchPurgesOldLogs(t *testing.T) {
	s := NewStore(nil)
	s.AssignWorkoutToDate("2025-01-05", "saved-A")
	s.SetExerciseLog("2025-01-05", "saved-A", "legs-1", testEntry())

	s.AssignWorkoutToDate("2025-01-05", "saved-B")

	// A's branch is gone with no empty residue.
	snap := s.Snapshot()
	assert.Equal(t, "saved-B", snap.Schedule["2025-01-05"])
	assert.NotContains(t, snap.WorkoutLogs, "2025-01-05")

	// Assigning back does not resurrect the purged log.
	s.AssignWorkoutToDate("2025-01-05", "saved-A")
	assert.NotContains(t, s.Snapshot().WorkoutLogs, "2025-01-05")
}

func TestClearDateAssignment(t *testing.T) {
	s := NewStore(nil)
	s.AssignWorkoutToDate("2025-01-05", "saved-A")
	s.SetDateCompleted("2025-01-05", true)
	s.SetExerciseLog("2025-01-05", "saved-A", "legs-1", testEntry())

	s.ClearDateAssignment("2025-01-05")

	snap := s.Snapshot()
	assert.Empty(t, snap.Schedule)
	assert.Empty(t, snap.CompletedDates)
	assert.Empty(t, snap.WorkoutLogs)

	// Clearing an absent date stays a no-op.
	s.ClearDateAssignment("2024-12-31")
	assert.Empty(t, s.Snapshot().Schedule)
}

func TestCompletionSetSparsity(t *testing.T) {
	s := NewStore(nil)

	// Unsetting a date that was never set is a no-op.
	s.SetDateCompleted("2025-01-05", false)
	assert.Empty(t, s.Snapshot().CompletedDates)

	s.SetDateCompleted("2025-01-05", true)
	assert.True(t, s.IsCompleted("2025-01-05"))

	s.ToggleDateCompleted("2025-01-05")
	assert.False(t, s.IsCompleted("2025-01-05"))
	// False is never stored, the key is absent.
	assert.NotContains(t, s.Snapshot().CompletedDates, "2025-01-05")

	s.ToggleDateCompleted("2025-01-05")
	assert.True(t, s.IsCompleted("2025-01-05"))

	s.SetDateCompleted("05-01-2025", true)
	assert.Len(t, s.Snapshot().CompletedDates, 1)
}

func TestSetExerciseLogNormalizesAndReplaces(t *testing.T) {
	s := NewStore(nil)

	s.SetExerciseLog("2025-03-10", "saved-A", "legs-1", models.LogEntry{
		SetCount: 3,
		Sets: []models.SetRecord{
			{Reps: 9, Weight: 47},
			{Reps: 9, Weight: 47},
			{Reps: 9, Weight: 47},
		},
		UpdatedAt: "t1",
	})

	entry := s.LogsForDate("2025-03-10")["saved-A"]["legs-1"]
	assert.Equal(t, 3, entry.SetCount)
	assert.Equal(t, "t1", entry.UpdatedAt)
	require.Len(t, entry.Sets, 3)
	for _, set := range entry.Sets {
		assert.Equal(t, models.SetRecord{Reps: 8, Weight: 45}, set)
	}

	// A second write replaces the entry wholesale, not per set row.
	s.SetExerciseLog("2025-03-10", "saved-A", "legs-1", models.LogEntry{
		SetCount:  1,
		Sets:      []models.SetRecord{{Reps: 12, Weight: 60}},
		UpdatedAt: "t2",
	})
	entry = s.LogsForDate("2025-03-10")["saved-A"]["legs-1"]
	assert.Equal(t, 1, entry.SetCount)
	assert.Equal(t, "t2", entry.UpdatedAt)
	assert.Len(t, entry.Sets, 1)
}

func TestSetExerciseLogRejectsInvalidInput(t *testing.T) {
	s := NewStore(nil)

	s.SetExerciseLog("bad", "saved-A", "legs-1", testEntry())
	s.SetExerciseLog("2025-03-10", "", "legs-1", testEntry())
	s.SetExerciseLog("2025-03-10", "saved-A", "", testEntry())

	assert.Empty(t, s.Snapshot().WorkoutLogs)
}

func TestClearLogsPrunesEmptyBranches(t *testing.T) {
	s := NewStore(nil)
	s.SetExerciseLog("2025-01-05", "saved-A", "legs-1", testEntry())

	s.ClearLogsForDateWorkout("2025-01-05", "saved-A")

	// The date key is gone entirely, not left as an empty map.
	assert.NotContains(t, s.Snapshot().WorkoutLogs, "2025-01-05")

	// Clearing a branch that never existed is a no-op.
	s.ClearLogsForDateWorkout("2025-01-06", "saved-A")
	assert.Empty(t, s.Snapshot().WorkoutLogs)
}

func TestRemapWorkoutID(t *testing.T) {
	s := NewStore(nil)
	s.AssignWorkoutToDate("2025-01-05", "saved-100")
	s.SetExerciseLog("2025-01-05", "saved-100", "legs-1", testEntry())

	s.RemapWorkoutID("saved-100", "saved-200")

	snap := s.Snapshot()
	assert.Equal(t, map[string]string{"2025-01-05": "saved-200"}, snap.Schedule)
	// Log history follows the new identity.
	assert.Contains(t, snap.WorkoutLogs["2025-01-05"], "saved-200")
	assert.NotContains(t, snap.WorkoutLogs["2025-01-05"], "saved-100")
}

func TestRemapWorkoutIDNoOps(t *testing.T) {
	s := NewStore(nil)
	s.AssignWorkoutToDate("2025-01-05", "saved-100")

	s.RemapWorkoutID("", "saved-200")
	s.RemapWorkoutID("saved-100", "")
	s.RemapWorkoutID("saved-100", "saved-100")

	assert.Equal(t, map[string]string{"2025-01-05": "saved-100"}, s.Snapshot().Schedule)
}

func TestRemoveAssignmentsForWorkoutID(t *testing.T) {
	s := NewStore(nil)
	s.AssignWorkoutToDate("2025-01-05", "saved-100")
	s.AssignWorkoutToDate("2025-01-06", "saved-999")
	s.SetExerciseLog("2025-01-05", "saved-100", "legs-1", testEntry())

	s.RemoveAssignmentsForWorkoutID("saved-100")

	snap := s.Snapshot()
	assert.Equal(t, map[string]string{"2025-01-06": "saved-999"}, snap.Schedule)
	assert.NotContains(t, snap.WorkoutLogs, "2025-01-05")
}

func TestCleanupInvalidAssignments(t *testing.T) {
	snap := models.ScheduleSnapshot{
		Schedule: map[string]string{
			"2025-01-05": "saved-100",
			"2025-01-06": "saved-gone",
		},
		CompletedDates: map[string]bool{"2025-01-05": true},
		WorkoutLogs: map[string]map[string]map[string]models.LogEntry{
			"2025-01-05": {
				"saved-100":  {"legs-1": testEntry()},
				"saved-gone": {"legs-1": testEntry()},
			},
			"2025-01-07": {
				"saved-gone": {"arms-1": testEntry()},
			},
		},
	}
	s := FromSnapshot(snap, nil)

	s.CleanupInvalidAssignments([]string{"saved-100"})

	got := s.Snapshot()
	assert.Equal(t, map[string]string{"2025-01-05": "saved-100"}, got.Schedule)
	assert.Equal(t, map[string]bool{"2025-01-05": true}, got.CompletedDates)
	require.Contains(t, got.WorkoutLogs, "2025-01-05")
	assert.Contains(t, got.WorkoutLogs["2025-01-05"], "saved-100")
	assert.NotContains(t, got.WorkoutLogs["2025-01-05"], "saved-gone")
	assert.NotContains(t, got.WorkoutLogs, "2025-01-07")
}

func TestSaveHookFiresAfterMutations(t *testing.T) {
	var saves []models.ScheduleSnapshot
	s := NewStore(func(snap models.ScheduleSnapshot) {
		saves = append(saves, snap)
	})

	s.AssignWorkoutToDate("2025-01-05", "saved-A")
	s.SetDateCompleted("2025-01-05", true)

	require.Len(t, saves, 2)
	assert.Equal(t, "saved-A", saves[1].Schedule["2025-01-05"])
	assert.True(t, saves[1].CompletedDates["2025-01-05"])

	// The hook gets a deep copy: mutating the saved snapshot must not leak
	// back into live state.
	saves[1].Schedule["2025-01-05"] = "tampered"
	id, _ := s.AssignmentFor("2025-01-05")
	assert.Equal(t, "saved-A", id)
}

// Full end-to-end pass: assign, log, complete, then delete the workout.
func TestScheduleLifecycle(t *testing.T) {
	s := NewStore(nil)

	s.AssignWorkoutToDate("2025-03-10", "saved-A")
	s.SetExerciseLog("2025-03-10", "saved-A", "legs-1", models.LogEntry{
		SetCount: 3,
		Sets: []models.SetRecord{
			{Reps: 9, Weight: 47},
			{Reps: 9, Weight: 47},
			{Reps: 9, Weight: 47},
		},
		UpdatedAt: "2025-03-10T18:00:00Z",
	})

	entry := s.LogsForDate("2025-03-10")["saved-A"]["legs-1"]
	assert.Equal(t, 3, entry.SetCount)
	assert.Equal(t, "2025-03-10T18:00:00Z", entry.UpdatedAt)
	require.Len(t, entry.Sets, 3)
	for _, set := range entry.Sets {
		assert.Equal(t, models.SetRecord{Reps: 8, Weight: 45}, set)
	}

	s.SetDateCompleted("2025-03-10", true)

	s.RemoveAssignmentsForWorkoutID("saved-A")

	snap := s.Snapshot()
	assert.Empty(t, snap.Schedule)
	assert.Empty(t, snap.WorkoutLogs)
	// Completion is keyed by date only and survives workout deletion.
	assert.True(t, snap.CompletedDates["2025-03-10"])
}
