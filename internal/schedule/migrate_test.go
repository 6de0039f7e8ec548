package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/ritmo/internal/models"
)

func TestRepairSnapshotNilAndEmpty(t *testing.T) {
	for _, raw := range []map[string]any{nil, {}, {"garbage": 1}} {
		snap := RepairSnapshot(raw)
		assert.Equal(t, models.SnapshotVersion, snap.Version)
		assert.Empty(t, snap.Schedule)
		assert.Empty(t, snap.CompletedDates)
		assert.Empty(t, snap.WorkoutLogs)
	}
}

func TestRepairSnapshotSchedule(t *testing.T) {
	snap := RepairSnapshot(map[string]any{
		"schedule": map[string]any{
			"2025-01-05": "saved-100",
			"2025-1-5":   "saved-100", // Malformed key.
			"2025-01-06": "",          // Empty id.
			"2025-01-07": int64(42),   // Wrong type.
		},
	})

	assert.Equal(t, map[string]string{"2025-01-05": "saved-100"}, snap.Schedule)
}

func TestRepairSnapshotCompletedDates(t *testing.T) {
	snap := RepairSnapshot(map[string]any{
		"completed_dates": map[string]any{
			"2025-01-05": true,
			"2025-01-06": false,    // Never persisted as false.
			"2025-01-07": "true",   // Wrong type.
			"not-a-date": true,     // Malformed key.
		},
	})

	assert.Equal(t, map[string]bool{"2025-01-05": true}, snap.CompletedDates)
}

func TestRepairSnapshotLogs(t *testing.T) {
	raw := map[string]any{
		"workout_logs": map[string]any{
			"2025-01-05": map[string]any{
				"saved-100": map[string]any{
					"legs-1": map[string]any{
						"set_count":  int64(3),
						"updated_at": "t1",
						"sets": []any{
							map[string]any{"reps": int64(9), "weight": int64(47)},
							map[string]any{"reps": "nope", "weight": 103.0},
							"not a table",
							map[string]any{"reps": int64(8), "weight": int64(45)},
							map[string]any{"reps": int64(8), "weight": int64(45)},
						},
					},
					// set_count not coercible: entry dropped.
					"legs-2": map[string]any{
						"set_count": "three",
						"sets":      []any{map[string]any{"reps": int64(8), "weight": int64(45)}},
					},
					// sets missing: entry dropped.
					"legs-3": map[string]any{"set_count": int64(2)},
					// zero usable sets: entry dropped.
					"legs-4": map[string]any{"set_count": int64(2), "sets": []any{}},
				},
			},
			// Whole branch under a malformed date key: dropped.
			"2025/01/06": map[string]any{
				"saved-100": map[string]any{
					"legs-1": map[string]any{
						"set_count": int64(1),
						"sets":      []any{map[string]any{"reps": int64(8), "weight": int64(45)}},
					},
				},
			},
			// Branch that empties out entirely: pruned, no residue.
			"2025-01-07": map[string]any{
				"saved-100": map[string]any{
					"legs-1": map[string]any{"set_count": "bad", "sets": []any{}},
				},
			},
		},
	}

	snap := RepairSnapshot(raw)

	require.Contains(t, snap.WorkoutLogs, "2025-01-05")
	entries := snap.WorkoutLogs["2025-01-05"]["saved-100"]
	require.Len(t, entries, 1)

	entry := entries["legs-1"]
	assert.Equal(t, 3, entry.SetCount)
	assert.Equal(t, "t1", entry.UpdatedAt)
	require.Len(t, entry.Sets, 3) // Truncated to set_count, bad row skipped.
	assert.Equal(t, models.SetRecord{Reps: 8, Weight: 45}, entry.Sets[0])
	// Non-numeric reps defaults to the range minimum, weight still normalized.
	assert.Equal(t, models.SetRecord{Reps: 2, Weight: 100}, entry.Sets[1])
	assert.Equal(t, models.SetRecord{Reps: 8, Weight: 45}, entry.Sets[2])

	assert.NotContains(t, snap.WorkoutLogs, "2025/01/06")
	assert.NotContains(t, snap.WorkoutLogs, "2025-01-07")
}

func TestRepairSnapshotClampsSetCount(t *testing.T) {
	snap := RepairSnapshot(map[string]any{
		"workout_logs": map[string]any{
			"2025-01-05": map[string]any{
				"saved-100": map[string]any{
					"legs-1": map[string]any{
						"set_count": int64(99),
						"sets": []any{
							map[string]any{"reps": int64(8), "weight": int64(45)},
						},
					},
				},
			},
		},
	})

	entry := snap.WorkoutLogs["2025-01-05"]["saved-100"]["legs-1"]
	assert.Equal(t, 6, entry.SetCount)
	assert.Len(t, entry.Sets, 1) // Fewer sets than set_count is fine.
}

// Repairing repaired output is a fixed point.
func TestRepairSnapshotIdempotent(t *testing.T) {
	raw := map[string]any{
		"schedule": map[string]any{
			"2025-01-05": "saved-100",
			"bad":        "saved-100",
		},
		"completed_dates": map[string]any{"2025-01-05": true, "x": true},
		"workout_logs": map[string]any{
			"2025-01-05": map[string]any{
				"saved-100": map[string]any{
					"legs-1": map[string]any{
						"set_count":  int64(2),
						"updated_at": "t1",
						"sets": []any{
							map[string]any{"reps": 9.0, "weight": 47.0},
							map[string]any{"reps": nil, "weight": nil},
							map[string]any{"reps": 8.0, "weight": 45.0},
						},
					},
				},
			},
		},
	}

	first := RepairSnapshot(raw)
	second := RepairSnapshot(rawFromSnapshot(first))
	assert.Equal(t, first, second)
}

// rawFromSnapshot re-encodes a snapshot into the loose decoded shape the
// repair pass consumes, the way a TOML decode into map[string]any would.
func rawFromSnapshot(s models.ScheduleSnapshot) map[string]any {
	schedule := make(map[string]any, len(s.Schedule))
	for k, v := range s.Schedule {
		schedule[k] = v
	}
	completed := make(map[string]any, len(s.CompletedDates))
	for k, v := range s.CompletedDates {
		completed[k] = v
	}
	logs := make(map[string]any, len(s.WorkoutLogs))
	for date, workouts := range s.WorkoutLogs {
		workoutsRaw := make(map[string]any, len(workouts))
		for workoutID, entries := range workouts {
			entriesRaw := make(map[string]any, len(entries))
			for exerciseID, entry := range entries {
				rows := make([]any, 0, len(entry.Sets))
				for _, set := range entry.Sets {
					rows = append(rows, map[string]any{
						"reps":   int64(set.Reps),
						"weight": set.Weight,
					})
				}
				entriesRaw[exerciseID] = map[string]any{
					"set_count":  int64(entry.SetCount),
					"updated_at": entry.UpdatedAt,
					"sets":       rows,
				}
			}
			workoutsRaw[workoutID] = entriesRaw
		}
		logs[date] = workoutsRaw
	}
	return map[string]any{
		"version":         int64(s.Version),
		"schedule":        schedule,
		"completed_dates": completed,
		"workout_logs":    logs,
	}
}
