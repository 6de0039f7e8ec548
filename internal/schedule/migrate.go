package schedule

import (
	"math"

	"github.com/misterclayt0n/ritmo/internal/models"
)

// RepairSnapshot rebuilds a previously persisted snapshot of unknown shape
// into a well-formed one. It is total over arbitrary decoded input (never
// panics), pure, and idempotent: repairing its own output changes nothing.
// Malformed branches are dropped, never reported.
func RepairSnapshot(raw map[string]any) models.ScheduleSnapshot {
	snap := models.ScheduleSnapshot{
		Version:        models.SnapshotVersion,
		Schedule:       make(map[string]string),
		CompletedDates: make(map[string]bool),
		WorkoutLogs:    make(map[string]map[string]map[string]models.LogEntry),
	}
	if raw == nil {
		return snap
	}

	if m, ok := raw["schedule"].(map[string]any); ok {
		for date, v := range m {
			id, ok := v.(string)
			if !IsValidDateKey(date) || !ok || id == "" {
				continue
			}
			snap.Schedule[date] = id
		}
	}

	if m, ok := raw["completed_dates"].(map[string]any); ok {
		for date, v := range m {
			done, ok := v.(bool)
			if !IsValidDateKey(date) || !ok || !done {
				continue
			}
			snap.CompletedDates[date] = true
		}
	}

	if m, ok := raw["workout_logs"].(map[string]any); ok {
		for date, v := range m {
			if !IsValidDateKey(date) {
				continue
			}
			workoutsRaw, ok := v.(map[string]any)
			if !ok {
				continue
			}
			workouts := make(map[string]map[string]models.LogEntry)
			for workoutID, wv := range workoutsRaw {
				if workoutID == "" {
					continue
				}
				entriesRaw, ok := wv.(map[string]any)
				if !ok {
					continue
				}
				entries := make(map[string]models.LogEntry)
				for exerciseID, ev := range entriesRaw {
					if exerciseID == "" {
						continue
					}
					entryRaw, ok := ev.(map[string]any)
					if !ok {
						continue
					}
					if entry, ok := repairLogEntry(entryRaw); ok {
						entries[exerciseID] = entry
					}
				}
				if len(entries) > 0 {
					workouts[workoutID] = entries
				}
			}
			if len(workouts) > 0 {
				snap.WorkoutLogs[date] = workouts
			}
		}
	}

	return snap
}

// repairLogEntry validates one persisted log entry. The entry is dropped when
// its set count is not a number or its sets are not a list; individual rows
// with non-numeric reps/weight fall back to the range minimums instead of
// taking the whole entry down. An entry left with zero sets is dropped.
func repairLogEntry(raw map[string]any) (models.LogEntry, bool) {
	count, ok := coerceInt(raw["set_count"])
	if !ok {
		return models.LogEntry{}, false
	}

	rowsRaw, ok := coerceRows(raw["sets"])
	if !ok {
		return models.LogEntry{}, false
	}

	entry := models.LogEntry{SetCount: clampSetCount(count)}
	if updatedAt, ok := raw["updated_at"].(string); ok {
		entry.UpdatedAt = updatedAt
	}

	for _, rowRaw := range rowsRaw {
		if len(entry.Sets) == entry.SetCount {
			break
		}
		row, ok := rowRaw.(map[string]any)
		if !ok {
			continue
		}
		set := models.SetRecord{Reps: minReps, Weight: minWeight}
		if reps, ok := coerceFloat(row["reps"]); ok {
			set.Reps = NormalizeReps(reps)
		}
		if weight, ok := coerceFloat(row["weight"]); ok {
			set.Weight = NormalizeWeight(weight)
		}
		entry.Sets = append(entry.Sets, set)
	}

	if len(entry.Sets) == 0 {
		return models.LogEntry{}, false
	}
	return entry, true
}

// coerceRows accepts both list shapes a TOML decode can produce: []any for
// inline arrays and []map[string]any for arrays of tables.
func coerceRows(v any) ([]any, bool) {
	switch rows := v.(type) {
	case []any:
		return rows, true
	case []map[string]any:
		out := make([]any, len(rows))
		for i, r := range rows {
			out[i] = r
		}
		return out, true
	default:
		return nil, false
	}
}

// coerceFloat accepts the numeric shapes a TOML (or JSON) decode can produce.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func coerceInt(v any) (int, bool) {
	f, ok := coerceFloat(v)
	if !ok {
		return 0, false
	}
	return int(math.Floor(f)), true
}
