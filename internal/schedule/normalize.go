package schedule

import (
	"math"
	"regexp"
	"time"

	"github.com/misterclayt0n/ritmo/internal/models"
)

// Date keys address calendar days as plain local dates, no timezone math.
const dateKeyLayout = "2006-01-02"

var dateKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const (
	minReps    = 2
	maxReps    = 30
	repsStep   = 2
	minWeight  = 5
	maxWeight  = 500
	weightStep = 5

	minSetCount = 1
	maxSetCount = 6
)

// DateKey derives the canonical YYYY-MM-DD key for a calendar date.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// TodayKey returns the date key for the device's local clock.
func TodayKey() string {
	return DateKey(time.Now())
}

// IsValidDateKey reports whether s has the exact canonical form.
func IsValidDateKey(s string) bool {
	return dateKeyRe.MatchString(s)
}

// ParseDateKey parses a canonical date key back into a calendar date.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(dateKeyLayout, s)
}

// floorToStep floors v to an integer, floors that to a multiple of step and
// clamps into [min, max]. Non-finite input lands on the minimum.
func floorToStep(v float64, step, min, max float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return min
	}
	n := math.Floor(v)
	n = math.Floor(n/step) * step
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// NormalizeReps snaps a rep count down to a multiple of 2 in [2, 30].
func NormalizeReps(v float64) int {
	return int(floorToStep(v, repsStep, minReps, maxReps))
}

// NormalizeWeight snaps a weight down to a multiple of 5 in [5, 500].
func NormalizeWeight(v float64) float64 {
	return floorToStep(v, weightStep, minWeight, maxWeight)
}

func clampSetCount(n int) int {
	if n < minSetCount {
		return minSetCount
	}
	if n > maxSetCount {
		return maxSetCount
	}
	return n
}

// NormalizeLogEntry applies the write-path normalization: set count clamped
// to [1, 6], sets truncated to the set count, every row's reps/weight snapped
// to their ranges. UpdatedAt passes through verbatim.
func NormalizeLogEntry(e models.LogEntry) models.LogEntry {
	out := models.LogEntry{
		SetCount:  clampSetCount(e.SetCount),
		UpdatedAt: e.UpdatedAt,
	}

	sets := e.Sets
	if len(sets) > out.SetCount {
		sets = sets[:out.SetCount]
	}
	out.Sets = make([]models.SetRecord, 0, len(sets))
	for _, s := range sets {
		out.Sets = append(out.Sets, models.SetRecord{
			Reps:   NormalizeReps(float64(s.Reps)),
			Weight: NormalizeWeight(s.Weight),
		})
	}

	return out
}
