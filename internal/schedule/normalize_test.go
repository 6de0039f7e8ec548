package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/ritmo/internal/models"
)

func TestDateKeyRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local),
		time.Date(2025, 12, 31, 23, 59, 0, 0, time.Local),
		time.Date(1999, 2, 1, 8, 30, 0, 0, time.Local),
	}
	for _, d := range dates {
		key := DateKey(d)
		assert.True(t, IsValidDateKey(key))

		parsed, err := ParseDateKey(key)
		require.NoError(t, err)
		assert.Equal(t, d.Year(), parsed.Year())
		assert.Equal(t, d.Month(), parsed.Month())
		assert.Equal(t, d.Day(), parsed.Day())
	}
}

func TestDateKeyValidation(t *testing.T) {
	assert.True(t, IsValidDateKey("2025-03-10"))
	assert.True(t, IsValidDateKey("0000-00-00")) // Format only, not calendar validity.

	for _, bad := range []string{
		"", "2025-3-10", "2025-03-10T00:00", "10/03/2025",
		"2025-03-100", "x2025-03-10", "2025-03-10 ",
	} {
		assert.False(t, IsValidDateKey(bad), "key %q", bad)
	}
}

func TestNormalizeReps(t *testing.T) {
	assert.Equal(t, 16, NormalizeReps(16))
	assert.Equal(t, 16, NormalizeReps(17))
	assert.Equal(t, 2, NormalizeReps(1))
	assert.Equal(t, 30, NormalizeReps(31))
	assert.Equal(t, 8, NormalizeReps(9.7))
	assert.Equal(t, 2, NormalizeReps(-4))
	assert.Equal(t, 2, NormalizeReps(math.NaN()))
}

func TestNormalizeWeight(t *testing.T) {
	assert.Equal(t, 100.0, NormalizeWeight(100))
	assert.Equal(t, 100.0, NormalizeWeight(103))
	assert.Equal(t, 5.0, NormalizeWeight(0))
	assert.Equal(t, 500.0, NormalizeWeight(10000))
	assert.Equal(t, 45.0, NormalizeWeight(47.9))
	assert.Equal(t, 5.0, NormalizeWeight(math.Inf(-1)))
}

func TestNormalizeIdempotence(t *testing.T) {
	for v := -10.0; v <= 600; v += 7.3 {
		reps := NormalizeReps(v)
		assert.Equal(t, reps, NormalizeReps(float64(reps)))

		weight := NormalizeWeight(v)
		assert.Equal(t, weight, NormalizeWeight(weight))
	}
}

func TestNormalizeLogEntry(t *testing.T) {
	entry := NormalizeLogEntry(models.LogEntry{
		SetCount: 9,
		Sets: []models.SetRecord{
			{Reps: 9, Weight: 47},
			{Reps: 1, Weight: 0},
			{Reps: 33, Weight: 9999},
		},
		UpdatedAt: "2025-03-10T10:00:00Z",
	})

	assert.Equal(t, 6, entry.SetCount)
	assert.Equal(t, "2025-03-10T10:00:00Z", entry.UpdatedAt)
	require.Len(t, entry.Sets, 3)
	assert.Equal(t, models.SetRecord{Reps: 8, Weight: 45}, entry.Sets[0])
	assert.Equal(t, models.SetRecord{Reps: 2, Weight: 5}, entry.Sets[1])
	assert.Equal(t, models.SetRecord{Reps: 30, Weight: 500}, entry.Sets[2])
}

func TestNormalizeLogEntryTruncatesToSetCount(t *testing.T) {
	entry := NormalizeLogEntry(models.LogEntry{
		SetCount: 2,
		Sets: []models.SetRecord{
			{Reps: 8, Weight: 45},
			{Reps: 8, Weight: 45},
			{Reps: 8, Weight: 45},
		},
	})

	assert.Equal(t, 2, entry.SetCount)
	assert.Len(t, entry.Sets, 2)
}
