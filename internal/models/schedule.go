package models

// SetRecord is one performed set inside a log entry. Reps and weight are
// stored already normalized (see internal/schedule).
type SetRecord struct {
	Reps   int     `toml:"reps" json:"reps"`
	Weight float64 `toml:"weight" json:"weight"`
}

// LogEntry is the normalized set/rep/weight record for one exercise within
// one workout on one date. UpdatedAt is an opaque timestamp string, kept
// verbatim.
type LogEntry struct {
	SetCount  int         `toml:"set_count" json:"set_count"`
	Sets      []SetRecord `toml:"sets" json:"sets"`
	UpdatedAt string      `toml:"updated_at" json:"updated_at"`
}

// ScheduleSnapshot is the persisted layout of the schedule store: one record
// holding the three co-indexed maps. Completed dates are a sparse set, the
// value is always true (absent means not completed).
type ScheduleSnapshot struct {
	Version        int                                       `toml:"version"`
	Schedule       map[string]string                         `toml:"schedule"`
	CompletedDates map[string]bool                           `toml:"completed_dates"`
	WorkoutLogs    map[string]map[string]map[string]LogEntry `toml:"workout_logs"`
}

// SnapshotVersion is written on every save. Older (or garbage) snapshots are
// run through schedule.RepairSnapshot before becoming live state.
const SnapshotVersion = 2
