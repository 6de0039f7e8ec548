package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ritmo/internal/models"
)

// GetSchedulePath returns the location of the persisted schedule snapshot.
func GetSchedulePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ritmo")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "schedule.toml"), nil
}

// LoadRawSchedule decodes the snapshot file into an untyped map, ready for
// schedule.RepairSnapshot. A missing file yields nil with no error (fresh
// state); a file that fails to decode is reported so the caller can warn.
func LoadRawSchedule() (map[string]any, error) {
	path, err := GetSchedulePath()
	if err != nil {
		return nil, err
	}
	return LoadRawScheduleFrom(path)
}

func LoadRawScheduleFrom(path string) (map[string]any, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SaveScheduleSnapshot writes the snapshot to the default location.
func SaveScheduleSnapshot(snap models.ScheduleSnapshot) error {
	path, err := GetSchedulePath()
	if err != nil {
		return err
	}
	return SaveScheduleSnapshotTo(path, snap)
}

func SaveScheduleSnapshotTo(path string, snap models.ScheduleSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(snap)
}
