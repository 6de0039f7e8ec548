package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ritmo/internal/flow"
)

func getFlowPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ritmo")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "current_flow.toml"), nil
}

func SaveFlowSession(s *flow.Session) error {
	path, err := getFlowPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

func LoadFlowSession() (*flow.Session, error) {
	path, err := getFlowPath()
	if err != nil {
		return nil, err
	}

	var s flow.Session
	_, err = toml.DecodeFile(path, &s)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func ClearFlowSession() error {
	path, err := getFlowPath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func FlowSessionExists() bool {
	path, err := getFlowPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
