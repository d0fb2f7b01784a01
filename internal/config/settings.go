package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "FOLIO"

// Settings are read from FOLIO_* environment variables. Command-line flags
// take precedence over them.
type Settings struct {
	DataDir     string        `envconfig:"DATA_DIR"`
	StorageKey  string        `envconfig:"STORAGE_KEY" default:"portfolio_projects"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"warn"`
	LogDev      bool          `envconfig:"LOG_DEV" default:"false"`
	LockTimeout time.Duration `envconfig:"LOCK_TIMEOUT" default:"3s"`
}

func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if s.DataDir == "" {
		s.DataDir = DefaultDataDir()
	}

	dir, err := ExpandPath(s.DataDir)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid data dir %q: %w", s.DataDir, err)
	}
	s.DataDir = dir
	return s, nil
}
