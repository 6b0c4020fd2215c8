// pkg/core/config.go
package core

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds dastore configuration.
type Config struct {
	// AURHelper is the command used for AUR operations (default: yay).
	AURHelper string `yaml:"aur_helper"`

	// Escalate is the privilege escalation command prefixed to pacman
	// operations that need root (default: pkexec).
	Escalate string `yaml:"escalate"`

	// NoConfirm passes --noconfirm to pacman and the AUR helper.
	NoConfirm bool `yaml:"noconfirm"`

	// SyncDBPath is where the local pacman sync databases live.
	SyncDBPath string `yaml:"sync_db_path"`

	// LogDir is where dastore writes its own log files.
	LogDir string `yaml:"log_dir"`

	// HistoryLimit caps how many pacman.log entries the history view shows.
	HistoryLimit int `yaml:"history_limit"`

	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		AURHelper:    "yay",
		Escalate:     "pkexec",
		NoConfirm:    true,
		SyncDBPath:   "/var/lib/pacman/sync",
		LogDir:       filepath.Join(home, ".cache", "dastore", "log"),
		HistoryLimit: 20,
	}
}

// LoadConfig loads configuration from file, falling back to defaults when the
// file does not exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "dastore", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "reading config")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}

// SaveConfig saves configuration to file.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "dastore", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing config")
	}
	return nil
}
