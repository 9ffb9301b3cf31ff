// Package config provides server configuration loaded from environment variables.
package config

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds devdesk configuration. It is built once at startup and passed
// into the composition root; nothing reads these values from globals.
type Config struct {
	// ProjectRoot is the directory caller-supplied analysis paths resolve
	// against. Empty means the working directory.
	ProjectRoot string `envconfig:"PROJECT_ROOT"`

	// WorkLogPath locates the append-only work log; relative paths are
	// anchored at the project root.
	WorkLogPath string `envconfig:"WORK_LOG" default:"work_log.txt"`

	// TaskDBPath locates the SQLite task database; relative paths are
	// anchored at the project root.
	TaskDBPath string `envconfig:"TASK_DB" default:"tasks.db"`
}

// Load reads configuration from DEVDESK_-prefixed environment variables.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("devdesk", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UnderRoot anchors a configured data path at the resolved project root,
// leaving absolute paths alone.
func UnderRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
