// Package store persists the settings profile as a JSON document in the
// user's home directory.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"castpilot/domain/profile"
)

// fileName is the settings document name under the user's home directory.
const fileName = ".castpilot.json"

// DefaultPath returns the fixed location of the settings document.
// Falls back to the working directory if the home directory cannot be
// resolved, so the store always has somewhere to write.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(home, fileName)
}

// JSONStore implements profile.Store backed by a single JSON file.
type JSONStore struct {
	path   string
	logger *slog.Logger
}

// NewJSONStore creates a store for the given path. An empty path selects
// the default location under the user's home directory.
func NewJSONStore(path string, logger *slog.Logger) *JSONStore {
	if path == "" {
		path = DefaultPath()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONStore{path: path, logger: logger}
}

// Load reads the persisted profile. Missing or corrupt documents are
// recovered silently: the built-in defaults are returned and the cause
// is only logged. Unknown keys are ignored, missing keys keep their
// defaults, so the on-disk schema can drift without breaking startup.
func (s *JSONStore) Load() *profile.Profile {
	p := profile.Default()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Settings file unreadable, using defaults", "path", s.path, "error", err)
		}
		return p
	}

	if err := json.Unmarshal(data, p); err != nil {
		s.logger.Warn("Settings file corrupt, using defaults", "path", s.path, "error", err)
		return profile.Default()
	}

	return p
}

// Save serializes the profile to the settings document, overwriting it.
func (s *JSONStore) Save(p *profile.Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings to %s: %w", s.path, err)
	}

	s.logger.Debug("Settings saved", "path", s.path)
	return nil
}

// Path returns the location of the settings document.
func (s *JSONStore) Path() string {
	return s.path
}
