package logging

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != slog.LevelInfo {
		t.Errorf("Level = %v, want Info", cfg.Level)
	}
	if cfg.Dir != "" {
		t.Errorf("Dir = %q, want empty (resolved in Setup)", cfg.Dir)
	}
	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		t.Error("rotation limits should be positive")
	}
}

func TestAppConfigDir(t *testing.T) {
	dir := AppConfigDir()
	if filepath.Base(dir) != "castpilot" {
		t.Errorf("AppConfigDir() = %q, want base castpilot", dir)
	}
}

func TestDefaultLogDir(t *testing.T) {
	dir := DefaultLogDir()
	if filepath.Base(dir) != "logs" {
		t.Errorf("DefaultLogDir() = %q, want base logs", dir)
	}
}

func TestL_BeforeSetup(t *testing.T) {
	if L() == nil {
		t.Error("L() must never return nil")
	}
}
