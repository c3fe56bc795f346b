package process

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// ExecLauncher implements Launcher using os/exec. The child is detached
// from the UI loop: Start returns as soon as the process is spawned and
// a background goroutine reaps it.
type ExecLauncher struct {
	logger *slog.Logger
}

// NewExecLauncher creates a launcher.
func NewExecLauncher(logger *slog.Logger) *ExecLauncher {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecLauncher{logger: logger}
}

// Validate checks that the path is set and names an existing regular file.
func (l *ExecLauncher) Validate(path string) error {
	if path == "" {
		return ErrNoExecutable
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("executable not found at %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not an executable", path)
	}
	return nil
}

// Start spawns the external tool. The working directory is set to the
// executable's own directory so the tool finds its bundled files
// (adb, server payload) the same way a shell launch from there would.
func (l *ExecLauncher) Start(path string, args []string) (*Handle, error) {
	if err := l.Validate(path); err != nil {
		return nil, err
	}

	cmd := exec.Command(path, args...)
	cmd.Dir = filepath.Dir(path)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", path, err)
	}

	pid := cmd.Process.Pid
	l.logger.Info("Process started", "path", path, "pid", pid, "args", args)

	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		if err != nil {
			l.logger.Warn("Process exited with error", "pid", pid, "error", err)
		} else {
			l.logger.Info("Process exited", "pid", pid)
		}
		done <- err
	}()

	return &Handle{PID: pid, Done: done}, nil
}
