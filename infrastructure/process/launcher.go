// Package process provides child-process launching infrastructure.
package process

import "errors"

// ErrNoExecutable is returned when no executable path has been configured.
var ErrNoExecutable = errors.New("executable path is not set")

// Handle refers to a launched child process.
type Handle struct {
	// PID of the spawned process.
	PID int

	// Done receives the process exit result exactly once. A nil value
	// means a clean exit. The launcher does not kill the child; the
	// user terminates it through the tool's own window.
	Done <-chan error
}

// Launcher defines the interface for starting the external tool.
// This abstraction keeps the application layer testable without
// spawning real processes.
type Launcher interface {
	// Validate performs the basic executable-path check: the path is set,
	// exists, and refers to a regular file. No deeper validation is done.
	Validate(path string) error

	// Start spawns the external tool with the given argument vector and
	// returns without waiting for it to finish.
	Start(path string, args []string) (*Handle, error)
}
