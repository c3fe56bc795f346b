package event

import "castpilot/core/state"

// LaunchStarted is published when the external tool process has been spawned.
type LaunchStarted struct {
	PID     int
	Command []string
}

func NewLaunchStarted(pid int, command []string) *LaunchStarted {
	return &LaunchStarted{PID: pid, Command: command}
}

func (e *LaunchStarted) EventName() string {
	return "LaunchStarted"
}

// LaunchFailed is published when the process could not be started,
// including when the executable path is invalid.
type LaunchFailed struct {
	Path  string
	Error error
}

func NewLaunchFailed(path string, err error) *LaunchFailed {
	return &LaunchFailed{Path: path, Error: err}
}

func (e *LaunchFailed) EventName() string {
	return "LaunchFailed"
}

// LaunchStateChanged is published when the launcher's state changes.
type LaunchStateChanged struct {
	OldState state.LaunchState
	NewState state.LaunchState
}

func NewLaunchStateChanged(oldState, newState state.LaunchState) *LaunchStateChanged {
	return &LaunchStateChanged{OldState: oldState, NewState: newState}
}

func (e *LaunchStateChanged) EventName() string {
	return "LaunchStateChanged"
}

// ProcessExited is published when a previously launched child process ends.
// Error is nil for a clean exit.
type ProcessExited struct {
	PID   int
	Error error
}

func NewProcessExited(pid int, err error) *ProcessExited {
	return &ProcessExited{PID: pid, Error: err}
}

func (e *ProcessExited) EventName() string {
	return "ProcessExited"
}
