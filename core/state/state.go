// Package state defines the launch state machine.
package state

import "fmt"

// LaunchState represents the state of the mirror launcher.
type LaunchState int

const (
	// StateIdle means no launch is in progress; a new launch may start.
	StateIdle LaunchState = iota
	// StateLaunching means a child process is being spawned.
	StateLaunching
)

// String returns the string representation of the state.
func (s LaunchState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLaunching:
		return "Launching"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// validTransitions defines the allowed state transitions.
// Key is the current state, value is a list of valid target states.
var validTransitions = map[LaunchState][]LaunchState{
	StateIdle:      {StateLaunching},
	StateLaunching: {StateIdle},
}

// CanTransitionTo checks if transitioning from the current state to the target state is valid.
func (s LaunchState) CanTransitionTo(target LaunchState) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// CanLaunch returns true if a new launch may be started from this state.
func (s LaunchState) CanLaunch() bool {
	return s == StateIdle
}

// TransitionError represents an invalid state transition attempt.
type TransitionError struct {
	From   LaunchState
	To     LaunchState
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid state transition from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// NewTransitionError creates a new TransitionError.
func NewTransitionError(from, to LaunchState, reason string) *TransitionError {
	return &TransitionError{From: from, To: to, Reason: reason}
}
