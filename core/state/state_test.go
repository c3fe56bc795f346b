package state

import "testing"

func TestLaunchState_String(t *testing.T) {
	tests := []struct {
		state    LaunchState
		expected string
	}{
		{StateIdle, "Idle"},
		{StateLaunching, "Launching"},
		{LaunchState(99), "Unknown(99)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("String() = %v, want %v", got, tt.expected)
		}
	}
}

func TestLaunchState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     LaunchState
		to       LaunchState
		expected bool
	}{
		{"idle to launching", StateIdle, StateLaunching, true},
		{"launching back to idle", StateLaunching, StateIdle, true},
		{"idle to idle", StateIdle, StateIdle, false},
		{"launching to launching", StateLaunching, StateLaunching, false},
		{"unknown state", LaunchState(99), StateIdle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expected {
				t.Errorf("CanTransitionTo() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLaunchState_CanLaunch(t *testing.T) {
	if !StateIdle.CanLaunch() {
		t.Error("StateIdle should allow launching")
	}
	if StateLaunching.CanLaunch() {
		t.Error("StateLaunching should not allow launching")
	}
}

func TestTransitionError(t *testing.T) {
	err := NewTransitionError(StateLaunching, StateLaunching, "launch already in progress")
	expected := "invalid state transition from Launching to Launching: launch already in progress"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}

	err = NewTransitionError(StateIdle, StateIdle, "")
	expected = "invalid state transition from Idle to Idle"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}
