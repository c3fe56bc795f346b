package application

import (
	"errors"
	"sync"
	"testing"
	"time"

	"castpilot/core/command"
	"castpilot/core/event"
	"castpilot/core/eventbus"
	"castpilot/core/state"
	"castpilot/domain/flagmap"
	"castpilot/domain/profile"
	"castpilot/infrastructure/process"
)

// fakeLauncher implements process.Launcher without spawning anything.
type fakeLauncher struct {
	mu       sync.Mutex
	startErr error
	started  [][]string
	pid      int
	done     chan error
	block    chan struct{} // if set, Start blocks until closed
}

func (l *fakeLauncher) Validate(path string) error {
	if path == "" {
		return process.ErrNoExecutable
	}
	return nil
}

func (l *fakeLauncher) Start(path string, args []string) (*process.Handle, error) {
	if l.block != nil {
		<-l.block
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.startErr != nil {
		return nil, l.startErr
	}
	l.started = append(l.started, append([]string{path}, args...))
	done := l.done
	if done == nil {
		done = make(chan error, 1)
		done <- nil
	}
	return &process.Handle{PID: l.pid, Done: done}, nil
}

func (l *fakeLauncher) startCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.started)
}

// fakeStore implements profile.Store in memory.
type fakeStore struct {
	saved   *profile.Profile
	saveErr error
}

func (s *fakeStore) Load() *profile.Profile       { return profile.Default() }
func (s *fakeStore) Save(p *profile.Profile) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = p
	return nil
}
func (s *fakeStore) Path() string { return "/tmp/.castpilot.json" }

func testMapping() *flagmap.Mapping {
	return &flagmap.Mapping{
		Tool: "scrcpy",
		Flags: map[string]string{
			"video_bit_rate": "--video-bit-rate=%vM",
			"max_fps":        "--max-fps=%v",
			"max_size":       "--max-size=%v",
		},
	}
}

func testCoordinator(launcher process.Launcher, store profile.Store, bus eventbus.EventBus) *Coordinator {
	return NewCoordinator(&CoordinatorConfig{
		Store:    store,
		Mapping:  testMapping(),
		Launcher: launcher,
		EventBus: bus,
	})
}

// collectEvents subscribes and returns a channel of published events.
func collectEvents(bus eventbus.EventBus) <-chan event.Event {
	ch := make(chan event.Event, 32)
	bus.Subscribe(func(e event.Event) {
		ch <- e
	})
	return ch
}

func waitFor[T event.Event](t *testing.T, events <-chan event.Event) T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case e := <-events:
			if typed, ok := e.(T); ok {
				return typed
			}
		case <-deadline:
			var zero T
			t.Fatalf("timeout waiting for %T", zero)
			return zero
		}
	}
}

func TestNewCoordinator(t *testing.T) {
	coord := testCoordinator(&fakeLauncher{}, &fakeStore{}, nil)
	if coord == nil {
		t.Fatal("NewCoordinator returned nil")
	}
	if coord.LaunchState() != state.StateIdle {
		t.Errorf("initial state = %v, want Idle", coord.LaunchState())
	}
}

type unknownCommand struct{}

func (c *unknownCommand) CommandName() string { return "Unknown" }

func TestCoordinator_Dispatch_Unknown(t *testing.T) {
	coord := testCoordinator(&fakeLauncher{}, &fakeStore{}, nil)

	if err := coord.Dispatch(&unknownCommand{}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestCoordinator_LaunchMirror(t *testing.T) {
	bus := eventbus.New(32)
	defer bus.Close()
	events := collectEvents(bus)

	launcher := &fakeLauncher{pid: 4242}
	coord := testCoordinator(launcher, &fakeStore{}, bus)

	p := profile.Default()
	p.ScrcpyPath = "/usr/bin/scrcpy"

	if err := coord.Dispatch(command.NewLaunchMirror(p)); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	started := waitFor[*event.LaunchStarted](t, events)
	if started.PID != 4242 {
		t.Errorf("PID = %d, want 4242", started.PID)
	}
	if len(started.Command) == 0 || started.Command[0] != "/usr/bin/scrcpy" {
		t.Errorf("Command = %v, want executable first", started.Command)
	}

	// The reaper publishes the exit of the fake process.
	exited := waitFor[*event.ProcessExited](t, events)
	if exited.PID != 4242 || exited.Error != nil {
		t.Errorf("ProcessExited = %+v", exited)
	}
}

func TestCoordinator_LaunchMirror_NoExecutable(t *testing.T) {
	bus := eventbus.New(32)
	defer bus.Close()
	events := collectEvents(bus)

	coord := testCoordinator(&fakeLauncher{}, &fakeStore{}, bus)

	if err := coord.Dispatch(command.NewLaunchMirror(profile.Default())); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	failed := waitFor[*event.LaunchFailed](t, events)
	if !errors.Is(failed.Error, process.ErrNoExecutable) {
		t.Errorf("Error = %v, want ErrNoExecutable", failed.Error)
	}
}

func TestCoordinator_LaunchMirror_StartFailure(t *testing.T) {
	bus := eventbus.New(32)
	defer bus.Close()
	events := collectEvents(bus)

	launcher := &fakeLauncher{startErr: errors.New("exec format error")}
	coord := testCoordinator(launcher, &fakeStore{}, bus)

	p := profile.Default()
	p.ScrcpyPath = "/usr/bin/scrcpy"

	if err := coord.Dispatch(command.NewLaunchMirror(p)); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	failed := waitFor[*event.LaunchFailed](t, events)
	if failed.Path != "/usr/bin/scrcpy" {
		t.Errorf("Path = %q", failed.Path)
	}
	if failed.Error == nil {
		t.Error("Error should be set")
	}
}

func TestCoordinator_LaunchMirror_GatesConcurrentLaunches(t *testing.T) {
	bus := eventbus.New(32)
	defer bus.Close()

	block := make(chan struct{})
	launcher := &fakeLauncher{block: block}
	coord := testCoordinator(launcher, &fakeStore{}, bus)

	p := profile.Default()
	p.ScrcpyPath = "/usr/bin/scrcpy"

	if err := coord.Dispatch(command.NewLaunchMirror(p)); err != nil {
		t.Fatalf("first Dispatch() error: %v", err)
	}

	// Second launch while the first is still in flight must be rejected.
	err := coord.Dispatch(command.NewLaunchMirror(p))
	var transErr *state.TransitionError
	if !errors.As(err, &transErr) {
		t.Errorf("second Dispatch() error = %v, want TransitionError", err)
	}

	close(block)

	// State returns to Idle once the launch completes.
	deadline := time.After(2 * time.Second)
	for coord.LaunchState() != state.StateIdle {
		select {
		case <-deadline:
			t.Fatal("state never returned to Idle")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestCoordinator_SaveProfile(t *testing.T) {
	bus := eventbus.New(32)
	defer bus.Close()
	events := collectEvents(bus)

	store := &fakeStore{}
	coord := testCoordinator(&fakeLauncher{}, store, bus)

	p := profile.Default()
	p.BitRate = 12

	if err := coord.Dispatch(command.NewSaveProfile(p)); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if store.saved == nil || store.saved.BitRate != 12 {
		t.Error("profile was not saved to the store")
	}

	waitFor[*event.ProfileSaved](t, events)
}

func TestCoordinator_SaveProfile_Failure(t *testing.T) {
	bus := eventbus.New(32)
	defer bus.Close()
	events := collectEvents(bus)

	store := &fakeStore{saveErr: errors.New("permission denied")}
	coord := testCoordinator(&fakeLauncher{}, store, bus)

	if err := coord.Dispatch(command.NewSaveProfile(profile.Default())); err == nil {
		t.Error("Dispatch() should return the save error")
	}

	failed := waitFor[*event.ProfileSaveFailed](t, events)
	if failed.Error == nil {
		t.Error("ProfileSaveFailed.Error should be set")
	}
}
