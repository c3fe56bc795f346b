// Package presentation provides the UI layer with event bridging to the application layer.
package presentation

import (
	"log/slog"
	"sync"

	"castpilot/application"
	"castpilot/application/launch"
	"castpilot/core/command"
	"castpilot/core/event"
	"castpilot/core/eventbus"
	"castpilot/core/state"
	"castpilot/domain/profile"
)

// UIEventBridge bridges UI events to the application layer and routes events back to UI.
// It provides a clean separation between UI and business logic.
type UIEventBridge struct {
	coordinator *application.Coordinator
	eventBus    eventbus.EventBus
	logger      *slog.Logger

	// UI callbacks - set by UI components
	callbacks   *UICallbacks
	callbacksMu sync.RWMutex

	// Subscription management
	subscriptionID string
}

// UICallbacks contains callbacks for UI updates.
type UICallbacks struct {
	// Launch lifecycle
	OnLaunchStarted      func(pid int, command []string)
	OnLaunchFailed       func(path string, err error)
	OnLaunchStateChanged func(oldState, newState state.LaunchState)
	OnProcessExited      func(pid int, err error)

	// Settings persistence
	OnProfileSaved      func(path string)
	OnProfileSaveFailed func(path string, err error)
}

// BridgeConfig holds configuration for UIEventBridge.
type BridgeConfig struct {
	Coordinator *application.Coordinator
	EventBus    eventbus.EventBus
	Logger      *slog.Logger
}

// NewUIEventBridge creates a new UI event bridge.
func NewUIEventBridge(cfg *BridgeConfig) *UIEventBridge {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	b := &UIEventBridge{
		coordinator: cfg.Coordinator,
		eventBus:    cfg.EventBus,
		logger:      cfg.Logger,
		callbacks:   &UICallbacks{},
	}

	// Subscribe to events
	if b.eventBus != nil {
		b.subscriptionID = b.eventBus.Subscribe(b.handleEvent)
	}

	return b
}

// SetCallbacks sets the UI callbacks.
func (b *UIEventBridge) SetCallbacks(callbacks *UICallbacks) {
	b.callbacksMu.Lock()
	defer b.callbacksMu.Unlock()
	b.callbacks = callbacks
}

// Close unsubscribes from the event bus.
func (b *UIEventBridge) Close() {
	if b.eventBus != nil && b.subscriptionID != "" {
		b.eventBus.Unsubscribe(b.subscriptionID)
	}
}

// Command dispatching methods

// LaunchMirror starts the external tool with a snapshot of the profile.
func (b *UIEventBridge) LaunchMirror(p *profile.Profile) error {
	return b.coordinator.Dispatch(command.NewLaunchMirror(p.Clone()))
}

// SaveProfile persists a snapshot of the profile.
func (b *UIEventBridge) SaveProfile(p *profile.Profile) error {
	return b.coordinator.Dispatch(command.NewSaveProfile(p.Clone()))
}

// Query methods

// Preview returns the display string of the command the current profile
// would launch, or "" when no executable is configured.
func (b *UIEventBridge) Preview(p *profile.Profile) string {
	return launch.Preview(p, b.coordinator.Mapping())
}

// LaunchState returns the coordinator's current launch state.
func (b *UIEventBridge) LaunchState() state.LaunchState {
	return b.coordinator.LaunchState()
}

// Event handling

func (b *UIEventBridge) handleEvent(e event.Event) {
	b.callbacksMu.RLock()
	callbacks := b.callbacks
	b.callbacksMu.RUnlock()

	if callbacks == nil {
		return
	}

	switch evt := e.(type) {
	case *event.LaunchStarted:
		if callbacks.OnLaunchStarted != nil {
			callbacks.OnLaunchStarted(evt.PID, evt.Command)
		}

	case *event.LaunchFailed:
		if callbacks.OnLaunchFailed != nil {
			callbacks.OnLaunchFailed(evt.Path, evt.Error)
		}

	case *event.LaunchStateChanged:
		if callbacks.OnLaunchStateChanged != nil {
			callbacks.OnLaunchStateChanged(evt.OldState, evt.NewState)
		}

	case *event.ProcessExited:
		if callbacks.OnProcessExited != nil {
			callbacks.OnProcessExited(evt.PID, evt.Error)
		}

	case *event.ProfileSaved:
		if callbacks.OnProfileSaved != nil {
			callbacks.OnProfileSaved(evt.Path)
		}

	case *event.ProfileSaveFailed:
		if callbacks.OnProfileSaveFailed != nil {
			callbacks.OnProfileSaveFailed(evt.Path, evt.Error)
		}
	}
}
