// Package application provides the application layer orchestrating
// launches and settings persistence.
package application

import (
	"fmt"
	"log/slog"
	"sync"

	"castpilot/application/launch"
	"castpilot/core/command"
	"castpilot/core/event"
	"castpilot/core/eventbus"
	"castpilot/core/state"
	"castpilot/domain/flagmap"
	"castpilot/domain/profile"
	"castpilot/infrastructure/process"
)

// Coordinator dispatches commands from the presentation layer, runs the
// external tool launch off the UI thread, and publishes outcome events.
type Coordinator struct {
	store    profile.Store
	mapping  *flagmap.Mapping
	launcher process.Launcher
	eventBus eventbus.EventBus
	logger   *slog.Logger

	launchState state.LaunchState
	stateMu     sync.Mutex
}

// CoordinatorConfig holds configuration for the Coordinator.
type CoordinatorConfig struct {
	Store    profile.Store
	Mapping  *flagmap.Mapping
	Launcher process.Launcher
	EventBus eventbus.EventBus
	Logger   *slog.Logger
}

// NewCoordinator creates a new coordinator.
func NewCoordinator(cfg *CoordinatorConfig) *Coordinator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Coordinator{
		store:       cfg.Store,
		mapping:     cfg.Mapping,
		launcher:    cfg.Launcher,
		eventBus:    cfg.EventBus,
		logger:      cfg.Logger,
		launchState: state.StateIdle,
	}
}

// Start begins the coordinator.
func (c *Coordinator) Start() {
	c.logger.Info("Coordinator started")
}

// Stop shuts down the coordinator. Launched children are deliberately
// left running; the user closes the mirror window themselves.
func (c *Coordinator) Stop() {
	c.logger.Info("Coordinator stopped")
}

// Mapping returns the active flag mapping.
func (c *Coordinator) Mapping() *flagmap.Mapping {
	return c.mapping
}

// LaunchState returns the current launch state.
func (c *Coordinator) LaunchState() state.LaunchState {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.launchState
}

// Dispatch sends a command to the appropriate handler.
func (c *Coordinator) Dispatch(cmd command.Command) error {
	c.logger.Debug("Dispatching command", "command", cmd.CommandName())

	switch cmd := cmd.(type) {
	case *command.LaunchMirror:
		return c.handleLaunchMirror(cmd)
	case *command.SaveProfile:
		return c.handleSaveProfile(cmd)
	default:
		return fmt.Errorf("unknown command type: %T", cmd)
	}
}

// Command handlers

func (c *Coordinator) handleLaunchMirror(cmd *command.LaunchMirror) error {
	if err := c.transition(state.StateLaunching); err != nil {
		return err
	}

	p := cmd.Profile

	// Spawn off the UI thread; outcome is reported through events.
	go func() {
		defer func() {
			if err := c.transition(state.StateIdle); err != nil {
				c.logger.Error("Failed to reset launch state", "error", err)
			}
		}()

		vector := launch.BuildCommand(p, c.mapping)
		if vector == nil {
			c.publish(event.NewLaunchFailed("", process.ErrNoExecutable))
			return
		}

		handle, err := c.launcher.Start(vector[0], vector[1:])
		if err != nil {
			c.logger.Error("Launch failed", "path", vector[0], "error", err)
			c.publish(event.NewLaunchFailed(vector[0], err))
			return
		}

		c.publish(event.NewLaunchStarted(handle.PID, vector))

		// Reap in the background so exits show up in the UI.
		go func() {
			exitErr := <-handle.Done
			c.publish(event.NewProcessExited(handle.PID, exitErr))
		}()
	}()

	return nil
}

func (c *Coordinator) handleSaveProfile(cmd *command.SaveProfile) error {
	err := c.store.Save(cmd.Profile)
	if err != nil {
		c.logger.Error("Failed to save settings", "path", c.store.Path(), "error", err)
		c.publish(event.NewProfileSaveFailed(c.store.Path(), err))
		return err
	}

	c.publish(event.NewProfileSaved(c.store.Path()))
	return nil
}

// transition moves the launch state machine, publishing the change.
func (c *Coordinator) transition(to state.LaunchState) error {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	if !c.launchState.CanTransitionTo(to) {
		if to == state.StateLaunching {
			return state.NewTransitionError(c.launchState, to, "launch already in progress")
		}
		return state.NewTransitionError(c.launchState, to, "")
	}

	old := c.launchState
	c.launchState = to
	c.publish(event.NewLaunchStateChanged(old, to))
	return nil
}

func (c *Coordinator) publish(e event.Event) {
	if c.eventBus != nil {
		c.eventBus.Publish(e)
	}
}
