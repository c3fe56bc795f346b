// Package main is the entry point for CastPilot.
package main

import (
	"os"
	"path/filepath"

	"castpilot/application"
	"castpilot/core/eventbus"
	"castpilot/domain/flagmap"
	"castpilot/infrastructure/logging"
	"castpilot/infrastructure/process"
	"castpilot/infrastructure/store"
	"castpilot/presentation"
	"castpilot/resources"

	"fyne.io/fyne/v2/app"
)

func main() {
	// Initialize logging (dev: console only, prod: rotating file)
	logger, closeLog, err := logging.Setup(nil)
	if err != nil {
		// Fallback to stderr if logging setup fails
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("Starting CastPilot")

	// Load settings (missing or corrupt files yield defaults)
	settingsStore := store.NewJSONStore("", logger)
	profile := settingsStore.Load()
	logger.Info("Settings loaded", "path", settingsStore.Path())

	// Load flag maps: embedded definitions first, user override wins
	registry := flagmap.NewRegistry()
	loader := flagmap.NewLoader(registry)
	if err := loader.LoadFromFS(resources.FlagMapFiles); err != nil {
		logger.Error("Failed to load flag maps", "error", err)
		os.Exit(1)
	}
	overridePath := filepath.Join(logging.AppConfigDir(), "flagmap.yaml")
	if err := loader.LoadOverride(overridePath); err != nil {
		logger.Warn("Ignoring invalid flag-map override", "path", overridePath, "error", err)
	}
	logger.Info("Flag maps loaded", "count", registry.Count())

	mapping := registry.Get("scrcpy")
	if mapping == nil {
		logger.Error("scrcpy flag map missing")
		os.Exit(1)
	}

	// Initialize event bus
	eventBus := eventbus.New(100)
	defer eventBus.Close()

	// Initialize coordinator
	coordinator := application.NewCoordinator(&application.CoordinatorConfig{
		Store:    settingsStore,
		Mapping:  mapping,
		Launcher: process.NewExecLauncher(logger),
		EventBus: eventBus,
		Logger:   logger,
	})
	coordinator.Start()
	defer coordinator.Stop()

	// Initialize UI event bridge
	bridge := presentation.NewUIEventBridge(&presentation.BridgeConfig{
		Coordinator: coordinator,
		EventBus:    eventBus,
		Logger:      logger,
	})
	defer bridge.Close()

	// Initialize Fyne app
	fyneApp := app.New()

	// Initialize main window
	mainWindow := presentation.NewMainWindow(&presentation.MainWindowConfig{
		App:     fyneApp,
		Bridge:  bridge,
		Logger:  logger,
		Profile: profile,
	})
	defer mainWindow.Cleanup()

	// Show and run
	mainWindow.Show()
	fyneApp.Run()

	logger.Info("Application shutdown complete")
}
