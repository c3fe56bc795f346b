package presentation

import (
	"log/slog"
	"strconv"
	"sync"

	"castpilot/core/state"
	"castpilot/domain/profile"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MainWindow is the main application window.
type MainWindow struct {
	app     fyne.App
	window  fyne.Window
	bridge  *UIEventBridge
	logger  *slog.Logger
	profile *profile.Profile

	// UI components - Header
	darkModeCheck *widget.Check

	// UI components - Executable path
	pathEntry *widget.Entry
	browseBtn *widget.Button

	// UI components - Basic tab
	bitRateSlider *widget.Slider
	bitRateLabel  *widget.Label
	maxFPSSlider  *widget.Slider
	maxFPSLabel   *widget.Label
	maxSizeSelect *widget.Select

	fullscreenCheck    *widget.Check
	alwaysOnTopCheck   *widget.Check
	showTouchesCheck   *widget.Check
	turnScreenOffCheck *widget.Check
	stayAwakeCheck     *widget.Check

	audioForwardCheck  *widget.Check
	audioBitRateSelect *widget.Select

	recordCheck     *widget.Check
	recordPathEntry *widget.Entry
	recordBrowseBtn *widget.Button

	// UI components - Advanced tab
	mirrorCameraCheck       *widget.Check
	cameraFacingSelect      *widget.Select
	cameraSizeSelect        *widget.Select
	cameraOrientationSelect *widget.Select

	videoCodecSelect *widget.Select
	audioCodecSelect *widget.Select

	videoBufferSlider *widget.Slider
	videoBufferLabel  *widget.Label
	v4l2SinkEntry     *widget.Entry

	// UI components - Footer
	previewLabel *widget.Label
	connectBtn   *widget.Button
	statusLabel  *widget.Label

	// Cleanup
	cleanupOnce sync.Once
}

// MainWindowConfig holds configuration for MainWindow.
type MainWindowConfig struct {
	App     fyne.App
	Bridge  *UIEventBridge
	Logger  *slog.Logger
	Profile *profile.Profile
}

// NewMainWindow creates a new main window.
func NewMainWindow(cfg *MainWindowConfig) *MainWindow {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Profile == nil {
		cfg.Profile = profile.Default()
	}

	w := &MainWindow{
		app:     cfg.App,
		window:  cfg.App.NewWindow("CastPilot"),
		bridge:  cfg.Bridge,
		logger:  cfg.Logger,
		profile: cfg.Profile,
	}

	w.applyTheme()
	w.init()
	w.setupEventCallbacks()
	w.refreshPreview()

	// Settings persist on close; launched mirrors keep running.
	w.window.SetOnClosed(func() {
		w.Cleanup()
		cfg.App.Quit()
	})

	return w
}

func (w *MainWindow) init() {
	header := w.createHeader()
	pathCard := widget.NewCard("", "", w.createPathBox())

	tabs := container.NewAppTabs(
		container.NewTabItem("Basic", w.createBasicTab()),
		container.NewTabItem("Advanced", w.createAdvancedTab()),
	)

	footer := w.createFooter()

	content := container.NewBorder(
		container.NewVBox(header, pathCard),
		footer,
		nil, nil,
		tabs,
	)
	w.window.SetContent(content)
	w.window.Resize(fyne.NewSize(560, 720))
}

func (w *MainWindow) createHeader() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("CastPilot", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	w.darkModeCheck = widget.NewCheck("Dark Mode", func(checked bool) {
		w.profile.DarkMode = checked
		w.applyTheme()
	})
	w.darkModeCheck.SetChecked(w.profile.DarkMode)

	return container.NewBorder(nil, nil, title, w.darkModeCheck)
}

func (w *MainWindow) createPathBox() fyne.CanvasObject {
	w.pathEntry = widget.NewEntry()
	w.pathEntry.SetPlaceHolder("Path to scrcpy executable")
	w.pathEntry.SetText(w.profile.ScrcpyPath)
	w.pathEntry.OnChanged = func(s string) {
		w.profile.ScrcpyPath = s
		w.refreshPreview()
	}

	w.browseBtn = widget.NewButtonWithIcon("Browse", theme.FolderOpenIcon(), func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w.window)
				return
			}
			if reader == nil {
				return
			}
			defer reader.Close()
			w.pathEntry.SetText(reader.URI().Path())
		}, w.window)
	})

	return container.NewBorder(nil, nil, widget.NewLabel("Executable"), w.browseBtn, w.pathEntry)
}

func (w *MainWindow) createFooter() fyne.CanvasObject {
	w.previewLabel = widget.NewLabel("")
	w.previewLabel.Wrapping = fyne.TextWrapBreak
	w.previewLabel.TextStyle = fyne.TextStyle{Monospace: true}
	previewCard := widget.NewCard("Command Preview", "", w.previewLabel)

	w.statusLabel = widget.NewLabel("")

	w.connectBtn = widget.NewButtonWithIcon("Connect", theme.MediaPlayIcon(), w.handleConnect)
	w.connectBtn.Importance = widget.HighImportance

	return container.NewVBox(
		previewCard,
		container.NewBorder(nil, nil, w.statusLabel, w.connectBtn),
	)
}

func (w *MainWindow) setupEventCallbacks() {
	if w.bridge == nil {
		return
	}

	w.bridge.SetCallbacks(&UICallbacks{
		OnLaunchStarted: func(pid int, command []string) {
			w.logger.Info("Mirror started", "pid", pid)
			// UI update must run on main thread
			fyne.Do(func() {
				w.statusLabel.SetText("Mirroring (pid " + strconv.Itoa(pid) + ")")
			})
		},
		OnLaunchFailed: func(path string, err error) {
			w.logger.Error("Launch failed", "path", path, "error", err)
			fyne.Do(func() {
				w.statusLabel.SetText("")
				dialog.ShowError(err, w.window)
			})
		},
		OnLaunchStateChanged: func(oldState, newState state.LaunchState) {
			w.logger.Debug("Launch state changed", "from", oldState, "to", newState)
			fyne.Do(func() {
				w.updateConnectButton()
			})
		},
		OnProcessExited: func(pid int, err error) {
			w.logger.Info("Mirror exited", "pid", pid, "error", err)
			fyne.Do(func() {
				w.statusLabel.SetText("")
			})
		},
		OnProfileSaved: func(path string) {
			w.logger.Debug("Settings saved", "path", path)
		},
		OnProfileSaveFailed: func(path string, err error) {
			w.logger.Error("Failed to save settings", "path", path, "error", err)
		},
	})
}

func (w *MainWindow) handleConnect() {
	if w.bridge == nil {
		return
	}
	if err := w.bridge.LaunchMirror(w.profile); err != nil {
		w.logger.Error("Failed to launch mirror", "error", err)
		dialog.ShowError(err, w.window)
	}
}

// refreshPreview recomputes the command preview and the Connect gate.
// Must run on the UI thread.
func (w *MainWindow) refreshPreview() {
	// Widget setters fire OnChanged during construction, before the
	// footer exists.
	if w.previewLabel == nil {
		return
	}
	if w.bridge != nil {
		w.previewLabel.SetText(w.bridge.Preview(w.profile))
	}
	w.updateConnectButton()
}

func (w *MainWindow) updateConnectButton() {
	if w.connectBtn == nil {
		return
	}
	enabled := w.profile.HasExecutable()
	if w.bridge != nil && w.bridge.LaunchState() != state.StateIdle {
		enabled = false
	}
	if enabled {
		w.connectBtn.Enable()
	} else {
		w.connectBtn.Disable()
	}
}

func (w *MainWindow) applyTheme() {
	if w.profile.DarkMode {
		w.app.Settings().SetTheme(newForcedVariant(theme.DefaultTheme(), theme.VariantDark))
	} else {
		w.app.Settings().SetTheme(newForcedVariant(theme.DefaultTheme(), theme.VariantLight))
	}
}

// Public methods

// Show displays the main window.
func (w *MainWindow) Show() {
	w.window.Show()
}

// Cleanup persists the current settings.
func (w *MainWindow) Cleanup() {
	w.cleanupOnce.Do(func() {
		if w.bridge == nil {
			return
		}
		if err := w.bridge.SaveProfile(w.profile); err != nil {
			w.logger.Error("Failed to save settings on close", "error", err)
		}
	})
}
