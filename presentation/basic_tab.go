package presentation

import (
	"strconv"

	"castpilot/domain/profile"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func (w *MainWindow) createBasicTab() fyne.CanvasObject {
	videoCard := widget.NewCard("Video & Display", "", w.createVideoBox())
	optionsCard := widget.NewCard("General Options", "", w.createOptionsBox())
	audioCard := widget.NewCard("Audio", "", w.createAudioBox())
	recordCard := widget.NewCard("Recording", "", w.createRecordBox())

	return container.NewVScroll(container.NewVBox(
		videoCard,
		optionsCard,
		audioCard,
		recordCard,
	))
}

func (w *MainWindow) createVideoBox() fyne.CanvasObject {
	w.bitRateLabel = widget.NewLabel(strconv.Itoa(w.profile.BitRate) + " Mbps")
	w.bitRateSlider = widget.NewSlider(profile.BitRateMin, profile.BitRateMax)
	w.bitRateSlider.Step = 1
	w.bitRateSlider.OnChanged = func(v float64) {
		w.profile.BitRate = int(v)
		w.bitRateLabel.SetText(strconv.Itoa(w.profile.BitRate) + " Mbps")
		w.refreshPreview()
	}
	w.bitRateSlider.SetValue(float64(w.profile.BitRate))

	w.maxFPSLabel = widget.NewLabel(strconv.Itoa(w.profile.MaxFPS) + " fps")
	w.maxFPSSlider = widget.NewSlider(profile.MaxFPSMin, profile.MaxFPSMax)
	w.maxFPSSlider.Step = 1
	w.maxFPSSlider.OnChanged = func(v float64) {
		w.profile.MaxFPS = int(v)
		w.maxFPSLabel.SetText(strconv.Itoa(w.profile.MaxFPS) + " fps")
		w.refreshPreview()
	}
	w.maxFPSSlider.SetValue(float64(w.profile.MaxFPS))

	w.maxSizeSelect = widget.NewSelect(profile.MaxSizeOptions, func(s string) {
		w.profile.MaxSize = s
		w.refreshPreview()
	})
	w.maxSizeSelect.SetSelected(w.profile.MaxSize)

	return container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Bit Rate"), w.bitRateLabel, w.bitRateSlider),
		container.NewBorder(nil, nil, widget.NewLabel("Max FPS"), w.maxFPSLabel, w.maxFPSSlider),
		container.NewBorder(nil, nil, widget.NewLabel("Max Size"), nil, w.maxSizeSelect),
	)
}

func (w *MainWindow) createOptionsBox() fyne.CanvasObject {
	w.fullscreenCheck = widget.NewCheck("Fullscreen", func(b bool) {
		w.profile.Fullscreen = b
		w.refreshPreview()
	})
	w.fullscreenCheck.SetChecked(w.profile.Fullscreen)

	w.alwaysOnTopCheck = widget.NewCheck("Always on Top", func(b bool) {
		w.profile.AlwaysOnTop = b
		w.refreshPreview()
	})
	w.alwaysOnTopCheck.SetChecked(w.profile.AlwaysOnTop)

	w.showTouchesCheck = widget.NewCheck("Show Touches", func(b bool) {
		w.profile.ShowTouches = b
		w.refreshPreview()
	})
	w.showTouchesCheck.SetChecked(w.profile.ShowTouches)

	w.turnScreenOffCheck = widget.NewCheck("Turn Screen Off", func(b bool) {
		w.profile.TurnScreenOff = b
		w.refreshPreview()
	})
	w.turnScreenOffCheck.SetChecked(w.profile.TurnScreenOff)

	w.stayAwakeCheck = widget.NewCheck("Stay Awake", func(b bool) {
		w.profile.StayAwake = b
		w.refreshPreview()
	})
	w.stayAwakeCheck.SetChecked(w.profile.StayAwake)

	return container.NewGridWithColumns(2,
		w.fullscreenCheck,
		w.alwaysOnTopCheck,
		w.showTouchesCheck,
		w.turnScreenOffCheck,
		w.stayAwakeCheck,
	)
}

func (w *MainWindow) createAudioBox() fyne.CanvasObject {
	w.audioBitRateSelect = widget.NewSelect(profile.AudioBitRateOptions, func(s string) {
		w.profile.AudioBitRate = s
		w.refreshPreview()
	})
	w.audioBitRateSelect.SetSelected(w.profile.AudioBitRate)

	w.audioForwardCheck = widget.NewCheck("Forward Audio", func(b bool) {
		w.profile.AudioForward = b
		if b {
			w.audioBitRateSelect.Enable()
		} else {
			w.audioBitRateSelect.Disable()
		}
		w.refreshPreview()
	})
	w.audioForwardCheck.SetChecked(w.profile.AudioForward)
	if !w.profile.AudioForward {
		w.audioBitRateSelect.Disable()
	}

	return container.NewVBox(
		w.audioForwardCheck,
		container.NewBorder(nil, nil, widget.NewLabel("Audio Bit Rate (kbps)"), nil, w.audioBitRateSelect),
	)
}

func (w *MainWindow) createRecordBox() fyne.CanvasObject {
	w.recordPathEntry = widget.NewEntry()
	w.recordPathEntry.SetPlaceHolder("Recording output file (.mp4 / .mkv)")
	w.recordPathEntry.SetText(w.profile.RecordFilePath)
	w.recordPathEntry.OnChanged = func(s string) {
		w.profile.RecordFilePath = s
		w.refreshPreview()
	}

	w.recordBrowseBtn = widget.NewButtonWithIcon("Browse", theme.DocumentSaveIcon(), func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w.window)
				return
			}
			if writer == nil {
				return
			}
			defer writer.Close()
			w.recordPathEntry.SetText(writer.URI().Path())
		}, w.window)
	})

	w.recordCheck = widget.NewCheck("Record Screen", func(b bool) {
		w.profile.RecordScreen = b
		if b {
			w.recordPathEntry.Enable()
			w.recordBrowseBtn.Enable()
		} else {
			w.recordPathEntry.Disable()
			w.recordBrowseBtn.Disable()
		}
		w.refreshPreview()
	})
	w.recordCheck.SetChecked(w.profile.RecordScreen)
	if !w.profile.RecordScreen {
		w.recordPathEntry.Disable()
		w.recordBrowseBtn.Disable()
	}

	return container.NewVBox(
		w.recordCheck,
		container.NewBorder(nil, nil, nil, w.recordBrowseBtn, w.recordPathEntry),
	)
}
