package presentation

import (
	"strconv"

	"castpilot/domain/profile"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func (w *MainWindow) createAdvancedTab() fyne.CanvasObject {
	cameraCard := widget.NewCard("Camera Mirroring", "", w.createCameraBox())
	codecCard := widget.NewCard("Codecs", "", w.createCodecBox())
	otherCard := widget.NewCard("Buffering & Other", "", w.createOtherBox())

	return container.NewVScroll(container.NewVBox(
		cameraCard,
		codecCard,
		otherCard,
	))
}

func (w *MainWindow) createCameraBox() fyne.CanvasObject {
	w.cameraFacingSelect = widget.NewSelect(profile.CameraFacingOptions, func(s string) {
		w.profile.CameraFacing = s
		w.refreshPreview()
	})
	w.cameraFacingSelect.SetSelected(w.profile.CameraFacing)

	w.cameraSizeSelect = widget.NewSelect(profile.CameraSizeOptions, func(s string) {
		w.profile.CameraSize = s
		w.refreshPreview()
	})
	w.cameraSizeSelect.SetSelected(w.profile.CameraSize)

	w.cameraOrientationSelect = widget.NewSelect(profile.CameraOrientationOptions, func(s string) {
		w.profile.CameraOrientation = s
		w.refreshPreview()
	})
	w.cameraOrientationSelect.SetSelected(w.profile.CameraOrientation)

	w.mirrorCameraCheck = widget.NewCheck("Mirror Camera Instead of Screen", func(b bool) {
		w.profile.MirrorCamera = b
		w.setCameraControlsEnabled(b)
		w.setScreenControlsEnabled(!b)
		w.refreshPreview()
	})
	w.mirrorCameraCheck.SetChecked(w.profile.MirrorCamera)
	w.setCameraControlsEnabled(w.profile.MirrorCamera)
	w.setScreenControlsEnabled(!w.profile.MirrorCamera)

	return container.NewVBox(
		w.mirrorCameraCheck,
		container.NewBorder(nil, nil, widget.NewLabel("Facing"), nil, w.cameraFacingSelect),
		container.NewBorder(nil, nil, widget.NewLabel("Size"), nil, w.cameraSizeSelect),
		container.NewBorder(nil, nil, widget.NewLabel("Orientation"), nil, w.cameraOrientationSelect),
	)
}

// setCameraControlsEnabled couples the camera option widgets to the
// camera mode toggle; they have no effect while mirroring the screen.
func (w *MainWindow) setCameraControlsEnabled(enabled bool) {
	selects := []*widget.Select{
		w.cameraFacingSelect,
		w.cameraSizeSelect,
		w.cameraOrientationSelect,
	}
	for _, sel := range selects {
		if sel == nil {
			continue
		}
		if enabled {
			sel.Enable()
		} else {
			sel.Disable()
		}
	}
}

// setScreenControlsEnabled couples the screen video widgets to the mode
// toggle; camera mode replaces them with the camera source.
func (w *MainWindow) setScreenControlsEnabled(enabled bool) {
	if w.bitRateSlider == nil {
		return
	}
	if enabled {
		w.bitRateSlider.Enable()
		w.maxFPSSlider.Enable()
		w.maxSizeSelect.Enable()
	} else {
		w.bitRateSlider.Disable()
		w.maxFPSSlider.Disable()
		w.maxSizeSelect.Disable()
	}
}

func (w *MainWindow) createCodecBox() fyne.CanvasObject {
	w.videoCodecSelect = widget.NewSelect(profile.VideoCodecOptions, func(s string) {
		w.profile.VideoCodec = s
		w.refreshPreview()
	})
	w.videoCodecSelect.SetSelected(w.profile.VideoCodec)

	w.audioCodecSelect = widget.NewSelect(profile.AudioCodecOptions, func(s string) {
		w.profile.AudioCodec = s
		w.refreshPreview()
	})
	w.audioCodecSelect.SetSelected(w.profile.AudioCodec)

	return container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Video Codec"), nil, w.videoCodecSelect),
		container.NewBorder(nil, nil, widget.NewLabel("Audio Codec"), nil, w.audioCodecSelect),
	)
}

func (w *MainWindow) createOtherBox() fyne.CanvasObject {
	w.videoBufferLabel = widget.NewLabel(strconv.Itoa(w.profile.VideoBuffer) + " ms")
	w.videoBufferSlider = widget.NewSlider(profile.VideoBufferMin, profile.VideoBufferMax)
	w.videoBufferSlider.Step = 1
	w.videoBufferSlider.OnChanged = func(v float64) {
		w.profile.VideoBuffer = int(v)
		w.videoBufferLabel.SetText(strconv.Itoa(w.profile.VideoBuffer) + " ms")
		w.refreshPreview()
	}
	w.videoBufferSlider.SetValue(float64(w.profile.VideoBuffer))

	w.v4l2SinkEntry = widget.NewEntry()
	w.v4l2SinkEntry.SetPlaceHolder("/dev/videoN (Linux only)")
	w.v4l2SinkEntry.SetText(w.profile.V4L2SinkPath)
	w.v4l2SinkEntry.OnChanged = func(s string) {
		w.profile.V4L2SinkPath = s
		w.refreshPreview()
	}

	return container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Video Buffer"), w.videoBufferLabel, w.videoBufferSlider),
		container.NewBorder(nil, nil, widget.NewLabel("V4L2 Sink"), nil, w.v4l2SinkEntry),
	)
}
