package profile

// Catalogs for the UI combo boxes. First entry is the default selection
// where the default is a sentinel.

var (
	MaxSizeOptions           = []string{SizeDeviceNative, "1920", "1280", "1080", "720"}
	VideoCodecOptions        = []string{OptionDefault, "h264", "h265", "av1"}
	AudioCodecOptions        = []string{OptionDefault, "opus", "aac", "flac", "raw"}
	AudioBitRateOptions      = []string{"64", "96", "128", "192", "256"}
	CameraFacingOptions      = []string{"back", "front"}
	CameraSizeOptions        = []string{OptionDefault, "1920x1080", "1280x720", "640x480"}
	CameraOrientationOptions = []string{OptionDefault, "0°", "90°", "180°", "270°"}
)

// Slider ranges.
const (
	BitRateMin = 1
	BitRateMax = 50

	MaxFPSMin = 5
	MaxFPSMax = 120

	VideoBufferMin = 0
	VideoBufferMax = 200
)
