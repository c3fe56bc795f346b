// Package profile defines the user-configurable settings object and its
// persistence contract. There is exactly one Profile instance per
// application run; UI handlers mutate it in place and it is saved once
// on shutdown.
package profile

// Sentinel values stored as-is in the profile. The argument builder
// suppresses the corresponding flag when a sentinel is selected, so the
// external tool falls back to its own default.
const (
	// OptionDefault marks a combo option left at the tool's default.
	OptionDefault = "Default"
	// SizeDeviceNative marks the max-size option left at the device's native resolution.
	SizeDeviceNative = "Device Native"
)

// DefaultAudioBitRate is the audio bit rate (kbps) that emits no flag.
const DefaultAudioBitRate = "128"

// Profile holds all user-configurable options. The JSON keys form the
// on-disk schema; unknown keys in a loaded file are ignored and missing
// keys keep their default value.
type Profile struct {
	// Executable and appearance
	ScrcpyPath string `json:"scrcpy_path"`
	DarkMode   bool   `json:"dark_mode"`

	// Video & display (screen mirroring mode)
	BitRate int    `json:"bit_rate"` // Mbps
	MaxFPS  int    `json:"max_fps"`
	MaxSize string `json:"max_size"` // pixels, or SizeDeviceNative

	// General toggles
	Fullscreen    bool `json:"fullscreen"`
	AlwaysOnTop   bool `json:"always_on_top"`
	ShowTouches   bool `json:"show_touches"`
	TurnScreenOff bool `json:"turn_screen_off"`
	StayAwake     bool `json:"stay_awake"`

	// Audio
	AudioForward bool   `json:"audio_forward"`
	AudioBitRate string `json:"audio_bit_rate"` // kbps

	// Recording
	RecordScreen   bool   `json:"record_screen"`
	RecordFilePath string `json:"record_file_path"`

	// Camera mirroring mode
	MirrorCamera      bool   `json:"mirror_camera"`
	CameraFacing      string `json:"camera_facing"`
	CameraSize        string `json:"camera_size"`
	CameraOrientation string `json:"camera_orientation"`

	// Advanced
	VideoCodec   string `json:"video_codec"`
	AudioCodec   string `json:"audio_codec"`
	VideoBuffer  int    `json:"video_buffer"` // ms
	V4L2SinkPath string `json:"v4l2_sink_path"`
}

// Default returns a profile with every field at its built-in default.
func Default() *Profile {
	return &Profile{
		DarkMode:          true,
		BitRate:           8,
		MaxFPS:            60,
		MaxSize:           "1080",
		AudioForward:      true,
		AudioBitRate:      DefaultAudioBitRate,
		CameraFacing:      "back",
		CameraSize:        OptionDefault,
		CameraOrientation: OptionDefault,
		VideoCodec:        OptionDefault,
		AudioCodec:        OptionDefault,
	}
}

// Clone returns a copy of the profile. Launches operate on a snapshot so
// concurrent UI edits cannot change an in-flight argument vector.
func (p *Profile) Clone() *Profile {
	clone := *p
	return &clone
}

// HasExecutable reports whether an executable path has been configured.
func (p *Profile) HasExecutable() bool {
	return p.ScrcpyPath != ""
}
