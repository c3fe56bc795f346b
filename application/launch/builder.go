// Package launch derives the external tool's argument vector from a
// settings profile.
package launch

import (
	"strings"

	"castpilot/domain/flagmap"
	"castpilot/domain/profile"
)

// BuildCommand maps a profile to the full command vector: executable
// path first, then flags in a fixed order. The mapping is pure and
// deterministic; a setting at its default or disabled value contributes
// no flag, leaving the choice to the external tool's own defaults.
//
// Returns nil when no executable path is configured.
func BuildCommand(p *profile.Profile, m *flagmap.Mapping) []string {
	if p == nil || m == nil || !p.HasExecutable() {
		return nil
	}

	cmd := []string{p.ScrcpyPath}

	// Mode-specific flags: camera source replaces the screen video options.
	if p.MirrorCamera {
		cmd = appendFlag(cmd, m, "video_source_camera")
		cmd = appendValue(cmd, m, "camera_facing", p.CameraFacing)
		if size := strings.TrimSpace(p.CameraSize); size != "" && size != profile.OptionDefault {
			cmd = appendValue(cmd, m, "camera_size", size)
		}
		if n, ok := m.Orientation(p.CameraOrientation); ok {
			cmd = appendValue(cmd, m, "capture_orientation", n)
		}
	} else {
		cmd = appendValue(cmd, m, "video_bit_rate", p.BitRate)
		cmd = appendValue(cmd, m, "max_fps", p.MaxFPS)
		if p.MaxSize != profile.SizeDeviceNative {
			cmd = appendValue(cmd, m, "max_size", p.MaxSize)
		}
	}

	// General toggles.
	if p.Fullscreen {
		cmd = appendFlag(cmd, m, "fullscreen")
	}
	if p.AlwaysOnTop {
		cmd = appendFlag(cmd, m, "always_on_top")
	}
	if p.ShowTouches {
		cmd = appendFlag(cmd, m, "show_touches")
	}
	if p.TurnScreenOff {
		cmd = appendFlag(cmd, m, "turn_screen_off")
	}
	if p.StayAwake {
		cmd = appendFlag(cmd, m, "stay_awake")
	}

	// Audio: disabled forwarding wins over any bit-rate choice.
	if !p.AudioForward {
		cmd = appendFlag(cmd, m, "no_audio")
	} else if p.AudioBitRate != profile.DefaultAudioBitRate {
		cmd = appendValue(cmd, m, "audio_bit_rate", p.AudioBitRate)
	}

	// Recording needs both the toggle and a target path.
	if p.RecordScreen {
		if path := strings.TrimSpace(p.RecordFilePath); path != "" {
			cmd = appendValue(cmd, m, "record", path)
		}
	}

	// Advanced options.
	if p.VideoCodec != profile.OptionDefault {
		cmd = appendValue(cmd, m, "video_codec", p.VideoCodec)
	}
	if p.AudioCodec != profile.OptionDefault {
		cmd = appendValue(cmd, m, "audio_codec", p.AudioCodec)
	}
	if p.VideoBuffer > 0 {
		cmd = appendValue(cmd, m, "video_buffer", p.VideoBuffer)
	}
	if sink := strings.TrimSpace(p.V4L2SinkPath); sink != "" {
		cmd = appendValue(cmd, m, "v4l2_sink", sink)
	}

	return cmd
}

// Preview renders the command vector for display. Tokens are joined with
// spaces; this string is never executed, the vector is.
func Preview(p *profile.Profile, m *flagmap.Mapping) string {
	cmd := BuildCommand(p, m)
	if cmd == nil {
		return ""
	}
	return strings.Join(cmd, " ")
}

func appendFlag(cmd []string, m *flagmap.Mapping, key string) []string {
	if flag, ok := m.Flag(key); ok {
		return append(cmd, flag)
	}
	return cmd
}

func appendValue(cmd []string, m *flagmap.Mapping, key string, value any) []string {
	if flag, ok := m.Format(key, value); ok {
		return append(cmd, flag)
	}
	return cmd
}
