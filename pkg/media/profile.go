package media

import (
	"fmt"
	"path/filepath"
	"strings"
)

// EncodingProfile describes the audio encode applied when a mix is muxed
// back against the visual stream.
type EncodingProfile struct {
	// Codec is the ffmpeg audio codec name.
	Codec string
	// BitrateKbps is the target audio bitrate.
	BitrateKbps int
	// SampleRate is the encoded sample rate.
	SampleRate int
	// Channels is the encoded channel count.
	Channels int
}

// DefaultProfile is the delivery profile: AAC at 256 kbps, 48 kHz stereo.
func DefaultProfile() EncodingProfile {
	return EncodingProfile{
		Codec:       "aac",
		BitrateKbps: 256,
		SampleRate:  48000,
		Channels:    2,
	}
}

// supportedContainers are the output container extensions the muxer accepts.
var supportedContainers = map[string]bool{
	".mp4": true,
	".m4a": true,
	".mov": true,
	".mkv": true,
}

// CheckContainer validates the output path extension.
func CheckContainer(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedContainers[ext] {
		return fmt.Errorf("media: unsupported output container %q", ext)
	}
	return nil
}
