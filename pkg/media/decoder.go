package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/soundbed/soundbed/pkg/audio/pcm"
)

// ErrNoAudio is returned when a file carries no audio stream.
var ErrNoAudio = errors.New("media: no audio stream")

// DecodeAudio extracts the first audio stream of a file as interleaved
// float64 PCM in its native sample rate and channel count. Channel counts
// above two are folded down to stereo by the decoder.
func DecodeAudio(ctx context.Context, path string) ([]float64, int, int, error) {
	info, err := Probe(ctx, path)
	if err != nil {
		return nil, 0, 0, err
	}
	if !info.HasAudio {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrNoAudio, path)
	}

	rate := info.AudioSampleRate
	channels := info.AudioChannels
	if channels > 2 {
		channels = 2
	}
	if rate <= 0 || channels <= 0 {
		return nil, 0, 0, &Error{Op: "decode", Path: path,
			Err: fmt.Errorf("undecodable audio format (%d Hz, %d ch)", info.AudioSampleRate, info.AudioChannels)}
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-hide_banner", "-v", "error",
		"-i", path,
		"-vn",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(rate),
		"-ac", strconv.Itoa(channels),
		"pipe:1")
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, 0, 0, &Error{Op: "decode", Path: path,
			Stderr: stderrTail(stderr.Bytes(), 4), Err: err}
	}

	return pcm.BytesToFloat64(out.Bytes()), rate, channels, nil
}
