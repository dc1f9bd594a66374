package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Info describes the streams of a media file.
type Info struct {
	Duration time.Duration
	HasVideo bool
	HasAudio bool

	// Native format of the first audio stream, when present.
	AudioSampleRate int
	AudioChannels   int
}

// Probe inspects a media file with ffprobe.
func Probe(ctx context.Context, path string) (*Info, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-hide_banner", "-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path)
	out, err := cmd.Output()
	if err != nil {
		var stderr string
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = stderrTail(ee.Stderr, 4)
		}
		return nil, &Error{Op: "probe", Path: path, Stderr: stderr, Err: err}
	}
	info, err := parseProbe(out)
	if err != nil {
		return nil, &Error{Op: "probe", Path: path, Err: err}
	}
	return info, nil
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
}

// parseProbe interprets ffprobe's JSON output.
func parseProbe(data []byte) (*Info, error) {
	var raw probeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("bad ffprobe output: %w", err)
	}

	info := &Info{}
	if raw.Format.Duration != "" {
		secs, err := strconv.ParseFloat(raw.Format.Duration, 64)
		if err != nil {
			return nil, fmt.Errorf("bad duration %q: %w", raw.Format.Duration, err)
		}
		info.Duration = time.Duration(secs * float64(time.Second))
	}

	for _, s := range raw.Streams {
		switch s.CodecType {
		case "video":
			info.HasVideo = true
		case "audio":
			if info.HasAudio {
				continue // only the first audio stream matters
			}
			info.HasAudio = true
			info.AudioChannels = s.Channels
			if s.SampleRate != "" {
				rate, err := strconv.Atoi(s.SampleRate)
				if err != nil {
					return nil, fmt.Errorf("bad sample rate %q: %w", s.SampleRate, err)
				}
				info.AudioSampleRate = rate
			}
		}
	}
	return info, nil
}
