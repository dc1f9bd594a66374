package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/soundbed/soundbed/pkg/audio/pcm"
	"github.com/soundbed/soundbed/pkg/soundbed"
)

// Renderer muxes a finished mix against a visual stream with ffmpeg. The
// video codec is never touched; only the audio track is encoded, per the
// renderer's profile. It implements soundbed.Renderer.
type Renderer struct {
	Profile EncodingProfile

	// FFmpeg overrides the ffmpeg binary name; empty means "ffmpeg".
	FFmpeg string
}

// NewRenderer creates a renderer with the given encoding profile.
func NewRenderer(profile EncodingProfile) *Renderer {
	return &Renderer{Profile: profile}
}

func (r *Renderer) ffmpeg() string {
	if r.FFmpeg != "" {
		return r.FFmpeg
	}
	return "ffmpeg"
}

// Render muxes mix with the visual stream of visual into output. The mix
// arrives on ffmpeg's stdin as raw PCM; the output is written to a temporary
// sibling first and renamed into place only on success.
func (r *Renderer) Render(ctx context.Context, visual string, mix *soundbed.Mix, output string) error {
	if err := CheckContainer(output); err != nil {
		return err
	}

	tmp := tmpPath(output)
	defer os.Remove(tmp)

	args := renderArgs(visual, mix.SampleRate, mix.Channels, r.Profile, tmp)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.ffmpeg(), args...)
	cmd.Stdin = bytes.NewReader(pcm.Float64ToBytes(mix.Samples))
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &Error{Op: "encode", Path: output,
			Stderr: stderrTail(stderr.Bytes(), 4), Err: err}
	}

	return os.Rename(tmp, output)
}

// EncodeAudio encodes a mix on its own, without a visual stream. Used when
// the delivery target is an audio container.
func (r *Renderer) EncodeAudio(ctx context.Context, mix *soundbed.Mix, output string) error {
	if err := CheckContainer(output); err != nil {
		return err
	}

	tmp := tmpPath(output)
	defer os.Remove(tmp)

	args := audioOnlyArgs(mix.SampleRate, mix.Channels, r.Profile, tmp)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.ffmpeg(), args...)
	cmd.Stdin = bytes.NewReader(pcm.Float64ToBytes(mix.Samples))
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &Error{Op: "encode", Path: output,
			Stderr: stderrTail(stderr.Bytes(), 4), Err: err}
	}

	return os.Rename(tmp, output)
}

// Passthrough copies the visual file to output bit for bit. No ffmpeg run:
// with no audio to add there is nothing to transcode.
func (r *Renderer) Passthrough(ctx context.Context, visual, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(visual)
	if err != nil {
		return fmt.Errorf("media: passthrough: %w", err)
	}
	defer in.Close()

	tmp := tmpPath(output)
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("media: passthrough: %w", err)
	}
	defer os.Remove(tmp)

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("media: passthrough: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("media: passthrough: %w", err)
	}

	return os.Rename(tmp, output)
}

// renderArgs builds the ffmpeg argument list for a mux: visual stream copied
// as-is, mix encoded per profile, output bounded by the shorter input.
func renderArgs(visual string, mixRate, mixChannels int, profile EncodingProfile, output string) []string {
	return []string{
		"-hide_banner", "-v", "error", "-y",
		"-i", visual,
		"-f", "s16le",
		"-ar", strconv.Itoa(mixRate),
		"-ac", strconv.Itoa(mixChannels),
		"-i", "pipe:0",
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "copy",
		"-c:a", profile.Codec,
		"-b:a", strconv.Itoa(profile.BitrateKbps) + "k",
		"-ar", strconv.Itoa(profile.SampleRate),
		"-ac", strconv.Itoa(profile.Channels),
		"-shortest",
		output,
	}
}

// audioOnlyArgs builds the ffmpeg argument list for an audio-only encode.
func audioOnlyArgs(mixRate, mixChannels int, profile EncodingProfile, output string) []string {
	return []string{
		"-hide_banner", "-v", "error", "-y",
		"-f", "s16le",
		"-ar", strconv.Itoa(mixRate),
		"-ac", strconv.Itoa(mixChannels),
		"-i", "pipe:0",
		"-c:a", profile.Codec,
		"-b:a", strconv.Itoa(profile.BitrateKbps) + "k",
		"-ar", strconv.Itoa(profile.SampleRate),
		"-ac", strconv.Itoa(profile.Channels),
		output,
	}
}

// tmpPath returns a sibling temporary path that keeps the extension, so the
// muxer still picks the right container format.
func tmpPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + ".tmp" + ext
}
