package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/soundbed/soundbed/pkg/cli"
	"github.com/soundbed/soundbed/pkg/media"
	"github.com/soundbed/soundbed/pkg/soundbed"
)

var (
	composeVisual    string
	composeNarration string
	composeMusic     string
	composeAmbient   string
	composeOutput    string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Mix the audio roles and mux the result against the visual stream",
	Long: `Compose mixes up to three audio sources into the final track of a video.

The narration is loudness-normalized and drives the output duration; the
music and ambient beds are gain-staged, faded and ducked under it. The
mastered mix is AAC-encoded and muxed with the visual stream, which is
copied without re-encoding. When no --ambient file is given, the visual
file's own audio stream (if any) becomes the ambient bed. A source that
is missing or unreadable is skipped, not fatal; with no usable audio at
all the visual file is copied through bit for bit.

Without -i the mix is encoded on its own; use an audio container (.m4a)
as the output.`,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVarP(&composeVisual, "input", "i", "", "visual input file")
	composeCmd.Flags().StringVar(&composeNarration, "narration", "", "narration audio file")
	composeCmd.Flags().StringVar(&composeMusic, "music", "", "music bed audio file")
	composeCmd.Flags().StringVar(&composeAmbient, "ambient", "", "ambient bed audio file")
	composeCmd.Flags().StringVarP(&composeOutput, "output", "o", "", "output file (required)")
	composeCmd.MarkFlagRequired("output")
}

func runCompose(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	policy, err := resolvePolicy()
	if err != nil {
		return err
	}
	if err := media.CheckContainer(composeOutput); err != nil {
		return err
	}

	set := soundbed.SourceSet{
		Primary: loadSource(ctx, soundbed.RolePrimary, composeNarration),
		Music:   loadSource(ctx, soundbed.RoleMusic, composeMusic),
		Ambient: loadSource(ctx, soundbed.RoleAmbient, composeAmbient),
	}
	if set.Ambient == nil && composeAmbient == "" && composeVisual != "" {
		set.Ambient = ambientFromVisual(ctx, composeVisual)
	}
	if composeVisual == "" && set.Empty() {
		return fmt.Errorf("nothing to do: no visual input and no audio sources")
	}

	renderer := media.NewRenderer(encodingProfile())
	if profile, err := getProfile(); err == nil && profile != nil {
		renderer.FFmpeg = profile.FFmpeg
	}
	pipeline := soundbed.New(policy, slog.Default())

	var report *soundbed.Report
	if composeVisual != "" {
		report, err = pipeline.Compose(ctx, renderer, composeVisual, set, composeOutput)
		if err != nil {
			return err
		}
	} else {
		var mix *soundbed.Mix
		mix, report, err = pipeline.ComposeAudio(ctx, set)
		if err != nil {
			return err
		}
		if report.Passthrough {
			return fmt.Errorf("no usable audio source and no visual input")
		}
		if err := renderer.EncodeAudio(ctx, mix, composeOutput); err != nil {
			return err
		}
	}

	return printReport(report, composeOutput)
}

// loadSource decodes one audio file for a role. An empty path means the role
// is absent. A decode failure degrades to an absent role with a warning; the
// pipeline records the remaining presence combination.
func loadSource(ctx context.Context, role soundbed.Role, path string) *soundbed.Source {
	if path == "" {
		return nil
	}
	samples, rate, channels, err := media.DecodeAudio(ctx, path)
	if err != nil {
		cli.PrintWarning("dropping %s source %s: %v", role, path, err)
		return nil
	}
	return &soundbed.Source{
		Role:       role,
		SampleRate: rate,
		Channels:   channels,
		Samples:    samples,
	}
}

// ambientFromVisual uses the visual file's own audio stream as the ambient
// bed when no explicit ambient source was given. A visual with no audio
// stream simply leaves the role absent.
func ambientFromVisual(ctx context.Context, path string) *soundbed.Source {
	samples, rate, channels, err := media.DecodeAudio(ctx, path)
	if err != nil {
		if !errors.Is(err, media.ErrNoAudio) {
			cli.PrintWarning("ignoring audio stream of %s: %v", path, err)
		}
		return nil
	}
	return &soundbed.Source{
		Role:       soundbed.RoleAmbient,
		SampleRate: rate,
		Channels:   channels,
		Samples:    samples,
	}
}

// encodingProfile returns the delivery profile with any profile overrides.
func encodingProfile() media.EncodingProfile {
	p := media.DefaultProfile()
	if profile, err := getProfile(); err == nil && profile != nil && profile.BitrateKbps > 0 {
		p.BitrateKbps = profile.BitrateKbps
	}
	return p
}
