package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soundbed/soundbed/pkg/audio/dsp"
	"github.com/soundbed/soundbed/pkg/cli"
	"github.com/soundbed/soundbed/pkg/media"
)

var measureCmd = &cobra.Command{
	Use:   "measure <file>",
	Short: "Measure loudness and true peak of a media file",
	Long: `Measure decodes the first audio stream of a file and reports its
integrated loudness, loudness range and true peak.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

func runMeasure(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	samples, rate, channels, err := media.DecodeAudio(ctx, path)
	if err != nil {
		return err
	}

	frames := len(samples) / channels
	duration := cli.FormatDuration(framesToDuration(frames, rate))
	tp := dsp.TruePeakDB(samples, channels)

	m, err := dsp.MeasureLoudness(samples, rate, channels)
	if errors.Is(err, dsp.ErrUnmeasurable) {
		if outputJSON {
			return cli.Output(map[string]any{
				"file":       path,
				"measurable": false,
			}, cli.OutputOptions{Format: cli.FormatJSON})
		}
		cli.PrintWarning("%s is silent or below the measurement gate", path)
		return nil
	}
	if err != nil {
		return err
	}

	if outputJSON {
		return cli.Output(map[string]any{
			"file":            path,
			"measurable":      true,
			"duration":        duration,
			"sample_rate":     rate,
			"channels":        channels,
			"integrated_lufs": m.IntegratedLUFS,
			"range_lu":        m.RangeLU,
			"true_peak_db":    tp,
		}, cli.OutputOptions{Format: cli.FormatJSON})
	}

	s := cli.NewStyles(cli.DefaultTheme)
	var b strings.Builder
	b.WriteString(s.Title.Render("soundbed measure") + "\n")
	b.WriteString(s.KV("file", path) + "\n")
	b.WriteString(s.KV("duration", fmt.Sprintf("%s (%d Hz, %d ch)", duration, rate, channels)) + "\n")
	b.WriteString(s.KV("integrated", cli.FormatLUFS(m.IntegratedLUFS)) + "\n")
	b.WriteString(s.KV("range", fmt.Sprintf("%.1f LU", m.RangeLU)) + "\n")
	b.WriteString(s.KV("true peak", fmt.Sprintf("%.1f dBTP", tp)) + "\n")
	fmt.Print(b.String())
	return nil
}
