package soundbed

import (
	"errors"
	"fmt"
	"time"

	"github.com/soundbed/soundbed/pkg/audio/dsp"
)

// conditionPrimary applies the narration gain and normalizes loudness to the
// policy target. Narration too quiet to measure falls back to the plain
// gained signal with a fallback event instead of failing the run.
func (p *Pipeline) conditionPrimary(samples []float64) ([]float64, *dsp.NormalizeResult, []Event) {
	gained := dsp.Gain(samples, p.policy.PrimaryGain)

	out, res, err := dsp.NormalizeLoudness(gained, p.sampleRate(), p.channels(), p.policy.Loudness)
	if err != nil {
		if errors.Is(err, dsp.ErrUnmeasurable) {
			return gained, nil, []Event{{
				Kind:   EventNormalizationFallback,
				Role:   RolePrimary,
				Detail: "narration below the measurement gate",
			}}
		}
		// MeasureLoudness has no other failure mode today; keep the run
		// alive on the gained signal regardless.
		return gained, nil, []Event{{
			Kind:   EventNormalizationFallback,
			Role:   RolePrimary,
			Detail: fmt.Sprintf("loudness analysis failed: %v", err),
		}}
	}
	return out, &res, nil
}

// conditionMusic shapes the music bed: fade in from the head, fade out ending
// exactly at the output duration, then the static bed gain.
func (p *Pipeline) conditionMusic(samples []float64, duration time.Duration) []float64 {
	out := dsp.Fade{
		Direction: dsp.FadeIn,
		Start:     0,
		Duration:  p.policy.MusicFadeIn,
	}.Apply(samples, p.sampleRate(), p.channels())

	fadeOut := p.policy.MusicFadeOut
	start := duration - fadeOut
	if start < 0 {
		// Short program: the fade-out spans whatever there is.
		start = 0
		fadeOut = duration
	}
	dsp.Fade{
		Direction: dsp.FadeOut,
		Start:     start,
		Duration:  fadeOut,
	}.ApplyInPlace(out, p.sampleRate(), p.channels())

	dsp.GainInPlace(out, p.policy.MusicGain)
	return out
}

// conditionAmbient applies the static ambient bed gain.
func (p *Pipeline) conditionAmbient(samples []float64) []float64 {
	return dsp.Gain(samples, p.policy.AmbientGain)
}
