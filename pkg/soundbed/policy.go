package soundbed

import (
	"time"

	"github.com/soundbed/soundbed/pkg/audio/dsp"
	"github.com/soundbed/soundbed/pkg/audio/pcm"
)

// Policy holds every tunable of the pipeline. DefaultPolicy returns the
// production values; overrides come in through configuration.
type Policy struct {
	// Format is the working format. Every source is converted into it on
	// ingest and the mix stays in it to the encoder.
	Format pcm.Format

	// Static role gains, linear.
	PrimaryGain float64
	MusicGain   float64
	AmbientGain float64

	// Music bed fade shaping. The fade-in starts at the head of the bed;
	// the fade-out ends exactly at the output duration.
	MusicFadeIn  time.Duration
	MusicFadeOut time.Duration

	// Loudness holds the normalization target for the narration.
	Loudness dsp.LoudnessTarget

	// Sidechain ducking of each bed against the narration.
	MusicDucking   dsp.DuckerParams
	AmbientDucking dsp.DuckerParams

	// Mastering chain, applied to every mix in this order.
	Compressor dsp.CompressorParams
	Limiter    dsp.LimiterParams
}

// DefaultPolicy returns the production mixing policy.
func DefaultPolicy() Policy {
	return Policy{
		Format: pcm.L16Stereo48K,

		PrimaryGain: 1.0,
		MusicGain:   0.25,
		AmbientGain: 0.30,

		MusicFadeIn:  time.Second,
		MusicFadeOut: 3 * time.Second,

		Loudness: dsp.LoudnessTarget{
			IntegratedLUFS: -16,
			TruePeakDB:     -1.5,
			RangeLU:        11,
		},

		MusicDucking: dsp.DuckerParams{
			Threshold: 0.03,
			Ratio:     4,
			Attack:    20 * time.Millisecond,
			Release:   250 * time.Millisecond,
		},
		AmbientDucking: dsp.DuckerParams{
			Threshold: 0.04,
			Ratio:     3,
			Attack:    20 * time.Millisecond,
			Release:   250 * time.Millisecond,
		},

		Compressor: dsp.CompressorParams{
			ThresholdDB: -20,
			Ratio:       3,
			Attack:      5 * time.Millisecond,
			Release:     50 * time.Millisecond,
			MakeupDB:    2,
		},
		Limiter: dsp.LimiterParams{
			Ceiling: 0.95,
			Attack:  5 * time.Millisecond,
			Release: 50 * time.Millisecond,
		},
	}
}
