package dsp

import "time"

// LimiterParams configures the peak limiter. Ceiling is linear.
type LimiterParams struct {
	Ceiling float64
	Attack  time.Duration
	Release time.Duration
}

// Limiter caps the signal at a fixed linear ceiling. Gain reduction is
// smoothed with attack/release time constants for transparency, and a final
// hard clamp guarantees the ceiling is never exceeded regardless of envelope
// state. It is the last processor in every pipeline path that produces audio.
type Limiter struct {
	params     LimiterParams
	sampleRate int
	channels   int

	attackCoeff  float64
	releaseCoeff float64
}

// NewLimiter creates a limiter for interleaved buffers in the given format.
func NewLimiter(params LimiterParams, sampleRate, channels int) *Limiter {
	return &Limiter{
		params:       params,
		sampleRate:   sampleRate,
		channels:     channels,
		attackCoeff:  onePoleCoeff(params.Attack.Seconds(), sampleRate),
		releaseCoeff: onePoleCoeff(params.Release.Seconds(), sampleRate),
	}
}

// Process returns a limited copy of samples. No sample in the result exceeds
// the configured ceiling in magnitude.
func (l *Limiter) Process(samples []float64) []float64 {
	out := make([]float64, len(samples))
	frames := len(samples) / l.channels

	gain := 1.0
	for frame := 0; frame < frames; frame++ {
		lvl := frameLevel(samples, frame, l.channels)

		target := 1.0
		if lvl > l.params.Ceiling {
			target = l.params.Ceiling / lvl
		}

		if target < gain {
			gain += (target - gain) * l.attackCoeff
		} else {
			gain += (target - gain) * l.releaseCoeff
		}

		for ch := 0; ch < l.channels; ch++ {
			s := samples[frame*l.channels+ch] * gain
			// Hard ceiling: the smoothed gain alone cannot guarantee it.
			if s > l.params.Ceiling {
				s = l.params.Ceiling
			} else if s < -l.params.Ceiling {
				s = -l.params.Ceiling
			}
			out[frame*l.channels+ch] = s
		}
	}
	return out
}
