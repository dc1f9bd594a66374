package dsp

import "time"

// CompressorParams configures the feed-forward dynamics compressor.
type CompressorParams struct {
	ThresholdDB float64
	Ratio       float64
	Attack      time.Duration
	Release     time.Duration
	MakeupDB    float64
}

// Compressor is a feed-forward peak compressor with one-pole attack/release
// envelope smoothing and fixed makeup gain.
type Compressor struct {
	params     CompressorParams
	sampleRate int
	channels   int

	threshold    float64
	attackCoeff  float64
	releaseCoeff float64
	makeup       float64
}

// NewCompressor creates a compressor for interleaved buffers in the given
// format.
func NewCompressor(params CompressorParams, sampleRate, channels int) *Compressor {
	return &Compressor{
		params:       params,
		sampleRate:   sampleRate,
		channels:     channels,
		threshold:    DBToLinear(params.ThresholdDB),
		attackCoeff:  onePoleCoeff(params.Attack.Seconds(), sampleRate),
		releaseCoeff: onePoleCoeff(params.Release.Seconds(), sampleRate),
		makeup:       DBToLinear(params.MakeupDB),
	}
}

// Process returns a compressed copy of samples.
func (c *Compressor) Process(samples []float64) []float64 {
	out := make([]float64, len(samples))
	frames := len(samples) / c.channels

	var env float64
	for frame := 0; frame < frames; frame++ {
		lvl := frameLevel(samples, frame, c.channels)
		if lvl > env {
			env += (lvl - env) * c.attackCoeff
		} else {
			env += (lvl - env) * c.releaseCoeff
		}

		g := 1.0
		if env > c.threshold && c.params.Ratio > 1 {
			overDB := LinearToDB(env) - c.params.ThresholdDB
			reductionDB := overDB * (1 - 1/c.params.Ratio)
			g = DBToLinear(-reductionDB)
		}

		for ch := 0; ch < c.channels; ch++ {
			out[frame*c.channels+ch] = samples[frame*c.channels+ch] * g * c.makeup
		}
	}
	return out
}
