package dsp

import "time"

// DuckerParams configures a sidechain ducker. Threshold is a linear level
// measured on the control signal; Ratio is the downward compression ratio
// applied to the ducked signal once the control level exceeds Threshold.
type DuckerParams struct {
	Threshold float64
	Ratio     float64
	Attack    time.Duration
	Release   time.Duration
}

// Ducker reduces the gain of a secondary signal whenever a control signal is
// above threshold. Gain reduction engages within the attack window and holds
// for the full release window after the control signal falls back below
// threshold before recovering; the asymmetry keeps the bed from pumping
// between narration phrases.
type Ducker struct {
	params     DuckerParams
	sampleRate int
	channels   int

	attackCoeff    float64
	releaseSamples int
	decay          float64
}

// NewDucker creates a ducker for interleaved buffers in the given format.
func NewDucker(params DuckerParams, sampleRate, channels int) *Ducker {
	return &Ducker{
		params:         params,
		sampleRate:     sampleRate,
		channels:       channels,
		attackCoeff:    onePoleCoeff(params.Attack.Seconds(), sampleRate),
		releaseSamples: int(params.Release.Seconds() * float64(sampleRate)),
		decay:          decayCoeff(params.Release.Seconds(), sampleRate),
	}
}

// Process returns a gain-reduced copy of secondary, driven by the level of
// control. The two buffers may differ in length; where control has ended the
// level is treated as silence and the reduction releases.
func (d *Ducker) Process(secondary, control []float64) []float64 {
	out := make([]float64, len(secondary))
	frames := len(secondary) / d.channels
	controlFrames := len(control) / d.channels

	var env float64
	hold := d.releaseSamples // no leading hold before the control first engages

	for frame := 0; frame < frames; frame++ {
		var lvl float64
		if frame < controlFrames {
			lvl = frameLevel(control, frame, d.channels)
		}

		if lvl > env {
			env += (lvl - env) * d.attackCoeff
			hold = 0
		} else if hold < d.releaseSamples {
			// Hold the envelope through the release window.
			hold++
		} else {
			env *= d.decay
		}

		g := d.gainFor(env)
		for ch := 0; ch < d.channels; ch++ {
			out[frame*d.channels+ch] = secondary[frame*d.channels+ch] * g
		}
	}
	return out
}

// gainFor computes the static gain for a control envelope level.
func (d *Ducker) gainFor(env float64) float64 {
	if env <= d.params.Threshold || d.params.Ratio <= 1 {
		return 1
	}
	overDB := LinearToDB(env) - LinearToDB(d.params.Threshold)
	reductionDB := overDB * (1 - 1/d.params.Ratio)
	return DBToLinear(-reductionDB)
}

// SteadyStateReductionDB reports the gain reduction in dB the ducker settles
// at for a constant control level.
func (d *Ducker) SteadyStateReductionDB(controlLevel float64) float64 {
	if controlLevel <= d.params.Threshold || d.params.Ratio <= 1 {
		return 0
	}
	overDB := LinearToDB(controlLevel) - LinearToDB(d.params.Threshold)
	return overDB * (1 - 1/d.params.Ratio)
}
