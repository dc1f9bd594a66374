package dsp

import "math"

// DBToLinear converts a decibel value to a linear amplitude multiplier.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a linear amplitude to decibels. Zero or negative
// amplitudes map to -Inf.
func LinearToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// Peak returns the maximum absolute sample value in the buffer.
func Peak(samples []float64) float64 {
	var peak float64
	for _, s := range samples {
		if s > peak {
			peak = s
		} else if -s > peak {
			peak = -s
		}
	}
	return peak
}

// frameLevel returns the instantaneous level of one interleaved frame,
// the maximum absolute value across channels.
func frameLevel(samples []float64, frame, channels int) float64 {
	var lvl float64
	for ch := 0; ch < channels; ch++ {
		s := samples[frame*channels+ch]
		if s < 0 {
			s = -s
		}
		if s > lvl {
			lvl = s
		}
	}
	return lvl
}

// onePoleCoeff returns the per-frame smoothing factor for a time constant.
// A processor using env += (target-env)*coeff reaches ~63% of a step change
// after tc has elapsed.
func onePoleCoeff(tcSeconds float64, sampleRate int) float64 {
	if tcSeconds <= 0 {
		return 1
	}
	return 1 - math.Exp(-1/(tcSeconds*float64(sampleRate)))
}

// decayCoeff returns the per-frame multiplier for an exponential decay with
// the given time constant.
func decayCoeff(tcSeconds float64, sampleRate int) float64 {
	if tcSeconds <= 0 {
		return 0
	}
	return math.Exp(-1 / (tcSeconds * float64(sampleRate)))
}
