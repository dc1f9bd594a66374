package dsp

import "math"

// truePeakPhases is the oversampling factor used for inter-sample peak
// estimation, as in BS.1770 Annex 2.
const truePeakPhases = 4

// truePeakTapsPerPhase is the length of each polyphase interpolation filter.
const truePeakTapsPerPhase = 12

// truePeakFilter holds the polyphase interpolation bank, built once.
var truePeakFilter = buildTruePeakFilter()

// buildTruePeakFilter designs a 4-phase windowed-sinc interpolator
// (48 taps total, Hann window), normalized to unity DC gain per phase.
func buildTruePeakFilter() [truePeakPhases][truePeakTapsPerPhase]float64 {
	var bank [truePeakPhases][truePeakTapsPerPhase]float64
	total := truePeakPhases * truePeakTapsPerPhase
	center := float64(total-1) / 2

	var taps [truePeakPhases * truePeakTapsPerPhase]float64
	for n := 0; n < total; n++ {
		x := (float64(n) - center) / truePeakPhases
		var sinc float64
		if x == 0 {
			sinc = 1
		} else {
			sinc = math.Sin(math.Pi*x) / (math.Pi * x)
		}
		window := 0.5 * (1 - math.Cos(2*math.Pi*float64(n)/float64(total-1)))
		taps[n] = sinc * window
	}

	for phase := 0; phase < truePeakPhases; phase++ {
		var sum float64
		for i := 0; i < truePeakTapsPerPhase; i++ {
			sum += taps[i*truePeakPhases+phase]
		}
		for i := 0; i < truePeakTapsPerPhase; i++ {
			bank[phase][i] = taps[i*truePeakPhases+phase] / sum
		}
	}
	return bank
}

// TruePeak returns the true peak of an interleaved buffer as a linear value,
// estimated by 4x polyphase oversampling per channel.
func TruePeak(samples []float64, channels int) float64 {
	if channels < 1 {
		return 0
	}
	frames := len(samples) / channels

	var peak float64
	for ch := 0; ch < channels; ch++ {
		for frame := 0; frame < frames; frame++ {
			for phase := 0; phase < truePeakPhases; phase++ {
				var v float64
				for i := 0; i < truePeakTapsPerPhase; i++ {
					idx := frame - i
					if idx < 0 {
						break
					}
					v += truePeakFilter[phase][i] * samples[idx*channels+ch]
				}
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
	}
	return peak
}

// TruePeakDB returns the true peak in dBTP.
func TruePeakDB(samples []float64, channels int) float64 {
	return LinearToDB(TruePeak(samples, channels))
}
