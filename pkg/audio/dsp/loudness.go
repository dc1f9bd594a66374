package dsp

import (
	"errors"
	"math"
	"sort"
)

// ErrUnmeasurable is returned when a stream carries no program material above
// the absolute gate (silence or near-silence) and loudness analysis cannot
// converge.
var ErrUnmeasurable = errors.New("dsp: loudness unmeasurable")

// LoudnessMeasurement holds the result of an EBU R128 analysis.
type LoudnessMeasurement struct {
	// IntegratedLUFS is the gated integrated loudness of the program.
	IntegratedLUFS float64
	// RangeLU is the loudness range (LRA) per EBU Tech 3342.
	RangeLU float64
}

const (
	// absoluteGateLUFS is the absolute gating threshold of BS.1770.
	absoluteGateLUFS = -70.0
	// relativeGateLU is the relative gate below ungated loudness for the
	// integrated measurement.
	relativeGateLU = -10.0
	// lraRelativeGateLU is the relative gate used for loudness range.
	lraRelativeGateLU = -20.0
)

// MeasureLoudness computes the integrated loudness and loudness range of an
// interleaved buffer. It returns ErrUnmeasurable if no 400 ms block passes
// the absolute gate.
func MeasureLoudness(samples []float64, sampleRate, channels int) (LoudnessMeasurement, error) {
	var m LoudnessMeasurement

	weighted := kWeight(samples, sampleRate, channels)
	frames := len(weighted) / channels

	// Momentary blocks: 400 ms windows with 75% overlap.
	blockFrames := sampleRate * 2 / 5
	hopFrames := sampleRate / 10
	momentary := blockPowers(weighted, frames, channels, blockFrames, hopFrames)
	if len(momentary) == 0 {
		// Program shorter than one block: measure it as a single block.
		if frames == 0 {
			return m, ErrUnmeasurable
		}
		momentary = blockPowers(weighted, frames, channels, frames, frames)
	}

	integrated, err := gatedLoudness(momentary)
	if err != nil {
		return m, err
	}
	m.IntegratedLUFS = integrated

	// Short-term blocks for LRA: 3 s windows, 1 s hop.
	stBlock := sampleRate * 3
	stHop := sampleRate
	shortTerm := blockPowers(weighted, frames, channels, stBlock, stHop)
	if len(shortTerm) == 0 {
		shortTerm = momentary
	}
	m.RangeLU = loudnessRange(shortTerm)

	return m, nil
}

// blockPowers returns the mean-square power (summed across channels) of each
// analysis block.
func blockPowers(weighted []float64, frames, channels, blockFrames, hopFrames int) []float64 {
	if blockFrames <= 0 || hopFrames <= 0 || frames < blockFrames {
		return nil
	}
	var powers []float64
	for start := 0; start+blockFrames <= frames; start += hopFrames {
		var sum float64
		for frame := start; frame < start+blockFrames; frame++ {
			for ch := 0; ch < channels; ch++ {
				s := weighted[frame*channels+ch]
				sum += s * s
			}
		}
		powers = append(powers, sum/float64(blockFrames))
	}
	return powers
}

// blockLoudness converts a block power to loudness in LUFS.
func blockLoudness(power float64) float64 {
	if power <= 0 {
		return math.Inf(-1)
	}
	return -0.691 + 10*math.Log10(power)
}

// gatedLoudness applies the two-stage gating of BS.1770-4 and returns the
// integrated loudness.
func gatedLoudness(powers []float64) (float64, error) {
	// Stage 1: absolute gate.
	var absGated []float64
	for _, p := range powers {
		if blockLoudness(p) > absoluteGateLUFS {
			absGated = append(absGated, p)
		}
	}
	if len(absGated) == 0 {
		return 0, ErrUnmeasurable
	}

	// Stage 2: relative gate 10 LU below the ungated loudness.
	var sum float64
	for _, p := range absGated {
		sum += p
	}
	relThreshold := blockLoudness(sum/float64(len(absGated))) + relativeGateLU

	var gatedSum float64
	var gatedCount int
	for _, p := range absGated {
		if blockLoudness(p) > relThreshold {
			gatedSum += p
			gatedCount++
		}
	}
	if gatedCount == 0 {
		return 0, ErrUnmeasurable
	}
	return blockLoudness(gatedSum / float64(gatedCount)), nil
}

// loudnessRange computes LRA from short-term block powers: the spread between
// the 10th and 95th percentile of gated short-term loudness.
func loudnessRange(powers []float64) float64 {
	var absGated []float64
	for _, p := range powers {
		if blockLoudness(p) > absoluteGateLUFS {
			absGated = append(absGated, p)
		}
	}
	if len(absGated) == 0 {
		return 0
	}

	var sum float64
	for _, p := range absGated {
		sum += p
	}
	relThreshold := blockLoudness(sum/float64(len(absGated))) + lraRelativeGateLU

	var gated []float64
	for _, p := range absGated {
		if l := blockLoudness(p); l > relThreshold {
			gated = append(gated, l)
		}
	}
	if len(gated) < 2 {
		return 0
	}
	sort.Float64s(gated)
	lo := gated[int(float64(len(gated)-1)*0.10)]
	hi := gated[int(float64(len(gated)-1)*0.95)]
	return hi - lo
}

// kWeight applies the two-stage K-weighting pre-filter of BS.1770 to each
// channel and returns the filtered buffer. Filter coefficients are designed
// for the actual sample rate (the published constants are only exact at
// 48 kHz).
func kWeight(samples []float64, sampleRate, channels int) []float64 {
	shelf := newHighShelf(sampleRate)
	highpass := newRLBHighpass(sampleRate)

	out := make([]float64, len(samples))
	frames := len(samples) / channels
	for ch := 0; ch < channels; ch++ {
		s1 := shelf
		s2 := highpass
		for frame := 0; frame < frames; frame++ {
			v := samples[frame*channels+ch]
			v = s1.process(v)
			v = s2.process(v)
			out[frame*channels+ch] = v
		}
	}
	return out
}

// biquad is a direct-form II transposed second-order section.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	z1, z2             float64
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.z1
	f.z1 = f.b1*x - f.a1*y + f.z2
	f.z2 = f.b2*x - f.a2*y
	return y
}

// newHighShelf designs the stage-1 spherical-head shelving filter of the
// K-weighting curve for an arbitrary sample rate.
func newHighShelf(sampleRate int) biquad {
	const (
		f0 = 1681.9744509555319
		g  = 3.99984385397
		q  = 0.7071752369554193
	)
	k := math.Tan(math.Pi * f0 / float64(sampleRate))
	vh := math.Pow(10, g/20)
	vb := math.Pow(vh, 0.4996667741545416)
	a0 := 1 + k/q + k*k
	return biquad{
		b0: (vh + vb*k/q + k*k) / a0,
		b1: 2 * (k*k - vh) / a0,
		b2: (vh - vb*k/q + k*k) / a0,
		a1: 2 * (k*k - 1) / a0,
		a2: (1 - k/q + k*k) / a0,
	}
}

// newRLBHighpass designs the stage-2 RLB high-pass filter of the K-weighting
// curve for an arbitrary sample rate.
func newRLBHighpass(sampleRate int) biquad {
	const (
		f0 = 38.13547087602444
		q  = 0.5003270373238773
	)
	k := math.Tan(math.Pi * f0 / float64(sampleRate))
	a0 := 1 + k/q + k*k
	return biquad{
		b0: 1,
		b1: -2,
		b2: 1,
		a1: 2 * (k*k - 1) / a0,
		a2: (1 - k/q + k*k) / a0,
	}
}
