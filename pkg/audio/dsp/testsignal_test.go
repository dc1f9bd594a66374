package dsp

import (
	"math"
	"math/rand"
)

// sine generates an interleaved sine of the given amplitude; every channel
// carries the same signal.
func sine(freq, amp float64, sampleRate, channels int, seconds float64) []float64 {
	frames := int(seconds * float64(sampleRate))
	out := make([]float64, frames*channels)
	for i := 0; i < frames; i++ {
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		for ch := 0; ch < channels; ch++ {
			out[i*channels+ch] = v
		}
	}
	return out
}

// constant generates an interleaved DC signal. Useful as a step control
// signal for ducking tests.
func constant(level float64, sampleRate, channels int, seconds float64) []float64 {
	frames := int(seconds * float64(sampleRate))
	out := make([]float64, frames*channels)
	for i := range out {
		out[i] = level
	}
	return out
}

// noise generates deterministic white noise.
func noise(amp float64, sampleRate, channels int, seconds float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	frames := int(seconds * float64(sampleRate))
	out := make([]float64, frames*channels)
	for i := range out {
		out[i] = amp * (rng.Float64()*2 - 1)
	}
	return out
}
