package dsp

import "time"

// Gain returns a copy of samples scaled by a linear multiplier.
func Gain(samples []float64, gain float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s * gain
	}
	return out
}

// GainInPlace scales samples in place. Used by processors that already own
// their buffer.
func GainInPlace(samples []float64, gain float64) {
	for i := range samples {
		samples[i] *= gain
	}
}

// FadeDirection selects whether a Fade ramps up from silence or down to it.
type FadeDirection int

const (
	// FadeIn ramps from silence to unity across the window.
	FadeIn FadeDirection = iota
	// FadeOut ramps from unity to silence across the window.
	FadeOut
)

// Fade is a linear fade envelope positioned inside a stream.
//
// For FadeIn, samples before Start are silent, samples inside the window ramp
// linearly from 0 to 1 and samples after pass unchanged. For FadeOut the
// shape is mirrored: unity before Start, ramp 1→0 inside the window, silence
// after.
type Fade struct {
	Direction FadeDirection
	Start     time.Duration
	Duration  time.Duration
}

// Apply returns a copy of samples with the fade envelope applied.
// The buffer is interleaved with the given channel count.
func (f Fade) Apply(samples []float64, sampleRate, channels int) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	f.ApplyInPlace(out, sampleRate, channels)
	return out
}

// ApplyInPlace applies the fade envelope to samples in place.
func (f Fade) ApplyInPlace(samples []float64, sampleRate, channels int) {
	if channels < 1 {
		return
	}
	frames := len(samples) / channels
	startFrame := int(f.Start.Seconds() * float64(sampleRate))
	fadeFrames := int(f.Duration.Seconds() * float64(sampleRate))

	for frame := 0; frame < frames; frame++ {
		var g float64
		switch {
		case frame < startFrame:
			if f.Direction == FadeIn {
				g = 0
			} else {
				g = 1
			}
		case fadeFrames > 0 && frame < startFrame+fadeFrames:
			ramp := float64(frame-startFrame) / float64(fadeFrames)
			if f.Direction == FadeIn {
				g = ramp
			} else {
				g = 1 - ramp
			}
		default:
			if f.Direction == FadeIn {
				g = 1
			} else {
				g = 0
			}
		}
		if g == 1 {
			continue
		}
		for ch := 0; ch < channels; ch++ {
			samples[frame*channels+ch] *= g
		}
	}
}
