package resample

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Convert converts interleaved normalized samples from the source sample rate
// and channel count to the destination sample rate and channel count. Channel
// conversion happens before rate conversion so the resampler always runs with
// the destination channel count.
//
// The input slice is never modified; the returned slice is freshly allocated
// unless no conversion is needed, in which case the input is returned as is.
func Convert(samples []float64, srcRate, srcChannels, dstRate, dstChannels int) ([]float64, error) {
	if srcChannels < 1 || srcChannels > 2 || dstChannels < 1 || dstChannels > 2 {
		return nil, fmt.Errorf("resample: unsupported channel count (src=%d dst=%d)", srcChannels, dstChannels)
	}

	if srcChannels != dstChannels {
		if srcChannels == 2 {
			samples = stereoToMono(samples)
		} else {
			samples = monoToStereo(samples)
		}
	}

	if srcRate == dstRate {
		return samples, nil
	}

	rs, err := resampling.New(&resampling.Config{
		InputRate:  float64(srcRate),
		OutputRate: float64(dstRate),
		Channels:   dstChannels,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("resample: create resampler: %w", err)
	}

	out, err := rs.Process(samples)
	if err != nil {
		return nil, fmt.Errorf("resample: %d -> %d Hz: %w", srcRate, dstRate, err)
	}
	// Keep interleaving intact if the resampler returns a partial frame tail.
	if rem := len(out) % dstChannels; rem != 0 {
		out = out[:len(out)-rem]
	}
	return out, nil
}

// stereoToMono averages L and R into a mono buffer.
func stereoToMono(in []float64) []float64 {
	frames := len(in) / 2
	out := make([]float64, frames)
	for i := range frames {
		out[i] = (in[i*2] + in[i*2+1]) / 2
	}
	return out
}

// monoToStereo duplicates each sample into both channels.
func monoToStereo(in []float64) []float64 {
	out := make([]float64, len(in)*2)
	for i, s := range in {
		out[i*2] = s
		out[i*2+1] = s
	}
	return out
}
