package soundbed

import "github.com/soundbed/soundbed/pkg/audio/dsp"

// master runs the fixed mastering chain: compressor, then limiter. It runs on
// every mix, including single-source ones; the limiter ceiling is the output
// peak guarantee.
func (p *Pipeline) master(samples []float64) []float64 {
	c := dsp.NewCompressor(p.policy.Compressor, p.sampleRate(), p.channels())
	l := dsp.NewLimiter(p.policy.Limiter, p.sampleRate(), p.channels())
	return l.Process(c.Process(samples))
}
