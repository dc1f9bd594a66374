package soundbed

// mixdown sums the conditioned tracks into a buffer of exactly frames frames.
// Longer tracks are truncated; shorter tracks contribute silence past their
// end. No normalization happens here: the mastering chain owns the levels.
func (p *Pipeline) mixdown(tracks []*track, frames int) []float64 {
	out := make([]float64, frames*p.channels())
	for _, tr := range tracks {
		n := min(len(tr.samples), len(out))
		for i := 0; i < n; i++ {
			out[i] += tr.samples[i]
		}
	}
	return out
}
