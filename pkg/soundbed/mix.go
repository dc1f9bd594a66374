package soundbed

import "time"

// Mix is a finished interleaved master buffer in the working format.
type Mix struct {
	SampleRate int
	Channels   int
	Samples    []float64
}

// Duration returns the mix length.
func (m *Mix) Duration() time.Duration {
	if m.SampleRate <= 0 || m.Channels <= 0 {
		return 0
	}
	frames := len(m.Samples) / m.Channels
	return time.Duration(frames) * time.Second / time.Duration(m.SampleRate)
}
