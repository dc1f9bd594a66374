package pcm

import "encoding/binary"

// BytesToFloat64 converts little-endian 16-bit PCM bytes to normalized
// float64 samples in [-1, 1]. Positive samples are scaled by 1/32767 and
// negative samples by 1/32768 so that full-scale values on both sides map
// to exactly ±1.0. A trailing odd byte is ignored.
func BytesToFloat64(b []byte) []float64 {
	out := make([]float64, len(b)/2)
	for i := range out {
		s := int16(binary.LittleEndian.Uint16(b[i*2:]))
		if s >= 0 {
			out[i] = float64(s) / 32767
		} else {
			out[i] = float64(s) / 32768
		}
	}
	return out
}

// Float64ToBytes converts normalized float64 samples to little-endian 16-bit
// PCM bytes. Samples outside [-1, 1] are clipped.
func Float64ToBytes(samples []float64) []byte {
	out := make([]byte, len(samples)*2)
	for i, t := range samples {
		if t > 1 {
			t = 1
		} else if t < -1 {
			t = -1
		}
		var s int16
		if t >= 0 {
			s = int16(t * 32767)
		} else {
			s = int16(t * 32768)
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}
