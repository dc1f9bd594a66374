// Package audio provides audio processing utilities.
//
// This package serves as an umbrella for audio-related sub-packages:
//
//   - pcm: PCM (Pulse Code Modulation) format handling and float conversion
//   - resample: sample rate and channel layout conversion
//   - dsp: gain staging, fades, ducking, dynamics and loudness measurement
//
// Example usage:
//
//	import "github.com/soundbed/soundbed/pkg/audio/pcm"
//
//	format := pcm.L16Stereo48K
//	samples := pcm.BytesToFloat64(audioData)
package audio
