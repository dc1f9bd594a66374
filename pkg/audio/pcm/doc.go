// Package pcm provides types and utilities for working with PCM (Pulse Code
// Modulation) audio data.
//
// The package defines audio formats for common 16-bit configurations (mono
// and stereo at various sample rates) and conversions between raw
// little-endian sample bytes and normalized float64 sample buffers, which is
// the representation the composition pipeline processes.
//
// Example usage:
//
//	format := pcm.L16Stereo48K
//
//	// Calculate bytes needed for 20ms of audio
//	bytes := format.BytesInDuration(20 * time.Millisecond)
//
//	// Decode raw bytes into float64 samples for processing
//	samples := pcm.BytesToFloat64(raw)
package pcm
