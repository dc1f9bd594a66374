// Package dsp implements the signal processors used by the composition
// pipeline: gain and fade envelopes, sidechain ducking, dynamics compression,
// peak limiting, EBU R128 loudness measurement and loudness normalization.
//
// All processors operate offline on interleaved normalized float64 buffers.
// Inputs are treated as immutable; every processor returns a new buffer.
package dsp
