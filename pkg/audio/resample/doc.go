// Package resample converts decoded audio buffers between sample rates and
// channel layouts. It is used once per source at pipeline ingest to bring
// every stream to the working format before any level processing happens.
//
// Sample-rate conversion is delegated to a pure Go resampler (no CGO), channel
// conversion (mono⇄stereo) is done in-package.
package resample
