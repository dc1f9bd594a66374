// Package soundbed assembles the audio track of a short-form video from up
// to three sources: narration, a music bed and an ambient bed. Each source is
// conditioned for its role, the beds are ducked under the narration, the
// roles are summed and the result is run through a mastering chain.
//
// Every source is optional. The pipeline degrades through all presence
// combinations without failing: missing roles are skipped, ducking is skipped
// when there is no narration to key from, and with no sources at all the
// caller is told to pass the visual stream through untouched.
package soundbed
