// Package media is the boundary between the mixing pipeline and the
// container world. It shells out to ffmpeg and ffprobe: probing inputs,
// decoding audio streams to PCM, and muxing a finished mix back against the
// visual stream with the video codec untouched.
package media
