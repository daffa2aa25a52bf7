// Package ffmpeg wraps the ffmpeg binary for re-encoding extracted clips: a
// bitrate-capped transcode plus an optional forward-and-reversed looping
// rendition. Bitrate decisions belong to the sizing policy; this package only
// builds and runs the commands.
package ffmpeg
