// Package ffprobe inspects extracted clips with the ffprobe binary. The
// pipeline uses it to read the source bitrate feeding the sizing policy and to
// confirm that extracted bytes decode as a real video container.
package ffprobe
