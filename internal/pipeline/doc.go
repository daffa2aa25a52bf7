// Package pipeline drives the per-file split workflow: classify the embedding
// scheme, back up the original, extract the video payload, repair the host
// image, re-encode the clip, and carry metadata over. Processing is strictly
// sequential per file; each step mutates the same host file, so a partially
// repaired file is never visible to another extraction pass.
//
// The external tools are injected behind small capability interfaces so the
// pipeline is unit-testable without spawning exiftool or ffmpeg.
package pipeline
