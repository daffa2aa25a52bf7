// Package services defines shared utilities consumed by the split pipeline's
// external tool integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper so per-file failures
//     classify consistently (external tool vs validation vs configuration).
//   - A thin command Executor abstraction that makes exiftool and ffmpeg
//     invocations testable without spawning real processes.
package services
