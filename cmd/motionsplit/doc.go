// Command motionsplit is the CLI for splitting motion photos: it detects the
// vendor embedding scheme, extracts the clip, repairs the host image, and
// re-encodes the video under the configured size policy.
package main
