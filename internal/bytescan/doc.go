// Package bytescan provides literal byte-subsequence search over in-memory
// buffers. Matching is exact (no wildcards) and deliberately naive; inputs are
// single media files read fully into memory, not a streaming path.
package bytescan
