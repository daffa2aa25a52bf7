package bytescan

import (
	"bytes"
	"iter"
)

// First returns the offset of the first occurrence of pattern in buf at or
// after start. The second return value reports whether a match was found; no
// match is not an error. An empty pattern never matches.
func First(buf, pattern []byte, start int) (int, bool) {
	if len(pattern) == 0 || start < 0 || start >= len(buf) {
		return 0, false
	}
	idx := bytes.Index(buf[start:], pattern)
	if idx < 0 {
		return 0, false
	}
	return start + idx, true
}

// All yields every non-overlapping occurrence of pattern in buf at or after
// start, in ascending order. The sequence is lazy and restartable; iterating
// it twice scans the buffer twice.
func All(buf, pattern []byte, start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(pattern) == 0 {
			return
		}
		pos := start
		if pos < 0 {
			pos = 0
		}
		for pos < len(buf) {
			idx := bytes.Index(buf[pos:], pattern)
			if idx < 0 {
				return
			}
			match := pos + idx
			if !yield(match) {
				return
			}
			pos = match + len(pattern)
		}
	}
}

// Collect drains All into a slice. Convenience for callers that need every
// offset up front.
func Collect(buf, pattern []byte, start int) []int {
	var offsets []int
	for offset := range All(buf, pattern, start) {
		offsets = append(offsets, offset)
	}
	return offsets
}
