package extract

import (
	"errors"
	"fmt"

	"motionsplit/internal/bytescan"
	"motionsplit/internal/scheme"
)

var (
	// ErrNoSignature reports that the expected embedded MP4 box header is
	// absent from the buffer.
	ErrNoSignature = errors.New("embedded video signature not found")
	// ErrInvalidOffset reports a footer offset outside (0, len(buffer)].
	ErrInvalidOffset = errors.New("invalid footer offset")
	// ErrDelegated reports that the scheme's payload is recovered by the
	// metadata tool, not by in-process byte math.
	ErrDelegated = errors.New("payload extraction delegated to metadata tool")
)

// Range is a half-open byte range [Start, End) into the host buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Slice returns the bytes the range covers.
func (r Range) Slice(buf []byte) []byte { return buf[r.Start:r.End] }

// PayloadRange locates the embedded video payload for jobs whose scheme is
// resolved in-process. The switch over scheme kinds is exhaustive; an unknown
// kind is an error rather than a silent fall-through.
func PayloadRange(job scheme.Job, buf []byte) (Range, error) {
	switch job.Kind {
	case scheme.SamsungEmbeddedVideo, scheme.SamsungSurroundShotVideo:
		return Range{}, fmt.Errorf("%s: %w", job.Kind, ErrDelegated)
	case scheme.GoogleLegacyFooterOffset:
		return footerRange(job, buf)
	case scheme.GoogleBoxScan:
		return boxScanRange(buf)
	default:
		return Range{}, fmt.Errorf("unhandled scheme %q", job.Kind)
	}
}

// footerRange interprets the footer offset as "payload begins this many bytes
// before end of file".
func footerRange(job scheme.Job, buf []byte) (Range, error) {
	if !job.HasFooterOffset {
		return Range{}, fmt.Errorf("%w: footer offset missing", ErrInvalidOffset)
	}
	offset := job.FooterOffset
	if offset <= 0 || offset > int64(len(buf)) {
		return Range{}, fmt.Errorf("%w: %d with buffer length %d", ErrInvalidOffset, offset, len(buf))
	}
	return Range{Start: len(buf) - int(offset), End: len(buf)}, nil
}

func boxScanRange(buf []byte) (Range, error) {
	start, ok := bytescan.First(buf, scheme.MP4BoxSignature, 0)
	if !ok {
		return Range{}, ErrNoSignature
	}
	return Range{Start: start, End: len(buf)}, nil
}
