package pipeline

import (
	"context"

	"motionsplit/internal/media/ffprobe"
	"motionsplit/internal/scheme"
)

// Metadata is the capability set required from the metadata tool boundary.
type Metadata interface {
	// Facts reports the scheme detection facts for a candidate file.
	Facts(ctx context.Context, path string) ([]scheme.Fact, error)
	// ExtractTag returns the raw bytes of a named proprietary tag.
	ExtractTag(ctx context.Context, path, tag string) ([]byte, error)
	// StripTrailer removes stale motion-photo tags and any trailing payload
	// after the still-image stream.
	StripTrailer(ctx context.Context, path string) error
	// CopyTags copies timestamp/GPS/make/model tags from src onto dst.
	CopyTags(ctx context.Context, src, dst string) error
	// Validate structurally checks the repaired still, returning diagnostics.
	Validate(ctx context.Context, path string) (string, error)
}

// Transcoder is the capability set required from the transcoding tool boundary.
type Transcoder interface {
	Transcode(ctx context.Context, input, output string, maxBitrate int64) error
	Loop(ctx context.Context, input, output string) error
}

// Prober inspects produced clips; satisfied by the ffprobe client.
type Prober interface {
	Inspect(ctx context.Context, path string) (ffprobe.Result, error)
}
