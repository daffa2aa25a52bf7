package exiftool

import (
	"context"
	"encoding/json"
	"strings"

	"motionsplit/internal/scheme"
	"motionsplit/internal/services"
)

// Detection tags, one per embedding convention. Order matters: it is the
// enumeration order classification falls back to when several vendors' tags
// coexist on one file.
const (
	tagEmbeddedVideo    = "EmbeddedVideoFile"
	tagSurroundShot     = "SurroundShotVideo"
	tagMicroVideoOffset = "MicroVideoOffset"
	tagMotionPhoto      = "MotionPhoto"
)

type factRecord struct {
	EmbeddedVideoFile json.RawMessage `json:"EmbeddedVideoFile"`
	SurroundShotVideo json.RawMessage `json:"SurroundShotVideo"`
	MicroVideoOffset  int64           `json:"MicroVideoOffset"`
	MotionPhoto       int             `json:"MotionPhoto"`
}

// Facts queries the detection tags on a candidate file and maps them to
// scheme facts. A file with none of the tags yields an empty slice, which the
// classifier treats as "not a motion photo".
func (c *Client) Facts(ctx context.Context, path string) ([]scheme.Fact, error) {
	stdout, stderr, err := c.run(ctx,
		"-j", "-n",
		"-"+tagEmbeddedVideo,
		"-"+tagSurroundShot,
		"-"+tagMicroVideoOffset,
		"-"+tagMotionPhoto,
		path,
	)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "metadata", "query facts", stderr, err)
	}

	var records []factRecord
	if err := json.Unmarshal(stdout, &records); err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "metadata", "query facts", "unparseable exiftool output", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return factsFromRecord(records[0]), nil
}

func factsFromRecord(rec factRecord) []scheme.Fact {
	var facts []scheme.Fact
	if tagPresent(rec.EmbeddedVideoFile) {
		facts = append(facts, scheme.Fact{Kind: scheme.SamsungEmbeddedVideo})
	}
	if tagPresent(rec.SurroundShotVideo) {
		facts = append(facts, scheme.Fact{Kind: scheme.SamsungSurroundShotVideo})
	}
	if rec.MicroVideoOffset > 0 {
		facts = append(facts, scheme.Fact{
			Kind:      scheme.GoogleLegacyFooterOffset,
			Offset:    rec.MicroVideoOffset,
			HasOffset: true,
		})
	}
	if rec.MotionPhoto == 1 {
		facts = append(facts, scheme.Fact{Kind: scheme.GoogleBoxScan})
	}
	return facts
}

// tagPresent reports whether a binary tag appeared in the record at all.
// exiftool renders binary tags as a placeholder string in JSON mode; any
// non-null value counts.
func tagPresent(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}

// PayloadTag returns the proprietary tag holding the embedded clip for
// tag-extraction schemes.
func PayloadTag(kind scheme.Kind) (string, bool) {
	switch kind {
	case scheme.SamsungEmbeddedVideo:
		return tagEmbeddedVideo, true
	case scheme.SamsungSurroundShotVideo:
		return tagSurroundShot, true
	default:
		return "", false
	}
}
