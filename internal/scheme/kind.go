package scheme

import "strings"

// Kind identifies one vendor convention for embedding a video payload.
type Kind string

const (
	// SamsungEmbeddedVideo stores the clip in a self-describing trailer tag
	// the metadata tool extracts directly.
	SamsungEmbeddedVideo Kind = "samsung_embedded_video"
	// SamsungSurroundShotVideo is the Samsung surround-shot variant; the same
	// tag extraction applies but the host often carries trailing panorama
	// corruption that needs repair.
	SamsungSurroundShotVideo Kind = "samsung_surround_shot_video"
	// GoogleLegacyFooterOffset encodes the payload length as bytes from end of
	// file in an XMP tag (MicroVideo generation).
	GoogleLegacyFooterOffset Kind = "google_legacy_footer_offset"
	// GoogleBoxScan locates the payload by scanning for the embedded MP4 box
	// signature (MotionPhoto generation).
	GoogleBoxScan Kind = "google_box_scan"
)

var allKinds = []Kind{
	SamsungEmbeddedVideo,
	SamsungSurroundShotVideo,
	GoogleLegacyFooterOffset,
	GoogleBoxScan,
}

var kindSet = func() map[Kind]struct{} {
	set := make(map[Kind]struct{}, len(allKinds))
	for _, kind := range allKinds {
		set[kind] = struct{}{}
	}
	return set
}()

// AllKinds returns the ordered list of known scheme kinds.
func AllKinds() []Kind {
	cp := make([]Kind, len(allKinds))
	copy(cp, allKinds)
	return cp
}

// ParseKind converts a string into a known Kind.
func ParseKind(value string) (Kind, bool) {
	normalized := Kind(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := kindSet[normalized]
	return normalized, ok
}

// UsesTagExtraction reports whether the payload is recovered through the
// metadata tool's tag extraction rather than in-process byte math.
func (k Kind) UsesTagExtraction() bool {
	return k == SamsungEmbeddedVideo || k == SamsungSurroundShotVideo
}

// UsesFooterOffset reports whether the payload location is encoded as a count
// of bytes from end of file.
func (k Kind) UsesFooterOffset() bool {
	return k == GoogleLegacyFooterOffset
}
