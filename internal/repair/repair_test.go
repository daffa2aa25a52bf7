package repair

import (
	"bytes"
	"testing"

	"motionsplit/internal/extract"
	"motionsplit/internal/scheme"
)

func TestFooterTruncationRoundTrip(t *testing.T) {
	original := make([]byte, 100)
	for i := range original {
		original[i] = byte(i)
	}
	job := scheme.Job{
		Kind:            scheme.GoogleLegacyFooterOffset,
		FooterOffset:    30,
		HasFooterOffset: true,
	}

	rng, err := extract.PayloadRange(job, original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := rng.Slice(original)
	host := Host(job, original)

	if len(host) != 70 {
		t.Fatalf("repaired host length: got %d, want 70", len(host))
	}
	if len(payload) != 30 {
		t.Fatalf("payload length: got %d, want 30", len(payload))
	}
	rebuilt := append(append([]byte{}, host...), payload...)
	if !bytes.Equal(rebuilt, original) {
		t.Fatal("host ++ payload must reconstruct the original buffer")
	}
}

func TestSurroundShotTruncatesAtMarker(t *testing.T) {
	image := bytes.Repeat([]byte{0x5A}, 500)
	garbage := bytes.Repeat([]byte{0xEE}, 50)
	buf := append(append(append([]byte{}, image...), scheme.SamsungPanoramaMarker...), garbage...)

	job := scheme.Job{Kind: scheme.SamsungSurroundShotVideo}
	repaired := Host(job, buf)

	if len(repaired) != 502 {
		t.Fatalf("repaired length: got %d, want 502", len(repaired))
	}
	if !bytes.HasSuffix(repaired, scheme.JPEGEndOfImage) {
		t.Fatalf("repaired host must end in FF D9, got %x", repaired[len(repaired)-2:])
	}
	if !bytes.Equal(repaired[:500], image) {
		t.Fatal("image bytes before the marker must be preserved")
	}
}

func TestSurroundShotRepairIsIdempotent(t *testing.T) {
	buf := append(bytes.Repeat([]byte{0x5A}, 40), scheme.JPEGEndOfImage...)
	job := scheme.Job{Kind: scheme.SamsungSurroundShotVideo}

	once := Host(job, buf)
	if !bytes.Equal(once, buf) {
		t.Fatal("buffer without the marker must pass through unchanged")
	}
	twice := Host(job, once)
	if !bytes.Equal(twice, once) {
		t.Fatal("repairing an already repaired buffer must be a no-op")
	}
}

func TestOtherSchemesLeaveBytesAlone(t *testing.T) {
	buf := bytes.Repeat([]byte{0x33}, 64)
	for _, kind := range []scheme.Kind{scheme.SamsungEmbeddedVideo, scheme.GoogleBoxScan} {
		got := Host(scheme.Job{Kind: kind}, buf)
		if !bytes.Equal(got, buf) {
			t.Fatalf("%s: host bytes must be untouched", kind)
		}
	}
}
