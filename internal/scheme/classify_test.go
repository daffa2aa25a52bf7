package scheme

import "testing"

func TestClassifyZeroFactsIsNotAJob(t *testing.T) {
	if _, ok := Classify("/photos/IMG_0001.jpg", nil); ok {
		t.Fatal("file with no facts must not classify")
	}
}

func TestClassifySingleFact(t *testing.T) {
	job, ok := Classify("/photos/PXL_0002.jpg", []Fact{{Kind: GoogleBoxScan}})
	if !ok {
		t.Fatal("expected a job")
	}
	if job.Kind != GoogleBoxScan {
		t.Fatalf("expected box scan, got %s", job.Kind)
	}
	if job.HasFooterOffset {
		t.Fatal("box scan jobs carry no footer offset")
	}
}

func TestClassifyPrefersSamsungEmbeddedVideo(t *testing.T) {
	facts := []Fact{
		{Kind: GoogleBoxScan},
		{Kind: SamsungEmbeddedVideo},
	}
	job, ok := Classify("/photos/20240101_120000.jpg", facts)
	if !ok {
		t.Fatal("expected a job")
	}
	if job.Kind != SamsungEmbeddedVideo {
		t.Fatalf("priority rule broken: got %s", job.Kind)
	}
}

func TestClassifyFallsBackToEnumerationOrder(t *testing.T) {
	facts := []Fact{
		{Kind: GoogleLegacyFooterOffset, Offset: 123456, HasOffset: true},
		{Kind: GoogleBoxScan},
	}
	job, ok := Classify("/photos/MVIMG_0003.jpg", facts)
	if !ok {
		t.Fatal("expected a job")
	}
	if job.Kind != GoogleLegacyFooterOffset {
		t.Fatalf("expected first fact to win, got %s", job.Kind)
	}
	if !job.HasFooterOffset || job.FooterOffset != 123456 {
		t.Fatalf("footer offset not carried: %+v", job)
	}
}

func TestClassifyIgnoresOffsetForTagSchemes(t *testing.T) {
	job, ok := Classify("/photos/a.jpg", []Fact{{Kind: SamsungEmbeddedVideo, Offset: 99, HasOffset: true}})
	if !ok {
		t.Fatal("expected a job")
	}
	if job.HasFooterOffset {
		t.Fatal("tag-extraction schemes must not carry a footer offset")
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"samsung_embedded_video", SamsungEmbeddedVideo, true},
		{" Google_Box_Scan ", GoogleBoxScan, true},
		{"", "", false},
		{"unknown", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseKind(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseKind(%q) ok=%v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseKind(%q)=%s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMarkerWidths(t *testing.T) {
	if len(SamsungPanoramaMarker) != 23 {
		t.Fatalf("panorama marker must be 23 bytes, got %d", len(SamsungPanoramaMarker))
	}
	if len(MP4BoxSignature) != 12 {
		t.Fatalf("box signature must be 12 bytes, got %d", len(MP4BoxSignature))
	}
	if len(JPEGEndOfImage) != 2 || JPEGEndOfImage[0] != 0xFF || JPEGEndOfImage[1] != 0xD9 {
		t.Fatalf("unexpected EOI marker: %x", JPEGEndOfImage)
	}
}
