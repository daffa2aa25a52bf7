package main

import (
	"path/filepath"
	"testing"
)

func TestClipOutputPath(t *testing.T) {
	got := clipOutputPath("/photos/MVIMG_0007.jpg", "")
	if got != filepath.Join("/photos", "MVIMG_0007.mp4") {
		t.Errorf("clipOutputPath = %q", got)
	}

	got = clipOutputPath("/photos/MVIMG_0007.jpg", "/clips")
	if got != filepath.Join("/clips", "MVIMG_0007.mp4") {
		t.Errorf("clipOutputPath with output dir = %q", got)
	}
}
