package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"motionsplit/internal/scheme"
)

// MinimalJPEG is the smallest byte sequence the repair and extraction code
// treats as a complete still image: start marker, a little body, end marker.
var MinimalJPEG = []byte{0xFF, 0xD8, 0x10, 0x20, 0x30, 0xFF, 0xD9}

// WriteMotionPhoto writes a synthetic motion photo: a minimal still image
// followed by the given payload bytes. It returns the file path.
func WriteMotionPhoto(t testing.TB, dir, name string, payload []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := append(append([]byte{}, MinimalJPEG...), payload...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// MP4Payload builds a fake embedded clip of the requested size that begins
// with the MP4 box signature the scanner keys on.
func MP4Payload(size int) []byte {
	if size < len(scheme.MP4BoxSignature) {
		size = len(scheme.MP4BoxSignature)
	}
	payload := make([]byte, size)
	copy(payload, scheme.MP4BoxSignature)
	for i := len(scheme.MP4BoxSignature); i < size; i++ {
		payload[i] = 0x42
	}
	return payload
}

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{0x42}, int(size)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
