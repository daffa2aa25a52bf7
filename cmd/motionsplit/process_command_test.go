package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"motionsplit/internal/pipeline"
	"motionsplit/internal/scheme"
)

func TestCollectCandidatesWalksDirectories(t *testing.T) {
	root := t.TempDir()
	write := func(rel string) string {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		return path
	}

	a := write("a.jpg")
	b := write("nested/b.JPEG")
	write("nested/skip.mp4")
	write("skip.txt")

	paths, err := collectCandidates([]string{root})
	if err != nil {
		t.Fatalf("collectCandidates: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want 2 entries", paths)
	}
	if paths[0] != a || paths[1] != b {
		t.Errorf("paths = %v, want [%s %s]", paths, a, b)
	}
}

func TestCollectCandidatesDeduplicates(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "photo.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	paths, err := collectCandidates([]string{path, path, root})
	if err != nil {
		t.Fatalf("collectCandidates: %v", err)
	}
	if len(paths) != 1 {
		t.Errorf("paths = %v, want single entry", paths)
	}
}

func TestCollectCandidatesMissingPath(t *testing.T) {
	if _, err := collectCandidates([]string{"/nonexistent/photo.jpg"}); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestRenderSummaryLine(t *testing.T) {
	line := renderSummaryLine(pipeline.Summary{Total: 4, Split: 2, Skipped: 1, Failed: 1})
	want := "4 processed: 2 split, 1 skipped, 0 flagged, 1 failed"
	if line != want {
		t.Errorf("summary = %q, want %q", line, want)
	}
}

func TestRenderResultLine(t *testing.T) {
	result := pipeline.Result{
		SourcePath: "/photos/IMG_0001.jpg",
		Scheme:     scheme.GoogleBoxScan,
		Outcome:    pipeline.OutcomeSplit,
		VideoPath:  "/photos/IMG_0001.mp4",
	}
	line := renderResultLine(result, false)
	if !strings.Contains(line, "IMG_0001.jpg") || !strings.Contains(line, "[OK]") {
		t.Errorf("line = %q", line)
	}
	if !strings.Contains(line, "Google Box Scan") {
		t.Errorf("line missing scheme label: %q", line)
	}

	failed := pipeline.Result{
		SourcePath: "/photos/IMG_0002.jpg",
		Outcome:    pipeline.OutcomeFailed,
		Message:    "read host: permission denied",
	}
	line = renderResultLine(failed, false)
	if !strings.Contains(line, "[ERROR]") || !strings.Contains(line, "permission denied") {
		t.Errorf("line = %q", line)
	}
}
