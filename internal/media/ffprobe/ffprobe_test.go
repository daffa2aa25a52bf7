package ffprobe

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"motionsplit/internal/services"
)

type fakeExecutor struct {
	stdout []byte
	stderr string
	err    error
}

func (f *fakeExecutor) Run(context.Context, string, []string) ([]byte, string, error) {
	return f.stdout, f.stderr, f.err
}

func TestInspectParsesFormat(t *testing.T) {
	exec := &fakeExecutor{stdout: []byte(`{
		"streams": [{"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080}],
		"format": {"duration": "2.5", "size": "1048576", "bit_rate": "10000000", "format_name": "mov,mp4,m4a"}
	}`)}
	client, err := New("ffprobe", WithExecutor(exec))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	result, err := client.Inspect(context.Background(), "clip.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.HasVideoStream() {
		t.Fatal("expected a video stream")
	}
	if result.BitRate() != 10_000_000 {
		t.Fatalf("bitrate: got %d", result.BitRate())
	}
	if result.SizeBytes() != 1_048_576 {
		t.Fatalf("size: got %d", result.SizeBytes())
	}
	if result.DurationSeconds() != 2.5 {
		t.Fatalf("duration: got %v", result.DurationSeconds())
	}
}

func TestInspectEmptyPath(t *testing.T) {
	client, _ := New("ffprobe", WithExecutor(&fakeExecutor{}))
	if _, err := client.Inspect(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestInspectToolFailure(t *testing.T) {
	exec := &fakeExecutor{stderr: "Invalid data found", err: fmt.Errorf("exit status 1")}
	client, _ := New("ffprobe", WithExecutor(exec))
	_, err := client.Inspect(context.Background(), "clip.mp4")
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}

func TestMissingFieldsDefaultToZero(t *testing.T) {
	exec := &fakeExecutor{stdout: []byte(`{"format": {}}`)}
	client, _ := New("ffprobe", WithExecutor(exec))
	result, err := client.Inspect(context.Background(), "clip.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BitRate() != 0 || result.SizeBytes() != 0 || result.HasVideoStream() {
		t.Fatalf("expected zero values, got %+v", result)
	}
}
