package exiftool

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"motionsplit/internal/services"
)

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps exiftool CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    services.Executor
}

// New constructs an exiftool client.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("exiftool binary required")
	}
	client := &Client{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    services.CommandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ExtractTag returns the raw bytes of a named proprietary tag, e.g. the
// Samsung EmbeddedVideoFile payload. The bytes come straight from exiftool's
// stdout in binary mode.
func (c *Client) ExtractTag(ctx context.Context, path, tag string) ([]byte, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, errors.New("tag name required")
	}
	stdout, stderr, err := c.run(ctx, "-b", "-"+tag, path)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "metadata", "extract tag "+tag, stderr, err)
	}
	if len(stdout) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "metadata", "extract tag "+tag, "tag empty or absent", nil)
	}
	return stdout, nil
}

// StripTrailer removes the stale motion-photo tags and any trailing payload
// left after the still-image stream. Applied after the host file has been
// repaired in place.
func (c *Client) StripTrailer(ctx context.Context, path string) error {
	args := []string{
		"-overwrite_original",
		"-trailer:all=",
		"-xmp:MotionPhoto=",
		"-xmp:MicroVideo=",
		"-xmp:MicroVideoOffset=",
		"-EmbeddedVideoFile=",
		"-SurroundShotVideo=",
		path,
	}
	if _, stderr, err := c.run(ctx, args...); err != nil {
		return services.Wrap(services.ErrExternalTool, "metadata", "strip trailer", stderr, err)
	}
	return nil
}

// CopyTags copies the timestamp, GPS, and camera identity tags from the
// original photo onto the produced video file.
func (c *Client) CopyTags(ctx context.Context, src, dst string) error {
	args := []string{
		"-overwrite_original",
		"-TagsFromFile", src,
		"-gps:all",
		"-DateTimeOriginal",
		"-CreateDate",
		"-ModifyDate",
		"-Make",
		"-Model",
		dst,
	}
	if _, stderr, err := c.run(ctx, args...); err != nil {
		return services.Wrap(services.ErrExternalTool, "metadata", "copy tags", stderr, err)
	}
	return nil
}

// Validate runs exiftool's structural validation over the repaired still and
// returns its diagnostic output. Findings surface as a validation error so the
// batch driver can flag the file without failing the run.
func (c *Client) Validate(ctx context.Context, path string) (string, error) {
	stdout, stderr, err := c.run(ctx, "-validate", "-warning", "-error", "-a", path)
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "metadata", "validate", stderr, err)
	}
	report := strings.TrimSpace(string(stdout))
	if hasValidationFindings(report) {
		return report, services.Wrap(services.ErrValidation, "metadata", "validate", report, nil)
	}
	return report, nil
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.exec.Run(ctx, c.binary, args)
}

func hasValidationFindings(report string) bool {
	for _, line := range strings.Split(report, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "warning") || strings.Contains(lower, "error") {
			return true
		}
	}
	return false
}

// String identifies the client in logs.
func (c *Client) String() string {
	return fmt.Sprintf("exiftool(%s)", c.binary)
}
