package ffmpeg

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

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    services.Executor
}

// New constructs an ffmpeg client.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
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

// Transcode re-encodes input into output, capping the video bitrate at
// maxBitrate bits per second. A cap of zero lets the encoder choose.
func (c *Client) Transcode(ctx context.Context, input, output string, maxBitrate int64) error {
	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", input}
	if maxBitrate > 0 {
		rate := fmt.Sprintf("%d", maxBitrate)
		args = append(args, "-b:v", rate, "-maxrate", rate, "-bufsize", fmt.Sprintf("%d", maxBitrate*2))
	}
	args = append(args, "-c:v", "libx264", "-preset", "slow", "-movflags", "+faststart", output)

	if _, stderr, err := c.run(ctx, args...); err != nil {
		return services.Wrap(services.ErrExternalTool, "transcode", "encode", stderr, err)
	}
	return nil
}

// Loop produces a boomerang rendition: the clip followed by itself reversed,
// concatenated into one stream. Audio is dropped; looping clips are silent.
func (c *Client) Loop(ctx context.Context, input, output string) error {
	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", input,
		"-filter_complex", "[0:v]reverse[r];[0:v][r]concat=n=2:v=1:a=0[out]",
		"-map", "[out]",
		"-c:v", "libx264", "-preset", "slow", "-movflags", "+faststart",
		"-an",
		output,
	}
	if _, stderr, err := c.run(ctx, args...); err != nil {
		return services.Wrap(services.ErrExternalTool, "transcode", "loop", stderr, err)
	}
	return nil
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.exec.Run(ctx, c.binary, args)
}
