package services

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Executor abstracts command execution for testability. Stdout is returned as
// raw bytes because exiftool tag extraction emits binary payloads; stderr is
// returned separately so tool diagnostics can be surfaced verbatim.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (stdout []byte, stderr string, err error)
}

// CommandExecutor runs commands through os/exec.
type CommandExecutor struct{}

// Run executes the binary and waits for completion. A non-zero exit comes back
// as the error with stderr still populated.
func (CommandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), strings.TrimSpace(stderr.String()), err
}
