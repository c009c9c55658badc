package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgforecaster/internal/shared"
)

// CommandRunner runs a program to completion and returns its captured
// stdout and stderr.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

// ExecCommand is the CommandRunner backed by os/exec.
func ExecCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	log.Ctx(ctx).Debug().Str("command", cmd.String()).Msg("running command")
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// captureInterrupted reports a capture cancelled before or while it ran.
func captureInterrupted(source string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s interrupted", source)).
		WithCause(err)
}

// commandFailure classifies a failed command so callers can tell a
// missing tool from a tool that ran and failed.
func commandFailure(ctx context.Context, tool string, stderr []byte, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return captureInterrupted(tool, ctxErr)
	}
	if errors.Is(err, exec.ErrNotFound) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%s not found in PATH", tool)).
			WithCause(err)
	}
	if errors.Is(err, fs.ErrPermission) {
		return errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg(fmt.Sprintf("%s not permitted", tool)).
			WithCause(err)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s failed", tool)).
		WithCause(shared.CommandError(stderr, err))
}
