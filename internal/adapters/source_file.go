package adapters

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgforecaster/internal/ports"
)

// StdinPath selects standard input as the capture to read.
const StdinPath = "-"

type FileSourceAdapter struct {
	Path  string
	Stdin io.Reader
}

func NewFileSourceAdapter(path string) FileSourceAdapter {
	return FileSourceAdapter{Path: path, Stdin: os.Stdin}
}

func (a FileSourceAdapter) Name() string {
	return "file"
}

func (a FileSourceAdapter) Capture(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", captureInterrupted(a.Name(), err)
	}
	path := strings.TrimSpace(a.Path)
	if path == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("simulation file path is empty")
	}
	if path == StdinPath {
		if a.Stdin == nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("standard input is not available")
		}
		data, err := io.ReadAll(a.Stdin)
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read standard input").
				WithCause(err)
		}
		return DecodeText(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("simulation source unavailable").
			WithCause(err)
	}
	return DecodeText(data), nil
}

var _ ports.SimulationSourcePort = FileSourceAdapter{}
