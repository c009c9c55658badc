package adapters

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgforecaster/internal/ports"
)

type CaptureFinderAdapter struct{}

func NewCaptureFinderAdapter() CaptureFinderAdapter {
	return CaptureFinderAdapter{}
}

// FindCaptures walks root in lexical order and returns every .txt or .log
// file outside hidden directories.
func (a CaptureFinderAdapter) FindCaptures(root string) ([]string, error) {
	var paths []string
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("capture directory is empty")
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldSkipCaptureDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isCaptureFile(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to scan capture directory").
			WithCause(err)
	}
	return paths, nil
}

func shouldSkipCaptureDir(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isCaptureFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".log":
		return !strings.HasPrefix(name, ".")
	default:
		return false
	}
}

var _ ports.CaptureFinderPort = CaptureFinderAdapter{}
