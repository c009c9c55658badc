package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"pkgforecaster/internal/ports"
)

// DefaultWatchDebounce is how long a capture must stay quiet before it is
// re-read.
const DefaultWatchDebounce = 200 * time.Millisecond

// FileWatcherAdapter re-reads a capture whenever it changes. The parent
// directory is watched so editors that replace the file are handled.
type FileWatcherAdapter struct {
	Debounce time.Duration
}

func NewFileWatcherAdapter() FileWatcherAdapter {
	return FileWatcherAdapter{Debounce: DefaultWatchDebounce}
}

// Watch sends the current content once, then again once a burst of write
// or create events for path has been quiet for the debounce window. It
// returns nil when ctx is done.
func (a FileWatcherAdapter) Watch(ctx context.Context, path string, out chan<- string) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("watch path is empty")
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid watch path").
			WithCause(err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create file watcher").
			WithCause(err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("simulation source unavailable").
			WithCause(err)
	}

	if content, ok := readWatched(ctx, target); ok {
		if !send(ctx, out, content) {
			return nil
		}
	}
	debounce := a.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timerC:
			timerC = nil
			content, ok := readWatched(ctx, target)
			if !ok {
				continue
			}
			if !send(ctx, out, content) {
				return nil
			}
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Ctx(ctx).Warn().Err(err).Msg("file watcher error")
		}
	}
}

func readWatched(ctx context.Context, path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("watched file not readable")
		return "", false
	}
	return DecodeText(data), true
}

func send(ctx context.Context, out chan<- string, content string) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- content:
		return true
	}
}

var _ ports.FileWatchPort = FileWatcherAdapter{}
