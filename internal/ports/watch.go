package ports

import "context"

// FileWatchPort delivers the decoded content of a file every time it is
// written. Watch blocks until ctx is done.
type FileWatchPort interface {
	Watch(ctx context.Context, path string, out chan<- string) error
}
