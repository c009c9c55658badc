package ports

// CaptureFinderPort discovers captured simulation files below a directory.
type CaptureFinderPort interface {
	FindCaptures(root string) ([]string, error)
}
