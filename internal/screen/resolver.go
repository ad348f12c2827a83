package screen

import (
	"context"
	"io"
	"os"
	"strings"
)

// ContentResolver opens the content behind a locator handed out by a picker.
type ContentResolver interface {
	OpenInputStream(ctx context.Context, locator string) (io.ReadCloser, error)
}

// FileResolver resolves plain paths and file:// URIs on the local file system.
type FileResolver struct{}

func (FileResolver) OpenInputStream(_ context.Context, locator string) (io.ReadCloser, error) {
	return os.Open(strings.TrimPrefix(locator, "file://"))
}
