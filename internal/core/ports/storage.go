package ports

import (
	"context"
	"io"
)

// ImageStore saves uploaded images and returns the public URL they will be
// served from. The disk implementation is the default; a cloud store can
// replace it behind this port.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (url string, err error)
	Remove(ctx context.Context, url string) error
}
