package interfaces

import (
	"context"
	"io"
)

// IObjectStorage abstracts the object store holding store logo assets.
// Upload returns the public URL persisted on the store record.
type IObjectStorage interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}
