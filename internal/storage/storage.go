// Package storage wraps an S3-compatible object store. It issues time-limited
// signed upload grants, builds public object URLs, and handles the direct
// server-side upload path. Swap implementations by changing the concrete type
// injected at startup.
package storage

import (
	"context"
	"io"
	"time"
)

// Storage is the interface for object store operations.
type Storage interface {
	// PresignPut mints a signed PUT URL for key, valid for expires. A non-empty
	// contentType is bound into the signature; the client must send it verbatim.
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	// ObjectURL constructs the browser-accessible URL for a given key. It is a
	// deterministic string computation, no remote call is made.
	ObjectURL(key string) string
	// Upload streams data to the store under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
}
