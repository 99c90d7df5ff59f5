package images

import "context"

// Store keeps processed pictures under object keys.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	// URL returns an address the browser can load key from.
	URL(ctx context.Context, key string) (string, error)
}
