package ports

import "context"

// BlobStore is a flat key-value store for small persisted values. Get returns
// an error wrapping domain.ErrBlobNotFound when the key is absent.
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
