package repository

import "context"

// Collection gives whole-collection access to persisted records.
// Every mutation is expected to load, change and save the full sequence.
type Collection[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}
