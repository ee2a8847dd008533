package jsonfile

import "context"

// Collection is a typed view of one named collection inside a Store.
type Collection[T any] struct {
	store *Store
	name  string
}

// NewCollection binds store to the collection called name.
func NewCollection[T any](store *Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Load reads every record of the collection.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	return Load[T](ctx, c.store, c.name)
}

// Save replaces the collection with records.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	return Save(ctx, c.store, c.name, records)
}
