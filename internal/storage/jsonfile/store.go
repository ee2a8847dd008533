package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
)

const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// Store keeps every collection as a single JSON array file under dir.
// Writes replace the whole file; there is no locking between writers.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates the data directory if needed and returns a store rooted at it.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %w", domainErrors.ErrStorageUnavailable, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Path returns the file backing the named collection.
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Ensure initialises the collection with an empty array unless it already exists.
func (s *Store) Ensure(collection string) error {
	_, err := os.Stat(s.Path(collection))
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return unavailable("stat", collection, err)
	}
	if err := s.write(collection, []byte("[]")); err != nil {
		return err
	}
	s.logger.Info("collection initialised", slog.String("collection", collection), slog.String("path", s.Path(collection)))
	return nil
}

// Load reads the whole collection. A collection that was never written is
// created empty on first use.
func Load[T any](ctx context.Context, s *Store, collection string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.Ensure(collection); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, unavailable("read", collection, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, unavailable("decode", collection, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save serialises records and replaces the collection file with them.
func Save[T any](ctx context.Context, s *Store, collection string, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return unavailable("encode", collection, err)
	}
	return s.write(collection, data)
}

// write puts data into a temporary sibling file and renames it over the
// collection so readers see either the old or the new content.
func (s *Store) write(collection string, data []byte) (err error) {
	tmp, err := os.CreateTemp(s.dir, collection+".*.tmp")
	if err != nil {
		return unavailable("create temp file for", collection, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return unavailable("write", collection, err)
	}
	if err = tmp.Close(); err != nil {
		return unavailable("close", collection, err)
	}
	if err = os.Rename(tmp.Name(), s.Path(collection)); err != nil {
		return unavailable("replace", collection, err)
	}
	return nil
}

func unavailable(op, collection string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", domainErrors.ErrStorageUnavailable, op, collection, err)
}
