package uploads

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
)

// URLPrefix is the public path stored images are served under.
const URLPrefix = "/uploads/"

// maxNameAttempts bounds the suffixes tried when a generated name is taken.
const maxNameAttempts = 100

// Storage writes product images into a flat directory.
type Storage struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// New creates the upload directory if needed.
func New(dir string, logger *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{dir: dir, logger: logger, now: time.Now}, nil
}

// Dir returns the directory images are written to.
func (s *Storage) Dir() string {
	return s.dir
}

// Store writes the upload under a time prefixed name and returns its public path.
// An existing file is never overwritten; a clash gets a numeric suffix.
func (s *Storage) Store(ctx context.Context, upload *model.ImageUpload) (string, error) {
	if upload.Empty() {
		return "", domainErrors.ErrImageRequired
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	base := SanitizeFilename(upload.Filename)
	prefix := s.now().UnixMilli()
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := fmt.Sprintf("%d-%s", prefix, base)
		if attempt > 0 {
			name = fmt.Sprintf("%d-%d-%s", prefix, attempt, base)
		}

		err := s.create(name, upload.Data)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("store image: %w", err)
		}

		s.logger.Debug("image stored", slog.String("file", name), slog.Int("size", len(upload.Data)))
		return URLPrefix + name, nil
	}

	return "", fmt.Errorf("store image: no free name for %q", base)
}

// create writes data to a new file and fails with fs.ErrExist if name is taken.
func (s *Storage) create(name string, data []byte) error {
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	return f.Close()
}

// Remove deletes the file referenced by image. Only the base name is used,
// so the path can never point outside the upload directory. A file that is
// already gone is not an error.
func (s *Storage) Remove(ctx context.Context, image string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := path.Base(strings.ReplaceAll(image, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// SanitizeFilename strips any directory part from a client file name and
// replaces whitespace with underscores.
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		name = "image"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
}
