package repository

import (
	"context"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// ImageStorage persists product images outside of the document store.
type ImageStorage interface {
	Store(ctx context.Context, upload *model.ImageUpload) (string, error)
	Remove(ctx context.Context, image string) error
}
