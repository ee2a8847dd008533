package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

// CatalogUseCase manages the product catalog and the images attached to it.
type CatalogUseCase struct {
	products repository.Collection[model.Product]
	images   repository.ImageStorage
	logger   *slog.Logger
	newID    func() string
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.Collection[model.Product], images repository.ImageStorage, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{products: products, images: images, logger: logger, newID: uuid.NewString}
}

// List returns the whole catalog in stored order.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.Load(ctx)
}

// Add stores the image and appends a new product.
func (u *CatalogUseCase) Add(ctx context.Context, name string, price float64, image *model.ImageUpload) (*model.Product, error) {
	if image.Empty() {
		return nil, domainErrors.ErrImageRequired
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	products, err := u.products.Load(ctx)
	if err != nil {
		return nil, err
	}

	path, err := u.images.Store(ctx, image)
	if err != nil {
		return nil, err
	}

	product := model.Product{ID: u.newID(), Name: name, Price: price, Image: path}
	if err := u.products.Save(ctx, append(products, product)); err != nil {
		_ = u.removeImage(ctx, path)
		return nil, err
	}

	return &product, nil
}

// Edit updates name and price and replaces the image when a new one is supplied.
func (u *CatalogUseCase) Edit(ctx context.Context, id, name string, price float64, image *model.ImageUpload) (*model.Product, error) {
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	products, err := u.products.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfProduct(products, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %q", domainErrors.ErrNotFound, id)
	}

	product := &products[idx]
	product.Name = name
	product.Price = price

	previous := product.Image
	if !image.Empty() {
		path, err := u.images.Store(ctx, image)
		if err != nil {
			return nil, err
		}
		product.Image = path
	}

	if err := u.products.Save(ctx, products); err != nil {
		if product.Image != previous {
			_ = u.removeImage(ctx, product.Image)
		}
		return nil, err
	}

	// The old file goes only once the record no longer points at it.
	if product.Image != previous {
		_ = u.removeImage(ctx, previous)
	}

	updated := *product
	return &updated, nil
}

// Delete drops the product and its image.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	products, err := u.products.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexOfProduct(products, id)
	if idx < 0 {
		return fmt.Errorf("%w: product %q", domainErrors.ErrNotFound, id)
	}

	_ = u.removeImage(ctx, products[idx].Image)

	products = append(products[:idx], products[idx+1:]...)
	return u.products.Save(ctx, products)
}

// removeImage deletes an image file best effort. Failures are logged and
// returned, callers discard them.
func (u *CatalogUseCase) removeImage(ctx context.Context, image string) error {
	if image == "" {
		return nil
	}
	if err := u.images.Remove(ctx, image); err != nil {
		u.logger.Warn("remove product image failed", slog.String("image", image), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fmt.Errorf("%w: %v", domainErrors.ErrInvalidPrice, price)
	}
	return nil
}

func indexOfProduct(products []model.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
