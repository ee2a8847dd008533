package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
	testhelpers "github.com/polkiloo/bakery/internal/test"
)

func newCatalog(products *testhelpers.CollectionStub[model.Product], images *testhelpers.ImageStorageStub) *CatalogUseCase {
	uc := NewCatalogUseCase(products, images, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	uc.newID = func() string { return "generated-id" }
	return uc
}

func png(name string) *model.ImageUpload {
	return &model.ImageUpload{Filename: name, Data: []byte("png")}
}

func TestCatalogListEmpty(t *testing.T) {
	uc := newCatalog(&testhelpers.CollectionStub[model.Product]{}, &testhelpers.ImageStorageStub{})
	products, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil catalog, got %#v", products)
	}
}

func TestCatalogAddRequiresImage(t *testing.T) {
	products := &testhelpers.CollectionStub[model.Product]{}
	images := &testhelpers.ImageStorageStub{}
	uc := newCatalog(products, images)

	for _, img := range []*model.ImageUpload{nil, {Filename: "empty.png"}} {
		_, err := uc.Add(context.Background(), "Bun", 1, img)
		if !errors.Is(err, domainErrors.ErrImageRequired) {
			t.Fatalf("expected ErrImageRequired, got %v", err)
		}
		if !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	}
	if len(products.Saves) != 0 || len(images.Stored) != 0 {
		t.Fatalf("nothing should be persisted, saves=%d stored=%d", len(products.Saves), len(images.Stored))
	}
}

func TestCatalogAddRejectsInvalidPrice(t *testing.T) {
	products := &testhelpers.CollectionStub[model.Product]{}
	uc := newCatalog(products, &testhelpers.ImageStorageStub{})

	for _, price := range []float64{-0.01, math.NaN(), math.Inf(1)} {
		if _, err := uc.Add(context.Background(), "Bun", price, png("bun.png")); !errors.Is(err, domainErrors.ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice for %v, got %v", price, err)
		}
	}
	if len(products.Saves) != 0 {
		t.Fatal("invalid product must not be persisted")
	}
}

func TestCatalogAddAppendsProduct(t *testing.T) {
	products := &testhelpers.CollectionStub[model.Product]{Items: []model.Product{{ID: "a", Name: "Rye"}}}
	images := &testhelpers.ImageStorageStub{}
	uc := newCatalog(products, images)

	product, err := uc.Add(context.Background(), "Bread", 3.5, png("bread.png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID != "generated-id" || product.Name != "Bread" || product.Price != 3.5 {
		t.Fatalf("unexpected product %+v", product)
	}
	if product.Image != "/uploads/1-bread.png" {
		t.Fatalf("unexpected image path %q", product.Image)
	}
	if len(products.Items) != 2 || products.Items[1].ID != "generated-id" || products.Items[0].ID != "a" {
		t.Fatalf("unexpected catalog %+v", products.Items)
	}
}

func TestCatalogAddZeroPriceAllowed(t *testing.T) {
	uc := newCatalog(&testhelpers.CollectionStub[model.Product]{}, &testhelpers.ImageStorageStub{})
	if _, err := uc.Add(context.Background(), "Sample", 0, png("s.png")); err != nil {
		t.Fatalf("zero price must be accepted: %v", err)
	}
}

func TestCatalogAddRemovesImageWhenSaveFails(t *testing.T) {
	saveErr := errors.New("disk full")
	products := &testhelpers.CollectionStub[model.Product]{SaveErr: saveErr}
	images := &testhelpers.ImageStorageStub{}
	uc := newCatalog(products, images)

	if _, err := uc.Add(context.Background(), "Bread", 1, png("bread.png")); !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}
	if len(images.Removed) != 1 || images.Removed[0] != "/uploads/1-bread.png" {
		t.Fatalf("expected orphaned image to be removed, got %v", images.Removed)
	}
}

func TestCatalogAddLoadFailureStoresNothing(t *testing.T) {
	images := &testhelpers.ImageStorageStub{}
	uc := newCatalog(&testhelpers.CollectionStub[model.Product]{LoadErr: domainErrors.ErrStorageUnavailable}, images)

	if _, err := uc.Add(context.Background(), "Bread", 1, png("bread.png")); !errors.Is(err, domainErrors.ErrStorageUnavailable) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if len(images.Stored) != 0 {
		t.Fatal("image must not be stored when the catalog cannot be read")
	}
}

func TestCatalogEditWithoutImageKeepsImage(t *testing.T) {
	products := &testhelpers.CollectionStub[model.Product]{Items: []model.Product{
		{ID: "a", Name: "Rye", Price: 2, Image: "/uploads/old.png"},
	}}
	images := &testhelpers.ImageStorageStub{}
	uc := newCatalog(products, images)

	product, err := uc.Edit(context.Background(), "a", "Dark Rye", 2.75, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Dark Rye" || product.Price != 2.75 || product.Image != "/uploads/old.png" {
		t.Fatalf("unexpected product %+v", product)
	}
	if len(images.Removed) != 0 || len(images.Stored) != 0 {
		t.Fatalf("image must be untouched, removed=%v stored=%d", images.Removed, len(images.Stored))
	}
	if products.Items[0].Name != "Dark Rye" {
		t.Fatalf("expected persisted update, got %+v", products.Items[0])
	}
}

func TestCatalogEditReplacesImage(t *testing.T) {
	products := &testhelpers.CollectionStub[model.Product]{Items: []model.Product{
		{ID: "a", Name: "Rye", Price: 2, Image: "/uploads/old.png"},
	}}
	images := &testhelpers.ImageStorageStub{}
	uc := newCatalog(products, images)

	product, err := uc.Edit(context.Background(), "a", "Rye", 2, png("new.png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Image != "/uploads/1-new.png" {
		t.Fatalf("unexpected image %q", product.Image)
	}
	if len(images.Removed) != 1 || images.Removed[0] != "/uploads/old.png" {
		t.Fatalf("expected old image removal, got %v", images.Removed)
	}
}

func TestCatalogEditKeepsOldImageWhenSaveFails(t *testing.T) {
	saveErr := errors.New("disk full")
	products := &testhelpers.CollectionStub[model.Product]{
		Items:   []model.Product{{ID: "a", Name: "Rye", Price: 2, Image: "/uploads/old.png"}},
		SaveErr: saveErr,
	}
	images := &testhelpers.ImageStorageStub{}
	uc := newCatalog(products, images)

	if _, err := uc.Edit(context.Background(), "a", "Rye", 2, png("new.png")); !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}
	if len(images.Removed) != 1 || images.Removed[0] != "/uploads/1-new.png" {
		t.Fatalf("expected only the new image to be removed, got %v", images.Removed)
	}
	if products.Items[0].Image != "/uploads/old.png" {
		t.Fatalf("stored record must keep its image, got %q", products.Items[0].Image)
	}
}

func TestCatalogEditIgnoresImageRemovalFailure(t *testing.T) {
	products := &testhelpers.CollectionStub[model.Product]{Items: []model.Product{{ID: "a", Image: "/uploads/gone.png"}}}
	images := &testhelpers.ImageStorageStub{RemoveErr: errors.New("permission denied")}
	uc := newCatalog(products, images)

	if _, err := uc.Edit(context.Background(), "a", "Rye", 1, png("new.png")); err != nil {
		t.Fatalf("removal failure must not propagate: %v", err)
	}
	if products.Items[0].Image != "/uploads/1-new.png" {
		t.Fatalf("expected new image persisted, got %q", products.Items[0].Image)
	}
}

func TestCatalogEditNotFound(t *testing.T) {
	products := &testhelpers.CollectionStub[model.Product]{Items: []model.Product{{ID: "a"}}}
	uc := newCatalog(products, &testhelpers.ImageStorageStub{})

	if _, err := uc.Edit(context.Background(), "missing", "x", 1, nil); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(products.Saves) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestCatalogDelete(t *testing.T) {
	products := &testhelpers.CollectionStub[model.Product]{Items: []model.Product{
		{ID: "a", Image: "/uploads/a.png"},
		{ID: "b", Image: "/uploads/b.png"},
		{ID: "c", Image: "/uploads/c.png"},
	}}
	images := &testhelpers.ImageStorageStub{RemoveErr: errors.New("already gone")}
	uc := newCatalog(products, images)

	if err := uc.Delete(context.Background(), "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products.Items) != 2 || products.Items[0].ID != "a" || products.Items[1].ID != "c" {
		t.Fatalf("unexpected catalog %+v", products.Items)
	}
	if len(images.Removed) != 1 || images.Removed[0] != "/uploads/b.png" {
		t.Fatalf("expected image removal attempt, got %v", images.Removed)
	}
}

func TestCatalogDeleteNotFound(t *testing.T) {
	products := &testhelpers.CollectionStub[model.Product]{Items: []model.Product{{ID: "a"}}}
	images := &testhelpers.ImageStorageStub{}
	uc := newCatalog(products, images)

	if err := uc.Delete(context.Background(), "zzz"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(products.Saves) != 0 || len(images.Removed) != 0 {
		t.Fatal("nothing should change for a missing product")
	}
}
