package app

import (
	"context"
	"encoding/json"
	"io"

	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/report"
	"github.com/polkiloo/bakery/internal/usecase"
)

// BakeryFacade exposes catalog, order and session operations to the HTTP layer.
type BakeryFacade struct {
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	auth    *usecase.AuthUseCase
}

func NewBakeryFacade(catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, auth *usecase.AuthUseCase) *BakeryFacade {
	return &BakeryFacade{catalog: catalog, orders: orders, auth: auth}
}

func (f *BakeryFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *BakeryFacade) AddProduct(ctx context.Context, name string, price float64, image *model.ImageUpload) (*model.Product, error) {
	return f.catalog.Add(ctx, name, price, image)
}

func (f *BakeryFacade) EditProduct(ctx context.Context, id, name string, price float64, image *model.ImageUpload) (*model.Product, error) {
	return f.catalog.Edit(ctx, id, name, price, image)
}

func (f *BakeryFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *BakeryFacade) PlaceOrder(ctx context.Context, items json.RawMessage, total float64, address string) (*model.Order, error) {
	return f.orders.Place(ctx, items, total, address)
}

func (f *BakeryFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *BakeryFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

// ExportOrders writes every order as an XLSX workbook to w.
func (f *BakeryFacade) ExportOrders(ctx context.Context, w io.Writer) error {
	orders, err := f.orders.List(ctx)
	if err != nil {
		return err
	}
	return report.WriteOrders(w, orders)
}

func (f *BakeryFacade) Login(ctx context.Context, current *model.Session, username, password string) (*model.Session, bool, error) {
	return f.auth.Login(ctx, current, username, password)
}

func (f *BakeryFacade) CheckAuth(sess *model.Session) bool {
	return f.auth.CheckAuth(sess)
}

func (f *BakeryFacade) Session(ctx context.Context, id string) (*model.Session, error) {
	return f.auth.Session(ctx, id)
}
