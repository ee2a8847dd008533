package test

import (
	"context"
	"encoding/json"
	"io"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// ProductFacadeStub provides controllable behaviour for catalog endpoints.
type ProductFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	AddFn      func(context.Context, string, float64, *model.ImageUpload) (*model.Product, error)
	EditFn     func(context.Context, string, string, float64, *model.ImageUpload) (*model.Product, error)
	DeleteFn   func(context.Context, string) error
}

// Products returns the configured catalog or a single default product.
func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: "p1", Name: "Baguette", Price: 2.5, Image: "/uploads/1-baguette.png"}}, nil
}

// AddProduct delegates to AddFn or echoes the input.
func (s ProductFacadeStub) AddProduct(ctx context.Context, name string, price float64, image *model.ImageUpload) (*model.Product, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, name, price, image)
	}
	return &model.Product{ID: "new", Name: name, Price: price}, nil
}

// EditProduct delegates to EditFn or echoes the input.
func (s ProductFacadeStub) EditProduct(ctx context.Context, id, name string, price float64, image *model.ImageUpload) (*model.Product, error) {
	if s.EditFn != nil {
		return s.EditFn(ctx, id, name, price, image)
	}
	return &model.Product{ID: id, Name: name, Price: price}, nil
}

// DeleteProduct delegates to DeleteFn.
func (s ProductFacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn  func(context.Context, json.RawMessage, float64, string) (*model.Order, error)
	OrdersFn func(context.Context) ([]model.Order, error)
	UpdateFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
	ExportFn func(context.Context, io.Writer) error
}

// PlaceOrder delegates to PlaceFn or returns a pending order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, items json.RawMessage, total float64, address string) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, items, total, address)
	}
	return &model.Order{ID: "o1", Items: items, Total: total, Address: address, Status: model.OrderStatusPending}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "o1", Items: json.RawMessage(`[]`), Status: model.OrderStatusPending}}, nil
}

// UpdateOrderStatus delegates to UpdateFn.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

// ExportOrders writes a placeholder payload unless ExportFn is set.
func (s OrderFacadeStub) ExportOrders(ctx context.Context, w io.Writer) error {
	if s.ExportFn != nil {
		return s.ExportFn(ctx, w)
	}
	_, err := io.WriteString(w, "xlsx")
	return err
}

// BakeryFacadeStub aggregates facade dependencies for HTTP layer tests.
type BakeryFacadeStub struct {
	ProductFacadeStub
	OrderFacadeStub
	AuthFacadeStub
}
