package handlers

import (
	"context"
	"encoding/json"
	"io"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// ProductFacade describes catalog operations exposed via HTTP.
type ProductFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	AddProduct(ctx context.Context, name string, price float64, image *model.ImageUpload) (*model.Product, error)
	EditProduct(ctx context.Context, id, name string, price float64, image *model.ImageUpload) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, items json.RawMessage, total float64, address string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	ExportOrders(ctx context.Context, w io.Writer) error
}

// AuthFacade describes session capabilities required by handlers and middleware.
type AuthFacade interface {
	Login(ctx context.Context, current *model.Session, username, password string) (*model.Session, bool, error)
	CheckAuth(sess *model.Session) bool
	Session(ctx context.Context, id string) (*model.Session, error)
}

// BakeryFacade aggregates the full set of operations used across handlers.
type BakeryFacade interface {
	ProductFacade
	OrderFacade
	AuthFacade
}
