package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.Collection[model.Order]
	newID  func() string
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.Collection[model.Order]) *OrderUseCase {
	return &OrderUseCase{orders: orders, newID: uuid.NewString, now: time.Now}
}

// Place records a new pending order. Items are kept verbatim.
func (u *OrderUseCase) Place(ctx context.Context, items json.RawMessage, total float64, address string) (*model.Order, error) {
	if !itemsPresent(items) || address == "" {
		return nil, domainErrors.ErrMissingFields
	}

	orders, err := u.orders.Load(ctx)
	if err != nil {
		return nil, err
	}

	order := model.Order{
		ID:      u.newID(),
		Items:   append(json.RawMessage(nil), items...),
		Total:   total,
		Address: address,
		Status:  model.OrderStatusPending,
		Date:    u.now().UTC(),
	}

	if err := u.orders.Save(ctx, append(orders, order)); err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns all orders in placement order.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.Load(ctx)
}

// UpdateStatus overwrites the status label of an order. The value is not validated.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	orders, err := u.orders.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		if err := u.orders.Save(ctx, orders); err != nil {
			return nil, err
		}
		updated := orders[i]
		return &updated, nil
	}

	return nil, fmt.Errorf("%w: order %q", domainErrors.ErrNotFound, id)
}

// itemsPresent treats missing, null, false, zero and empty string payloads as absent.
// Any numeric spelling of zero (0.0, -0, 0e0) counts as zero.
func itemsPresent(items json.RawMessage) bool {
	raw := string(bytes.TrimSpace(items))
	switch raw {
	case "", "null", "false", `""`:
		return false
	}
	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		if n, err := strconv.ParseFloat(raw, 64); err == nil && n == 0 {
			return false
		}
	}
	return true
}
