package jsonfile

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/config"
	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

// Module wires the JSON document store and its product and order collections.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(
		func(s *Store) repository.Collection[model.Product] {
			return NewCollection[model.Product](s, ProductsCollection)
		},
		func(s *Store) repository.Collection[model.Order] {
			return NewCollection[model.Order](s, OrdersCollection)
		},
	),
	fx.Invoke(ensureCollections),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (*Store, error) {
	return New(p.Config.DataDir, p.Logger)
}

func ensureCollections(s *Store) error {
	for _, name := range []string{ProductsCollection, OrdersCollection} {
		if err := s.Ensure(name); err != nil {
			return err
		}
	}
	return nil
}
