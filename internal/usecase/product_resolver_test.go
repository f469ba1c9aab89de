package usecase

import (
	"context"
	"errors"
	"testing"

	"flex_billing/internal/domain/entities"
	mock_interfaces "flex_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	a := entities.Product{ID: "p-a", SKU: "A", Price: entities.Price{Value: 1000, Original: 1000}}
	b := entities.Product{ID: "p-b", SKU: "B", Price: entities.Price{Value: 500, Original: 500}}

	t.Run("batch read without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		r := NewProductResolver(repo, nil)

		repo.EXPECT().FindBySKUs(gomock.Any(), []string{"A", "B"}).Return([]entities.Product{a, b}, nil)

		got, err := r.Resolve(ctx, []entities.ItemRequest{{ID: "A", Quantity: 1}, {ID: "B", Quantity: 2}, {ID: "A", Quantity: 1}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got["A"].ID != "p-a" || got["B"].ID != "p-b" {
			t.Fatalf("unexpected products: %+v", got)
		}
	})

	t.Run("cache hits skip the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		cache := mock_interfaces.NewMockIProductCache(ctrl)
		r := NewProductResolver(repo, cache)

		cache.EXPECT().GetMany(gomock.Any(), []string{"A", "B"}).Return(map[string]entities.Product{"A": a}, nil)
		repo.EXPECT().FindBySKUs(gomock.Any(), []string{"B"}).Return([]entities.Product{b}, nil)
		cache.EXPECT().SetMany(gomock.Any(), []entities.Product{b}).Return(nil)

		got, err := r.Resolve(ctx, []entities.ItemRequest{{ID: "A", Quantity: 1}, {ID: "B", Quantity: 1}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 products, got %d", len(got))
		}
	})

	t.Run("cache failure falls back to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		cache := mock_interfaces.NewMockIProductCache(ctrl)
		r := NewProductResolver(repo, cache)

		cache.EXPECT().GetMany(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
		repo.EXPECT().FindBySKUs(gomock.Any(), []string{"A"}).Return([]entities.Product{a}, nil)
		cache.EXPECT().SetMany(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := r.Resolve(ctx, []entities.ItemRequest{{ID: "A", Quantity: 1}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing skus are all reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		r := NewProductResolver(repo, nil)

		repo.EXPECT().FindBySKUs(gomock.Any(), gomock.Any()).Return([]entities.Product{a}, nil)

		_, err := r.Resolve(ctx, []entities.ItemRequest{{ID: "Z", Quantity: 1}, {ID: "A", Quantity: 1}, {ID: "Y", Quantity: 1}})
		var notFound *ItemsNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected ItemsNotFoundError, got %v", err)
		}
		if len(notFound.SKUs) != 2 || notFound.SKUs[0] != "Y" || notFound.SKUs[1] != "Z" {
			t.Fatalf("unexpected missing skus: %v", notFound.SKUs)
		}
		if !errors.Is(err, ErrItemsNotFound) {
			t.Fatalf("expected errors.Is ErrItemsNotFound")
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		r := NewProductResolver(repo, nil)

		repo.EXPECT().FindBySKUs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := r.Resolve(ctx, []entities.ItemRequest{{ID: "A", Quantity: 1}})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
