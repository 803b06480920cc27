package port

import (
	"context"

	"github.com/gostore/order-service/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	// FindAllByID returns only the products that exist; absence is signaled
	// by a shorter result, never by an error.
	FindAllByID(ctx context.Context, ids []domain.ID) ([]*domain.Product, error)
	// DecrementStock applies the whole batch atomically and fails if any
	// product's stock is below its requested decrement at apply time.
	DecrementStock(ctx context.Context, items []domain.StockDecrement) error
}
