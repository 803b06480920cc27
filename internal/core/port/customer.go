package port

import (
	"context"

	"github.com/gostore/order-service/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CustomerPort interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error)
}
