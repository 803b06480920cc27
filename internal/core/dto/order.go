package dto

import "github.com/gostore/order-service/internal/core/domain"

type OrderProduct struct {
	ID       domain.ID `json:"id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

// Products carries no "required" binding on purpose: an empty list must
// reach the service so it is rejected with the invalid-product-quantity kind
// rather than a generic binding error.
type CreateOrderRequest struct {
	CustomerID domain.ID      `json:"customer_id" binding:"required"`
	Products   []OrderProduct `json:"products" binding:"dive"`
}
