package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gostore/order-service/internal/core/domain"
	"github.com/gostore/order-service/internal/core/dto"
	"github.com/gostore/order-service/internal/core/logger"
	"github.com/gostore/order-service/internal/core/port"
	"github.com/gostore/order-service/internal/core/serviceerrors"
)

const (
	ORDER_MAX_ITEMS = 100
	orderCacheTTL   = 15 * time.Minute
)

type OrderService struct {
	orderRepository port.OrderPort
	productService  *ProductService
	customerService *CustomerService
	orderCache      port.CachePort[domain.Order]
}

func NewOrderService(
	orderRepository port.OrderPort,
	productService *ProductService,
	customerService *CustomerService,
	orderCache port.CachePort[domain.Order],
) *OrderService {
	return &OrderService{
		orderRepository: orderRepository,
		productService:  productService,
		customerService: customerService,
		orderCache:      orderCache,
	}
}

func (s *OrderService) getCacheKey(orderID domain.ID) string {
	return fmt.Sprintf("order:%s", orderID)
}

// CreateOrder validates the request against customer and catalog state,
// snapshots each product's price into a line item, persists the order and
// then applies the stock decrements as one batch. The decrement runs
// strictly after the order is persisted and the two calls are not wrapped in
// a shared transaction: a decrement failure leaves the order recorded and is
// propagated to the caller.
func (s *OrderService) CreateOrder(ctx context.Context, request *dto.CreateOrderRequest) (*domain.Order, error) {
	customer, err := s.customerService.GetByID(ctx, request.CustomerID)
	if err != nil {
		return nil, err
	}

	if len(request.Products) == 0 {
		return nil, serviceerrors.NewInvalidProductQuantityError("order must contain at least one product")
	}
	if len(request.Products) > ORDER_MAX_ITEMS {
		return nil, serviceerrors.NewUnprocessableEntityError("order items limit exceeded")
	}

	quantities := make(map[domain.ID]int, len(request.Products))
	for _, p := range request.Products {
		if p.Quantity <= 0 {
			return nil, serviceerrors.NewInvalidProductQuantityError(
				fmt.Sprintf("invalid quantity %d for product %s", p.Quantity, p.ID))
		}
		quantities[p.ID] = p.Quantity
	}

	ids := make([]domain.ID, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}

	products, err := s.productService.FindAllByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Duplicated ids collapse in the distinct lookup, so they surface here
	// the same way missing products do.
	if len(products) != len(request.Products) {
		return nil, serviceerrors.NewProductsNotFoundError("one or more requested products do not exist")
	}

	items := make([]domain.OrderItem, 0, len(products))
	for _, product := range products {
		quantity, ok := quantities[product.ID]
		if !ok || product.Stock < quantity {
			return nil, serviceerrors.NewInsufficientProductQuantityError(
				fmt.Sprintf("insufficient quantity for product %s", product.ID))
		}
		items = append(items, *domain.NewOrderItem(product.ID, product.Name, quantity, product.Price))
	}

	order := domain.NewOrder(customer.ID, items)
	if err := s.orderRepository.Create(ctx, order); err != nil {
		logger.Error(ctx, "order: create failed", err, map[string]any{
			"customer_id": customer.ID,
		})
		return nil, err
	}

	decrements := make([]domain.StockDecrement, len(order.Items))
	for i, item := range order.Items {
		decrements[i] = domain.StockDecrement{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	if err := s.productService.DecrementStock(ctx, decrements); err != nil {
		// Order already persisted; the decrement was not applied.
		logger.Error(ctx, "order: stock decrement after create failed", err, map[string]any{
			"order_id": order.ID,
		})
		return nil, err
	}

	if err := s.orderCache.Set(ctx, s.getCacheKey(order.ID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": order.ID,
		})
	}

	logger.Info(ctx, "Order created successfully", map[string]any{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
	})
	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID domain.ID) (*domain.Order, error) {
	cached, err := s.orderCache.Get(ctx, s.getCacheKey(orderID))
	if err != nil {
		logger.Error(ctx, "cache: get order failed", err, map[string]any{
			"order_id": orderID,
		})
	}
	if cached != nil {
		logger.Info(ctx, "order found in cache", map[string]any{
			"order_id": orderID,
		})
		return cached, nil
	}

	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderCache.Set(ctx, s.getCacheKey(orderID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": orderID,
		})
	}

	return order, nil
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID domain.ID, limit, offset int64) ([]*domain.Order, error) {
	if _, err := s.customerService.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.orderRepository.GetByCustomerID(ctx, customerID, limit, offset)
}
