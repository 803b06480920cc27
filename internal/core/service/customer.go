package service

import (
	"context"

	"github.com/gostore/order-service/internal/core/domain"
	"github.com/gostore/order-service/internal/core/dto"
	"github.com/gostore/order-service/internal/core/logger"
	"github.com/gostore/order-service/internal/core/port"
	"github.com/gostore/order-service/internal/core/serviceerrors"
)

type CustomerService struct {
	customerRepository port.CustomerPort
}

func NewCustomerService(customerRepository port.CustomerPort) *CustomerService {
	return &CustomerService{customerRepository: customerRepository}
}

func (s *CustomerService) Create(ctx context.Context, request *dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.NewCustomer(request.Name, request.Email)

	if err := s.customerRepository.Create(ctx, customer); err != nil {
		logger.Error(ctx, "customer: create failed", err, map[string]any{
			"name":  request.Name,
			"email": request.Email,
		})
		return nil, err
	}

	logger.Info(ctx, "Customer created", map[string]any{"customer_id": customer.ID})
	return customer, nil
}

// GetByID translates the repository's generic not-found into the
// customer-not-found kind the order flow reports.
func (s *CustomerService) GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error) {
	customer, err := s.customerRepository.GetByID(ctx, id)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewCustomerNotFoundError("customer not found")
		}
		return nil, err
	}

	return customer, nil
}
