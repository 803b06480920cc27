package serviceerrors

import "errors"

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest

	// Order creation taxonomy. Each maps to a distinguishable condition the
	// caller can act on.
	KindCustomerNotFound
	KindProductsNotFound
	KindInvalidProductQuantity
	KindInsufficientProductQuantity
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}

func NewCustomerNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindCustomerNotFound, Message: message}
}

func NewProductsNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindProductsNotFound, Message: message}
}

func NewInvalidProductQuantityError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidProductQuantity, Message: message}
}

func NewInsufficientProductQuantityError(message string) *ServiceError {
	return &ServiceError{Kind: KindInsufficientProductQuantity, Message: message}
}
