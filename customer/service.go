package customer

import (
	"context"
	"errors"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

var (
	// ErrNotFound is returned when a customer id does not resolve.
	ErrNotFound = errors.New("customer not found")
	// ErrPhoneTaken is returned when registering with a phone that is
	// already in use by another customer.
	ErrPhoneTaken = errors.New("customer with this phone already exists")
)

// RegisterCustomerRequest carries the data required to register a customer.
type RegisterCustomerRequest struct {
	Name  string
	Phone string
}

// Service exposes customer-related business operations.
type Service interface {
	RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id uint) (*entity.Customer, error)
	ListCustomers(ctx context.Context, skip, limit int) ([]entity.Customer, error)
}
