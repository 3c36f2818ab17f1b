package service

import (
	"context"

	customerpkg "github.com/ramesh-vyboina/cluck-credit-tracker/customer"
	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// customerService implements customer.Service.
type customerService struct {
	repo customerpkg.Repository
}

// NewCustomerService constructs a Service backed by the provided repository.
func NewCustomerService(repo customerpkg.Repository) customerpkg.Service {
	return &customerService{repo: repo}
}

// RegisterCustomer creates a customer after checking phone uniqueness.
func (s *customerService) RegisterCustomer(ctx context.Context, req customerpkg.RegisterCustomerRequest) (*entity.Customer, error) {
	exists, err := s.repo.PhoneExists(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, customerpkg.ErrPhoneTaken
	}

	c := &entity.Customer{Name: req.Name, Phone: req.Phone}
	return s.repo.StoreCustomer(ctx, c)
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, skip, limit int) ([]entity.Customer, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.ListCustomers(ctx, skip, limit)
}
