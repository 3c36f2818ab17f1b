package customer

import (
	"context"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

// Repository specifies customer related database operations.
type Repository interface {
	StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error)
	ListCustomers(ctx context.Context, skip, limit int) ([]entity.Customer, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
}
