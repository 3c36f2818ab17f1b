package sale

import (
	"context"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

// Repository specifies sale related database operations. Lookups of the
// referenced product and customer live here too so the service can validate
// foreign keys before writing.
type Repository interface {
	StoreSale(ctx context.Context, s *entity.Sale) (*entity.Sale, error)
	GetProductByID(ctx context.Context, id uint) (*entity.Product, error)
	GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error)
	ListSales(ctx context.Context, skip, limit int) ([]entity.Sale, error)
}
