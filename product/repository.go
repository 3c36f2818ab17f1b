package product

import (
	"context"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

// Repository specifies product related database operations.
type Repository interface {
	StoreProduct(ctx context.Context, p *entity.Product) (*entity.Product, error)
	GetProductByID(ctx context.Context, id uint) (*entity.Product, error)
	ListProducts(ctx context.Context, skip, limit int) ([]entity.Product, error)
	UpdatePrice(ctx context.Context, id uint, price float64) (*entity.Product, error)
	NameExists(ctx context.Context, name string) (bool, error)
}
