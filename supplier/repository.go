package supplier

import (
	"context"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

// Repository specifies supplier and purchase database operations.
type Repository interface {
	StoreSupplier(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error)
	GetSupplierByID(ctx context.Context, id uint) (*entity.Supplier, error)
	ListSuppliers(ctx context.Context, skip, limit int) ([]entity.Supplier, error)
	StorePurchase(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error)
	ListPurchases(ctx context.Context, skip, limit int) ([]entity.Purchase, error)
}
