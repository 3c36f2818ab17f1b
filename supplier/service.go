package supplier

import (
	"context"
	"errors"
	"time"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

// ErrNotFound is returned when a supplier id does not resolve.
var ErrNotFound = errors.New("supplier not found")

// CreateSupplierRequest carries the data required to create a supplier.
type CreateSupplierRequest struct {
	Name    string
	Contact string
}

// RecordPurchaseRequest carries the data required to record a purchase.
// Date is optional; the current time is used when zero.
type RecordPurchaseRequest struct {
	SupplierID uint
	Quantity   float64
	TotalCost  float64
	Date       time.Time
}

// Service exposes supplier-side business operations (the purchasing mirror
// of the customer/sale side).
type Service interface {
	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*entity.Supplier, error)
	ListSuppliers(ctx context.Context, skip, limit int) ([]entity.Supplier, error)
	// RecordPurchase fails with ErrNotFound and persists nothing when the
	// supplier does not exist.
	RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (*entity.Purchase, error)
	ListPurchases(ctx context.Context, skip, limit int) ([]entity.Purchase, error)
}
