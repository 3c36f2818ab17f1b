package sale

import (
	"context"
	"errors"
	"time"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

var (
	// ErrProductNotFound is returned when the referenced product id does
	// not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrCustomerNotFound is returned when the referenced customer id
	// does not resolve.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidQuantity is returned for zero or negative quantities.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// RecordSaleRequest carries the data required to record a credit sale.
// Date is optional; the current time is used when zero.
type RecordSaleRequest struct {
	ProductID  uint
	CustomerID uint
	Quantity   int
	Date       time.Time
}

// Service exposes sale-related business operations.
type Service interface {
	// RecordSale validates both foreign keys, computes the total from
	// the product's price at the moment of the call, and persists the
	// sale with that fixed total.
	RecordSale(ctx context.Context, req RecordSaleRequest) (*entity.Sale, error)
	ListSales(ctx context.Context, skip, limit int) ([]entity.Sale, error)
}
