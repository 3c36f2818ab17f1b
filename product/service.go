package product

import (
	"context"
	"errors"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

var (
	// ErrNotFound is returned when a product id does not resolve.
	ErrNotFound = errors.New("product not found")
	// ErrNameTaken is returned when creating a product whose name is
	// already in use.
	ErrNameTaken = errors.New("product with this name already exists")
	// ErrInvalidPrice is returned for zero or negative prices.
	ErrInvalidPrice = errors.New("price must be greater than zero")
)

// CreateProductRequest carries the data required to create a product.
type CreateProductRequest struct {
	Name  string
	Price float64
}

// Service exposes product-related business operations.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*entity.Product, error)
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	ListProducts(ctx context.Context, skip, limit int) ([]entity.Product, error)
	// UpdatePrice sets the current unit price. It does not touch the
	// total of any sale recorded before the change.
	UpdatePrice(ctx context.Context, id uint, price float64) (*entity.Product, error)
}
