package service

import (
	"context"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	productpkg "github.com/ramesh-vyboina/cluck-credit-tracker/product"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type productService struct {
	repo productpkg.Repository
}

// NewProductService constructs a Service backed by the provided repository.
func NewProductService(repo productpkg.Repository) productpkg.Service {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, req productpkg.CreateProductRequest) (*entity.Product, error) {
	if req.Price <= 0 {
		return nil, productpkg.ErrInvalidPrice
	}
	exists, err := s.repo.NameExists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, productpkg.ErrNameTaken
	}
	p := &entity.Product{Name: req.Name, Price: req.Price}
	return s.repo.StoreProduct(ctx, p)
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, skip, limit int) ([]entity.Product, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.ListProducts(ctx, skip, limit)
}

func (s *productService) UpdatePrice(ctx context.Context, id uint, price float64) (*entity.Product, error) {
	if price <= 0 {
		return nil, productpkg.ErrInvalidPrice
	}
	return s.repo.UpdatePrice(ctx, id, price)
}
