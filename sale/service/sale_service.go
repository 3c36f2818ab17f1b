package service

import (
	"context"
	"time"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	salepkg "github.com/ramesh-vyboina/cluck-credit-tracker/sale"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type saleService struct {
	repo salepkg.Repository
}

// NewSaleService constructs a Service backed by the provided repository.
func NewSaleService(repo salepkg.Repository) salepkg.Service {
	return &saleService{repo: repo}
}

func (s *saleService) RecordSale(ctx context.Context, req salepkg.RecordSaleRequest) (*entity.Sale, error) {
	if req.Quantity <= 0 {
		return nil, salepkg.ErrInvalidQuantity
	}
	if _, err := s.repo.GetCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	p, err := s.repo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	sale := &entity.Sale{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
		// price at time of sale; later price edits leave this untouched
		TotalPrice: p.Price * float64(req.Quantity),
		Date:       date,
	}
	return s.repo.StoreSale(ctx, sale)
}

func (s *saleService) ListSales(ctx context.Context, skip, limit int) ([]entity.Sale, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.ListSales(ctx, skip, limit)
}
