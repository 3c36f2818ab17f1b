package service

import (
	"context"
	"time"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	supplierpkg "github.com/ramesh-vyboina/cluck-credit-tracker/supplier"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type supplierService struct {
	repo supplierpkg.Repository
}

// NewSupplierService constructs a Service backed by the provided repository.
func NewSupplierService(repo supplierpkg.Repository) supplierpkg.Service {
	return &supplierService{repo: repo}
}

func (s *supplierService) CreateSupplier(ctx context.Context, req supplierpkg.CreateSupplierRequest) (*entity.Supplier, error) {
	sup := &entity.Supplier{Name: req.Name, Contact: req.Contact}
	return s.repo.StoreSupplier(ctx, sup)
}

func (s *supplierService) ListSuppliers(ctx context.Context, skip, limit int) ([]entity.Supplier, error) {
	return s.repo.ListSuppliers(ctx, clampSkip(skip), clampLimit(limit))
}

// RecordPurchase checks the supplier exists before writing; a purchase must
// never be appended for an unknown supplier.
func (s *supplierService) RecordPurchase(ctx context.Context, req supplierpkg.RecordPurchaseRequest) (*entity.Purchase, error) {
	if _, err := s.repo.GetSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	p := &entity.Purchase{
		SupplierID: req.SupplierID,
		Quantity:   req.Quantity,
		TotalCost:  req.TotalCost,
		Date:       date,
	}
	return s.repo.StorePurchase(ctx, p)
}

func (s *supplierService) ListPurchases(ctx context.Context, skip, limit int) ([]entity.Purchase, error) {
	return s.repo.ListPurchases(ctx, clampSkip(skip), clampLimit(limit))
}

func clampSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
