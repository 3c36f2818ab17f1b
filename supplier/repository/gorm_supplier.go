package repository

import (
	"context"
	"errors"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	supplierpkg "github.com/ramesh-vyboina/cluck-credit-tracker/supplier"
	"gorm.io/gorm"
)

// GormSupplierRepo implements supplier.Repository using GORM.
type GormSupplierRepo struct {
	db *gorm.DB
}

func NewGormSupplierRepo(db *gorm.DB) supplierpkg.Repository {
	return &GormSupplierRepo{db: db}
}

func (r *GormSupplierRepo) StoreSupplier(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *GormSupplierRepo) GetSupplierByID(ctx context.Context, id uint) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, supplierpkg.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormSupplierRepo) ListSuppliers(ctx context.Context, skip, limit int) ([]entity.Supplier, error) {
	var list []entity.Supplier
	if err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormSupplierRepo) StorePurchase(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormSupplierRepo) ListPurchases(ctx context.Context, skip, limit int) ([]entity.Purchase, error) {
	var list []entity.Purchase
	if err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
