package repository

import (
	"context"
	"errors"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	productpkg "github.com/ramesh-vyboina/cluck-credit-tracker/product"
	"gorm.io/gorm"
)

// GormProductRepo implements product.Repository using GORM.
type GormProductRepo struct {
	db *gorm.DB
}

func NewGormProductRepo(db *gorm.DB) productpkg.Repository {
	return &GormProductRepo{db: db}
}

func (r *GormProductRepo) StoreProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProductRepo) GetProductByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productpkg.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepo) ListProducts(ctx context.Context, skip, limit int) ([]entity.Product, error) {
	var list []entity.Product
	if err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdatePrice loads the product first so a missing id surfaces as
// product.ErrNotFound instead of a no-op update.
func (r *GormProductRepo) UpdatePrice(ctx context.Context, id uint, price float64) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productpkg.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&p).Update("price", price).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
