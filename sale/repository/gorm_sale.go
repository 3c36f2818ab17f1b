package repository

import (
	"context"
	"errors"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	salepkg "github.com/ramesh-vyboina/cluck-credit-tracker/sale"
	"gorm.io/gorm"
)

// GormSaleRepo implements sale.Repository using GORM.
type GormSaleRepo struct {
	db *gorm.DB
}

func NewGormSaleRepo(db *gorm.DB) salepkg.Repository {
	return &GormSaleRepo{db: db}
}

func (r *GormSaleRepo) StoreSale(ctx context.Context, s *entity.Sale) (*entity.Sale, error) {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *GormSaleRepo) GetProductByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salepkg.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormSaleRepo) GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salepkg.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormSaleRepo) ListSales(ctx context.Context, skip, limit int) ([]entity.Sale, error) {
	var list []entity.Sale
	if err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
