package repository

import (
	"context"
	"errors"

	customerpkg "github.com/ramesh-vyboina/cluck-credit-tracker/customer"
	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	"gorm.io/gorm"
)

// GormCustomerRepo implements customer.Repository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.Repository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerpkg.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) ListCustomers(ctx context.Context, skip, limit int) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustomerRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
