package repository

import (
	"context"
	"errors"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	ledgerpkg "github.com/ramesh-vyboina/cluck-credit-tracker/ledger"
	"gorm.io/gorm"
)

// GormLedgerRepo implements ledger.Repository using GORM.
type GormLedgerRepo struct {
	db *gorm.DB
}

func NewGormLedgerRepo(db *gorm.DB) ledgerpkg.Repository {
	return &GormLedgerRepo{db: db}
}

func (r *GormLedgerRepo) GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledgerpkg.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormLedgerRepo) ListSalesForCustomer(ctx context.Context, customerID uint) ([]entity.Sale, error) {
	var list []entity.Sale
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("date, id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormLedgerRepo) ListOrdersForCustomer(ctx context.Context, customerID uint) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("date, id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormLedgerRepo) ListPaymentsForCustomer(ctx context.Context, customerID uint) ([]entity.Payment, error) {
	var list []entity.Payment
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("date, id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormLedgerRepo) StoreOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormLedgerRepo) StorePayment(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}
