package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	salepkg "github.com/ramesh-vyboina/cluck-credit-tracker/sale"
)

// fakeSaleRepo is an in-memory sale.Repository for service tests.
type fakeSaleRepo struct {
	products  map[uint]*entity.Product
	customers map[uint]*entity.Customer
	sales     []entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		products:  make(map[uint]*entity.Product),
		customers: make(map[uint]*entity.Customer),
	}
}

func (f *fakeSaleRepo) StoreSale(_ context.Context, s *entity.Sale) (*entity.Sale, error) {
	s.ID = uint(len(f.sales) + 1)
	f.sales = append(f.sales, *s)
	return s, nil
}

func (f *fakeSaleRepo) GetProductByID(_ context.Context, id uint) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, salepkg.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeSaleRepo) GetCustomerByID(_ context.Context, id uint) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, salepkg.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeSaleRepo) ListSales(_ context.Context, skip, limit int) ([]entity.Sale, error) {
	if skip >= len(f.sales) {
		return nil, nil
	}
	end := skip + limit
	if end > len(f.sales) {
		end = len(f.sales)
	}
	return f.sales[skip:end], nil
}

func TestRecordSaleComputesTotalAtTimeOfSale(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.customers[1] = &entity.Customer{ID: 1, Name: "Asha", Phone: "9990001111"}
	repo.products[1] = &entity.Product{ID: 1, Name: "Feed", Price: 100.0}
	svc := NewSaleService(repo)

	s, err := svc.RecordSale(context.Background(), salepkg.RecordSaleRequest{ProductID: 1, CustomerID: 1, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 500.0, s.TotalPrice)
	assert.False(t, s.Date.IsZero())

	// a later price change must not alter the recorded total
	repo.products[1].Price = 999.0
	assert.Equal(t, 500.0, repo.sales[0].TotalPrice)

	// but new sales pick up the new price
	s2, err := svc.RecordSale(context.Background(), salepkg.RecordSaleRequest{ProductID: 1, CustomerID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 1998.0, s2.TotalPrice)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.customers[1] = &entity.Customer{ID: 1}
	svc := NewSaleService(repo)

	_, err := svc.RecordSale(context.Background(), salepkg.RecordSaleRequest{ProductID: 9, CustomerID: 1, Quantity: 1})
	assert.ErrorIs(t, err, salepkg.ErrProductNotFound)
	assert.Empty(t, repo.sales)
}

func TestRecordSaleUnknownCustomer(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.products[1] = &entity.Product{ID: 1, Price: 10}
	svc := NewSaleService(repo)

	_, err := svc.RecordSale(context.Background(), salepkg.RecordSaleRequest{ProductID: 1, CustomerID: 9, Quantity: 1})
	assert.ErrorIs(t, err, salepkg.ErrCustomerNotFound)
	assert.Empty(t, repo.sales)
}

func TestRecordSaleRejectsNonPositiveQuantity(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.customers[1] = &entity.Customer{ID: 1}
	repo.products[1] = &entity.Product{ID: 1, Price: 10}
	svc := NewSaleService(repo)

	for _, q := range []int{0, -3} {
		_, err := svc.RecordSale(context.Background(), salepkg.RecordSaleRequest{ProductID: 1, CustomerID: 1, Quantity: q})
		assert.ErrorIs(t, err, salepkg.ErrInvalidQuantity)
	}
	assert.Empty(t, repo.sales)
}
