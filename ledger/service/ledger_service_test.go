package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	ledgerpkg "github.com/ramesh-vyboina/cluck-credit-tracker/ledger"
)

// fakeLedgerRepo is an in-memory ledger.Repository for service tests.
type fakeLedgerRepo struct {
	customers map[uint]*entity.Customer
	sales     []entity.Sale
	orders    []entity.Order
	payments  []entity.Payment
	nextID    uint
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{customers: make(map[uint]*entity.Customer), nextID: 1}
}

func (f *fakeLedgerRepo) addCustomer(name, phone string) *entity.Customer {
	c := &entity.Customer{ID: f.nextID, Name: name, Phone: phone}
	f.nextID++
	f.customers[c.ID] = c
	return c
}

func (f *fakeLedgerRepo) GetCustomerByID(_ context.Context, id uint) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, ledgerpkg.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeLedgerRepo) ListSalesForCustomer(_ context.Context, customerID uint) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range f.sales {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) ListOrdersForCustomer(_ context.Context, customerID uint) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) ListPaymentsForCustomer(_ context.Context, customerID uint) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range f.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) StoreOrder(_ context.Context, o *entity.Order) (*entity.Order, error) {
	o.ID = f.nextID
	f.nextID++
	f.orders = append(f.orders, *o)
	return o, nil
}

func (f *fakeLedgerRepo) StorePayment(_ context.Context, p *entity.Payment) (*entity.Payment, error) {
	p.ID = f.nextID
	f.nextID++
	f.payments = append(f.payments, *p)
	return p, nil
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestStatementCustomerNotFound(t *testing.T) {
	svc := NewLedgerService(newFakeLedgerRepo())

	_, err := svc.Statement(context.Background(), 42)
	assert.ErrorIs(t, err, ledgerpkg.ErrCustomerNotFound)
}

func TestStatementRunningBalance(t *testing.T) {
	repo := newFakeLedgerRepo()
	cust := repo.addCustomer("Asha", "9990001111")
	repo.sales = append(repo.sales,
		entity.Sale{ID: 100, CustomerID: cust.ID, TotalPrice: 500, Date: day(1)},
		entity.Sale{ID: 101, CustomerID: cust.ID, TotalPrice: 250, Date: day(3)},
	)
	repo.orders = append(repo.orders,
		entity.Order{ID: 102, CustomerID: cust.ID, Amount: 100, Date: day(2)},
	)
	repo.payments = append(repo.payments,
		entity.Payment{ID: 103, CustomerID: cust.ID, Amount: 300, Date: day(4)},
	)
	svc := NewLedgerService(repo)

	st, err := svc.Statement(context.Background(), cust.ID)
	require.NoError(t, err)
	require.Equal(t, cust.ID, st.Customer.ID)
	require.Len(t, st.Transactions, 4)

	types := []string{}
	balances := []float64{}
	for _, e := range st.Transactions {
		types = append(types, e.Type)
		balances = append(balances, e.Balance)
	}
	assert.Equal(t, []string{"sale", "order", "sale", "payment"}, types)
	assert.Equal(t, []float64{500, 600, 850, 550}, balances)

	// final balance equals sum of credits minus sum of payments
	credits := 500.0 + 100.0 + 250.0
	payments := 300.0
	assert.Equal(t, credits-payments, st.Transactions[len(st.Transactions)-1].Balance)
}

func TestStatementExcludesPaidOrders(t *testing.T) {
	repo := newFakeLedgerRepo()
	cust := repo.addCustomer("Ravi", "9990002222")
	repo.orders = append(repo.orders,
		entity.Order{ID: 10, CustomerID: cust.ID, Amount: 400, Date: day(1)},
		entity.Order{ID: 11, CustomerID: cust.ID, Amount: 150, Date: day(2), Paid: true},
	)
	svc := NewLedgerService(repo)

	st, err := svc.Statement(context.Background(), cust.ID)
	require.NoError(t, err)
	require.Len(t, st.Transactions, 1)
	assert.Equal(t, 400.0, st.Transactions[0].Amount)
	assert.Equal(t, 400.0, st.Transactions[0].Balance)
}

func TestStatementStableOrderOnEqualDates(t *testing.T) {
	repo := newFakeLedgerRepo()
	cust := repo.addCustomer("Meena", "9990003333")
	d := day(5)
	repo.payments = append(repo.payments, entity.Payment{ID: 1, CustomerID: cust.ID, Amount: 200, Date: d})
	repo.sales = append(repo.sales, entity.Sale{ID: 2, CustomerID: cust.ID, TotalPrice: 200, Date: d})
	repo.orders = append(repo.orders, entity.Order{ID: 3, CustomerID: cust.ID, Amount: 50, Date: d})
	svc := NewLedgerService(repo)

	st, err := svc.Statement(context.Background(), cust.ID)
	require.NoError(t, err)
	require.Len(t, st.Transactions, 3)

	// credits sort before the payment that settles them on the same day,
	// so the balance never dips negative here
	assert.Equal(t, "sale", st.Transactions[0].Type)
	assert.Equal(t, "order", st.Transactions[1].Type)
	assert.Equal(t, "payment", st.Transactions[2].Type)
	assert.Equal(t, 50.0, st.Transactions[2].Balance)
}

func TestRecordOrderUnknownCustomer(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewLedgerService(repo)

	_, err := svc.RecordOrder(context.Background(), ledgerpkg.RecordOrderRequest{CustomerID: 9, Amount: 10, Date: day(1)})
	assert.ErrorIs(t, err, ledgerpkg.ErrCustomerNotFound)
	assert.Empty(t, repo.orders)
}

func TestRecordPaymentDefaultsDate(t *testing.T) {
	repo := newFakeLedgerRepo()
	cust := repo.addCustomer("Asha", "9990001111")
	svc := NewLedgerService(repo)

	p, err := svc.RecordPayment(context.Background(), ledgerpkg.RecordPaymentRequest{CustomerID: cust.ID, Amount: 75})
	require.NoError(t, err)
	assert.False(t, p.Date.IsZero())
	assert.Equal(t, 75.0, p.Amount)
}
