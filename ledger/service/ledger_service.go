package service

import (
	"context"
	"sort"
	"time"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
	ledgerpkg "github.com/ramesh-vyboina/cluck-credit-tracker/ledger"
)

type ledgerService struct {
	repo ledgerpkg.Repository
}

// NewLedgerService constructs a Service backed by the provided repository.
func NewLedgerService(repo ledgerpkg.Repository) ledgerpkg.Service {
	return &ledgerService{repo: repo}
}

func (s *ledgerService) RecordOrder(ctx context.Context, req ledgerpkg.RecordOrderRequest) (*entity.Order, error) {
	if _, err := s.repo.GetCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	o := &entity.Order{
		CustomerID: req.CustomerID,
		Date:       date,
		Amount:     req.Amount,
		Paid:       req.Paid,
	}
	return s.repo.StoreOrder(ctx, o)
}

func (s *ledgerService) RecordPayment(ctx context.Context, req ledgerpkg.RecordPaymentRequest) (*entity.Payment, error) {
	if _, err := s.repo.GetCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	p := &entity.Payment{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Date:       date,
	}
	return s.repo.StorePayment(ctx, p)
}

// typeRank orders entries sharing a date: credits before the payment that
// settles them.
func typeRank(t string) int {
	switch t {
	case ledgerpkg.EntrySale:
		return 0
	case ledgerpkg.EntryOrder:
		return 1
	default:
		return 2
	}
}

// mergeEntry pairs an Entry with its source row id for a stable sort.
type mergeEntry struct {
	ledgerpkg.Entry
	id uint
}

// Statement merges the customer's sales, unpaid orders and payments into one
// date-ordered list and accumulates the running balance. Orders already
// marked paid are settled and do not appear.
func (s *ledgerService) Statement(ctx context.Context, customerID uint) (*ledgerpkg.Statement, error) {
	cust, err := s.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	sales, err := s.repo.ListSalesForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListOrdersForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListPaymentsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	merged := make([]mergeEntry, 0, len(sales)+len(orders)+len(payments))
	for _, sl := range sales {
		merged = append(merged, mergeEntry{
			Entry: ledgerpkg.Entry{Date: sl.Date, Type: ledgerpkg.EntrySale, Amount: sl.TotalPrice},
			id:    sl.ID,
		})
	}
	for _, o := range orders {
		if o.Paid {
			continue
		}
		merged = append(merged, mergeEntry{
			Entry: ledgerpkg.Entry{Date: o.Date, Type: ledgerpkg.EntryOrder, Amount: o.Amount},
			id:    o.ID,
		})
	}
	for _, p := range payments {
		merged = append(merged, mergeEntry{
			Entry: ledgerpkg.Entry{Date: p.Date, Type: ledgerpkg.EntryPayment, Amount: p.Amount},
			id:    p.ID,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.Before(merged[j].Date)
		}
		if typeRank(merged[i].Type) != typeRank(merged[j].Type) {
			return typeRank(merged[i].Type) < typeRank(merged[j].Type)
		}
		return merged[i].id < merged[j].id
	})

	balance := 0.0
	entries := make([]ledgerpkg.Entry, 0, len(merged))
	for _, m := range merged {
		if m.Type == ledgerpkg.EntryPayment {
			balance -= m.Amount
		} else {
			balance += m.Amount
		}
		m.Entry.Balance = balance
		entries = append(entries, m.Entry)
	}

	return &ledgerpkg.Statement{Customer: cust, Transactions: entries}, nil
}
