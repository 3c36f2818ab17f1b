package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

// ErrCustomerNotFound is returned when the statement's customer id does not
// resolve. A statement is never built against a missing customer.
var ErrCustomerNotFound = errors.New("customer not found")

// Entry types in a statement.
const (
	EntrySale    = "sale"
	EntryOrder   = "order"
	EntryPayment = "payment"
)

// Entry is one line of a customer statement. Amount is the unsigned
// transaction amount; Balance is the running balance after applying it
// (sales and unpaid orders add, payments subtract).
type Entry struct {
	Date    time.Time `json:"date"`
	Type    string    `json:"type"`
	Amount  float64   `json:"amount"`
	Balance float64   `json:"balance"`
}

// Statement is a customer's chronological ledger with running balances.
type Statement struct {
	Customer     *entity.Customer `json:"customer"`
	Transactions []Entry          `json:"transactions"`
}

// RecordOrderRequest carries the data required to record a credit order.
type RecordOrderRequest struct {
	CustomerID uint
	Date       time.Time
	Amount     float64
	Paid       bool
}

// RecordPaymentRequest carries the data required to record a repayment.
// Date is optional; the current time is used when zero.
type RecordPaymentRequest struct {
	CustomerID uint
	Amount     float64
	Date       time.Time
}

// Service exposes ledger operations: recording credit orders and payments
// and building the merged statement.
type Service interface {
	RecordOrder(ctx context.Context, req RecordOrderRequest) (*entity.Order, error)
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (*entity.Payment, error)
	Statement(ctx context.Context, customerID uint) (*Statement, error)
}
