package sms

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMissingAPIKey is a configuration error raised at construction,
	// not swallowed at send time.
	ErrMissingAPIKey = errors.New("FAST2SMS_API_KEY is not set")
	// ErrInvalidType is returned for transaction types other than
	// "credit" and "repayment".
	ErrInvalidType = errors.New("invalid transaction type")
)

// TransactionType selects the message wording.
type TransactionType string

const (
	TransactionCredit    TransactionType = "credit"
	TransactionRepayment TransactionType = "repayment"
)

// SendRequest carries a transaction notification to be texted to a customer.
type SendRequest struct {
	Name        string
	PhoneNumber string
	Amount      float64
	Type        TransactionType
}

// Result reports delivery outcome to the caller. Gateway failures are data,
// not errors: SMS is a best-effort side channel.
type Result struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

const (
	StatusSent  = "sent"
	StatusError = "error"
)

// Service sends transaction notifications through an SMS gateway.
type Service interface {
	SendTransactionSMS(ctx context.Context, req SendRequest) (Result, error)
}

// Message formats the SMS body for a transaction.
func Message(req SendRequest) (string, error) {
	amount := strconv.FormatFloat(req.Amount, 'f', -1, 64)
	switch req.Type {
	case TransactionCredit:
		return fmt.Sprintf("%s has taken ₹%s credit.", req.Name, amount), nil
	case TransactionRepayment:
		return fmt.Sprintf("%s has repaid ₹%s.", req.Name, amount), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}
}
