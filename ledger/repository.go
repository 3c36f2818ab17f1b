package ledger

import (
	"context"

	"github.com/ramesh-vyboina/cluck-credit-tracker/entity"
)

// Repository specifies the reads and writes the ledger needs: the customer
// record plus everything that moves their balance.
type Repository interface {
	GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error)
	ListSalesForCustomer(ctx context.Context, customerID uint) ([]entity.Sale, error)
	ListOrdersForCustomer(ctx context.Context, customerID uint) ([]entity.Order, error)
	ListPaymentsForCustomer(ctx context.Context, customerID uint) ([]entity.Payment, error)
	StoreOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	StorePayment(ctx context.Context, p *entity.Payment) (*entity.Payment, error)
}
