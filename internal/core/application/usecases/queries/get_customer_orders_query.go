package queries

import (
	"errors"
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the customer's order history.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerOrdersQueryResponse is one order history entry. VerificationCode
// is populated only while the order is out for delivery, which is when the
// customer needs to present it; outside that window it is withheld.
type GetCustomerOrdersQueryResponse struct {
	ID               kernel.UUID
	Status           string
	TotalAmount      float64
	PaymentMethod    string
	PaymentStatus    string
	ItemCount        int
	VerificationCode string
	CreatedAt        time.Time
}
