package queries

import (
	"errors"
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order for the admin order board, newest
// first, optionally narrowed to one status.
type GetAllOrdersQuery struct {
	status    order.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query over the full order book. statusFilter
// is a wire label like "pending"; an empty string means no filter.
func NewGetAllOrdersQuery(statusFilter string) (GetAllOrdersQuery, error) {
	q := GetAllOrdersQuery{guard: guard.NewConstructorGuard()}

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return GetAllOrdersQuery{}, err
		}
		q.status = status
		q.hasStatus = true
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status returns the status filter and whether one was set.
func (q GetAllOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}

// GetAllOrdersQueryResponse is one row on the admin order board. The
// verification code is always present once issued so staff can assist
// customers who lost theirs.
type GetAllOrdersQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Status           string
	TotalAmount      float64
	PaymentMethod    string
	PaymentStatus    string
	City             string
	DeliveryPhone    string
	VerificationCode string
	ItemCount        int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
