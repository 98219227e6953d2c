package queries

import (
	"errors"
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves a single order with its line items joined
// with product names.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for one order.
func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailsQueryResponseItem is one order line with its catalog join.
// UnitPrice and TotalPrice are the placement-time snapshot, not the live
// price.
type GetOrderDetailsQueryResponseItem struct {
	ProductID   kernel.UUID
	ProductName string
	Unit        string
	ImageURL    string
	Quantity    float64
	UnitPrice   float64
	TotalPrice  float64
}

// GetOrderDetailsQueryResponse is the full order read model.
type GetOrderDetailsQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Status           string
	TotalAmount      float64
	PaymentMethod    string
	PaymentStatus    string
	Street           string
	Area             string
	City             string
	Pincode          string
	Landmark         string
	DeliveryPhone    string
	DeliveryNotes    string
	VerificationCode string
	Items            []GetOrderDetailsQueryResponseItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
