// Package queries contains read operations in the CQRS architecture. Query
// handlers bypass the aggregates and read directly from the database with raw
// SQL, returning flat read models shaped for the HTTP layer.
package queries

import (
	"errors"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a user's cart joined with live catalog data.
// Lines whose product has gone unavailable stay visible so the customer can
// remove them; they are flagged instead of silently dropped.
type GetCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given user's cart.
func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner.
func (q GetCartQuery) UserID() kernel.UUID {
	return q.userID
}

// GetCartQueryResponseLine is a single cart line with its product snapshot.
type GetCartQueryResponseLine struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Unit        string
	ImageURL    string
	UnitPrice   float64
	Quantity    float64
	LineTotal   float64
	IsAvailable bool
}

// GetCartQueryResponse is the cart with its computed totals. TotalItems is
// the summed quantity in kilograms, not a line count.
type GetCartQueryResponse struct {
	Lines      []GetCartQueryResponseLine
	TotalItems float64
	TotalPrice float64
}
