package queries

import (
	"context"

	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a user's cart joined with the products table.
// Prices reflect the live catalog; they are only snapshotted at placement.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query and computes the cart totals. An empty cart
// returns zero totals and an empty line slice, not an error.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	lines := make([]GetCartQueryResponseLine, 0)
	priced := make([]cart.PricedLine, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.id,
			ci.product_id,
			p.name,
			p.unit,
			p.image_url,
			p.price,
			ci.quantity,
			p.is_available
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = ?
		ORDER BY ci.created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetCartQueryResponseLine
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&line.ProductName,
			&line.Unit,
			&line.ImageURL,
			&line.UnitPrice,
			&line.Quantity,
			&line.IsAvailable,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		line.ID = lineID

		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		line.ProductID = prodID

		line.LineTotal = line.Quantity * line.UnitPrice
		lines = append(lines, line)
		priced = append(priced, cart.PricedLine{Quantity: line.Quantity, UnitPrice: line.UnitPrice})
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	totals := cart.ComputeTotals(priced)
	return GetCartQueryResponse{
		Lines:      lines,
		TotalItems: totals.TotalItems,
		TotalPrice: totals.TotalPrice,
	}, nil
}
