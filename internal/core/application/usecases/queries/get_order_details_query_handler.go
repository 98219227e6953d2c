package queries

import (
	"context"
	"database/sql"
	"errors"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler reads one order and its lines joined with the
// products table for display names and images.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail reads.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	var resp GetOrderDetailsQueryResponse
	var id, customerID uuid.UUID
	var code sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total_amount,
			payment_method,
			payment_status,
			street,
			area,
			city,
			pincode,
			landmark,
			delivery_phone,
			delivery_notes,
			verification_code,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&resp.Status,
		&resp.TotalAmount,
		&resp.PaymentMethod,
		&resp.PaymentStatus,
		&resp.Street,
		&resp.Area,
		&resp.City,
		&resp.Pincode,
		&resp.Landmark,
		&resp.DeliveryPhone,
		&resp.DeliveryNotes,
		&code,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError(
				"order_id", query.OrderID().String())
		}
		return GetOrderDetailsQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.ID = orderID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.CustomerID = custID

	if code.Valid {
		resp.VerificationCode = code.String
	}

	items, err := h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderDetailsQueryHandler) readItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderDetailsQueryResponseItem, error) {
	items := make([]GetOrderDetailsQueryResponseItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.product_id,
			p.name,
			p.unit,
			p.image_url,
			oi.quantity,
			oi.unit_price,
			oi.total_price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY p.name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderDetailsQueryResponseItem
		var productID uuid.UUID

		err = rows.Scan(
			&productID,
			&item.ProductName,
			&item.Unit,
			&item.ImageURL,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = prodID

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
