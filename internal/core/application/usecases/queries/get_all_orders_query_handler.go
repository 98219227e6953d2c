package queries

import (
	"context"
	"database/sql"

	"fishmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the admin order board.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for admin order reads.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first, optionally filtered by
// status.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	baseSQL := `
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.total_amount,
			o.payment_method,
			o.payment_status,
			o.city,
			o.delivery_phone,
			o.verification_code,
			o.created_at,
			o.updated_at,
			COUNT(oi.id) AS item_count
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
	`
	tail := `
		GROUP BY o.id
		ORDER BY o.created_at DESC
	`

	var rows *sql.Rows
	var err error
	if status, ok := query.Status(); ok {
		rows, err = h.db.WithContext(ctx).Raw(
			baseSQL+"WHERE o.status = ?"+tail, status.String()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(baseSQL + tail).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id, customerID uuid.UUID
		var code sql.NullString

		err = rows.Scan(
			&id,
			&customerID,
			&resp.Status,
			&resp.TotalAmount,
			&resp.PaymentMethod,
			&resp.PaymentStatus,
			&resp.City,
			&resp.DeliveryPhone,
			&code,
			&resp.CreatedAt,
			&resp.UpdatedAt,
			&resp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = custID

		if code.Valid {
			resp.VerificationCode = code.String
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
