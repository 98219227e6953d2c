package queries

import (
	"context"

	"fishmarket/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetSalesReportQueryHandler computes the sales report over the orders table.
type GetSalesReportQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesReportQueryHandler creates a handler for sales reports.
func NewGetSalesReportQueryHandler(db *gorm.DB) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db}
}

// Handle executes the report query for the requested rolling window.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) (GetSalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	resp := GetSalesReportQueryResponse{Period: query.Period()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount), 0),
			COUNT(*)
		FROM orders
		WHERE status IN (?, ?, ?, ?)
		  AND created_at >= NOW() - make_interval(days => ?)
	`,
		order.Confirmed.String(),
		order.Preparing.String(),
		order.OutForDelivery.String(),
		order.Delivered.String(),
		query.Period().days(),
	).Row()

	if err := row.Scan(&resp.TotalSales, &resp.TotalOrders); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	if resp.TotalOrders > 0 {
		resp.AverageOrderValue = resp.TotalSales / float64(resp.TotalOrders)
	}

	return resp, nil
}
