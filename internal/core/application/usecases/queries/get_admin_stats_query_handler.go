package queries

import (
	"context"

	"fishmarket/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Stock strictly below this threshold flags a product on the dashboard.
const lowStockThreshold = 10

// GetAdminStatsQueryHandler aggregates the dashboard counters in one round
// trip per counter group.
type GetAdminStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminStatsQueryHandler creates a handler for dashboard stats.
func NewGetAdminStatsQueryHandler(db *gorm.DB) GetAdminStatsQueryHandler {
	return GetAdminStatsQueryHandler{db: db}
}

// Handle executes the counter queries. An empty store returns all zeros.
func (h GetAdminStatsQueryHandler) Handle(
	ctx context.Context,
	query GetAdminStatsQuery,
) (GetAdminStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	var resp GetAdminStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(DISTINCT customer_id),
			COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0),
			COALESCE(SUM(total_amount) FILTER (
				WHERE payment_status = 'paid' AND created_at >= CURRENT_DATE
			), 0)
		FROM orders
	`, order.Pending.String()).Row()

	err := row.Scan(
		&resp.TotalOrders,
		&resp.PendingOrders,
		&resp.TotalCustomers,
		&resp.TotalRevenue,
		&resp.TodayRevenue,
	)
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE stock_quantity < ?)
		FROM products
	`, lowStockThreshold).Row()

	err = row.Scan(&resp.TotalProducts, &resp.LowStockProducts)
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	return resp, nil
}
