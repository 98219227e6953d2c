package queries

import (
	"errors"

	"fishmarket/internal/pkg/guard"
)

var ErrGetAdminStatsQueryIsNotConstructed = errors.New(
	"GetAdminStatsQuery must be created via NewGetAdminStatsQuery constructor",
)

// GetAdminStatsQuery retrieves the dashboard counters. Parameterless.
type GetAdminStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAdminStatsQuery creates a dashboard stats query.
func NewGetAdminStatsQuery() GetAdminStatsQuery {
	return GetAdminStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAdminStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminStatsQueryIsNotConstructed)
}

// GetAdminStatsQueryResponse is the dashboard read model. Revenue figures
// count only paid orders; TotalCustomers counts distinct customers who have
// placed at least one order.
type GetAdminStatsQueryResponse struct {
	TotalOrders      int
	PendingOrders    int
	TotalProducts    int
	LowStockProducts int
	TotalCustomers   int
	TotalRevenue     float64
	TodayRevenue     float64
}
