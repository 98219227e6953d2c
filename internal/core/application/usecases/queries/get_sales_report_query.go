package queries

import (
	"errors"
	"fmt"

	"fishmarket/internal/pkg/guard"
)

var (
	ErrGetSalesReportQueryIsNotConstructed = errors.New(
		"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
	)

	// ErrUnknownReportPeriod is returned for a period label other than
	// daily, weekly or monthly.
	ErrUnknownReportPeriod = errors.New("unknown report period")
)

// ReportPeriod is the lookback window for the sales report.
type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
)

// days returns the window length. Month is a fixed 30 days, matching the
// dashboard's rolling window rather than a calendar month.
func (p ReportPeriod) days() int {
	switch p {
	case PeriodDaily:
		return 1
	case PeriodWeekly:
		return 7
	default:
		return 30
	}
}

// GetSalesReportQuery retrieves sales figures for a rolling window ending
// now. Cancelled and still-pending orders are excluded; everything from
// confirmed through delivered counts as a sale.
type GetSalesReportQuery struct {
	period ReportPeriod

	guard guard.ConstructorGuard
}

// NewGetSalesReportQuery creates a report query from the wire period label.
func NewGetSalesReportQuery(period string) (GetSalesReportQuery, error) {
	p := ReportPeriod(period)
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
	default:
		return GetSalesReportQuery{}, fmt.Errorf("%w: %q", ErrUnknownReportPeriod, period)
	}

	return GetSalesReportQuery{period: p, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// Period returns the requested window.
func (q GetSalesReportQuery) Period() ReportPeriod {
	return q.period
}

// GetSalesReportQueryResponse is the sales report read model.
// AverageOrderValue is zero when no orders fell in the window.
type GetSalesReportQueryResponse struct {
	Period            ReportPeriod
	TotalSales        float64
	TotalOrders       int
	AverageOrderValue float64
}
