package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tair/gog-commerce/internal/order/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// SalesReportQuery asks for revenue over the last day, week, month or year
type SalesReportQuery struct {
	Period string
}

// SalesReport is the chart shaped revenue series
type SalesReport struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// SalesReportHandler handles sales report query
type SalesReportHandler struct {
	repo domain.OrderRepository
	now  func() time.Time
}

// NewSalesReportHandler creates a new sales report handler
func NewSalesReportHandler(repo domain.OrderRepository) *SalesReportHandler {
	return &SalesReportHandler{repo: repo, now: time.Now}
}

// SalesWindow returns [now-period, now) for a known period
func SalesWindow(period string, now time.Time) (time.Time, time.Time, error) {
	now = now.UTC()
	switch strings.ToLower(period) {
	case "day":
		return now.AddDate(0, 0, -1), now, nil
	case "week":
		return now.AddDate(0, 0, -7), now, nil
	case "month":
		return now.AddDate(0, -1, 0), now, nil
	case "year":
		return now.AddDate(-1, 0, 0), now, nil
	default:
		return time.Time{}, time.Time{}, apperror.New(apperror.ErrBadRequest, "Invalid time period")
	}
}

// Handle executes the sales report query
func (h *SalesReportHandler) Handle(ctx context.Context, q SalesReportQuery) (*SalesReport, error) {
	from, to, err := SalesWindow(q.Period, h.now())
	if err != nil {
		return nil, err
	}

	sales, err := h.repo.SalesByDay(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	report := &SalesReport{
		Labels: make([]string, 0, len(sales)),
		Data:   make([]float64, 0, len(sales)),
	}
	for _, s := range sales {
		report.Labels = append(report.Labels, s.Day)
		report.Data = append(report.Data, s.Total)
	}
	return report, nil
}
