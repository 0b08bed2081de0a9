// Package report serves the read-only dashboard figures.
package report

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/crown/backend/internal/domain/fleet"
	"github.com/crown/backend/internal/domain/report"
)

// MakeAggregateResponse is one per-make group with a display value
type MakeAggregateResponse struct {
	Make         string          `json:"make"`
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
	ValueDisplay string          `json:"value_display"`
}

// DashboardResponse carries the dashboard figures and their display strings
type DashboardResponse struct {
	TotalRevenue                decimal.Decimal         `json:"total_revenue"`
	TotalRevenueDisplay         string                  `json:"total_revenue_display"`
	ActiveInventoryValue        decimal.Decimal         `json:"active_inventory_value"`
	ActiveInventoryValueDisplay string                  `json:"active_inventory_value_display"`
	CarsSold                    int                     `json:"cars_sold"`
	InventoryCount              int                     `json:"inventory_count"`
	TotalVehicles               int                     `json:"total_vehicles"`
	ByMake                      []MakeAggregateResponse `json:"by_make"`
	ByStatus                    []report.StatusCount    `json:"by_status"`
}

// DashboardService recomputes the dashboard from the car list on every call
type DashboardService struct {
	carRepo fleet.CarRepository
	printer *message.Printer
}

// NewDashboardService creates a new DashboardService with US-English formatting
func NewDashboardService(carRepo fleet.CarRepository) *DashboardService {
	return &DashboardService{
		carRepo: carRepo,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// GetStats derives the dashboard from the current inventory
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardResponse, error) {
	cars, err := s.carRepo.FindAll(ctx, fleet.CarFilter{})
	if err != nil {
		return nil, err
	}

	stats := report.ComputeDashboard(cars)

	byMake := make([]MakeAggregateResponse, len(stats.ByMake))
	for i, agg := range stats.ByMake {
		byMake[i] = MakeAggregateResponse{
			Make:         agg.Make,
			Count:        agg.Count,
			Value:        agg.Value,
			ValueDisplay: s.FormatMoney(agg.Value),
		}
	}

	return &DashboardResponse{
		TotalRevenue:                stats.TotalRevenue,
		TotalRevenueDisplay:         s.FormatMoney(stats.TotalRevenue),
		ActiveInventoryValue:        stats.ActiveInventoryValue,
		ActiveInventoryValueDisplay: s.FormatMoney(stats.ActiveInventoryValue),
		CarsSold:                    stats.CarsSold,
		InventoryCount:              stats.InventoryCount,
		TotalVehicles:               stats.TotalVehicles,
		ByMake:                      byMake,
		ByStatus:                    stats.ByStatus,
	}, nil
}

// FormatMoney renders a dollar amount with thousands separators, e.g. $3,520,000.
// Whole amounts have no fraction; others show cents.
func (s *DashboardService) FormatMoney(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return s.printer.Sprintf("$%d", amount.IntPart())
	}
	return s.printer.Sprintf("$%.2f", amount.InexactFloat64())
}
