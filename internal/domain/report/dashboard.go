package report

import (
	"github.com/crown/backend/internal/domain/fleet"
	"github.com/shopspring/decimal"
)

// MakeAggregate groups the cars of one make
type MakeAggregate struct {
	Make  string          `json:"make"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

// StatusCount is the number of cars in one status
type StatusCount struct {
	Status fleet.CarStatus `json:"status"`
	Count  int             `json:"count"`
}

// DashboardStats is a read model derived from the car list on every request.
// Nothing here is cached or maintained incrementally.
type DashboardStats struct {
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	ActiveInventoryValue decimal.Decimal `json:"active_inventory_value"`
	CarsSold             int             `json:"cars_sold"`
	InventoryCount       int             `json:"inventory_count"`
	TotalVehicles        int             `json:"total_vehicles"`
	ByMake               []MakeAggregate `json:"by_make"`
	ByStatus             []StatusCount   `json:"by_status"`
}

// TotalRevenue sums the price of every sold car
func TotalRevenue(cars []fleet.Car) decimal.Decimal {
	return sumWhere(cars, fleet.CarStatusSold)
}

// ActiveInventoryValue sums the price of every available car.
// Reserved cars count toward neither revenue nor inventory.
func ActiveInventoryValue(cars []fleet.Car) decimal.Decimal {
	return sumWhere(cars, fleet.CarStatusAvailable)
}

func sumWhere(cars []fleet.Car, status fleet.CarStatus) decimal.Decimal {
	total := decimal.Zero
	for i := range cars {
		if cars[i].Status == status {
			total = total.Add(cars[i].Price)
		}
	}
	return total
}

// AggregateByMake groups cars by make, in the order each make first appears
func AggregateByMake(cars []fleet.Car) []MakeAggregate {
	groups := make([]MakeAggregate, 0)
	index := make(map[string]int)
	for i := range cars {
		pos, ok := index[cars[i].Make]
		if !ok {
			pos = len(groups)
			index[cars[i].Make] = pos
			groups = append(groups, MakeAggregate{Make: cars[i].Make, Value: decimal.Zero})
		}
		groups[pos].Count++
		groups[pos].Value = groups[pos].Value.Add(cars[i].Price)
	}
	return groups
}

// CountByStatus counts cars per status. Every status is present, zero or not.
func CountByStatus(cars []fleet.Car) []StatusCount {
	statuses := fleet.AllCarStatuses()
	counts := make([]StatusCount, len(statuses))
	for i, s := range statuses {
		counts[i].Status = s
	}
	for i := range cars {
		for j := range counts {
			if counts[j].Status == cars[i].Status {
				counts[j].Count++
				break
			}
		}
	}
	return counts
}

// ComputeDashboard derives all dashboard figures from the car list
func ComputeDashboard(cars []fleet.Car) DashboardStats {
	stats := DashboardStats{
		TotalRevenue:         TotalRevenue(cars),
		ActiveInventoryValue: ActiveInventoryValue(cars),
		TotalVehicles:        len(cars),
		ByMake:               AggregateByMake(cars),
		ByStatus:             CountByStatus(cars),
	}
	for _, sc := range stats.ByStatus {
		switch sc.Status {
		case fleet.CarStatusSold:
			stats.CarsSold = sc.Count
		case fleet.CarStatusAvailable:
			stats.InventoryCount = sc.Count
		}
	}
	return stats
}
