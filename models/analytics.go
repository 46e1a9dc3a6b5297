package models

import "github.com/google/uuid"

// DailyRevenue is one day of the revenue time series.
type DailyRevenue struct {
	Day           string  `json:"day"` // YYYY-MM-DD bucket
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// RevenueSummary aggregates a whole date range. It is always present in
// responses; an empty range yields zeros, not a missing object.
type RevenueSummary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// RevenueBreakdown is the GET /revenue payload.
type RevenueBreakdown struct {
	DailyRevenue []DailyRevenue `json:"dailyRevenue"`
	Summary      RevenueSummary `json:"summary"`
}

// TopProductRow ranks a product by units sold over a range.
type TopProductRow struct {
	ProductID    uuid.UUID `json:"productId"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	TotalSold    int       `json:"totalSold"`
	TotalRevenue float64   `json:"totalRevenue"`
	TotalOrders  int       `json:"totalOrders"`
}

// TopCustomerRow ranks a customer by total spend over a range.
type TopCustomerRow struct {
	CustomerID    uuid.UUID `json:"customerId"`
	Name          string    `json:"name"`
	Region        string    `json:"region"`
	Type          string    `json:"type"`
	TotalSpent    float64   `json:"totalSpent"`
	TotalOrders   int       `json:"totalOrders"`
	AvgOrderValue float64   `json:"avgOrderValue"`
}

// RegionStat is the per-region rollup. UniqueCustomers counts distinct
// customers with at least one sale in range.
type RegionStat struct {
	Region          string  `json:"region"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalOrders     int     `json:"totalOrders"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
	UniqueCustomers int     `json:"uniqueCustomers"`
}

// CategoryStat is the per-category rollup.
type CategoryStat struct {
	Category       string  `json:"category"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	TotalQuantity  int     `json:"totalQuantity"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
	UniqueProducts int     `json:"uniqueProducts"`
}
