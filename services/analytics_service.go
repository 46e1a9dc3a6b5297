package services

import (
	"sort"

	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/google/uuid"
)

// The aggregation engine: pure grouping passes over an in-range slice of
// sales plus id-keyed lookup maps of the entities they reference. Sales
// whose customer or product is missing from the map are dropped, matching
// inner-join semantics. Callers load sales ordered by (report_date, id), so
// accumulation order - and therefore tie order after a stable sort - is
// deterministic across calls on unchanged data.

// RevenueByDay groups sales into YYYY-MM-DD buckets, ascending by day.
func RevenueByDay(sales []models.Sale) []models.DailyRevenue {
	byDay := make(map[string]*models.DailyRevenue)
	for i := range sales {
		day := sales[i].ReportDate.Format("2006-01-02")
		row, ok := byDay[day]
		if !ok {
			row = &models.DailyRevenue{Day: day}
			byDay[day] = row
		}
		row.TotalRevenue += sales[i].TotalRevenue
		row.TotalOrders++
	}

	days := make([]models.DailyRevenue, 0, len(byDay))
	for _, row := range byDay {
		row.AvgOrderValue = row.TotalRevenue / float64(row.TotalOrders)
		days = append(days, *row)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}

// Summarize rolls the whole range into one row. No matching sales yields
// zeros for all three fields, never an absent summary.
func Summarize(sales []models.Sale) models.RevenueSummary {
	var summary models.RevenueSummary
	for i := range sales {
		summary.TotalRevenue += sales[i].TotalRevenue
		summary.TotalOrders++
	}
	if summary.TotalOrders > 0 {
		summary.AvgOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)
	}
	return summary
}

// TopProducts ranks products by units sold, descending, truncated to limit.
func TopProducts(sales []models.Sale, products map[uuid.UUID]models.Product, limit int) []models.TopProductRow {
	byProduct := make(map[uuid.UUID]*models.TopProductRow)
	order := make([]uuid.UUID, 0)

	for i := range sales {
		product, ok := products[sales[i].ProductID]
		if !ok {
			continue
		}
		row, ok := byProduct[product.ID]
		if !ok {
			row = &models.TopProductRow{
				ProductID: product.ID,
				Name:      product.Name,
				Category:  product.Category,
				Price:     product.Price,
			}
			byProduct[product.ID] = row
			order = append(order, product.ID)
		}
		row.TotalSold += sales[i].Quantity
		row.TotalRevenue += sales[i].TotalRevenue
		row.TotalOrders++
	}

	rows := make([]models.TopProductRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byProduct[id])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalSold > rows[j].TotalSold })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// TopCustomers ranks customers by total spend, descending, truncated to limit.
func TopCustomers(sales []models.Sale, customers map[uuid.UUID]models.Customer, limit int) []models.TopCustomerRow {
	byCustomer := make(map[uuid.UUID]*models.TopCustomerRow)
	order := make([]uuid.UUID, 0)

	for i := range sales {
		customer, ok := customers[sales[i].CustomerID]
		if !ok {
			continue
		}
		row, ok := byCustomer[customer.ID]
		if !ok {
			row = &models.TopCustomerRow{
				CustomerID: customer.ID,
				Name:       customer.Name,
				Region:     customer.Region,
				Type:       customer.Type,
			}
			byCustomer[customer.ID] = row
			order = append(order, customer.ID)
		}
		row.TotalSpent += sales[i].TotalRevenue
		row.TotalOrders++
	}

	rows := make([]models.TopCustomerRow, 0, len(order))
	for _, id := range order {
		row := *byCustomer[id]
		row.AvgOrderValue = row.TotalSpent / float64(row.TotalOrders)
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalSpent > rows[j].TotalSpent })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// RegionStats rolls sales up by customer region, descending by revenue.
// Only regions with at least one qualifying sale appear.
func RegionStats(sales []models.Sale, customers map[uuid.UUID]models.Customer) []models.RegionStat {
	type regionAcc struct {
		stat      models.RegionStat
		customers map[uuid.UUID]struct{}
	}
	byRegion := make(map[string]*regionAcc)
	order := make([]string, 0)

	for i := range sales {
		customer, ok := customers[sales[i].CustomerID]
		if !ok {
			continue
		}
		acc, ok := byRegion[customer.Region]
		if !ok {
			acc = &regionAcc{
				stat:      models.RegionStat{Region: customer.Region},
				customers: make(map[uuid.UUID]struct{}),
			}
			byRegion[customer.Region] = acc
			order = append(order, customer.Region)
		}
		acc.stat.TotalRevenue += sales[i].TotalRevenue
		acc.stat.TotalOrders++
		acc.customers[customer.ID] = struct{}{}
	}

	rows := make([]models.RegionStat, 0, len(order))
	for _, region := range order {
		acc := byRegion[region]
		acc.stat.AvgOrderValue = acc.stat.TotalRevenue / float64(acc.stat.TotalOrders)
		acc.stat.UniqueCustomers = len(acc.customers)
		rows = append(rows, acc.stat)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalRevenue > rows[j].TotalRevenue })
	return rows
}

// CategoryStats rolls sales up by product category, descending by revenue.
func CategoryStats(sales []models.Sale, products map[uuid.UUID]models.Product) []models.CategoryStat {
	type categoryAcc struct {
		stat     models.CategoryStat
		products map[uuid.UUID]struct{}
	}
	byCategory := make(map[string]*categoryAcc)
	order := make([]string, 0)

	for i := range sales {
		product, ok := products[sales[i].ProductID]
		if !ok {
			continue
		}
		acc, ok := byCategory[product.Category]
		if !ok {
			acc = &categoryAcc{
				stat:     models.CategoryStat{Category: product.Category},
				products: make(map[uuid.UUID]struct{}),
			}
			byCategory[product.Category] = acc
			order = append(order, product.Category)
		}
		acc.stat.TotalRevenue += sales[i].TotalRevenue
		acc.stat.TotalOrders++
		acc.stat.TotalQuantity += sales[i].Quantity
		acc.products[product.ID] = struct{}{}
	}

	rows := make([]models.CategoryStat, 0, len(order))
	for _, category := range order {
		acc := byCategory[category]
		acc.stat.AvgOrderValue = acc.stat.TotalRevenue / float64(acc.stat.TotalOrders)
		acc.stat.UniqueProducts = len(acc.products)
		rows = append(rows, acc.stat)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalRevenue > rows[j].TotalRevenue })
	return rows
}
