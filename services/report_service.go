package services

import (
	"context"

	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const reportTopN = 5

// RangeSnapshot is the immutable input every report sub-aggregate reads.
type RangeSnapshot struct {
	Sales     []models.Sale
	Customers map[uuid.UUID]models.Customer
	Products  map[uuid.UUID]models.Product
}

// LoadRangeSnapshot fetches the sales for the range plus the customers and
// products they reference.
func LoadRangeSnapshot(ctx context.Context, db *gorm.DB, dr utils.DateRange) (*RangeSnapshot, error) {
	sales, err := SalesInRange(ctx, db, dr)
	if err != nil {
		return nil, err
	}

	var (
		customers map[uuid.UUID]models.Customer
		products  map[uuid.UUID]models.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = CustomersByID(gctx, db, sales)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = ProductsByID(gctx, db, sales)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &RangeSnapshot{Sales: sales, Customers: customers, Products: products}, nil
}

// GenerateReport builds and persists a new immutable report for the range.
// The five sub-aggregates are order-independent reads of the same snapshot
// and run concurrently; any failure aborts before the single Create, so
// there is never a partial write.
func GenerateReport(ctx context.Context, db *gorm.DB, dr utils.DateRange) (*models.AnalyticsReport, error) {
	snapshot, err := LoadRangeSnapshot(ctx, db, dr)
	if err != nil {
		return nil, err
	}

	report := buildReport(ctx, snapshot, dr)
	if err := db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// buildReport fans the five computations out and assembles the snapshot
// entity. Split from GenerateReport so the aggregate shape is testable
// without a database.
func buildReport(ctx context.Context, snapshot *RangeSnapshot, dr utils.DateRange) *models.AnalyticsReport {
	// Lists start non-nil so empty ranges serialize as [] on the wire.
	var summary models.RevenueSummary
	topProducts := make(models.ReportTopProductList, 0, reportTopN)
	topCustomers := make(models.ReportTopCustomerList, 0, reportTopN)
	regionStats := make(models.ReportRegionStatList, 0)
	categoryStats := make(models.ReportCategoryStatList, 0)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary = Summarize(snapshot.Sales)
		return nil
	})
	g.Go(func() error {
		for _, row := range TopProducts(snapshot.Sales, snapshot.Products, reportTopN) {
			topProducts = append(topProducts, models.ReportTopProduct{
				ProductID: row.ProductID,
				Name:      row.Name,
				TotalSold: row.TotalSold,
				Revenue:   row.TotalRevenue,
			})
		}
		return nil
	})
	g.Go(func() error {
		for _, row := range TopCustomers(snapshot.Sales, snapshot.Customers, reportTopN) {
			topCustomers = append(topCustomers, models.ReportTopCustomer{
				CustomerID:  row.CustomerID,
				Name:        row.Name,
				TotalOrders: row.TotalOrders,
				TotalSpent:  row.TotalSpent,
			})
		}
		return nil
	})
	g.Go(func() error {
		for _, row := range RegionStats(snapshot.Sales, snapshot.Customers) {
			regionStats = append(regionStats, models.ReportRegionStat{
				Region:        row.Region,
				TotalOrders:   row.TotalOrders,
				TotalRevenue:  row.TotalRevenue,
				AvgOrderValue: row.AvgOrderValue,
			})
		}
		return nil
	})
	g.Go(func() error {
		for _, row := range CategoryStats(snapshot.Sales, snapshot.Products) {
			categoryStats = append(categoryStats, models.ReportCategoryStat{
				Category:      row.Category,
				TotalOrders:   row.TotalOrders,
				TotalRevenue:  row.TotalRevenue,
				AvgOrderValue: row.AvgOrderValue,
			})
		}
		return nil
	})
	_ = g.Wait() // in-memory passes cannot fail

	return &models.AnalyticsReport{
		StartDate:     dr.Start,
		EndDate:       dr.End,
		TotalOrders:   summary.TotalOrders,
		TotalRevenue:  summary.TotalRevenue,
		AvgOrderValue: summary.AvgOrderValue,
		TopProducts:   topProducts,
		TopCustomers:  topCustomers,
		RegionStats:   regionStats,
		CategoryStats: categoryStats,
	}
}
