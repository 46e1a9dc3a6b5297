package services

import (
	"context"

	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesInRange loads all sales whose report date falls inside the inclusive
// range. The (report_date, id) ordering keeps aggregation input - and so
// top-N tie order - stable across repeated calls.
func SalesInRange(ctx context.Context, db *gorm.DB, dr utils.DateRange) ([]models.Sale, error) {
	var sales []models.Sale
	err := db.WithContext(ctx).
		Where("report_date >= ? AND report_date <= ?", dr.Start, dr.End).
		Order("report_date, id").
		Find(&sales).Error
	return sales, err
}

// CustomersByID loads the customers referenced by the given sales into an
// id-keyed lookup map.
func CustomersByID(ctx context.Context, db *gorm.DB, sales []models.Sale) (map[uuid.UUID]models.Customer, error) {
	ids := make([]uuid.UUID, 0, len(sales))
	seen := make(map[uuid.UUID]struct{}, len(sales))
	for i := range sales {
		if _, ok := seen[sales[i].CustomerID]; ok {
			continue
		}
		seen[sales[i].CustomerID] = struct{}{}
		ids = append(ids, sales[i].CustomerID)
	}

	lookup := make(map[uuid.UUID]models.Customer, len(ids))
	if len(ids) == 0 {
		return lookup, nil
	}

	var customers []models.Customer
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&customers).Error; err != nil {
		return nil, err
	}
	for i := range customers {
		lookup[customers[i].ID] = customers[i]
	}
	return lookup, nil
}

// ProductsByID loads the products referenced by the given sales into an
// id-keyed lookup map.
func ProductsByID(ctx context.Context, db *gorm.DB, sales []models.Sale) (map[uuid.UUID]models.Product, error) {
	ids := make([]uuid.UUID, 0, len(sales))
	seen := make(map[uuid.UUID]struct{}, len(sales))
	for i := range sales {
		if _, ok := seen[sales[i].ProductID]; ok {
			continue
		}
		seen[sales[i].ProductID] = struct{}{}
		ids = append(ids, sales[i].ProductID)
	}

	lookup := make(map[uuid.UUID]models.Product, len(ids))
	if len(ids) == 0 {
		return lookup, nil
	}

	var products []models.Product
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		lookup[products[i].ID] = products[i]
	}
	return lookup, nil
}
