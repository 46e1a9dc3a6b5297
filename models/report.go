package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Embedded snapshot shapes (JSONB)
// ═══════════════════════════════════════════════════════════

// ReportTopProduct is the trimmed top-product row frozen into a report.
type ReportTopProduct struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	TotalSold int       `json:"totalSold"`
	Revenue   float64   `json:"revenue"`
}

// ReportTopCustomer is the trimmed top-customer row frozen into a report.
type ReportTopCustomer struct {
	CustomerID  uuid.UUID `json:"customerId"`
	Name        string    `json:"name"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  float64   `json:"totalSpent"`
}

type ReportRegionStat struct {
	Region        string  `json:"region"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

type ReportCategoryStat struct {
	Category      string  `json:"category"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// Create custom types for slices (so we can add methods)
type (
	ReportTopProductList   []ReportTopProduct
	ReportTopCustomerList  []ReportTopCustomer
	ReportRegionStatList   []ReportRegionStat
	ReportCategoryStatList []ReportCategoryStat
)

// ═══════════════════════════════════════════════════════════
// Main AnalyticsReport Model (GORM)
// ═══════════════════════════════════════════════════════════

// AnalyticsReport is an immutable point-in-time snapshot. The embedded lists
// are copied at generation time and never reflect later data changes; rows
// are only ever created, never updated.
type AnalyticsReport struct {
	ID            uuid.UUID              `json:"id" gorm:"type:uuid;primaryKey"`
	StartDate     time.Time              `json:"startDate" gorm:"not null;index:idx_reports_range"`
	EndDate       time.Time              `json:"endDate" gorm:"not null;index:idx_reports_range"`
	TotalOrders   int                    `json:"totalOrders" gorm:"not null;default:0"`
	TotalRevenue  float64                `json:"totalRevenue" gorm:"type:numeric(14,2);not null;default:0"`
	AvgOrderValue float64                `json:"avgOrderValue" gorm:"type:numeric(12,2);not null;default:0"`
	TopProducts   ReportTopProductList   `json:"topProducts" gorm:"type:jsonb;not null;default:'[]'"`
	TopCustomers  ReportTopCustomerList  `json:"topCustomers" gorm:"type:jsonb;not null;default:'[]'"`
	RegionStats   ReportRegionStatList   `json:"regionWiseStats" gorm:"type:jsonb;not null;default:'[]'"`
	CategoryStats ReportCategoryStatList `json:"categoryWiseStats" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt     time.Time              `json:"createdAt" gorm:"autoCreateTime;index:idx_reports_created,sort:desc"`
	UpdatedAt     time.Time              `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *AnalyticsReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (AnalyticsReport) TableName() string {
	return "analytics_reports"
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type GenerateReportRequest struct {
	StartDate string `json:"startDate" binding:"required" example:"2024-01-01"`
	EndDate   string `json:"endDate" binding:"required" example:"2024-01-31"`
}

// ReportListRow is a report without its embedded arrays, used by the
// paginated listing.
type ReportListRow struct {
	ID            uuid.UUID `json:"id"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	TotalOrders   int       `json:"totalOrders"`
	TotalRevenue  float64   `json:"totalRevenue"`
	AvgOrderValue float64   `json:"avgOrderValue"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

// ReportTopProductList methods
func (l *ReportTopProductList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ReportTopProductList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ReportTopProductList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ReportTopProductList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ReportTopProduct{})
	}
	return json.Marshal(l)
}

// ReportTopCustomerList methods
func (l *ReportTopCustomerList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ReportTopCustomerList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ReportTopCustomerList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ReportTopCustomerList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ReportTopCustomer{})
	}
	return json.Marshal(l)
}

// ReportRegionStatList methods
func (l *ReportRegionStatList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ReportRegionStatList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ReportRegionStatList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ReportRegionStatList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ReportRegionStat{})
	}
	return json.Marshal(l)
}

// ReportCategoryStatList methods
func (l *ReportCategoryStatList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ReportCategoryStatList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ReportCategoryStatList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ReportCategoryStatList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ReportCategoryStat{})
	}
	return json.Marshal(l)
}
