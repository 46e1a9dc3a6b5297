package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is one transactional line. TotalRevenue is stored as-is and is the
// authoritative figure for every aggregation; it is not re-derived from
// price * quantity, so discounted or adjusted lines keep their real value.
// ReportDate is the business date the sale counts toward, not the row's
// creation time.
type Sale struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `json:"customerId" gorm:"type:uuid;not null;index:idx_sales_customer_date"`
	ProductID    uuid.UUID `json:"productId" gorm:"type:uuid;not null;index:idx_sales_product_date"`
	Quantity     int       `json:"quantity" gorm:"not null;check:quantity >= 1"`
	TotalRevenue float64   `json:"totalRevenue" gorm:"type:numeric(14,2);not null;check:total_revenue >= 0"`
	ReportDate   time.Time `json:"reportDate" gorm:"not null;index:idx_sales_report_date;index:idx_sales_customer_date;index:idx_sales_product_date"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerID;references:ID"`
	Product  *Product  `json:"-" gorm:"foreignKey:ProductID;references:ID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}
