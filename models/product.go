package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ProductCategories = []string{"Electronics", "Clothing", "Books", "Home", "Sports", "Beauty"}

type Product struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Category  string    `json:"category" gorm:"not null;index:idx_products_category;check:category IN ('Electronics', 'Clothing', 'Books', 'Home', 'Sports', 'Beauty')"`
	Price     float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}
