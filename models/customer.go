package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer regions and types are fixed sets; the DB check constraints
// mirror them so bad seed data cannot slip in.
var (
	CustomerRegions = []string{"North", "South", "East", "West", "Central"}
	CustomerTypes   = []string{"Individual", "Business", "Enterprise"}
)

type Customer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Region    string    `json:"region" gorm:"not null;index:idx_customers_region_type;check:region IN ('North', 'South', 'East', 'West', 'Central')"`
	Type      string    `json:"type" gorm:"not null;index:idx_customers_region_type;check:type IN ('Individual', 'Business', 'Enterprise')"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}
