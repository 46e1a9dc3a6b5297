package models

import "gorm.io/gorm"

// Migrate creates or updates the four collections. Called at server startup
// and by the seed CLI.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Product{},
		&Sale{},
		&AnalyticsReport{},
	)
}
