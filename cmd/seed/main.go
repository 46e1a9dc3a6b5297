package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

const (
	customerCount = 100
	productCount  = 50
	seedDays      = 730 // two years of sales
	insertBatch   = 1000

	// TRUNCATE and ANALYZE over two years of rows outlast the request-scoped
	// 10s budget.
	maintenanceTimeout = 2 * time.Minute
)

var companySuffixes = []string{"Trading", "Retail", "Group", "Supplies", "Holdings", "Distribution", "Stores", "Partners"}

var companyStems = []string{
	"Northwind", "Acme", "Summit", "Harbor", "Pioneer", "Cascade", "Atlas", "Beacon",
	"Crestline", "Evergreen", "Lakeside", "Meridian", "Orchard", "Redwood", "Sterling",
	"Vanguard", "Willow", "Zenith", "Bluefin", "Copperfield",
}

var productAdjectives = []string{"Classic", "Premium", "Compact", "Deluxe", "Essential", "Modern", "Pro", "Ultra", "Eco", "Smart"}

var productNouns = map[string][]string{
	"Electronics": {"Headphones", "Speaker", "Monitor", "Keyboard", "Charger", "Camera"},
	"Clothing":    {"Jacket", "T-Shirt", "Jeans", "Sweater", "Sneakers", "Scarf"},
	"Books":       {"Novel", "Cookbook", "Atlas", "Journal", "Biography", "Guide"},
	"Home":        {"Lamp", "Blender", "Cushion", "Kettle", "Organizer", "Rug"},
	"Sports":      {"Racket", "Dumbbell Set", "Yoga Mat", "Backpack", "Water Bottle", "Helmet"},
	"Beauty":      {"Moisturizer", "Shampoo", "Serum", "Perfume", "Face Mask", "Balm"},
}

// main seeds sample customers, products and two years of sales.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SALES ANALYTICS - Sample Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := models.Migrate(config.Gorm); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	clearData()

	customers := seedCustomers()
	products := seedProducts()
	total := seedSales(customers, products)

	// Refresh planner stats after the bulk load
	ctx, cancel := config.WithCustomTimeout(maintenanceTimeout)
	defer cancel()
	if _, err := config.DB.Exec(ctx, "ANALYZE customers, products, sales"); err != nil {
		log.Printf("WARN analyze failed: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding completed successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Customers: %d\n", len(customers))
	fmt.Printf("Products:  %d\n", len(products))
	fmt.Printf("Sales:     %d\n", total)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the API server: go run main.go")
	fmt.Println("2. Try GET /api/revenue?startDate=<start>&endDate=<end>")
	fmt.Println()
}

func clearData() {
	ctx, cancel := config.WithCustomTimeout(maintenanceTimeout)
	defer cancel()
	sql := "TRUNCATE sales, analytics_reports, customers, products CASCADE"
	if _, err := config.DB.Exec(ctx, sql); err != nil {
		log.Fatalf("Failed to clear existing data: %v", err)
	}
	log.Println("✓ Cleared existing data")
}

func seedCustomers() []models.Customer {
	customers := make([]models.Customer, 0, customerCount)
	for i := 0; i < customerCount; i++ {
		stem := companyStems[rand.Intn(len(companyStems))]
		suffix := companySuffixes[rand.Intn(len(companySuffixes))]
		customers = append(customers, models.Customer{
			Name:   fmt.Sprintf("%s %s %d", stem, suffix, i+1),
			Region: models.CustomerRegions[rand.Intn(len(models.CustomerRegions))],
			Type:   models.CustomerTypes[rand.Intn(len(models.CustomerTypes))],
		})
	}
	if err := config.Gorm.CreateInBatches(&customers, insertBatch).Error; err != nil {
		log.Fatalf("Failed to seed customers: %v", err)
	}
	log.Printf("✓ Created %d customers", len(customers))
	return customers
}

func seedProducts() []models.Product {
	products := make([]models.Product, 0, productCount)
	for i := 0; i < productCount; i++ {
		category := models.ProductCategories[rand.Intn(len(models.ProductCategories))]
		nouns := productNouns[category]
		adjective := productAdjectives[rand.Intn(len(productAdjectives))]
		price := 10 + rand.Float64()*990 // 10.00 - 1000.00
		products = append(products, models.Product{
			Name:     fmt.Sprintf("%s %s %d", adjective, nouns[rand.Intn(len(nouns))], i+1),
			Category: category,
			Price:    float64(int(price*100)) / 100,
		})
	}
	if err := config.Gorm.CreateInBatches(&products, insertBatch).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("✓ Created %d products", len(products))
	return products
}

// seedSales writes 5-20 sales per day over the trailing two years. Generated
// revenue is price * quantity; real data may diverge since stored revenue is
// authoritative.
func seedSales(customers []models.Customer, products []models.Product) int {
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -seedDays)

	sales := make([]models.Sale, 0, insertBatch)
	total := 0
	flush := func() {
		if len(sales) == 0 {
			return
		}
		if err := config.Gorm.CreateInBatches(&sales, insertBatch).Error; err != nil {
			log.Fatalf("Failed to seed sales: %v", err)
		}
		total += len(sales)
		log.Printf("✓ Inserted %d sales records", total)
		sales = sales[:0]
	}

	for ; !day.After(now); day = day.AddDate(0, 0, 1) {
		dailySales := 5 + rand.Intn(16)
		for i := 0; i < dailySales; i++ {
			customer := customers[rand.Intn(len(customers))]
			product := products[rand.Intn(len(products))]
			quantity := 1 + rand.Intn(10)
			sales = append(sales, models.Sale{
				CustomerID:   customer.ID,
				ProductID:    product.ID,
				Quantity:     quantity,
				TotalRevenue: product.Price * float64(quantity),
				ReportDate:   day,
			})
			if len(sales) >= insertBatch {
				flush()
			}
		}
	}
	flush()
	return total
}
