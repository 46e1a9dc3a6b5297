package services

import (
	"testing"
	"time"

	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/google/uuid"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sale(customer models.Customer, product models.Product, quantity int, revenue float64, reportDate time.Time) models.Sale {
	return models.Sale{
		ID:           uuid.Must(uuid.NewV7()),
		CustomerID:   customer.ID,
		ProductID:    product.ID,
		Quantity:     quantity,
		TotalRevenue: revenue,
		ReportDate:   reportDate,
	}
}

func customer(name, region, ctype string) models.Customer {
	return models.Customer{ID: uuid.Must(uuid.NewV7()), Name: name, Region: region, Type: ctype}
}

func product(name, category string, price float64) models.Product {
	return models.Product{ID: uuid.Must(uuid.NewV7()), Name: name, Category: category, Price: price}
}

func customerMap(customers ...models.Customer) map[uuid.UUID]models.Customer {
	m := make(map[uuid.UUID]models.Customer)
	for _, c := range customers {
		m[c.ID] = c
	}
	return m
}

func productMap(products ...models.Product) map[uuid.UUID]models.Product {
	m := make(map[uuid.UUID]models.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}

func TestRevenueByDay(t *testing.T) {
	// Two sales on Jan 1, one on Jan 2.
	cust := customer("Smile Retail", "North", "Business")
	prod := product("Classic Lamp", "Home", 50)
	sales := []models.Sale{
		sale(cust, prod, 2, 100, day(2024, 1, 1)),
		sale(cust, prod, 1, 50, day(2024, 1, 1)),
		sale(cust, prod, 1, 75, day(2024, 1, 2)),
	}

	days := RevenueByDay(sales)
	if len(days) != 2 {
		t.Fatalf("Expected 2 day buckets, got %d", len(days))
	}

	first := days[0]
	if first.Day != "2024-01-01" {
		t.Errorf("Expected first day 2024-01-01, got %s", first.Day)
	}
	if first.TotalRevenue != 150 || first.TotalOrders != 2 || first.AvgOrderValue != 75 {
		t.Errorf("Day 1 incorrect: %+v", first)
	}

	second := days[1]
	if second.Day != "2024-01-02" {
		t.Errorf("Expected second day 2024-01-02, got %s", second.Day)
	}
	if second.TotalRevenue != 75 || second.TotalOrders != 1 || second.AvgOrderValue != 75 {
		t.Errorf("Day 2 incorrect: %+v", second)
	}

	summary := Summarize(sales)
	if summary.TotalRevenue != 225 || summary.TotalOrders != 3 || summary.AvgOrderValue != 75 {
		t.Errorf("Summary incorrect: %+v", summary)
	}
}

func TestSummarizeEmptyReturnsZeros(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalRevenue != 0 || summary.TotalOrders != 0 || summary.AvgOrderValue != 0 {
		t.Errorf("Expected all-zero summary, got %+v", summary)
	}
}

func TestRevenueByDayEmpty(t *testing.T) {
	days := RevenueByDay(nil)
	if days == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(days) != 0 {
		t.Errorf("Expected no day buckets, got %d", len(days))
	}
}

func TestTopProductsLimitAndOrder(t *testing.T) {
	// Three products with 5, 3 and 9 units sold; limit 2 keeps the 9 and 5.
	cust := customer("Atlas Group", "East", "Enterprise")
	pa := product("Pro Monitor", "Electronics", 200)
	pb := product("Eco Journal", "Books", 15)
	pc := product("Ultra Racket", "Sports", 80)
	sales := []models.Sale{
		sale(cust, pa, 5, 1000, day(2024, 3, 1)),
		sale(cust, pb, 3, 45, day(2024, 3, 1)),
		sale(cust, pc, 4, 320, day(2024, 3, 2)),
		sale(cust, pc, 5, 400, day(2024, 3, 3)),
	}

	rows := TopProducts(sales, productMap(pa, pb, pc), 2)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].ProductID != pc.ID || rows[0].TotalSold != 9 {
		t.Errorf("Expected 9-unit product first, got %+v", rows[0])
	}
	if rows[1].ProductID != pa.ID || rows[1].TotalSold != 5 {
		t.Errorf("Expected 5-unit product second, got %+v", rows[1])
	}

	// Join fields come from the product record.
	if rows[0].Name != "Ultra Racket" || rows[0].Category != "Sports" || rows[0].Price != 80 {
		t.Errorf("Product join fields incorrect: %+v", rows[0])
	}
	if rows[0].TotalOrders != 2 || rows[0].TotalRevenue != 720 {
		t.Errorf("Product aggregates incorrect: %+v", rows[0])
	}
}

func TestTopProductsTiesAreStable(t *testing.T) {
	cust := customer("Beacon Stores", "West", "Individual")
	pa := product("Deluxe Kettle", "Home", 40)
	pb := product("Smart Serum", "Beauty", 25)
	sales := []models.Sale{
		sale(cust, pa, 4, 160, day(2024, 5, 1)),
		sale(cust, pb, 4, 100, day(2024, 5, 2)),
	}
	products := productMap(pa, pb)

	for i := 0; i < 10; i++ {
		rows := TopProducts(sales, products, 10)
		if len(rows) != 2 {
			t.Fatalf("Expected 2 rows, got %d", len(rows))
		}
		// Equal units sold: first-seen product stays first.
		if rows[0].ProductID != pa.ID || rows[1].ProductID != pb.ID {
			t.Fatalf("Tie order changed on run %d: %+v", i, rows)
		}
	}
}

func TestTopProductsSkipsUnknownReferences(t *testing.T) {
	cust := customer("Harbor Supplies", "South", "Business")
	known := product("Essential Guide", "Books", 20)
	orphan := product("Ghost", "Books", 10)
	sales := []models.Sale{
		sale(cust, known, 1, 20, day(2024, 2, 1)),
		sale(cust, orphan, 9, 90, day(2024, 2, 1)),
	}

	rows := TopProducts(sales, productMap(known), 10)
	if len(rows) != 1 {
		t.Fatalf("Expected orphan sale to be dropped, got %d rows", len(rows))
	}
	if rows[0].ProductID != known.ID {
		t.Errorf("Expected known product, got %+v", rows[0])
	}
}

func TestTopCustomers(t *testing.T) {
	ca := customer("Zenith Partners", "Central", "Enterprise")
	cb := customer("Willow Retail", "North", "Individual")
	prod := product("Compact Speaker", "Electronics", 60)
	sales := []models.Sale{
		sale(ca, prod, 1, 60, day(2024, 4, 1)),
		sale(cb, prod, 2, 120, day(2024, 4, 1)),
		sale(cb, prod, 3, 180, day(2024, 4, 2)),
	}

	rows := TopCustomers(sales, customerMap(ca, cb), 10)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].CustomerID != cb.ID {
		t.Errorf("Expected biggest spender first, got %+v", rows[0])
	}
	if rows[0].TotalSpent != 300 || rows[0].TotalOrders != 2 || rows[0].AvgOrderValue != 150 {
		t.Errorf("Customer aggregates incorrect: %+v", rows[0])
	}
	if rows[0].Region != "North" || rows[0].Type != "Individual" {
		t.Errorf("Customer join fields incorrect: %+v", rows[0])
	}

	limited := TopCustomers(sales, customerMap(ca, cb), 1)
	if len(limited) != 1 || limited[0].CustomerID != cb.ID {
		t.Errorf("Limit 1 should keep only the top spender, got %+v", limited)
	}
}

func TestRegionStats(t *testing.T) {
	// Two North customers, one South; no sales in other regions.
	na := customer("Crestline Trading", "North", "Business")
	nb := customer("Meridian Group", "North", "Enterprise")
	sa := customer("Orchard Stores", "South", "Individual")
	prod := product("Modern Rug", "Home", 100)
	sales := []models.Sale{
		sale(na, prod, 1, 100, day(2024, 6, 1)),
		sale(nb, prod, 2, 200, day(2024, 6, 1)),
		sale(na, prod, 1, 100, day(2024, 6, 2)),
		sale(sa, prod, 1, 100, day(2024, 6, 2)),
	}

	rows := RegionStats(sales, customerMap(na, nb, sa))
	if len(rows) != 2 {
		t.Fatalf("Expected exactly 2 regions (no zero-count rows), got %d", len(rows))
	}

	north := rows[0]
	if north.Region != "North" {
		t.Fatalf("Expected North first by revenue, got %s", north.Region)
	}
	if north.TotalRevenue != 400 || north.TotalOrders != 3 {
		t.Errorf("North aggregates incorrect: %+v", north)
	}
	if north.UniqueCustomers != 2 {
		t.Errorf("Expected 2 distinct North customers, got %d", north.UniqueCustomers)
	}

	south := rows[1]
	if south.Region != "South" || south.UniqueCustomers != 1 || south.TotalRevenue != 100 {
		t.Errorf("South aggregates incorrect: %+v", south)
	}
}

func TestCategoryStats(t *testing.T) {
	cust := customer("Sterling Holdings", "West", "Business")
	ea := product("Premium Camera", "Electronics", 500)
	eb := product("Classic Keyboard", "Electronics", 90)
	book := product("Pioneer Atlas", "Books", 30)
	sales := []models.Sale{
		sale(cust, ea, 1, 500, day(2024, 7, 1)),
		sale(cust, eb, 2, 180, day(2024, 7, 1)),
		sale(cust, ea, 1, 500, day(2024, 7, 2)),
		sale(cust, book, 3, 90, day(2024, 7, 2)),
	}

	rows := CategoryStats(sales, productMap(ea, eb, book))
	if len(rows) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(rows))
	}

	electronics := rows[0]
	if electronics.Category != "Electronics" {
		t.Fatalf("Expected Electronics first by revenue, got %s", electronics.Category)
	}
	if electronics.TotalRevenue != 1180 || electronics.TotalOrders != 3 || electronics.TotalQuantity != 4 {
		t.Errorf("Electronics aggregates incorrect: %+v", electronics)
	}
	if electronics.UniqueProducts != 2 {
		t.Errorf("Expected 2 distinct Electronics products, got %d", electronics.UniqueProducts)
	}

	books := rows[1]
	if books.Category != "Books" || books.UniqueProducts != 1 || books.TotalQuantity != 3 {
		t.Errorf("Books aggregates incorrect: %+v", books)
	}
}
