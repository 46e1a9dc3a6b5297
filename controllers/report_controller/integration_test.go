package report_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/gin-gonic/gin"
)

// These tests run against a real Postgres (DATABASE_URL) and cover the paths
// the handler-only tests cannot: the listing query and report persistence.

func setupIntegration(t *testing.T) *gin.Engine {
	t.Helper()
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires Postgres via DATABASE_URL)")
	}

	config.InitDB()
	t.Cleanup(config.CloseDB)
	if err := models.Migrate(config.Gorm); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/reports", GenerateReport)
	router.GET("/reports", GetReports)
	router.GET("/reports/:id", GetReportByID)
	return router
}

func TestGetReportsBeyondLastPageReturnsEmptyArray(t *testing.T) {
	router := setupIntegration(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports?page=99999&limit=10", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var body struct {
		Success bool              `json:"success"`
		Data    models.ReportPage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response is not JSON: %v", err)
	}
	if !body.Success {
		t.Error("Expected success=true")
	}
	if body.Data.Reports == nil {
		t.Fatal("Expected reports to be an empty array, got null")
	}
	if len(body.Data.Reports) != 0 {
		t.Errorf("Expected no reports past the last page, got %d", len(body.Data.Reports))
	}
	if body.Data.Pagination.Current != 99999 {
		t.Errorf("Expected current page echoed back, got %d", body.Data.Pagination.Current)
	}
}

func TestGenerateReportPersistsDistinctSnapshots(t *testing.T) {
	router := setupIntegration(t)

	var before int64
	if err := config.Gorm.Model(&models.AnalyticsReport{}).Count(&before).Error; err != nil {
		t.Fatalf("Count: %v", err)
	}

	generate := func() models.AnalyticsReport {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports",
			strings.NewReader(`{"startDate":"2024-01-01","endDate":"2024-01-31"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		var body struct {
			Data models.AnalyticsReport `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("Response is not JSON: %v", err)
		}
		return body.Data
	}

	// The same range generated twice yields two independent snapshots.
	first := generate()
	second := generate()

	if first.ID == second.ID {
		t.Fatalf("Expected distinct report IDs, both were %s", first.ID)
	}
	if first.CreatedAt.IsZero() || second.CreatedAt.IsZero() {
		t.Errorf("Expected persisted timestamps, got %v and %v", first.CreatedAt, second.CreatedAt)
	}

	var after int64
	if err := config.Gorm.Model(&models.AnalyticsReport{}).Count(&after).Error; err != nil {
		t.Fatalf("Count: %v", err)
	}
	if after != before+2 {
		t.Errorf("Expected 2 new rows, went from %d to %d", before, after)
	}

	// Each snapshot is retrievable by its own id.
	for _, want := range []models.AnalyticsReport{first, second} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/"+want.ID.String(), nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200 for %s, got %d", want.ID, w.Code)
		}
		var body struct {
			Data models.AnalyticsReport `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("Response is not JSON: %v", err)
		}
		if body.Data.ID != want.ID {
			t.Errorf("Expected report %s, got %s", want.ID, body.Data.ID)
		}
	}
}
