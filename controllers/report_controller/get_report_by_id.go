package report_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReportByID godoc
// @Summary Get a saved report
// @Description Returns one report in full, including its embedded rollup arrays
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsReport}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /reports/{id} [get]
func GetReportByID(c *gin.Context) {
	// A non-UUID id cannot match any stored report.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse("Report not found"))
		return
	}

	log.Printf("[reports.get] start id=%s", id)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var report models.AnalyticsReport
	if err := config.Gorm.WithContext(ctx).
		First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[reports.get] not found id=%s", id)
			c.JSON(http.StatusNotFound, models.ErrorResponse("Report not found"))
			return
		}
		log.Printf("[reports.get] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	log.Printf("[reports.get] respond 200 id=%s", id)

	c.JSON(http.StatusOK, models.SuccessResponse(report))
}
