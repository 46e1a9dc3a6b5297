package report_controller

import (
	"log"
	"net/http"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/services"
	"github.com/bachu154/sales-analytics-dashboard-assignment/utils"
	"github.com/gin-gonic/gin"
)

// GenerateReport godoc
// @Summary Generate an analytics report
// @Description Computes summary, top-5 products/customers and region/category rollups for a date range and persists them as an immutable snapshot
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body models.GenerateReportRequest true "Report date range"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsReport}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /reports [post]
func GenerateReport(c *gin.Context) {
	var req models.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fieldErrs := utils.FieldErrors(err); fieldErrs != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse("Validation errors", fieldErrs))
		} else {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
		}
		return
	}

	dr, err := utils.ValidateDateRange(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	log.Printf("[reports.generate] start range=%s..%s",
		dr.Start.Format("2006-01-02"), dr.End.Format("2006-01-02"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	report, err := services.GenerateReport(ctx, config.Gorm, dr)
	if err != nil {
		log.Printf("[reports.generate] ERROR generate err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	log.Printf("[reports.generate] respond 200 report=%s orders=%d revenue=%.2f",
		report.ID, report.TotalOrders, report.TotalRevenue)

	c.JSON(http.StatusOK, models.MessageResponse("Analytics report generated successfully", report))
}
