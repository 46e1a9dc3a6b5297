package report_controller

import (
	"log"
	"net/http"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/utils"
	"github.com/gin-gonic/gin"
)

// GetReports godoc
// @Summary List saved reports
// @Description Returns saved reports newest first, without their embedded rollup arrays, plus pagination info
// @Tags Reports
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=models.ReportPage}
// @Failure 500 {object} models.ApiResponse
// @Router /reports [get]
func GetReports(c *gin.Context) {
	page := utils.ParsePage(c.Query("page"))
	limit := utils.ParseLimit(c.Query("limit"), 10)
	offset := (page - 1) * limit

	log.Printf("[reports.list] start page=%d limit=%d", page, limit)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.AnalyticsReport{}).
		Count(&total).Error; err != nil {
		log.Printf("[reports.list] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	// Listing strips the heavy embedded arrays: scalar columns only.
	rows := make([]models.ReportListRow, 0, limit)
	if err := config.Gorm.WithContext(ctx).
		Model(&models.AnalyticsReport{}).
		Select("id, start_date, end_date, total_orders, total_revenue, avg_order_value, created_at").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[reports.list] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	payload := models.ReportPage{
		Reports: rows,
		Pagination: models.Pagination{
			Current: page,
			Pages:   utils.PageCount(total, limit),
			Total:   total,
		},
	}

	log.Printf("[reports.list] respond 200 reports=%d total=%d", len(rows), total)

	c.JSON(http.StatusOK, models.SuccessResponse(payload))
}
