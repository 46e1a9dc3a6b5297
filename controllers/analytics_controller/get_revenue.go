package analytics_controller

import (
	"log"
	"net/http"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/services"
	"github.com/gin-gonic/gin"
)

// GetRevenue godoc
// @Summary Get revenue time series
// @Description Returns daily revenue, order count and average order value for a date range, plus a range-wide summary
// @Tags Analytics
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.RevenueBreakdown}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /revenue [get]
func GetRevenue(c *gin.Context) {
	dr, ok := queryDateRange(c)
	if !ok {
		return
	}

	log.Printf("[analytics.revenue] start range=%s..%s",
		dr.Start.Format("2006-01-02"), dr.End.Format("2006-01-02"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sales, err := services.SalesInRange(ctx, config.Gorm, dr)
	if err != nil {
		log.Printf("[analytics.revenue] ERROR load sales err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	payload := models.RevenueBreakdown{
		DailyRevenue: services.RevenueByDay(sales),
		Summary:      services.Summarize(sales),
	}

	log.Printf("[analytics.revenue] respond 200 days=%d orders=%d",
		len(payload.DailyRevenue), payload.Summary.TotalOrders)

	c.JSON(http.StatusOK, models.SuccessResponse(payload))
}
