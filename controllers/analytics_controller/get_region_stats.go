package analytics_controller

import (
	"log"
	"net/http"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/services"
	"github.com/gin-gonic/gin"
)

// GetRegionStats godoc
// @Summary Get region-wise statistics
// @Description Returns revenue, orders, average order value and distinct customer count per region; only regions with sales in range appear
// @Tags Analytics
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.RegionStat}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /region-stats [get]
func GetRegionStats(c *gin.Context) {
	dr, ok := queryDateRange(c)
	if !ok {
		return
	}

	log.Printf("[analytics.region-stats] start range=%s..%s",
		dr.Start.Format("2006-01-02"), dr.End.Format("2006-01-02"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sales, err := services.SalesInRange(ctx, config.Gorm, dr)
	if err != nil {
		log.Printf("[analytics.region-stats] ERROR load sales err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	customers, err := services.CustomersByID(ctx, config.Gorm, sales)
	if err != nil {
		log.Printf("[analytics.region-stats] ERROR load customers err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	rows := services.RegionStats(sales, customers)

	log.Printf("[analytics.region-stats] respond 200 regions=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(rows))
}
