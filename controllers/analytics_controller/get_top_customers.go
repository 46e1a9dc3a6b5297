package analytics_controller

import (
	"log"
	"net/http"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/services"
	"github.com/bachu154/sales-analytics-dashboard-assignment/utils"
	"github.com/gin-gonic/gin"
)

// GetTopCustomers godoc
// @Summary Get top customers
// @Description Returns customers ranked by total spend over a date range
// @Tags Analytics
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Param limit query int false "Max rows" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.TopCustomerRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /top-customers [get]
func GetTopCustomers(c *gin.Context) {
	dr, ok := queryDateRange(c)
	if !ok {
		return
	}
	limit := utils.ParseLimit(c.Query("limit"), defaultTopLimit)

	log.Printf("[analytics.top-customers] start range=%s..%s limit=%d",
		dr.Start.Format("2006-01-02"), dr.End.Format("2006-01-02"), limit)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sales, err := services.SalesInRange(ctx, config.Gorm, dr)
	if err != nil {
		log.Printf("[analytics.top-customers] ERROR load sales err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	customers, err := services.CustomersByID(ctx, config.Gorm, sales)
	if err != nil {
		log.Printf("[analytics.top-customers] ERROR load customers err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	rows := services.TopCustomers(sales, customers, limit)

	log.Printf("[analytics.top-customers] respond 200 customers=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(rows))
}
