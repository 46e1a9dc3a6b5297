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

// GetTopProducts godoc
// @Summary Get top-selling products
// @Description Returns products ranked by units sold over a date range, with revenue and order counts
// @Tags Analytics
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Param limit query int false "Max rows" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.TopProductRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /top-products [get]
func GetTopProducts(c *gin.Context) {
	dr, ok := queryDateRange(c)
	if !ok {
		return
	}
	limit := utils.ParseLimit(c.Query("limit"), defaultTopLimit)

	log.Printf("[analytics.top-products] start range=%s..%s limit=%d",
		dr.Start.Format("2006-01-02"), dr.End.Format("2006-01-02"), limit)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sales, err := services.SalesInRange(ctx, config.Gorm, dr)
	if err != nil {
		log.Printf("[analytics.top-products] ERROR load sales err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	products, err := services.ProductsByID(ctx, config.Gorm, sales)
	if err != nil {
		log.Printf("[analytics.top-products] ERROR load products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	rows := services.TopProducts(sales, products, limit)

	log.Printf("[analytics.top-products] respond 200 products=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(rows))
}
