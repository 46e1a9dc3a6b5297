package analytics_controller

import (
	"log"
	"net/http"

	"github.com/bachu154/sales-analytics-dashboard-assignment/config"
	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/services"
	"github.com/gin-gonic/gin"
)

// GetCategoryStats godoc
// @Summary Get category-wise statistics
// @Description Returns revenue, orders, quantity, average order value and distinct product count per product category
// @Tags Analytics
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryStat}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /category-stats [get]
func GetCategoryStats(c *gin.Context) {
	dr, ok := queryDateRange(c)
	if !ok {
		return
	}

	log.Printf("[analytics.category-stats] start range=%s..%s",
		dr.Start.Format("2006-01-02"), dr.End.Format("2006-01-02"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sales, err := services.SalesInRange(ctx, config.Gorm, dr)
	if err != nil {
		log.Printf("[analytics.category-stats] ERROR load sales err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	products, err := services.ProductsByID(ctx, config.Gorm, sales)
	if err != nil {
		log.Printf("[analytics.category-stats] ERROR load products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	rows := services.CategoryStats(sales, products)

	log.Printf("[analytics.category-stats] respond 200 categories=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(rows))
}
