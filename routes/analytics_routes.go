package routes

import (
	"github.com/bachu154/sales-analytics-dashboard-assignment/controllers/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	rg.GET("/revenue", analytics_controller.GetRevenue)
	rg.GET("/top-products", analytics_controller.GetTopProducts)
	rg.GET("/top-customers", analytics_controller.GetTopCustomers)
	rg.GET("/region-stats", analytics_controller.GetRegionStats)
	rg.GET("/category-stats", analytics_controller.GetCategoryStats)
}
