package routes

import (
	"github.com/bachu154/sales-analytics-dashboard-assignment/controllers/report_controller"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")

	reports.POST("", report_controller.GenerateReport)
	reports.GET("", report_controller.GetReports)
	reports.GET("/:id", report_controller.GetReportByID)
}
