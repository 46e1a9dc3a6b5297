package analytics_controller

import (
	"net/http"

	"github.com/bachu154/sales-analytics-dashboard-assignment/models"
	"github.com/bachu154/sales-analytics-dashboard-assignment/utils"
	"github.com/gin-gonic/gin"
)

const defaultTopLimit = 10

type dateRangeQuery struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

// queryDateRange binds and validates the startDate/endDate query pair. On
// failure it writes the 400 itself and returns ok=false; validation always
// short-circuits before any query runs.
func queryDateRange(c *gin.Context) (utils.DateRange, bool) {
	var q dateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		if fieldErrs := utils.FieldErrors(err); fieldErrs != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse("Validation errors", fieldErrs))
		} else {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid query parameters"))
		}
		return utils.DateRange{}, false
	}

	dr, err := utils.ValidateDateRange(q.StartDate, q.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return utils.DateRange{}, false
	}
	return dr, true
}
