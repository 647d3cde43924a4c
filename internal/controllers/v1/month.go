package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-budget/backend/internal/aggregate"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/types"
)

type MonthResponse struct {
	Data  *aggregate.MonthOverview `json:"data"`                                                                             // Data for the month
	Error *string                  `json:"error" example:"could not parse the specified month, did you use YYYY-MM format?"` // The error, if any occurred
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsMonth)
	r.GET("/:month", co.GetMonth)
}

// OptionsMonth returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Months
//	@Success		204
//	@Param			month	path	string	true	"The month in YYYY-MM format"
//	@Security		Bearer
//	@Router			/v1/months/{month} [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetMonth returns the budgets of a month with their usage
//
//	@Summary		Get month
//	@Description	Returns every budget of the month with its usage, the overall usage and the income of the month
//	@Tags			Months
//	@Produce		json
//	@Success		200		{object}	MonthResponse
//	@Failure		400		{object}	MonthResponse
//	@Failure		500		{object}	MonthResponse
//	@Param			month	path		string	true	"The month in YYYY-MM format"
//	@Security		Bearer
//	@Router			/v1/months/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	s, err := co.snapshot(currentUser(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	data := s.MonthOverview(types.MonthOf(uri.Month))
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}
