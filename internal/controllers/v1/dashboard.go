package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smart-budget/backend/internal/aggregate"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/types"
)

const recentTransactions = 5

type DashboardQuery struct {
	Range types.RangeLabel `form:"range" example:"monthly"`                     // daily, weekly or monthly. Defaults to monthly.
	Start time.Time        `form:"start" time_format:"2006-01-02" time_utc:"1"` // First day of a custom range, YYYY-MM-DD
	End   time.Time        `form:"end" time_format:"2006-01-02" time_utc:"1"`   // Last day of a custom range, YYYY-MM-DD
}

// dateRange returns the custom range if start or end are set and the
// preset range containing now otherwise.
func (q DashboardQuery) dateRange(now time.Time) (types.DateRange, error) {
	if q.Start.IsZero() && q.End.IsZero() {
		return types.DefaultRange(q.Range, now)
	}

	if q.Start.IsZero() || q.End.IsZero() {
		return types.DateRange{}, errIncompleteRange
	}

	if q.Start.After(q.End) {
		return types.DateRange{}, errInvertedRange
	}

	return types.CustomRange(q.Start, q.End), nil
}

type Dashboard struct {
	Summary    aggregate.Summary `json:"summary"`    // Income, expense and budget figures for the range
	Categories aggregate.Series  `json:"categories"` // Expenses per category in the range
	Recent     []Transaction     `json:"recent"`     // The five newest transactions
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                            // Data for the dashboard
	Error *string    `json:"error" example:"the range must be one of daily, weekly, monthly"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// OptionsDashboard returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Dashboard
//	@Success		204
//	@Security		Bearer
//	@Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetDashboard returns the dashboard for a date range
//
//	@Summary		Get dashboard
//	@Description	Returns the summary and the category expenses for the range together with the most recent transactions
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200		{object}	DashboardResponse
//	@Failure		400		{object}	DashboardResponse
//	@Failure		500		{object}	DashboardResponse
//	@Param			range	query		string	false	"daily, weekly or monthly. Defaults to monthly."
//	@Param			start	query		string	false	"First day of a custom range, YYYY-MM-DD"
//	@Param			end		query		string	false	"Last day of a custom range, YYYY-MM-DD"
//	@Security		Bearer
//	@Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	var query DashboardQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &s,
		})
		return
	}

	r, err := query.dateRange(co.now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	s, err := co.snapshot(currentUser(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	recent := s.Recent(recentTransactions)
	data := Dashboard{
		Summary:    s.Summary(r),
		Categories: s.CategorySeries(r),
		Recent:     make([]Transaction, 0, len(recent)),
	}

	for _, transaction := range recent {
		data.Recent = append(data.Recent, newTransaction(c, s, transaction))
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
