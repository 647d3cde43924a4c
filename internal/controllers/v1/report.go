package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/report"
	"github.com/smart-budget/backend/internal/types"
)

type ReportQuery struct {
	Format string `form:"format,default=json" example:"csv"` // json or csv
}

type ReportResponse struct {
	Data  *report.Report `json:"data"`                                           // The report
	Error *string        `json:"error" example:"the format must be json or csv"` // The error, if any occurred
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsReport)
	r.GET("/:month", co.GetReport)
}

// OptionsReport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Reports
//	@Success		204
//	@Param			month	path	string	true	"The month in YYYY-MM format"
//	@Security		Bearer
//	@Router			/v1/reports/{month} [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetReport returns the monthly finance report
//
//	@Summary		Get report
//	@Description	Returns the finance report for the month. With format=csv, the transactions of the month are returned as CSV file.
//	@Tags			Reports
//	@Produce		json
//	@Produce		text/csv
//	@Success		200		{object}	ReportResponse
//	@Failure		400		{object}	ReportResponse
//	@Failure		500		{object}	ReportResponse
//	@Param			month	path		string	true	"The month in YYYY-MM format"
//	@Param			format	query		string	false	"json or csv. Defaults to json."
//	@Security		Bearer
//	@Router			/v1/reports/{month} [get]
func (co Controller) GetReport(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	var query ReportQuery
	err = c.ShouldBindQuery(&query)
	if err != nil || (query.Format != "json" && query.Format != "csv") {
		s := errReportFormat.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	s, err := co.snapshot(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &e,
		})
		return
	}

	r := report.Monthly(s, user, types.MonthOf(uri.Month), co.now(), co.Formatter)

	if query.Format == "json" {
		c.JSON(http.StatusOK, ReportResponse{Data: &r})
		return
	}

	var buf bytes.Buffer
	err = r.WriteCSV(&buf)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, ReportResponse{
			Error: &e,
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", r.Filename("csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
