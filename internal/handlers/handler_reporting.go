package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the net worth aggregations.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	nw := rg.Group("/net-worth")
	{
		nw.GET("", h.getNetWorth)
		nw.GET("/grouped", h.getGroupedNetWorth)
		nw.GET("/timeseries", h.getNetWorthTimeseries)
		nw.GET("/full", h.getNetWorthFull)
		nw.GET("/full/timeseries", h.getNetWorthFullTimeseries)
	}
}

// getNetWorth godoc
// @Summary Get net worth
// @Description Sum of account balances at `at`. Mixed currencies are rejected unless a currency filter is given.
// @Tags net-worth
// @Produce  json
// @Param   at query string false "Cutoff date (YYYY-MM-DD)"
// @Param   account_type query string false "CHECKING, SAVINGS, INVESTMENT or OTHER"
// @Param   currency query string false "Only accounts in this currency"
// @Success 200 {object} dto.NetWorthResponse
// @Failure 422 {object} dto.ErrorResponse "Mixed currencies"
// @Security BearerAuth
// @Router /net-worth [get]
func (h *reportingHandler) getNetWorth(c *gin.Context) {
	var params dto.NetWorthParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.reportingService.GetNetWorth(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "compute net worth")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getGroupedNetWorth godoc
// @Summary Get net worth per account type
// @Tags net-worth
// @Produce  json
// @Param   at query string false "Cutoff date (YYYY-MM-DD)"
// @Param   account_type query string false "CHECKING, SAVINGS, INVESTMENT or OTHER"
// @Param   currency query string false "Only accounts in this currency"
// @Success 200 {object} dto.GroupedNetWorthResponse
// @Failure 422 {object} dto.ErrorResponse "Mixed currencies"
// @Security BearerAuth
// @Router /net-worth/grouped [get]
func (h *reportingHandler) getGroupedNetWorth(c *gin.Context) {
	var params dto.NetWorthParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.reportingService.GetGroupedNetWorth(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "compute grouped net worth")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getNetWorthTimeseries godoc
// @Summary Get a net worth timeseries
// @Tags net-worth
// @Produce  json
// @Param   date_from query string true "First day (YYYY-MM-DD)"
// @Param   date_to query string true "Last day (YYYY-MM-DD)"
// @Param   granularity query string false "auto, daily, weekly, monthly or yearly"
// @Param   account_type query string false "CHECKING, SAVINGS, INVESTMENT or OTHER"
// @Param   currency query string false "Only accounts in this currency"
// @Success 200 {object} dto.TimeseriesResponse
// @Failure 422 {object} dto.ErrorResponse "Invalid range or mixed currencies"
// @Security BearerAuth
// @Router /net-worth/timeseries [get]
func (h *reportingHandler) getNetWorthTimeseries(c *gin.Context) {
	var params dto.NetWorthTimeseriesParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.reportingService.GetNetWorthTimeseries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "compute net worth timeseries")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getNetWorthFull godoc
// @Summary Get net worth including portfolio valuations
// @Description Cash total plus the latest snapshot of every portfolio on or before `at`.
// @Tags net-worth
// @Produce  json
// @Param   at query string false "Cutoff date (YYYY-MM-DD)"
// @Param   account_type query string false "CHECKING, SAVINGS, INVESTMENT or OTHER"
// @Param   currency query string false "Only accounts and portfolios in this currency"
// @Param   include_portfolios query bool false "Add portfolio valuations" default(true)
// @Success 200 {object} dto.NetWorthResponse
// @Failure 422 {object} dto.ErrorResponse "Mixed currencies"
// @Security BearerAuth
// @Router /net-worth/full [get]
func (h *reportingHandler) getNetWorthFull(c *gin.Context) {
	var params dto.NetWorthParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.reportingService.GetNetWorthFull(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "compute full net worth")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getNetWorthFullTimeseries godoc
// @Summary Get a net worth timeseries including portfolio valuations
// @Tags net-worth
// @Produce  json
// @Param   date_from query string true "First day (YYYY-MM-DD)"
// @Param   date_to query string true "Last day (YYYY-MM-DD)"
// @Param   granularity query string false "auto, daily, weekly, monthly or yearly"
// @Param   account_type query string false "CHECKING, SAVINGS, INVESTMENT or OTHER"
// @Param   currency query string false "Only accounts and portfolios in this currency"
// @Param   include_portfolios query bool false "Add portfolio valuations" default(true)
// @Success 200 {object} dto.TimeseriesResponse
// @Failure 422 {object} dto.ErrorResponse "Invalid range or mixed currencies"
// @Security BearerAuth
// @Router /net-worth/full/timeseries [get]
func (h *reportingHandler) getNetWorthFullTimeseries(c *gin.Context) {
	var params dto.NetWorthTimeseriesParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.reportingService.GetNetWorthFullTimeseries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "compute full net worth timeseries")
		return
	}
	c.JSON(http.StatusOK, res)
}
