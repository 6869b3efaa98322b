package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

// registerTradeRoutes registers trade and position routes below the portfolio group.
func registerTradeRoutes(portfolios *gin.RouterGroup, tradeService portssvc.TradeSvcFacade) {
	h := &tradeHandler{tradeService: tradeService}

	trades := portfolios.Group("/:portfolioID/trades")
	{
		trades.POST("", h.createTrade)
		trades.GET("", h.listTrades)
		trades.PATCH("/:tradeID", h.updateTrade)
		trades.DELETE("/:tradeID", h.deleteTrade)
	}
	portfolios.GET("/:portfolioID/positions", h.getPositions)
}

// createTrade godoc
// @Summary Record a trade
// @Description Stores the trade and mirrors its cash flow into the portfolio pass-through account.
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   portfolioID path string true "Portfolio ID"
// @Param   trade body dto.CreateTradeRequest true "Trade details"
// @Success 201 {object} dto.TradeResponse
// @Failure 404 {object} dto.ErrorResponse "Portfolio or instrument not found"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /portfolios/{portfolioID}/trades [post]
func (h *tradeHandler) createTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTradeRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.tradeService.CreateTrade(c.Request.Context(), c.Param("portfolioID"), req)
	if err != nil {
		respondError(c, err, "create trade")
		return
	}
	logger.Info("Trade created", slog.String("trade_id", t.ID.String()), slog.String("symbol", t.InstrumentSymbol), slog.String("side", string(t.Side)))
	c.JSON(http.StatusCreated, dto.ToTradeResponse(t))
}

// listTrades godoc
// @Summary List the trades of a portfolio
// @Tags trades
// @Produce  json
// @Param   portfolioID path string true "Portfolio ID"
// @Param   date_from query string false "First day (YYYY-MM-DD)"
// @Param   date_to query string false "Last day (YYYY-MM-DD)"
// @Param   side query []string false "BUY or SELL" collectionFormat(multi)
// @Param   symbol query []string false "Instrument symbols" collectionFormat(multi)
// @Param   q query string false "Search over symbol and label"
// @Param   sort_by query string false "date, quantity, price, fees, side, instrument_symbol or label"
// @Param   sort_dir query string false "asc or desc"
// @Param   limit query int false "Page size" default(50)
// @Param   next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListTradesResponse
// @Failure 404 {object} dto.ErrorResponse "Portfolio not found"
// @Security BearerAuth
// @Router /portfolios/{portfolioID}/trades [get]
func (h *tradeHandler) listTrades(c *gin.Context) {
	var params dto.ListTradesParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.tradeService.ListTrades(c.Request.Context(), c.Param("portfolioID"), params)
	if err != nil {
		respondError(c, err, "list trades")
		return
	}
	c.JSON(http.StatusOK, res)
}

// updateTrade godoc
// @Summary Update a trade
// @Description Rebuilds the cash mirror entry in the same transaction.
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   portfolioID path string true "Portfolio ID"
// @Param   tradeID path string true "Trade ID"
// @Param   trade body dto.UpdateTradeRequest true "Fields to change"
// @Success 200 {object} dto.TradeResponse
// @Failure 404 {object} dto.ErrorResponse "Trade not found"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /portfolios/{portfolioID}/trades/{tradeID} [patch]
func (h *tradeHandler) updateTrade(c *gin.Context) {
	var req dto.UpdateTradeRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.tradeService.UpdateTrade(c.Request.Context(), c.Param("portfolioID"), c.Param("tradeID"), req)
	if err != nil {
		respondError(c, err, "update trade")
		return
	}
	c.JSON(http.StatusOK, dto.ToTradeResponse(t))
}

// deleteTrade godoc
// @Summary Delete a trade
// @Description Deletes the trade and its cash mirror entry.
// @Tags trades
// @Param   portfolioID path string true "Portfolio ID"
// @Param   tradeID path string true "Trade ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Trade not found"
// @Security BearerAuth
// @Router /portfolios/{portfolioID}/trades/{tradeID} [delete]
func (h *tradeHandler) deleteTrade(c *gin.Context) {
	if err := h.tradeService.DeleteTrade(c.Request.Context(), c.Param("portfolioID"), c.Param("tradeID")); err != nil {
		respondError(c, err, "delete trade")
		return
	}
	c.Status(http.StatusNoContent)
}

// getPositions godoc
// @Summary Get the net positions of a portfolio
// @Tags trades
// @Produce  json
// @Param   portfolioID path string true "Portfolio ID"
// @Param   as_of query string false "Ignore trades after this day (YYYY-MM-DD)"
// @Success 200 {object} dto.PositionsResponse
// @Failure 404 {object} dto.ErrorResponse "Portfolio not found"
// @Security BearerAuth
// @Router /portfolios/{portfolioID}/positions [get]
func (h *tradeHandler) getPositions(c *gin.Context) {
	var params dto.PositionsParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.tradeService.GetPositions(c.Request.Context(), c.Param("portfolioID"), params)
	if err != nil {
		respondError(c, err, "compute positions")
		return
	}
	c.JSON(http.StatusOK, res)
}

type instrumentHandler struct {
	instrumentService portssvc.InstrumentSvcFacade
}

func registerInstrumentRoutes(rg *gin.RouterGroup, instrumentService portssvc.InstrumentSvcFacade) {
	h := &instrumentHandler{instrumentService: instrumentService}

	instruments := rg.Group("/instruments")
	{
		instruments.POST("", h.createInstrument)
		instruments.GET("", h.listInstruments)
		instruments.DELETE("/:symbol", h.deleteInstrument)
	}
}

// createInstrument godoc
// @Summary Register an instrument
// @Tags instruments
// @Accept  json
// @Produce  json
// @Param   instrument body dto.CreateInstrumentRequest true "Instrument"
// @Success 201 {object} dto.InstrumentResponse
// @Failure 409 {object} dto.ErrorResponse "Symbol already registered"
// @Security BearerAuth
// @Router /instruments [post]
func (h *instrumentHandler) createInstrument(c *gin.Context) {
	var req dto.CreateInstrumentRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := h.instrumentService.CreateInstrument(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create instrument")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInstrumentResponse(in))
}

// listInstruments godoc
// @Summary List instruments
// @Tags instruments
// @Produce  json
// @Success 200 {object} dto.ListInstrumentsResponse
// @Security BearerAuth
// @Router /instruments [get]
func (h *instrumentHandler) listInstruments(c *gin.Context) {
	instruments, err := h.instrumentService.ListInstruments(c.Request.Context())
	if err != nil {
		respondError(c, err, "list instruments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInstrumentsResponse(instruments))
}

// deleteInstrument godoc
// @Summary Delete an instrument
// @Tags instruments
// @Param   symbol path string true "Symbol"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Instrument not found"
// @Security BearerAuth
// @Router /instruments/{symbol} [delete]
func (h *instrumentHandler) deleteInstrument(c *gin.Context) {
	if err := h.instrumentService.DeleteInstrument(c.Request.Context(), c.Param("symbol")); err != nil {
		respondError(c, err, "delete instrument")
		return
	}
	c.Status(http.StatusNoContent)
}
