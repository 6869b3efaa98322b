package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type portfolioHandler struct {
	portfolioService portssvc.PortfolioSvcFacade
}

// registerPortfolioRoutes registers portfolio and snapshot routes and returns the
// portfolio group so trade routes can hang below it.
func registerPortfolioRoutes(rg *gin.RouterGroup, portfolioService portssvc.PortfolioSvcFacade) *gin.RouterGroup {
	h := &portfolioHandler{portfolioService: portfolioService}

	portfolios := rg.Group("/portfolios")
	{
		portfolios.POST("", h.createPortfolio)
		portfolios.GET("", h.listPortfolios)
		portfolios.GET("/:portfolioID", h.getPortfolio)
		portfolios.DELETE("/:portfolioID", h.deletePortfolio)
		portfolios.POST("/:portfolioID/snapshots", h.createSnapshot)
		portfolios.GET("/:portfolioID/snapshots", h.listSnapshots)
		portfolios.DELETE("/:portfolioID/snapshots/:snapshotID", h.deleteSnapshot)
	}
	return portfolios
}

// createPortfolio godoc
// @Summary Open a portfolio
// @Description Creates the portfolio and its pass-through cash account in one transaction.
// @Tags portfolios
// @Accept  json
// @Produce  json
// @Param   portfolio body dto.CreatePortfolioRequest true "Portfolio details"
// @Success 201 {object} dto.PortfolioResponse
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /portfolios [post]
func (h *portfolioHandler) createPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePortfolioRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.portfolioService.CreatePortfolio(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create portfolio")
		return
	}
	logger.Info("Portfolio created", slog.String("portfolio_id", p.ID.String()), slog.String("cash_account_id", p.CashAccountID))
	c.JSON(http.StatusCreated, dto.ToPortfolioResponse(p))
}

// listPortfolios godoc
// @Summary List portfolios
// @Tags portfolios
// @Produce  json
// @Success 200 {object} dto.ListPortfoliosResponse
// @Security BearerAuth
// @Router /portfolios [get]
func (h *portfolioHandler) listPortfolios(c *gin.Context) {
	portfolios, err := h.portfolioService.ListPortfolios(c.Request.Context())
	if err != nil {
		respondError(c, err, "list portfolios")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPortfoliosResponse(portfolios))
}

// getPortfolio godoc
// @Summary Get a portfolio
// @Tags portfolios
// @Produce  json
// @Param   portfolioID path string true "Portfolio ID"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 404 {object} dto.ErrorResponse "Portfolio not found"
// @Security BearerAuth
// @Router /portfolios/{portfolioID} [get]
func (h *portfolioHandler) getPortfolio(c *gin.Context) {
	p, err := h.portfolioService.GetPortfolio(c.Request.Context(), c.Param("portfolioID"))
	if err != nil {
		respondError(c, err, "retrieve portfolio")
		return
	}
	c.JSON(http.StatusOK, dto.ToPortfolioResponse(p))
}

// deletePortfolio godoc
// @Summary Delete a portfolio
// @Description Removes the portfolio with its snapshots, trades, cash account and cash entries.
// @Tags portfolios
// @Param   portfolioID path string true "Portfolio ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Portfolio not found"
// @Security BearerAuth
// @Router /portfolios/{portfolioID} [delete]
func (h *portfolioHandler) deletePortfolio(c *gin.Context) {
	if err := h.portfolioService.DeletePortfolio(c.Request.Context(), c.Param("portfolioID")); err != nil {
		respondError(c, err, "delete portfolio")
		return
	}
	c.Status(http.StatusNoContent)
}

// createSnapshot godoc
// @Summary Record a portfolio valuation
// @Tags portfolios
// @Accept  json
// @Produce  json
// @Param   portfolioID path string true "Portfolio ID"
// @Param   snapshot body dto.CreateSnapshotRequest true "Valuation"
// @Success 201 {object} dto.SnapshotResponse
// @Failure 404 {object} dto.ErrorResponse "Portfolio not found"
// @Failure 422 {object} dto.ErrorResponse "Currency mismatch or negative value"
// @Security BearerAuth
// @Router /portfolios/{portfolioID}/snapshots [post]
func (h *portfolioHandler) createSnapshot(c *gin.Context) {
	var req dto.CreateSnapshotRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.portfolioService.CreateSnapshot(c.Request.Context(), c.Param("portfolioID"), req)
	if err != nil {
		respondError(c, err, "create snapshot")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSnapshotResponse(s))
}

// listSnapshots godoc
// @Summary List the snapshots of a portfolio
// @Tags portfolios
// @Produce  json
// @Param   portfolioID path string true "Portfolio ID"
// @Success 200 {object} dto.ListSnapshotsResponse
// @Failure 404 {object} dto.ErrorResponse "Portfolio not found"
// @Security BearerAuth
// @Router /portfolios/{portfolioID}/snapshots [get]
func (h *portfolioHandler) listSnapshots(c *gin.Context) {
	snapshots, err := h.portfolioService.ListSnapshots(c.Request.Context(), c.Param("portfolioID"))
	if err != nil {
		respondError(c, err, "list snapshots")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSnapshotsResponse(snapshots))
}

// deleteSnapshot godoc
// @Summary Delete a snapshot
// @Tags portfolios
// @Param   portfolioID path string true "Portfolio ID"
// @Param   snapshotID path string true "Snapshot ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Snapshot not found"
// @Security BearerAuth
// @Router /portfolios/{portfolioID}/snapshots/{snapshotID} [delete]
func (h *portfolioHandler) deleteSnapshot(c *gin.Context) {
	if err := h.portfolioService.DeleteSnapshot(c.Request.Context(), c.Param("portfolioID"), c.Param("snapshotID")); err != nil {
		respondError(c, err, "delete snapshot")
		return
	}
	c.Status(http.StatusNoContent)
}
