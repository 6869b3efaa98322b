package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := &transferHandler{transferService: transferService}

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("/:transferID", h.getTransfer)
		transfers.PATCH("/:transferID", h.updateTransfer)
		transfers.DELETE("/:transferID", h.deleteTransfer)
	}
}

// createTransfer godoc
// @Summary Move money between two accounts
// @Description Writes a negative leg on the source and a positive leg on the destination atomically.
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Same account, currency mismatch or non-positive amount"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if !bindJSON(c, &req) {
		return
	}

	from, to, err := h.transferService.CreateTransfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create transfer")
		return
	}

	res := dto.ToTransferResponse(from, to)
	logger.Info("Transfer created", slog.String("transfer_id", res.TransferID),
		slog.String("from_account_id", req.FromAccountID), slog.String("to_account_id", req.ToAccountID))
	c.JSON(http.StatusCreated, res)
}

// getTransfer godoc
// @Summary Get both legs of a transfer
// @Tags transfers
// @Produce  json
// @Param   transferID path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Failure 409 {object} dto.ErrorResponse "Broken leg pair"
// @Security BearerAuth
// @Router /transfers/{transferID} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	from, to, err := h.transferService.GetTransfer(c.Request.Context(), c.Param("transferID"))
	if err != nil {
		respondError(c, err, "retrieve transfer")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferResponse(from, to))
}

// updateTransfer godoc
// @Summary Update both legs of a transfer
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transferID path string true "Transfer ID"
// @Param   transfer body dto.UpdateTransferRequest true "Fields to change"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /transfers/{transferID} [patch]
func (h *transferHandler) updateTransfer(c *gin.Context) {
	var req dto.UpdateTransferRequest
	if !bindJSON(c, &req) {
		return
	}
	from, to, err := h.transferService.UpdateTransfer(c.Request.Context(), c.Param("transferID"), req)
	if err != nil {
		respondError(c, err, "update transfer")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferResponse(from, to))
}

// deleteTransfer godoc
// @Summary Delete a transfer
// @Tags transfers
// @Produce  json
// @Param   transferID path string true "Transfer ID"
// @Success 200 {object} dto.DeleteTransferResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Security BearerAuth
// @Router /transfers/{transferID} [delete]
func (h *transferHandler) deleteTransfer(c *gin.Context) {
	transferID := c.Param("transferID")
	fromID, toID, err := h.transferService.DeleteTransfer(c.Request.Context(), transferID)
	if err != nil {
		respondError(c, err, "delete transfer")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteTransferResponse{
		TransferID:  transferID,
		FromEntryID: fromID.String(),
		ToEntryID:   toID.String(),
	})
}
