package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService   portssvc.AccountSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, rs portssvc.ReportingSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:   as,
		reportingService: rs,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, reportingService portssvc.ReportingSvcFacade) *gin.RouterGroup {
	h := newAccountHandler(accountService, reportingService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PATCH("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
		accounts.GET("/:accountID/balance", h.getBalance)
		accounts.GET("/:accountID/timeseries", h.getTimeseries)
		accounts.GET("/:accountID/budget-summary", h.getBudgetSummary)
	}
	return accounts
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a cash account. The id is generated when omitted.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format"
// @Failure 409 {object} dto.ErrorResponse "Account id already taken"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("currency", req.Currency))

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.ID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondError(c, err, "retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists every account ordered by id, portfolio pass-through accounts included.
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "list accounts")
		return
	}
	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates the name and/or account type. Currency and opening balance are fixed.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID to update"
// @Param   account body dto.UpdateAccountRequest true "Account details to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /accounts/{accountID} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	var req dto.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	logger = logger.With(slog.String("target_account_id", accountID))
	logger.Info("Received request to update account")

	account, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err, "update account")
		return
	}

	logger.Info("Account updated successfully")
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes an account with its entries. Transfers touching it are removed on both sides.
// @Tags accounts
// @Param   accountID path string true "Account ID to delete"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Portfolio pass-through account"
// @Security BearerAuth
// @Router /accounts/{accountID} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("target_account_id", accountID))
	logger.Info("Received request to delete account")

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		respondError(c, err, "delete account")
		return
	}

	logger.Info("Account deleted successfully")
	c.Status(http.StatusNoContent)
}

// getBalance godoc
// @Summary Get an account balance
// @Description Opening balance plus the sum of entries dated on or before `at` (all entries when omitted).
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   at query string false "Cutoff date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/balance [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	var params dto.BalanceParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.reportingService.GetAccountBalance(c.Request.Context(), c.Param("accountID"), params)
	if err != nil {
		respondError(c, err, "compute balance")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getTimeseries godoc
// @Summary Get an account timeseries
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   date_from query string true "First day (YYYY-MM-DD)"
// @Param   date_to query string true "Last day (YYYY-MM-DD)"
// @Param   granularity query string false "auto, daily, weekly, monthly or yearly"
// @Success 200 {object} dto.TimeseriesResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /accounts/{accountID}/timeseries [get]
func (h *accountHandler) getTimeseries(c *gin.Context) {
	var params dto.TimeseriesParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.reportingService.GetAccountTimeseries(c.Request.Context(), c.Param("accountID"), params)
	if err != nil {
		respondError(c, err, "compute timeseries")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getBudgetSummary godoc
// @Summary Get budget rollups of an account
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   date_from query string false "First day (YYYY-MM-DD)"
// @Param   date_to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.BudgetSummaryResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/budget-summary [get]
func (h *accountHandler) getBudgetSummary(c *gin.Context) {
	var params dto.BudgetParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.reportingService.GetBudgetSummary(c.Request.Context(), c.Param("accountID"), params)
	if err != nil {
		respondError(c, err, "compute budget summary")
		return
	}
	c.JSON(http.StatusOK, res)
}
