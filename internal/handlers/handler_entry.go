package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImportSize caps CSV uploads.
const maxImportSize = 8 << 20

type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// registerEntryRoutes registers the ledger entry routes below an account group.
func registerEntryRoutes(accounts *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := accounts.Group("/:accountID/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PATCH("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
	}
	accounts.POST("/:accountID/import-csv", h.importCSV)
}

// createEntry godoc
// @Summary Post a ledger entry
// @Description Appends an entry to the account. The sequence is assigned per (account, date). Transfers use /transfers.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /accounts/{accountID}/entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	var req dto.CreateEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err, "create entry")
		return
	}

	logger.Info("Entry created", slog.String("account_id", accountID), slog.String("entry_id", entry.ID.String()), slog.Int("sequence", entry.Sequence))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List the entries of an account
// @Description Filters, sorts and pages entries. balance_after is the running balance over the whole account.
// @Tags entries
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   date_from query string false "First day (YYYY-MM-DD)"
// @Param   date_to query string false "Last day (YYYY-MM-DD)"
// @Param   kind query []string false "Entry kinds" collectionFormat(multi)
// @Param   category query []string false "Categories" collectionFormat(multi)
// @Param   subcategory query []string false "Subcategories" collectionFormat(multi)
// @Param   q query string false "Case-insensitive label search"
// @Param   sort_by query string false "date, amount, kind, category, subcategory or label"
// @Param   sort_dir query string false "asc or desc"
// @Param   limit query int false "Page size" default(50)
// @Param   next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if !bindQuery(c, &params) {
		return
	}
	res, err := h.entryService.ListEntries(c.Request.Context(), c.Param("accountID"), params)
	if err != nil {
		respondError(c, err, "list entries")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getEntry godoc
// @Summary Get one entry
// @Tags entries
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	entry, err := h.entryService.GetEntry(c.Request.Context(), c.Param("accountID"), c.Param("entryID"))
	if err != nil {
		respondError(c, err, "retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a plain entry
// @Description Transfer legs and trade cash mirrors are rejected with 409. An empty subcategory or label clears it.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateEntryRequest true "Fields to change"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry belongs to a transfer or trade"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /accounts/{accountID}/entries/{entryID} [patch]
func (h *entryHandler) updateEntry(c *gin.Context) {
	var req dto.UpdateEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.entryService.UpdateEntry(c.Request.Context(), c.Param("accountID"), c.Param("entryID"), req)
	if err != nil {
		respondError(c, err, "update entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Tags entries
// @Param   accountID path string true "Account ID"
// @Param   entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry belongs to a transfer or trade"
// @Security BearerAuth
// @Router /accounts/{accountID}/entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	if err := h.entryService.DeleteEntry(c.Request.Context(), c.Param("accountID"), c.Param("entryID")); err != nil {
		respondError(c, err, "delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// importCSV godoc
// @Summary Import entries from CSV
// @Description Columns: date,amount,kind,category,subcategory,label. Invalid rows are reported and skipped.
// @Tags entries
// @Accept  multipart/form-data
// @Accept  text/csv
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   file formData file false "CSV file (multipart upload)"
// @Success 200 {object} dto.ImportEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Unreadable CSV header"
// @Security BearerAuth
// @Router /accounts/{accountID}/import-csv [post]
func (h *entryHandler) importCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var body io.Reader
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "A CSV file is required in the 'file' field"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			respondError(c, err, "read upload")
			return
		}
		defer f.Close()
		body = f
	} else {
		body = c.Request.Body
	}

	res, err := h.entryService.ImportCSV(c.Request.Context(), accountID, io.LimitReader(body, maxImportSize))
	if err != nil {
		respondError(c, err, "import entries")
		return
	}

	logger.Info("CSV import finished", slog.String("account_id", accountID), slog.Int("imported", res.Imported), slog.Int("rejected", len(res.Errors)))
	c.JSON(http.StatusOK, res)
}
