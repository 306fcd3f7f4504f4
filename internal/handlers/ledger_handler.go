package handlers

import (
	"fmt"
	"net/http"

	"financas-api/internal/dto"
	"financas-api/internal/errors"
	"financas-api/internal/normalize"
	"financas-api/internal/services"

	"github.com/labstack/echo/v4"
)

// Filter validation sentinels, mapped to error codes by the handlers
var (
	errMonthOutOfRange = fmt.Errorf("month out of range")
	errYearOutOfRange  = fmt.Errorf("year out of range")
	errPartialPeriod   = fmt.Errorf("month and year must be provided together")
)

// LedgerHandler serves the normalized transaction view and its CSV export
type LedgerHandler struct {
	ledgerService services.LedgerServiceInterface
	exportService services.ExportServiceInterface
	metrics       services.MetricsRecorderInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(
	ledgerService services.LedgerServiceInterface,
	exportService services.ExportServiceInterface,
	metrics services.MetricsRecorderInterface,
) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		exportService: exportService,
		metrics:       metrics,
	}
}

// GetLedger returns the normalized ledger with aggregates
// @Summary Get ledger
// @Description Retrieve the normalized transaction list with totals and spending breakdowns, optionally filtered to one calendar month
// @Tags Ledger
// @Security BearerAuth
// @Produce json
// @Param month query int false "Calendar month (1-12), requires year"
// @Param year query int false "Calendar year (2000-2100), requires month"
// @Success 200 {object} dto.LedgerResponse "Normalized ledger with summary"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_001 - Invalid month or LEDGER_002 - Invalid year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /ledger [get]
func (h *LedgerHandler) GetLedger(c echo.Context) error {
	var filters dto.LedgerFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := validateLedgerFilters(filters); err != nil {
		return sendFilterError(c, err)
	}

	transactions, err := h.ledgerService.GetLedger(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.LedgerResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Summary:      h.ledgerService.Summarize(transactions),
	}
	for _, tx := range transactions {
		response.Transactions = append(response.Transactions, toTransactionResponse(tx))
	}

	return c.JSON(http.StatusOK, response)
}

// ExportCSV downloads the normalized ledger as a CSV file
// @Summary Export ledger
// @Description Download the normalized ledger as a CSV document with Portuguese column headers
// @Tags Ledger
// @Security BearerAuth
// @Produce text/csv
// @Param month query int false "Calendar month (1-12), requires year"
// @Param year query int false "Calendar year (2000-2100), requires month"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_001 - Invalid month or LEDGER_002 - Invalid year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "LEDGER_003 - Export failed"
// @Router /ledger/export [get]
func (h *LedgerHandler) ExportCSV(c echo.Context) error {
	var filters dto.LedgerFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := validateLedgerFilters(filters); err != nil {
		return sendFilterError(c, err)
	}

	data, err := h.exportService.ExportCSV(filters)
	if err != nil {
		h.recordExport("error")
		return SendError(c, errors.LedgerExportFailed)
	}
	h.recordExport("success")

	filename := "extrato.csv"
	if filters.Month != 0 && filters.Year != 0 {
		filename = fmt.Sprintf("extrato-%04d-%02d.csv", filters.Year, filters.Month)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *LedgerHandler) recordExport(status string) {
	if h.metrics != nil {
		h.metrics.IncrementCounter("ledger_export", map[string]string{"status": status})
	}
}

// validateLedgerFilters checks the optional month/year query pair
func validateLedgerFilters(filters dto.LedgerFilters) error {
	if filters.Month < 0 || filters.Month > 12 {
		return errMonthOutOfRange
	}
	if filters.Year != 0 && (filters.Year < 2000 || filters.Year > 2100) {
		return errYearOutOfRange
	}
	if (filters.Month == 0) != (filters.Year == 0) {
		return errPartialPeriod
	}
	return nil
}

func sendFilterError(c echo.Context, err error) error {
	switch err {
	case errMonthOutOfRange:
		return SendError(c, errors.LedgerInvalidMonth)
	case errYearOutOfRange:
		return SendError(c, errors.LedgerInvalidYear)
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
}

func toTransactionResponse(tx normalize.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID.String(),
		OccurredAt:  tx.OccurredAt,
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		Direction:   string(tx.Direction),
		Category:    tx.Category,
		Source:      tx.Source,
	}
}
