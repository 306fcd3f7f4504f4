package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"

	"financas-api/internal/dto"
)

// csvHeaders are the fixed Portuguese column names the dashboard's
// spreadsheet import expects. Order matters.
var csvHeaders = []string{"Data", "Descrição", "Valor", "Tipo", "Categoria", "Banco"}

const csvDateLayout = "02/01/2006"

// ExportService renders the normalized ledger as CSV
type ExportService struct {
	ledgerService LedgerServiceInterface
	logger        *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(ledgerService LedgerServiceInterface, logger *slog.Logger) ExportServiceInterface {
	return &ExportService{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// ExportCSV renders the filtered ledger as a CSV document, one row per
// normalized transaction in ledger order
func (s *ExportService) ExportCSV(filters dto.LedgerFilters) ([]byte, error) {
	transactions, err := s.ledgerService.GetLedger(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger for export: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, tx := range transactions {
		record := []string{
			tx.OccurredAt.Format(csvDateLayout),
			tx.Description,
			tx.Amount.StringFixed(2),
			string(tx.Direction),
			tx.Category,
			tx.Source,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.logger.Info("ledger exported", slog.Int("rows", len(transactions)))
	return buf.Bytes(), nil
}
