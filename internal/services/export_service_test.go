package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"log/slog"
	"testing"
	"time"

	"financas-api/internal/dto"
	"financas-api/internal/normalize"
	"financas-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ledgerService *service_mocks.MockLedgerServiceInterface
	service       ExportServiceInterface
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledgerService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.service = NewExportService(s.ledgerService, slog.Default())
}

func (s *ExportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) parseCSV(data []byte) [][]string {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	s.Require().NoError(err)
	return records
}

func (s *ExportServiceTestSuite) TestExportCSV() {
	transactions := []normalize.Transaction{
		{
			ID:          uuid.New(),
			OccurredAt:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			Description: "Ifood",
			Amount:      decimal.NewFromFloat(45.90),
			Direction:   normalize.Outbound,
			Category:    "Alimentação",
			Source:      "Nubank",
		},
		{
			ID:          uuid.New(),
			OccurredAt:  time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
			Description: "Maria Souza",
			Amount:      decimal.NewFromFloat(1200.00),
			Direction:   normalize.Inbound,
			Category:    "Geral",
			Source:      "Inter",
		},
	}

	s.ledgerService.EXPECT().GetLedger(dto.LedgerFilters{}).Return(transactions, nil).Times(1)

	data, err := s.service.ExportCSV(dto.LedgerFilters{})

	s.NoError(err)
	records := s.parseCSV(data)
	s.Require().Len(records, 3)
	s.Equal([]string{"Data", "Descrição", "Valor", "Tipo", "Categoria", "Banco"}, records[0])
	s.Equal([]string{"10/03/2026", "Ifood", "45.90", "Saída", "Alimentação", "Nubank"}, records[1])
	s.Equal([]string{"05/03/2026", "Maria Souza", "1200.00", "Entrada", "Geral", "Inter"}, records[2])
}

func (s *ExportServiceTestSuite) TestExportCSV_PassesFiltersThrough() {
	filters := dto.LedgerFilters{Month: 2, Year: 2026}

	s.ledgerService.EXPECT().GetLedger(filters).Return(nil, nil).Times(1)

	data, err := s.service.ExportCSV(filters)

	s.NoError(err)
	records := s.parseCSV(data)
	s.Len(records, 1)
}

func (s *ExportServiceTestSuite) TestExportCSV_EmptyLedgerStillHasHeader() {
	s.ledgerService.EXPECT().GetLedger(dto.LedgerFilters{}).Return([]normalize.Transaction{}, nil).Times(1)

	data, err := s.service.ExportCSV(dto.LedgerFilters{})

	s.NoError(err)
	records := s.parseCSV(data)
	s.Require().Len(records, 1)
	s.Equal([]string{"Data", "Descrição", "Valor", "Tipo", "Categoria", "Banco"}, records[0])
}

func (s *ExportServiceTestSuite) TestExportCSV_FieldsWithCommasAreQuoted() {
	transactions := []normalize.Transaction{
		{
			ID:          uuid.New(),
			OccurredAt:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			Description: "Padaria, Café e Cia",
			Amount:      decimal.NewFromFloat(12.50),
			Direction:   normalize.Outbound,
			Category:    "Alimentação",
			Source:      "Nubank",
		},
	}

	s.ledgerService.EXPECT().GetLedger(dto.LedgerFilters{}).Return(transactions, nil).Times(1)

	data, err := s.service.ExportCSV(dto.LedgerFilters{})

	s.NoError(err)
	records := s.parseCSV(data)
	s.Require().Len(records, 2)
	s.Equal("Padaria, Café e Cia", records[1][1])
}

func (s *ExportServiceTestSuite) TestExportCSV_LedgerFailure() {
	s.ledgerService.EXPECT().GetLedger(dto.LedgerFilters{}).Return(nil, errors.New("connection refused")).Times(1)

	data, err := s.service.ExportCSV(dto.LedgerFilters{})

	s.Error(err)
	s.Nil(data)
}
