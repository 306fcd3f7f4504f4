package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"financas-api/internal/dto"
	"financas-api/internal/models"
	"financas-api/internal/normalize"
	"financas-api/internal/repositories/repository_mocks"
	"financas-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	notificationRepo *repository_mocks.MockNotificationRepositoryInterface
	ruleRepo         *repository_mocks.MockRuleRepositoryInterface
	metrics          *service_mocks.MockMetricsRecorderInterface
	service          LedgerServiceInterface
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.notificationRepo = repository_mocks.NewMockNotificationRepositoryInterface(s.ctrl)
	s.ruleRepo = repository_mocks.NewMockRuleRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().RecordProcessingTime("ledger_normalization", gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge("ledger_transactions", gomock.Any(), gomock.Any()).AnyTimes()

	pipeline := normalize.New(normalize.DefaultConfig())
	s.service = NewLedgerService(s.notificationRepo, s.ruleRepo, pipeline, s.metrics, slog.Default())
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestGetLedger_NormalizesAllRecords() {
	notifications := []models.Notification{
		{
			ID:         uuid.New(),
			Source:     "Nubank",
			Message:    "Compra aprovada R$ 45,90 no Ifood",
			OccurredAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:         uuid.New(),
			Source:     "Inter",
			Message:    "Pix recebido R$ 1.200,00 de Maria Souza",
			OccurredAt: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		},
	}
	rules := []models.Rule{
		{ID: 1, Keyword: "ifood", Category: "Alimentação"},
	}

	s.notificationRepo.EXPECT().GetAll().Return(notifications, nil).Times(1)
	s.ruleRepo.EXPECT().GetAll().Return(rules, nil).Times(1)

	transactions, err := s.service.GetLedger(dto.LedgerFilters{})

	s.NoError(err)
	s.Require().Len(transactions, 2)

	s.True(transactions[0].Amount.Equal(decimal.NewFromFloat(45.90)))
	s.Equal(normalize.Outbound, transactions[0].Direction)
	s.Equal("Alimentação", transactions[0].Category)
	s.Equal("Nubank", transactions[0].Source)

	s.True(transactions[1].Amount.Equal(decimal.NewFromFloat(1200.00)))
	s.Equal(normalize.Inbound, transactions[1].Direction)
	s.Equal(models.DefaultCategory, transactions[1].Category)
}

func (s *LedgerServiceTestSuite) TestGetLedger_PeriodFilterUsesRepository() {
	notifications := []models.Notification{
		{
			ID:         uuid.New(),
			Source:     "Nubank",
			Message:    "Compra aprovada R$ 30,00 no Uber",
			OccurredAt: time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC),
		},
	}

	s.notificationRepo.EXPECT().GetByPeriod(2, 2026).Return(notifications, nil).Times(1)
	s.ruleRepo.EXPECT().GetAll().Return(nil, nil).Times(1)

	transactions, err := s.service.GetLedger(dto.LedgerFilters{Month: 2, Year: 2026})

	s.NoError(err)
	s.Len(transactions, 1)
}

func (s *LedgerServiceTestSuite) TestGetLedger_PartialPeriodFetchesAll() {
	// Month without year (or vice versa) is not a usable filter
	s.notificationRepo.EXPECT().GetAll().Return(nil, nil).Times(1)
	s.ruleRepo.EXPECT().GetAll().Return(nil, nil).Times(1)

	transactions, err := s.service.GetLedger(dto.LedgerFilters{Month: 2})

	s.NoError(err)
	s.Empty(transactions)
}

func (s *LedgerServiceTestSuite) TestGetLedger_NotificationStoreFailure() {
	s.notificationRepo.EXPECT().GetAll().Return(nil, errors.New("connection refused")).Times(1)

	transactions, err := s.service.GetLedger(dto.LedgerFilters{})

	s.Error(err)
	s.Nil(transactions)
}

func (s *LedgerServiceTestSuite) TestGetLedger_RuleStoreFailureDegrades() {
	stored := "Alimentação"
	notifications := []models.Notification{
		{
			ID:         uuid.New(),
			Source:     "Nubank",
			Message:    "Compra aprovada R$ 45,90 no Ifood",
			Category:   &stored,
			OccurredAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		},
	}

	s.notificationRepo.EXPECT().GetAll().Return(notifications, nil).Times(1)
	s.ruleRepo.EXPECT().GetAll().Return(nil, errors.New("table dropped")).Times(1)

	transactions, err := s.service.GetLedger(dto.LedgerFilters{})

	s.NoError(err)
	s.Require().Len(transactions, 1)
	// Without rules the stored category still wins over the default
	s.Equal("Alimentação", transactions[0].Category)
}

func (s *LedgerServiceTestSuite) TestSummarize() {
	day1 := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 18, 30, 0, 0, time.UTC)
	transactions := []normalize.Transaction{
		{Amount: decimal.NewFromFloat(45.90), Direction: normalize.Outbound, Category: "Alimentação", Description: "Ifood", OccurredAt: day1},
		{Amount: decimal.NewFromFloat(25.00), Direction: normalize.Outbound, Category: "Transporte", Description: "Uber", OccurredAt: day1},
		{Amount: decimal.NewFromFloat(54.10), Direction: normalize.Outbound, Category: "Alimentação", Description: "Ifood", OccurredAt: day2},
		{Amount: decimal.NewFromFloat(1200.00), Direction: normalize.Inbound, Category: "Geral", Description: "Salário", OccurredAt: day2},
	}

	summary := s.service.Summarize(transactions)

	s.Equal("1200.00", summary.TotalInbound)
	s.Equal("125.00", summary.TotalOutbound)
	s.Equal("1075.00", summary.Balance)

	s.Require().Len(summary.SpendingByCategory, 2)
	s.Equal(dto.CategorySpending{Category: "Alimentação", Total: "100.00"}, summary.SpendingByCategory[0])
	s.Equal(dto.CategorySpending{Category: "Transporte", Total: "25.00"}, summary.SpendingByCategory[1])

	s.Require().Len(summary.SpendingByDay, 2)
	s.Equal(dto.DailyTotal{Date: "2026-03-10", Total: "70.90"}, summary.SpendingByDay[0])
	s.Equal(dto.DailyTotal{Date: "2026-03-11", Total: "54.10"}, summary.SpendingByDay[1])

	s.Require().Len(summary.SpendingByDescription, 2)
	s.Equal(dto.DescriptionSpending{Description: "Ifood", Total: "100.00"}, summary.SpendingByDescription[0])
	s.Equal(dto.DescriptionSpending{Description: "Uber", Total: "25.00"}, summary.SpendingByDescription[1])
}

func (s *LedgerServiceTestSuite) TestSummarize_InboundExcludedFromSpending() {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	transactions := []normalize.Transaction{
		{Amount: decimal.NewFromFloat(500.00), Direction: normalize.Inbound, Category: "Geral", OccurredAt: day},
	}

	summary := s.service.Summarize(transactions)

	s.Equal("500.00", summary.TotalInbound)
	s.Equal("0.00", summary.TotalOutbound)
	s.Equal("500.00", summary.Balance)
	s.Empty(summary.SpendingByCategory)
	s.Empty(summary.SpendingByDay)
	s.Empty(summary.SpendingByDescription)
}

func (s *LedgerServiceTestSuite) TestSummarize_TieBreaksByCategoryName() {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	transactions := []normalize.Transaction{
		{Amount: decimal.NewFromFloat(50.00), Direction: normalize.Outbound, Category: "Transporte", OccurredAt: day},
		{Amount: decimal.NewFromFloat(50.00), Direction: normalize.Outbound, Category: "Alimentação", OccurredAt: day},
	}

	summary := s.service.Summarize(transactions)

	s.Require().Len(summary.SpendingByCategory, 2)
	s.Equal("Alimentação", summary.SpendingByCategory[0].Category)
	s.Equal("Transporte", summary.SpendingByCategory[1].Category)
}

func (s *LedgerServiceTestSuite) TestSummarize_Empty() {
	summary := s.service.Summarize(nil)

	s.Equal("0.00", summary.TotalInbound)
	s.Equal("0.00", summary.TotalOutbound)
	s.Equal("0.00", summary.Balance)
	s.Empty(summary.SpendingByCategory)
	s.Empty(summary.SpendingByDay)
}
