package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"financas-api/internal/dto"
	"financas-api/internal/models"
	"financas-api/internal/normalize"
	"financas-api/internal/repositories"

	"github.com/shopspring/decimal"
)

// LedgerService produces the normalized transaction view. Raw records
// are fetched and run through the pipeline on every call; nothing
// derived is persisted, so rule and category edits apply retroactively.
type LedgerService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	ruleRepo         repositories.RuleRepositoryInterface
	pipeline         *normalize.Pipeline
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	notificationRepo repositories.NotificationRepositoryInterface,
	ruleRepo repositories.RuleRepositoryInterface,
	pipeline *normalize.Pipeline,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &LedgerService{
		notificationRepo: notificationRepo,
		ruleRepo:         ruleRepo,
		pipeline:         pipeline,
		metrics:          metrics,
		logger:           logger,
	}
}

// GetLedger returns the normalized transactions, optionally restricted
// to one calendar month
func (s *LedgerService) GetLedger(filters dto.LedgerFilters) ([]normalize.Transaction, error) {
	started := time.Now()

	var notifications []models.Notification
	var err error
	if filters.Month != 0 && filters.Year != 0 {
		notifications, err = s.notificationRepo.GetByPeriod(filters.Month, filters.Year)
	} else {
		notifications, err = s.notificationRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	// A broken rule table must not take the ledger down. Without rules
	// everything falls back to stored categories and the default.
	rules, err := s.ruleRepo.GetAll()
	if err != nil {
		s.logger.Error("rule store unreachable, normalizing without rules",
			slog.String("error", err.Error()))
		rules = nil
	}

	transactions := s.pipeline.NormalizeBatch(notifications, rules)

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("ledger_normalization", time.Since(started))
		s.metrics.RecordGauge("ledger_transactions", float64(len(transactions)), nil)
	}

	return transactions, nil
}

// Summarize aggregates a normalized transaction list: inbound and
// outbound totals, balance, and outbound spending broken down by
// category, by day and by description
func (s *LedgerService) Summarize(transactions []normalize.Transaction) dto.LedgerSummary {
	totalInbound := decimal.Zero
	totalOutbound := decimal.Zero
	byCategory := map[string]decimal.Decimal{}
	byDay := map[string]decimal.Decimal{}
	byDescription := map[string]decimal.Decimal{}

	for _, tx := range transactions {
		if tx.IsInbound() {
			totalInbound = totalInbound.Add(tx.Amount)
			continue
		}

		totalOutbound = totalOutbound.Add(tx.Amount)
		byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		byDescription[tx.Description] = byDescription[tx.Description].Add(tx.Amount)
		day := tx.OccurredAt.Format("2006-01-02")
		byDay[day] = byDay[day].Add(tx.Amount)
	}

	summary := dto.LedgerSummary{
		TotalInbound:          totalInbound.StringFixed(2),
		TotalOutbound:         totalOutbound.StringFixed(2),
		Balance:               totalInbound.Sub(totalOutbound).StringFixed(2),
		SpendingByCategory:    make([]dto.CategorySpending, 0, len(byCategory)),
		SpendingByDay:         make([]dto.DailyTotal, 0, len(byDay)),
		SpendingByDescription: make([]dto.DescriptionSpending, 0, len(byDescription)),
	}

	for category, total := range byCategory {
		summary.SpendingByCategory = append(summary.SpendingByCategory, dto.CategorySpending{
			Category: category,
			Total:    total.StringFixed(2),
		})
	}
	// Largest spend first, name as tie-break for stable output
	sort.Slice(summary.SpendingByCategory, func(i, j int) bool {
		a, b := summary.SpendingByCategory[i], summary.SpendingByCategory[j]
		if a.Total != b.Total {
			return byCategory[a.Category].GreaterThan(byCategory[b.Category])
		}
		return a.Category < b.Category
	})

	for day, total := range byDay {
		summary.SpendingByDay = append(summary.SpendingByDay, dto.DailyTotal{
			Date:  day,
			Total: total.StringFixed(2),
		})
	}
	sort.Slice(summary.SpendingByDay, func(i, j int) bool {
		return summary.SpendingByDay[i].Date < summary.SpendingByDay[j].Date
	})

	for description, total := range byDescription {
		summary.SpendingByDescription = append(summary.SpendingByDescription, dto.DescriptionSpending{
			Description: description,
			Total:       total.StringFixed(2),
		})
	}
	sort.Slice(summary.SpendingByDescription, func(i, j int) bool {
		a, b := summary.SpendingByDescription[i], summary.SpendingByDescription[j]
		if a.Total != b.Total {
			return byDescription[a.Description].GreaterThan(byDescription[b.Description])
		}
		return a.Description < b.Description
	})

	return summary
}
