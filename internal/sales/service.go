package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fetcher loads a dataset from a remote location.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Dataset, error)
}

// Service generates sales reports and keeps them in a Storage backend.
type Service struct {
	storage Storage
	fetcher Fetcher
	logger  *zap.Logger

	defaultRevenue string
	defaultBonus   string
}

// NewService creates a new Service. Empty strategy names fall back to the
// simple revenue and profit-ranked bonus strategies.
func NewService(storage Storage, fetcher Fetcher, logger *zap.Logger, revenueStrategy, bonusStrategy string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if revenueStrategy == "" {
		revenueStrategy = RevenueSimple
	}
	if bonusStrategy == "" {
		bonusStrategy = BonusByProfit
	}

	return &Service{
		storage:        storage,
		fetcher:        fetcher,
		logger:         logger,
		defaultRevenue: revenueStrategy,
		defaultBonus:   bonusStrategy,
	}
}

// GenerateReport analyzes data with the named strategies and stores the
// result. Empty names select the service defaults.
func (s *Service) GenerateReport(data *Dataset, revenueStrategy, bonusStrategy string) (*Report, error) {
	if revenueStrategy == "" {
		revenueStrategy = s.defaultRevenue
	}
	if bonusStrategy == "" {
		bonusStrategy = s.defaultBonus
	}

	revenue, err := LookupRevenueStrategy(revenueStrategy)
	if err != nil {
		return nil, err
	}
	bonus, err := LookupBonusStrategy(bonusStrategy)
	if err != nil {
		return nil, err
	}

	entries, err := AnalyzeSalesData(data, Options{CalculateRevenue: revenue, CalculateBonus: bonus})
	if err != nil {
		s.logger.Warn("sales analysis rejected", zap.Error(err))
		return nil, err
	}

	summary := summarize(entries)
	if !isFinite(summary.TotalRevenue) || !isFinite(summary.TotalProfit) || !isFinite(summary.TotalBonus) {
		err := fmt.Errorf("%w: monetary totals are not finite", ErrInvalidInput)
		s.logger.Warn("sales analysis rejected", zap.Error(err))
		return nil, err
	}

	report := &Report{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now(),
		RevenueStrategy: revenueStrategy,
		BonusStrategy:   bonusStrategy,
		Entries:         entries,
		Summary:         summary,
	}

	if err := s.storage.Set(report); err != nil {
		s.logger.Error("failed to save report", zap.String("report_id", report.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	s.logger.Info("report generated",
		zap.String("report_id", report.ID),
		zap.Int("sellers", report.Summary.Sellers),
		zap.Int("purchase_records", len(data.PurchaseRecords)),
		zap.Int("attributed_sales", report.Summary.TotalSales),
		zap.Float64("total_profit", report.Summary.TotalProfit),
	)
	return report, nil
}

// ImportReport fetches a dataset from url and generates a report from it.
func (s *Service) ImportReport(ctx context.Context, url, revenueStrategy, bonusStrategy string) (*Report, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("%w: no fetcher configured", ErrDatasetUnavailable)
	}

	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Error("failed to fetch dataset", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}

	return s.GenerateReport(data, revenueStrategy, bonusStrategy)
}

// GetReport returns the stored report with the given id.
func (s *Service) GetReport(id string) (*Report, error) {
	return s.storage.Read(id)
}

// ListReports returns every stored report, newest first.
func (s *Service) ListReports() ([]*Report, error) {
	reports, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to list reports", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve reports: %w", err)
	}
	return reports, nil
}

func summarize(entries []ReportEntry) Summary {
	summary := Summary{Sellers: len(entries)}
	revenues := make([]float64, 0, len(entries))
	profits := make([]float64, 0, len(entries))
	bonuses := make([]float64, 0, len(entries))

	for _, e := range entries {
		summary.TotalSales += e.SalesCount
		revenues = append(revenues, e.Revenue)
		profits = append(profits, e.Profit)
		bonuses = append(bonuses, e.Bonus)
	}

	summary.TotalRevenue = sum2(revenues...)
	summary.TotalProfit = sum2(profits...)
	summary.TotalBonus = sum2(bonuses...)
	return summary
}
