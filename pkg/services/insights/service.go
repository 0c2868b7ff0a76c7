package insights

import (
	"context"
	"fmt"
	"math"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/models/report"
	"github.com/de-tools/ledger-atlas/pkg/retry"
)

var (
	revenueLabels   = []string{"Total Income", "Total Revenue"}
	opexLabels      = []string{"Total Expenses"}
	cogsLabels      = []string{"Total Cost of Goods Sold"}
	netProfitLabels = []string{"Net Income", "Net Profit", "Profit"}
	cashLabels      = []string{"Total Bank Accounts", "Cash and cash equivalent", "Total Cash"}
)

// Service exposes the extraction engine to the web and CLI layers.
type Service interface {
	GetOverview(ctx context.Context, period domain.Period) (*domain.Overview, error)
	GetExpenseBreakdown(ctx context.Context, period domain.Period) ([]domain.ExpenseEntry, error)
	// GetMonthlyTrend returns exactly 12 points in calendar order; months
	// whose fetch failed carry zero values.
	GetMonthlyTrend(ctx context.Context, year int) []domain.TrendPoint
	// GetPreviousPeriodBreakdown is best effort: any fetch failure yields an
	// empty slice, never an error.
	GetPreviousPeriodBreakdown(ctx context.Context, tf domain.Timeframe, current domain.Period) []domain.ExpenseEntry
}

type service struct {
	fetcher ReportFetcher
	cfg     Config
	policy  ExpensePolicy
	retry   retry.Policy
}

func NewService(fetcher ReportFetcher, cfg Config) Service {
	cfg = cfg.withDefaults()

	policy := DefaultExpensePolicy()
	if cfg.IncludeOtherExpenses {
		policy = policy.WithOtherExpenses()
	}

	return &service{
		fetcher: fetcher,
		cfg:     cfg,
		policy:  policy,
		retry:   retry.Policy{MaxRetries: 1, DefaultDelay: cfg.RetryDelay},
	}
}

func (s *service) GetOverview(ctx context.Context, period domain.Period) (*domain.Overview, error) {
	pnl, err := s.fetcher.FetchReport(ctx, report.KindProfitAndLoss, period)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profit and loss report: %w", err)
	}

	overview := &domain.Overview{
		Period:            period,
		Revenue:           extractMetric(pnl, revenueLabels),
		OperatingExpenses: extractMetric(pnl, opexLabels),
		CostOfGoodsSold:   extractMetric(pnl, cogsLabels),
		NetProfit:         extractMetric(pnl, netProfitLabels),
	}
	overview.TotalExpenses = s.expenseTotal(pnl)

	bs, err := s.fetcher.FetchReport(ctx, report.KindBalanceSheet, period)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance sheet report: %w", err)
	}
	overview.CashBalance = extractMetric(bs, cashLabels)

	return overview, nil
}

func (s *service) GetExpenseBreakdown(ctx context.Context, period domain.Period) ([]domain.ExpenseEntry, error) {
	pnl, err := s.fetcher.FetchReport(ctx, report.KindProfitAndLoss, period)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profit and loss report: %w", err)
	}
	return ExtractBreakdown(pnl), nil
}

// expenseTotal sums the configured summary labels, one extraction per label
// set, absolute values.
func (s *service) expenseTotal(rep *report.Report) float64 {
	var total float64
	for _, labels := range s.policy.LabelSets {
		if v, ok := ExtractValue(rep, labels); ok {
			total += math.Abs(v)
		}
	}
	return total
}

func extractMetric(rep *report.Report, labels []string) domain.Metric {
	v, ok := ExtractValue(rep, labels)
	return domain.Metric{Value: v, Found: ok}
}
