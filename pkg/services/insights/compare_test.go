package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/models/report"
)

func TestGetPreviousPeriodBreakdown_YearRequestsPriorYear(t *testing.T) {
	// Given
	fetcher := &stubFetcher{fn: func(_ report.Kind, _ domain.Period) (*report.Report, error) {
		return doc(section("EXPENSES", dataRow("Rent", "1,000.00"))), nil
	}}
	svc := NewService(fetcher, testConfig())
	current := domain.YearPeriod(2024)

	// When
	entries := svc.GetPreviousPeriodBreakdown(context.Background(), domain.TimeframeYear, current)

	// Then
	if len(fetcher.calls) != 1 {
		t.Fatalf("expected 1 fetch, got %d", len(fetcher.calls))
	}
	got := fetcher.calls[0].period
	if got.From.Format("2006-01-02") != "2023-01-01" {
		t.Errorf("expected 2023-01-01 start, got %v", got.From)
	}
	if got.To.Format("2006-01-02") != "2023-12-31" {
		t.Errorf("expected 2023-12-31 end, got %v", got.To)
	}
	if len(entries) != 1 || entries[0].Name != "Rent" {
		t.Errorf("expected delegated breakdown, got %+v", entries)
	}
}

func TestGetPreviousPeriodBreakdown_MonthRequestsPriorMonth(t *testing.T) {
	fetcher := &stubFetcher{fn: func(_ report.Kind, _ domain.Period) (*report.Report, error) {
		return doc(), nil
	}}
	svc := NewService(fetcher, testConfig())
	current := domain.MonthPeriod(2024, time.March)

	svc.GetPreviousPeriodBreakdown(context.Background(), domain.TimeframeMonth, current)

	got := fetcher.calls[0].period
	if got.From.Format("2006-01-02") != "2024-02-01" {
		t.Errorf("expected 2024-02-01 start, got %v", got.From)
	}
	if got.To.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("expected 2024-02-29 end, got %v", got.To)
	}
}

func TestGetPreviousPeriodBreakdown_FetchFailureYieldsEmpty(t *testing.T) {
	fetcher := &stubFetcher{fn: func(_ report.Kind, _ domain.Period) (*report.Report, error) {
		return nil, errors.New("upstream down")
	}}
	svc := NewService(fetcher, testConfig())

	entries := svc.GetPreviousPeriodBreakdown(
		context.Background(),
		domain.TimeframeYear,
		domain.YearPeriod(2024),
	)

	if len(entries) != 0 {
		t.Errorf("expected empty comparison on fetch failure, got %+v", entries)
	}
}
