package insights

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/models/report"
	"github.com/de-tools/ledger-atlas/pkg/retry"
)

// GetMonthlyTrend issues one P&L fetch per calendar month, strictly
// sequential and in month order. The limiter enforces the inter-call pacing;
// its burst of 1 makes the first wait free and spaces every later fetch by
// the configured interval, so no delay trails the final month.
//
// A rate-limited month is retried once after the server-provided delay
// (RetryDelay when none is given); a month that still fails degrades to a
// zero point. The series is never cut short - even a cancelled context only
// stops new fetches and pads the remaining months with zeros.
func (s *service) GetMonthlyTrend(ctx context.Context, year int) []domain.TrendPoint {
	logger := zerolog.Ctx(ctx)
	limiter := rate.NewLimiter(rate.Every(s.cfg.PaceInterval), 1)

	points := make([]domain.TrendPoint, 0, 12)
	for month := time.January; month <= time.December; month++ {
		period := domain.MonthPeriod(year, month)
		name := period.From.Format("Jan")

		if err := limiter.Wait(ctx); err != nil {
			points = append(points, domain.TrendPoint{Month: name})
			continue
		}

		var rep *report.Report
		err := retry.Do(ctx, s.retry, func() error {
			var fetchErr error
			rep, fetchErr = s.fetcher.FetchReport(ctx, report.KindProfitAndLoss, period)
			return fetchErr
		})
		if err != nil {
			logger.Warn().
				Err(err).
				Int("year", year).
				Str("month", name).
				Msg("month fetch failed, falling back to zero point")
			points = append(points, domain.TrendPoint{Month: name})
			continue
		}

		revenue, _ := ExtractValue(rep, revenueLabels)
		points = append(points, domain.TrendPoint{
			Month:    name,
			Revenue:  math.Abs(revenue),
			Expenses: s.expenseTotal(rep),
		})
	}

	return points
}
