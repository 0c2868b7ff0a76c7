package insights

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/models/report"
)

// GetPreviousPeriodBreakdown derives the period immediately before the
// current one (prior year or prior month), fetches a single P&L for it and
// runs the breakdown extractor. Comparison data is best effort: any fetch
// failure yields an empty result.
func (s *service) GetPreviousPeriodBreakdown(
	ctx context.Context,
	tf domain.Timeframe,
	current domain.Period,
) []domain.ExpenseEntry {
	previous := domain.PreviousPeriod(tf, current.From)

	rep, err := s.fetcher.FetchReport(ctx, report.KindProfitAndLoss, previous)
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("timeframe", string(tf)).
			Time("from", previous.From).
			Time("to", previous.To).
			Msg("previous period fetch failed, returning empty comparison")
		return nil
	}

	return ExtractBreakdown(rep)
}
