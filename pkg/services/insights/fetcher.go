package insights

import (
	"context"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/models/report"
)

// ReportFetcher is the single capability the engine consumes from its
// environment. Implementations own credentials and connection state; a
// rate-limited call must be signalled with retry.RateLimitError so the
// aggregator can honor the server's delay.
type ReportFetcher interface {
	FetchReport(ctx context.Context, kind report.Kind, period domain.Period) (*report.Report, error)
}
