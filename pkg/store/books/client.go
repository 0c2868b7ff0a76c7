package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/models/report"
	"github.com/de-tools/ledger-atlas/pkg/retry"
)

const (
	defaultBaseURL = "https://quickbooks.api.intuit.com"
	defaultTimeout = 30 * time.Second
	dateFormat     = "2006-01-02"
)

// Client fetches financial reports for one company over the accounting
// API's v3 report endpoints. It owns no token lifecycle: the profile's
// current bearer token is sent as-is.
type Client struct {
	httpClient *http.Client
	baseURL    string
	realmID    string
	token      string
}

func NewClient(profile domain.CompanyProfile) *Client {
	baseURL := profile.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		realmID:    profile.RealmID,
		token:      profile.Token,
	}
}

// FetchReport implements insights.ReportFetcher. A 429 response becomes a
// retry.RateLimitError carrying the server's Retry-After when present.
func (c *Client) FetchReport(
	ctx context.Context,
	kind report.Kind,
	period domain.Period,
) (*report.Report, error) {
	endpoint := fmt.Sprintf("%s/v3/company/%s/reports/%s", c.baseURL, url.PathEscape(c.realmID), kind)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create report request: %w", err)
	}

	q := req.URL.Query()
	q.Set("start_date", period.From.Format(dateFormat))
	q.Set("end_date", period.To.Format(dateFormat))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s report: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &retry.RateLimitError{RetryAfter: retryAfter(resp.Header)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s report", resp.StatusCode, kind)
	}

	var rep report.Report
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return nil, fmt.Errorf("failed to decode %s report: %w", kind, err)
	}
	return &rep, nil
}

// retryAfter reads the Retry-After header, accepting both the delta-seconds
// and the HTTP-date form. Zero means the server gave no usable hint.
func retryAfter(header http.Header) time.Duration {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
