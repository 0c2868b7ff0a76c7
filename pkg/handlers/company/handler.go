package company

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/ledger-atlas/pkg/adapters"
	"github.com/de-tools/ledger-atlas/pkg/models/api"
	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/services/config"
	"github.com/de-tools/ledger-atlas/pkg/services/insights"
	"github.com/de-tools/ledger-atlas/pkg/store/sqlite/trend"
)

// ServiceFactory builds an insights service bound to one company's
// credentials. The web layer holds no tokens itself.
type ServiceFactory func(profile domain.CompanyProfile) insights.Service

type Handler struct {
	registry config.Registry
	services ServiceFactory
	trends   trend.Store
}

func NewHandler(registry config.Registry, services ServiceFactory, trends trend.Store) *Handler {
	return &Handler{
		registry: registry,
		services: services,
		trends:   trends,
	}
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.registry.GetProfiles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list company profiles")
		http.Error(w, "failed to list companies", http.StatusInternalServerError)
		return
	}

	response := make([]api.Company, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, adapters.MapCompanyProfileDomainToApi(p))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	svc, _, ok := h.serviceFor(w, r)
	if !ok {
		return
	}
	_, period, ok := requestPeriod(w, r)
	if !ok {
		return
	}

	overview, err := svc.GetOverview(ctx, period)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build overview")
		http.Error(w, "failed to fetch reports", http.StatusBadGateway)
		return
	}
	writeJSON(w, logger, adapters.MapOverviewDomainToApi(*overview))
}

func (h *Handler) GetExpenseBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	svc, _, ok := h.serviceFor(w, r)
	if !ok {
		return
	}
	_, period, ok := requestPeriod(w, r)
	if !ok {
		return
	}

	entries, err := svc.GetExpenseBreakdown(ctx, period)
	if err != nil {
		logger.Error().Err(err).Msg("failed to extract expense breakdown")
		http.Error(w, "failed to fetch reports", http.StatusBadGateway)
		return
	}
	writeJSON(w, logger, adapters.MapExpenseEntriesDomainToApi(entries))
}

// GetExpenseComparison serves the previous period's breakdown. Best effort
// by design: a failed upstream fetch produces an empty list, not an error.
func (h *Handler) GetExpenseComparison(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	svc, _, ok := h.serviceFor(w, r)
	if !ok {
		return
	}
	tf, period, ok := requestPeriod(w, r)
	if !ok {
		return
	}

	entries := svc.GetPreviousPeriodBreakdown(ctx, tf, period)
	writeJSON(w, logger, adapters.MapExpenseEntriesDomainToApi(entries))
}

func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	svc, profile, ok := h.serviceFor(w, r)
	if !ok {
		return
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	points := svc.GetMonthlyTrend(ctx, year)

	if h.trends != nil {
		// A fully degraded series means every month fetch failed; the last
		// stored series is more useful than twelve zeros. A series with data
		// replaces the stored one.
		if seriesDegraded(points) {
			stored, err := h.trends.Get(ctx, profile.RealmID, year)
			if err != nil {
				logger.Warn().Err(err).Int("year", year).Msg("failed to read trend snapshots")
			} else if len(stored) > 0 {
				logger.Info().Int("year", year).Msg("serving stored trend series")
				writeJSON(w, logger, adapters.MapTrendSnapshotsStoreToApi(year, stored))
				return
			}
		} else {
			snapshots := adapters.MapTrendPointsDomainToStore(profile.RealmID, year, points)
			if err := h.trends.Save(ctx, snapshots); err != nil {
				logger.Warn().Err(err).Int("year", year).Msg("failed to persist trend snapshots")
			}
		}
	}

	writeJSON(w, logger, adapters.MapTrendPointsDomainToApi(year, points))
}

func seriesDegraded(points []domain.TrendPoint) bool {
	for _, p := range points {
		if p.Revenue != 0 || p.Expenses != 0 {
			return false
		}
	}
	return true
}

func (h *Handler) serviceFor(w http.ResponseWriter, r *http.Request) (insights.Service, *domain.CompanyProfile, bool) {
	ctx := r.Context()
	name := chi.URLParam(r, "company")

	profile, err := h.registry.GetProfile(ctx, name)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("company", name).Msg("unknown company")
		http.Error(w, "unknown company", http.StatusNotFound)
		return nil, nil, false
	}
	return h.services(*profile), profile, true
}

func requestPeriod(w http.ResponseWriter, r *http.Request) (domain.Timeframe, domain.Period, bool) {
	raw := r.URL.Query().Get("timeframe")
	if raw == "" {
		raw = string(domain.TimeframeYear)
	}

	tf, err := domain.ParseTimeframe(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", domain.Period{}, false
	}
	return tf, domain.CurrentPeriod(tf, time.Now()), true
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
