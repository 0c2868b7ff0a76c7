package adapters

import (
	"time"

	"github.com/de-tools/ledger-atlas/pkg/models/api"
	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/models/store"
)

const dateFormat = "2006-01-02"

func MapCompanyProfileDomainToApi(p domain.CompanyProfile) api.Company {
	return api.Company{
		Name:    p.Name,
		RealmID: p.RealmID,
	}
}

func MapPeriodDomainToApi(p domain.Period) api.Period {
	return api.Period{
		From: p.From.Format(dateFormat),
		To:   p.To.Format(dateFormat),
	}
}

func MapMetricDomainToApi(m domain.Metric) api.Metric {
	return api.Metric{Value: m.Value, Found: m.Found}
}

func MapOverviewDomainToApi(o domain.Overview) api.Overview {
	return api.Overview{
		Period:            MapPeriodDomainToApi(o.Period),
		Revenue:           MapMetricDomainToApi(o.Revenue),
		OperatingExpenses: MapMetricDomainToApi(o.OperatingExpenses),
		CostOfGoodsSold:   MapMetricDomainToApi(o.CostOfGoodsSold),
		NetProfit:         MapMetricDomainToApi(o.NetProfit),
		CashBalance:       MapMetricDomainToApi(o.CashBalance),
		TotalExpenses:     o.TotalExpenses,
	}
}

func MapExpenseEntriesDomainToApi(entries []domain.ExpenseEntry) []api.ExpenseEntry {
	mapped := make([]api.ExpenseEntry, 0, len(entries))
	for _, e := range entries {
		mapped = append(mapped, api.ExpenseEntry{
			Name:       e.Name,
			Value:      e.Value,
			Percentage: e.Percentage,
		})
	}
	return mapped
}

func MapTrendPointsDomainToApi(year int, points []domain.TrendPoint) api.Trend {
	trend := api.Trend{Year: year, Points: make([]api.TrendPoint, 0, len(points))}
	for _, p := range points {
		trend.Points = append(trend.Points, api.TrendPoint{
			Month:    p.Month,
			Revenue:  p.Revenue,
			Expenses: p.Expenses,
		})
	}
	return trend
}

func MapTrendSnapshotsStoreToApi(year int, snapshots []store.TrendSnapshot) api.Trend {
	trend := api.Trend{Year: year, Points: make([]api.TrendPoint, 0, len(snapshots))}
	for _, s := range snapshots {
		trend.Points = append(trend.Points, api.TrendPoint{
			Month:    time.Date(s.Year, time.Month(s.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan"),
			Revenue:  s.Revenue,
			Expenses: s.Expenses,
		})
	}
	return trend
}

func MapTrendPointsDomainToStore(realmID string, year int, points []domain.TrendPoint) []store.TrendSnapshot {
	fetchedAt := time.Now().UTC()
	snapshots := make([]store.TrendSnapshot, 0, len(points))
	for i, p := range points {
		snapshots = append(snapshots, store.TrendSnapshot{
			RealmID:   realmID,
			Year:      year,
			Month:     i + 1,
			Revenue:   p.Revenue,
			Expenses:  p.Expenses,
			FetchedAt: fetchedAt,
		})
	}
	return snapshots
}
