package store

import "time"

// TrendSnapshot is one persisted month of an aggregated trend series,
// keyed by (realm, year, month).
type TrendSnapshot struct {
	RealmID   string
	Year      int
	Month     int
	Revenue   float64
	Expenses  float64
	FetchedAt time.Time
}
