package domain

import (
	"fmt"
	"time"
)

type Timeframe string

const (
	TimeframeYear  Timeframe = "YEAR"
	TimeframeMonth Timeframe = "MONTH"
)

func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case TimeframeYear, TimeframeMonth:
		return Timeframe(s), nil
	}
	return "", fmt.Errorf("unsupported timeframe: %s", s)
}

// Period is an inclusive calendar date range, always a full calendar month
// or a full calendar year.
type Period struct {
	From time.Time
	To   time.Time
}

// MonthPeriod returns the full calendar month. The end date is day 0 of the
// following month, which normalizes to the last day of the target month
// without any per-month day counting.
func MonthPeriod(year int, month time.Month) Period {
	return Period{
		From: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC),
	}
}

// YearPeriod returns January 1 through December 31 of the given year.
func YearPeriod(year int) Period {
	return Period{
		From: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// CurrentPeriod returns the caller-facing default range for a timeframe:
// year-to-date spans the whole current year, month-to-date the whole
// current month.
func CurrentPeriod(tf Timeframe, now time.Time) Period {
	if tf == TimeframeYear {
		return YearPeriod(now.Year())
	}
	return MonthPeriod(now.Year(), now.Month())
}

// PreviousPeriod derives the period immediately before the one containing
// from: the prior calendar year, or the prior calendar month.
func PreviousPeriod(tf Timeframe, from time.Time) Period {
	if tf == TimeframeYear {
		return YearPeriod(from.Year() - 1)
	}
	prev := from.AddDate(0, 0, -from.Day())
	return MonthPeriod(prev.Year(), prev.Month())
}
