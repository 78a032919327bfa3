package analytics

import (
	"sort"

	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
)

// DailySeriesRow holds distinct-user counts per step for one calendar date,
// plus the per-day approval rate over impressions.
type DailySeriesRow struct {
	Date                      string  `json:"date"`
	Impressions               int     `json:"impressions"`
	Clicks                    int     `json:"clicks"`
	Applies                   int     `json:"applies"`
	Approves                  int     `json:"approves"`
	ApproveRateOverImpression float64 `json:"approve_rate_over_impression"`
}

// DailySeries buckets distinct users per step by calendar date, ascending.
// Every date that appears for any step gets all four step counts, with 0
// filled in for steps absent on that date. An empty table yields an empty
// (non-nil) series.
func DailySeries(table domain.EventTable) []DailySeriesRow {
	type dateStep struct {
		date string
		step domain.Step
	}
	users := make(map[dateStep]map[string]struct{})
	for _, e := range table {
		key := dateStep{date: e.Date, step: e.Step}
		if users[key] == nil {
			users[key] = make(map[string]struct{})
		}
		users[key][e.UserID] = struct{}{}
	}

	dateSet := make(map[string]struct{})
	for key := range users {
		dateSet[key.date] = struct{}{}
	}
	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	rows := make([]DailySeriesRow, 0, len(dates))
	for _, d := range dates {
		row := DailySeriesRow{
			Date:        d,
			Impressions: len(users[dateStep{d, domain.StepImpression}]),
			Clicks:      len(users[dateStep{d, domain.StepClick}]),
			Applies:     len(users[dateStep{d, domain.StepApply}]),
			Approves:    len(users[dateStep{d, domain.StepApprove}]),
		}
		row.ApproveRateOverImpression = safeRate(row.Approves, row.Impressions)
		rows = append(rows, row)
	}
	return rows
}
