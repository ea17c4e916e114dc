// Package analytics computes the dashboard's KPI summary and chart
// series from the per-date completion table. It is pure: it reads the
// rows it is given and touches neither the store nor the session.
package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/nhle/taskflow/internal/model"
)

// BucketMode selects the time grouping for a chart series.
type BucketMode string

const (
	CurrentMonth BucketMode = "current_month"
	LastMonth    BucketMode = "last_month"
	Month        BucketMode = "month"
	Year         BucketMode = "year"
	AllTime      BucketMode = "all_time"
)

// Summary is the KPI record shown on the dashboard cards.
type Summary struct {
	TotalDates              int     `json:"total_dates"`
	SumCompletedTasks       int     `json:"sum_completed_tasks"`
	SumTotalTasks           int     `json:"sum_total_tasks"`
	AvgCompletionPercentage float64 `json:"avg_completion_percentage"`
	ActiveDays              int     `json:"active_days"`
	IncompleteTasks         int     `json:"incomplete_tasks_list"`
}

// Series is an (x-labels, y-values) pair ready for charting. Labels and
// Values always have equal length; both empty means there is nothing to
// plot and Title carries the no-data marker.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Title  string    `json:"title"`
}

// emptySeriesTitle marks a series with nothing to plot.
const emptySeriesTitle = "No Dates Available"

// IsEmpty reports whether the series carries no points.
func (s Series) IsEmpty() bool { return len(s.Labels) == 0 }

// Summarize reduces the completion table to the KPI record. An empty
// table is a normal state (a brand-new user) and yields the zero value.
func Summarize(rows []model.PlanStatus) Summary {
	if len(rows) == 0 {
		return Summary{}
	}

	var sum Summary
	dates := make(map[string]struct{}, len(rows))
	pctTotal := 0.0
	for _, r := range rows {
		dates[r.Date] = struct{}{}
		sum.SumCompletedTasks += r.CompletedTask
		sum.SumTotalTasks += r.TotalTask
		pctTotal += r.CompletionPercentage
		if r.TotalTask > 0 {
			sum.ActiveDays++
		}
	}
	sum.TotalDates = len(dates)
	sum.AvgCompletionPercentage = model.Round2(pctTotal / float64(len(rows)))
	sum.IncompleteTasks = sum.SumTotalTasks - sum.SumCompletedTasks
	return sum
}

// BuildSeries produces the chart series for the given bucket mode,
// using the wall clock for the current-month window.
func BuildSeries(rows []model.PlanStatus, mode BucketMode) Series {
	return BuildSeriesAt(rows, mode, time.Now())
}

// BuildSeriesAt is BuildSeries with an explicit reference time.
//
// Daily modes (CurrentMonth, LastMonth, AllTime) plot each row's own
// percentage. Grouped modes (Month, Year) recompute the aggregate
// percentage per bucket from the raw counters, so a bucket mixing full
// and empty days weighs days by task count rather than averaging
// percentages. Unknown modes and empty selections return the
// empty-series sentinel.
func BuildSeriesAt(rows []model.PlanStatus, mode BucketMode, now time.Time) Series {
	if len(rows) == 0 {
		return emptySeries()
	}

	switch mode {
	case CurrentMonth:
		return dailySeries(rows, func(d time.Time) bool {
			return d.Year() == now.Year() && d.Month() == now.Month()
		}, "Completion % - Current Month")

	case LastMonth:
		// Relative to the latest date in the table, not the wall clock,
		// so stale data still charts its own trailing month.
		latest, ok := latestDate(rows)
		if !ok {
			return emptySeries()
		}
		prev := time.Date(latest.Year(), latest.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return dailySeries(rows, func(d time.Time) bool {
			return d.Year() == prev.Year() && d.Month() == prev.Month()
		}, "Completion % - Last Month")

	case Month:
		return groupedSeries(rows, func(d time.Time) string {
			return d.Format("2006-01")
		}, "Completion % - Month Wise")

	case Year:
		return groupedSeries(rows, func(d time.Time) string {
			return strconv.Itoa(d.Year())
		}, "Completion % - Year Wise")

	case AllTime:
		return dailySeries(rows, func(time.Time) bool { return true },
			"Completion % - All Time")
	}

	return emptySeries()
}

// dailySeries plots per-row percentages for rows whose date passes the
// filter, in table order.
func dailySeries(rows []model.PlanStatus, include func(time.Time) bool, title string) Series {
	var out Series
	for _, r := range rows {
		d, err := time.Parse(model.DateLayout, r.Date)
		if err != nil || !include(d) {
			continue
		}
		out.Labels = append(out.Labels, r.Date)
		out.Values = append(out.Values, r.CompletionPercentage)
	}
	if out.IsEmpty() {
		return emptySeries()
	}
	out.Title = title
	return out
}

// groupedSeries buckets rows by the key function and plots one aggregate
// percentage per bucket, keys in ascending order.
func groupedSeries(rows []model.PlanStatus, bucket func(time.Time) string, title string) Series {
	type counters struct{ completed, total int }
	groups := make(map[string]*counters)
	for _, r := range rows {
		d, err := time.Parse(model.DateLayout, r.Date)
		if err != nil {
			continue
		}
		key := bucket(d)
		c, ok := groups[key]
		if !ok {
			c = &counters{}
			groups[key] = c
		}
		c.completed += r.CompletedTask
		c.total += r.TotalTask
	}
	if len(groups) == 0 {
		return emptySeries()
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := Series{Title: title}
	for _, k := range keys {
		c := groups[k]
		pct := 0.0
		if c.total > 0 {
			pct = model.Round2(float64(c.completed) / float64(c.total) * 100)
		}
		out.Labels = append(out.Labels, k)
		out.Values = append(out.Values, pct)
	}
	return out
}

func latestDate(rows []model.PlanStatus) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, r := range rows {
		d, err := time.Parse(model.DateLayout, r.Date)
		if err != nil {
			continue
		}
		if !found || d.After(latest) {
			latest = d
			found = true
		}
	}
	return latest, found
}

func emptySeries() Series {
	return Series{Labels: []string{}, Values: []float64{}, Title: emptySeriesTitle}
}
