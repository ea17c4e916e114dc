package analytics_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/nhle/taskflow/internal/analytics"
	"github.com/nhle/taskflow/internal/model"
)

func row(date string, completed, total int) model.PlanStatus {
	return model.PlanStatus{
		Date:                 date,
		CompletedTask:        completed,
		TotalTask:            total,
		CompletionPercentage: model.CompletionPercent(completed, total),
	}
}

func TestSummarize(t *testing.T) {
	rows := []model.PlanStatus{
		row("2024-01-01", 2, 4), // 50%
		row("2024-01-02", 0, 0), // empty day
	}

	got := analytics.Summarize(rows)
	want := analytics.Summary{
		TotalDates:              2,
		SumCompletedTasks:       2,
		SumTotalTasks:           4,
		AvgCompletionPercentage: 25.0,
		ActiveDays:              1,
		IncompleteTasks:         2,
	}
	if got != want {
		t.Errorf("Summarize:\n got  %+v\n want %+v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := analytics.Summarize(nil); got != (analytics.Summary{}) {
		t.Errorf("empty table must yield the zero summary, got %+v", got)
	}
}

func TestSeriesYearGroups(t *testing.T) {
	rows := []model.PlanStatus{
		row("2023-03-01", 2, 4),
		row("2023-07-10", 3, 6),
		row("2024-01-05", 4, 8),
		row("2024-02-06", 6, 12),
	}

	got := analytics.BuildSeries(rows, analytics.Year)
	if !reflect.DeepEqual(got.Labels, []string{"2023", "2024"}) {
		t.Errorf("labels: %v", got.Labels)
	}
	if !reflect.DeepEqual(got.Values, []float64{50, 50}) {
		t.Errorf("values: %v", got.Values)
	}
	if got.Title != "Completion % - Year Wise" {
		t.Errorf("title: %q", got.Title)
	}
}

func TestSeriesMonthRecomputesAggregates(t *testing.T) {
	rows := []model.PlanStatus{
		row("2024-01-01", 1, 2), // 50% on its own
		row("2024-01-02", 3, 4), // 75% on its own
		row("2024-02-01", 0, 0), // empty month bucket
	}

	got := analytics.BuildSeries(rows, analytics.Month)
	if !reflect.DeepEqual(got.Labels, []string{"2024-01", "2024-02"}) {
		t.Fatalf("labels: %v", got.Labels)
	}
	// January weighs days by task count: (1+3)/(2+4), not mean(50, 75).
	if got.Values[0] != 66.67 {
		t.Errorf("january aggregate: got %v, want 66.67", got.Values[0])
	}
	if got.Values[1] != 0 {
		t.Errorf("empty bucket must chart 0, got %v", got.Values[1])
	}
}

func TestSeriesCurrentMonth(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	rows := []model.PlanStatus{
		row("2024-02-28", 1, 2),
		row("2024-03-01", 2, 2),
		row("2024-03-15", 1, 4),
	}

	got := analytics.BuildSeriesAt(rows, analytics.CurrentMonth, now)
	if !reflect.DeepEqual(got.Labels, []string{"2024-03-01", "2024-03-15"}) {
		t.Errorf("labels: %v", got.Labels)
	}
	if !reflect.DeepEqual(got.Values, []float64{100, 25}) {
		t.Errorf("values: %v", got.Values)
	}
}

func TestSeriesLastMonthFollowsTableNotClock(t *testing.T) {
	// Wall clock far ahead of the data: the "last month" is the month
	// before the latest date in the table, February here.
	now := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	rows := []model.PlanStatus{
		row("2024-01-10", 1, 2),
		row("2024-02-05", 2, 4),
		row("2024-02-20", 3, 3),
		row("2024-03-02", 1, 1),
	}

	got := analytics.BuildSeriesAt(rows, analytics.LastMonth, now)
	if !reflect.DeepEqual(got.Labels, []string{"2024-02-05", "2024-02-20"}) {
		t.Errorf("labels: %v", got.Labels)
	}
	if got.Title != "Completion % - Last Month" {
		t.Errorf("title: %q", got.Title)
	}
}

func TestSeriesAllTimeKeepsTableOrder(t *testing.T) {
	rows := []model.PlanStatus{
		row("2023-12-31", 1, 2),
		row("2024-01-01", 2, 2),
	}
	got := analytics.BuildSeries(rows, analytics.AllTime)
	if !reflect.DeepEqual(got.Labels, []string{"2023-12-31", "2024-01-01"}) {
		t.Errorf("labels: %v", got.Labels)
	}
	if !reflect.DeepEqual(got.Values, []float64{50, 100}) {
		t.Errorf("values: %v", got.Values)
	}
}

func TestSeriesEmptySentinel(t *testing.T) {
	empty := analytics.BuildSeries(nil, analytics.Year)
	if !empty.IsEmpty() || empty.Title != "No Dates Available" {
		t.Errorf("empty table: %+v", empty)
	}

	unknown := analytics.BuildSeries([]model.PlanStatus{row("2024-01-01", 1, 2)}, "weekly")
	if !unknown.IsEmpty() || unknown.Title != "No Dates Available" {
		t.Errorf("unknown mode: %+v", unknown)
	}

	// A mode whose filter selects nothing also yields the sentinel.
	now := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC)
	vacant := analytics.BuildSeriesAt([]model.PlanStatus{row("2024-01-01", 1, 2)}, analytics.CurrentMonth, now)
	if !vacant.IsEmpty() || vacant.Title != "No Dates Available" {
		t.Errorf("vacant selection: %+v", vacant)
	}
}
