package session

import (
	"fmt"
	"time"

	"github.com/nhle/taskflow/internal/model"
)

// Badge classes consumed by the date-card rendering.
const (
	BadgeComplete = "badge-complete"
	BadgeMedium   = "badge-medium"
	BadgeNoTasks  = "badge-no-tasks"
)

// DateDetail renders a date as "Today", "Tomorrow", "Yesterday", or a
// formatted full date like "Mon Jan-02, 2006".
func DateDetail(date string, today time.Time) string {
	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	anchor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch int(day.Sub(anchor) / (24 * time.Hour)) {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	case -1:
		return "Yesterday"
	}
	return day.Format("Mon Jan-02, 2006")
}

// BadgeStatus classifies a date's task collection for its badge.
func BadgeStatus(tasks []TaskEntry) string {
	if len(tasks) == 0 {
		return BadgeNoTasks
	}
	for _, t := range tasks {
		if t.Status != model.StatusCompleted {
			return BadgeMedium
		}
	}
	return BadgeComplete
}

// TaskRatio renders "completed/total" for a date, or "No Task" when the
// collection is empty.
func TaskRatio(tasks []TaskEntry) string {
	if len(tasks) == 0 {
		return "No Task"
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			completed++
		}
	}
	return fmt.Sprintf("%d/%d", completed, len(tasks))
}

// ProgressPercent returns a date's completion as an integer 0-100.
// Only the canonical "Completed" status counts as done.
func ProgressPercent(tasks []TaskEntry) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			completed++
		}
	}
	return completed * 100 / len(tasks)
}
