package model

import (
	"math"
	"time"
)

// DateLayout is the canonical calendar-date format used throughout the
// application, in storage and in every user-facing identifier.
const DateLayout = "2006-01-02"

// Plan is a user's task list scoped to one calendar date. At most one
// plan exists per (user, date). The task counters are denormalized from
// the tasks table and are recomputed inside every task mutation.
type Plan struct {
	PlanID        string    `json:"plan_id" db:"plan_id"`
	UserID        string    `json:"user_id" db:"user_id"`
	PlanDate      string    `json:"plan_date" db:"plan_date"`
	TotalTask     int       `json:"total_task" db:"total_task"`
	CompletedTask int       `json:"completed_task" db:"completed_task"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// PlanStatus is one row of the per-date completion table consumed by the
// dashboard and the analytics engine.
type PlanStatus struct {
	Date                 string  `json:"date"`
	CompletedTask        int     `json:"completed_task"`
	TotalTask            int     `json:"total_task"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// Status derives the completion row for a plan.
func (p Plan) Status() PlanStatus {
	return PlanStatus{
		Date:                 p.PlanDate,
		CompletedTask:        p.CompletedTask,
		TotalTask:            p.TotalTask,
		CompletionPercentage: CompletionPercent(p.CompletedTask, p.TotalTask),
	}
}

// CompletionPercent returns completed/total as a percentage rounded to
// two decimals. A plan with no tasks counts as 0, not NaN.
func CompletionPercent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(completed) / float64(total) * 100)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
