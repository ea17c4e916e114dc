package model

import "time"

// Task status constants. "Completed" is the canonical spelling stored in
// the database; older data using "Complete" is treated as incomplete.
const (
	StatusIncomplete = "Incomplete"
	StatusCompleted  = "Completed"
)

// Task is a single titled to-do item belonging to one plan. Its lifecycle
// is bound to the parent plan (CASCADE delete). Title is unique within a
// plan and serves as the lookup key in the per-date task collections.
type Task struct {
	ID        string    `json:"id" db:"id"`
	PlanID    string    `json:"plan_id" db:"plan_id"`
	Title     string    `json:"title" db:"title"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TaskRow is one row of the plan/task join: a task paired with the date
// of the plan that owns it, ordered by date then creation time.
type TaskRow struct {
	PlanID   string `db:"plan_id"`
	PlanDate string `db:"plan_date"`
	Title    string `db:"title"`
	Status   string `db:"status"`
}
