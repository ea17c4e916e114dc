package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nhle/taskflow/internal/model"
)

// GetUserTasks joins tasks to the user's plans in a single query, ordered
// by plan date then creation time. The rowid tiebreaker keeps insertion
// order stable when two tasks share a timestamp.
func (s *SQLiteStore) GetUserTasks(ctx context.Context, userID string) ([]model.TaskRow, error) {
	var rows []model.TaskRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT t.plan_id, dp.plan_date, t.title, t.status
		FROM tasks t
		JOIN daily_plan dp ON t.plan_id = dp.plan_id
		WHERE dp.user_id = ?
		ORDER BY dp.plan_date ASC, t.created_at ASC, t.rowid ASC`,
		userID,
	)
	if err != nil {
		return nil, &model.DataError{Op: "querying user tasks", Err: err}
	}
	return rows, nil
}

// AddTask creates an incomplete task under the plan and refreshes the
// plan's counters in the same transaction.
func (s *SQLiteStore) AddTask(ctx context.Context, planID, title string) (model.Task, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Task{}, &model.DataError{Op: "adding task", Err: err}
	}
	defer tx.Rollback()

	var planCount int
	err = tx.GetContext(ctx, &planCount,
		"SELECT COUNT(*) FROM daily_plan WHERE plan_id = ?", planID)
	if err != nil {
		return model.Task{}, &model.DataError{Op: "checking plan", Err: err}
	}
	if planCount == 0 {
		return model.Task{}, model.ErrPlanNotFound
	}

	task := model.Task{
		ID:        uuid.New().String(),
		PlanID:    planID,
		Title:     title,
		Status:    model.StatusIncomplete,
		CreatedAt: time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO tasks (id, plan_id, title, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		task.ID, task.PlanID, task.Title, task.Status, task.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Task{}, model.ErrDuplicateTask
		}
		return model.Task{}, &model.DataError{Op: "inserting task", Err: err}
	}

	if err := refreshPlanCounters(ctx, tx, planID); err != nil {
		return model.Task{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Task{}, &model.DataError{Op: "committing task", Err: err}
	}
	return task, nil
}

// DeleteTask removes a task by its title within the plan and refreshes
// the plan's counters in the same transaction.
func (s *SQLiteStore) DeleteTask(ctx context.Context, planID, title string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return &model.DataError{Op: "deleting task", Err: err}
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"DELETE FROM tasks WHERE plan_id = ? AND title = ?", planID, title)
	if err != nil {
		return &model.DataError{Op: "deleting task", Err: err}
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return model.ErrTaskNotFound
	}

	if err := refreshPlanCounters(ctx, tx, planID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return &model.DataError{Op: "committing task deletion", Err: err}
	}
	return nil
}

// SetTaskStatus updates a task's status and refreshes the plan's counters
// in the same transaction.
func (s *SQLiteStore) SetTaskStatus(ctx context.Context, planID, title, status string) error {
	if status != model.StatusIncomplete && status != model.StatusCompleted {
		return &model.ValidationError{Field: "status", Reason: "unknown status " + status}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return &model.DataError{Op: "updating task status", Err: err}
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE plan_id = ? AND title = ?",
		status, planID, title)
	if err != nil {
		return &model.DataError{Op: "updating task status", Err: err}
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return model.ErrTaskNotFound
	}

	if err := refreshPlanCounters(ctx, tx, planID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return &model.DataError{Op: "committing status update", Err: err}
	}
	return nil
}

// refreshPlanCounters recomputes a plan's denormalized task counters from
// the authoritative tasks table. Every task mutation calls this inside
// its own transaction so the counters cannot drift.
func refreshPlanCounters(ctx context.Context, tx *sqlx.Tx, planID string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE daily_plan SET
			total_task = (SELECT COUNT(*) FROM tasks WHERE plan_id = ?),
			completed_task = (SELECT COUNT(*) FROM tasks WHERE plan_id = ? AND status = ?)
		WHERE plan_id = ?`,
		planID, planID, model.StatusCompleted, planID,
	)
	if err != nil {
		return &model.DataError{Op: "refreshing plan counters", Err: err}
	}
	return nil
}
