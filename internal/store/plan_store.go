package store

import (
	"context"
	"time"

	"github.com/nhle/taskflow/internal/model"
)

// CreatePlan schedules planDate for the user with zeroed task counters.
// The duplicate check, ID allocation, and insert share one transaction so
// concurrent adders cannot race on the same date or the same ID; the
// UNIQUE(user_id, plan_date) constraint backs the check.
func (s *SQLiteStore) CreatePlan(ctx context.Context, userID, planDate string) (string, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", &model.DataError{Op: "creating plan", Err: err}
	}
	defer tx.Rollback()

	var existing int
	err = tx.GetContext(ctx, &existing,
		"SELECT COUNT(*) FROM daily_plan WHERE user_id = ? AND plan_date = ?",
		userID, planDate,
	)
	if err != nil {
		return "", &model.DataError{Op: "checking existing plan", Err: err}
	}
	if existing > 0 {
		return "", model.ErrDuplicateDate
	}

	// Next ID comes from the highest numeric suffix in use, not the row
	// count, so gaps left by deletions never produce a collision.
	var maxSuffix int
	err = tx.GetContext(ctx, &maxSuffix,
		"SELECT COALESCE(MAX(CAST(SUBSTR(plan_id, 2) AS INTEGER)), 0) FROM daily_plan",
	)
	if err != nil {
		return "", &model.DataError{Op: "allocating plan id", Err: err}
	}
	planID := model.FormatPlanID(maxSuffix + 1)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO daily_plan (plan_id, user_id, plan_date, total_task, completed_task, created_at)
		VALUES (?, ?, ?, 0, 0, ?)`,
		planID, userID, planDate, time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", model.ErrDuplicateDate
		}
		return "", &model.DataError{Op: "inserting plan", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return "", &model.DataError{Op: "committing plan", Err: err}
	}
	return planID, nil
}

// DeletePlan removes a plan; its tasks go with it via the foreign-key
// cascade. An unknown plan ID is reported, not ignored.
func (s *SQLiteStore) DeletePlan(ctx context.Context, planID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM daily_plan WHERE plan_id = ?", planID)
	if err != nil {
		return &model.DataError{Op: "deleting plan " + planID, Err: err}
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return model.ErrPlanNotFound
	}
	return nil
}

// GetPlans returns all plans for userID ordered by date ascending.
func (s *SQLiteStore) GetPlans(ctx context.Context, userID string) ([]model.Plan, error) {
	var plans []model.Plan
	err := s.db.SelectContext(ctx, &plans, `
		SELECT plan_id, user_id, plan_date, total_task, completed_task, created_at
		FROM daily_plan
		WHERE user_id = ?
		ORDER BY plan_date ASC`,
		userID,
	)
	if err != nil {
		return nil, &model.DataError{Op: "querying plans", Err: err}
	}
	return plans, nil
}
