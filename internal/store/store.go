package store

import (
	"context"

	"github.com/nhle/taskflow/internal/model"
)

// Store defines the persistence interface for users, daily plans, and
// their tasks. Every operation is a self-contained unit of work: the
// connection is acquired, used, and released within the call, and every
// mutation runs in its own transaction.
//
// Failures cross this boundary as domain errors (model.ErrDuplicateDate,
// model.ErrPlanNotFound, ...) or as *model.DataError; raw driver errors
// never leak to callers.
type Store interface {
	// === Plans ===

	// CreatePlan schedules a new date for the user and returns the
	// generated plan ID. The duplicate-date check, ID allocation, and
	// insert happen in one transaction.
	CreatePlan(ctx context.Context, userID, planDate string) (string, error)

	// DeletePlan removes a plan and, by cascade, all its tasks.
	// Deleting an unknown plan is an error, not a no-op.
	DeletePlan(ctx context.Context, planID string) error

	// GetPlans returns all plans for a user ordered by date ascending.
	GetPlans(ctx context.Context, userID string) ([]model.Plan, error)

	// === Tasks ===

	// GetUserTasks joins tasks to the user's plans in a single query,
	// ordered by plan date then creation time.
	GetUserTasks(ctx context.Context, userID string) ([]model.TaskRow, error)

	AddTask(ctx context.Context, planID, title string) (model.Task, error)
	DeleteTask(ctx context.Context, planID, title string) error
	SetTaskStatus(ctx context.Context, planID, title, status string) error

	// === Users ===

	// CreateUser registers an account and returns the generated user ID.
	CreateUser(ctx context.Context, username, email, digest string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	UpdateUserTheme(ctx context.Context, userID, theme string) error
}
