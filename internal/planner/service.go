// Package planner applies validated date and task mutations, keeping the
// persisted state and the session snapshot consistent. Persistence always
// happens first; the in-memory snapshot is patched only after the write
// succeeds, so a failed write leaves the session exactly as it was.
package planner

import (
	"context"
	"strings"
	"time"

	"github.com/nhle/taskflow/internal/model"
	"github.com/nhle/taskflow/internal/session"
	"github.com/nhle/taskflow/internal/store"
)

// Service orchestrates plan and task mutations for one session.
type Service struct {
	store store.Store
	sess  *session.Session

	now func() time.Time
}

// New creates a Service bound to the given store and session.
func New(st store.Store, sess *session.Session) *Service {
	return &Service{store: st, sess: sess, now: time.Now}
}

// AddDate validates and schedules a new date, returning the new plan ID.
//
// Rejections, in order: model.ErrInvalidDate for input that is not a
// YYYY-MM-DD date, model.ErrPastDate for dates strictly before today,
// model.ErrDuplicateDate when the session already tracks the date.
func (s *Service) AddDate(ctx context.Context, date string) (string, error) {
	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return "", model.ErrInvalidDate
	}
	if day.Before(s.today()) {
		return "", model.ErrPastDate
	}
	if s.sess.HasDate(date) {
		return "", model.ErrDuplicateDate
	}

	planID, err := s.store.CreatePlan(ctx, s.sess.UserID, date)
	if err != nil {
		return "", err
	}
	s.sess.ApplyAddDate(planID, date)
	return planID, nil
}

// RemoveDate deletes the plan scheduled for date together with its tasks.
// The snapshot is pruned only after the delete has been persisted.
func (s *Service) RemoveDate(ctx context.Context, date string) error {
	planID, ok := s.sess.PlanIDForDate(date)
	if !ok {
		return model.ErrPlanNotFound
	}
	if err := s.store.DeletePlan(ctx, planID); err != nil {
		return err
	}
	s.sess.ApplyRemoveDate(date)
	return nil
}

// AddTask creates an incomplete task titled title under the given date.
func (s *Service) AddTask(ctx context.Context, date, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &model.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	planID, ok := s.sess.PlanIDForDate(date)
	if !ok {
		return model.ErrPlanNotFound
	}
	if _, err := s.store.AddTask(ctx, planID, title); err != nil {
		return err
	}
	s.sess.ApplyAddTask(date, title)
	return nil
}

// RemoveTask deletes the task titled title from the given date.
func (s *Service) RemoveTask(ctx context.Context, date, title string) error {
	planID, ok := s.sess.PlanIDForDate(date)
	if !ok {
		return model.ErrPlanNotFound
	}
	if err := s.store.DeleteTask(ctx, planID, title); err != nil {
		return err
	}
	s.sess.ApplyRemoveTask(date, title)
	return nil
}

// ToggleTask flips a task between incomplete and completed.
func (s *Service) ToggleTask(ctx context.Context, date, title string) error {
	planID, ok := s.sess.PlanIDForDate(date)
	if !ok {
		return model.ErrPlanNotFound
	}
	tasks, _ := s.sess.TasksFor(date)
	current := ""
	for _, t := range tasks {
		if t.Title == title {
			current = t.Status
			break
		}
	}
	if current == "" {
		return model.ErrTaskNotFound
	}

	next := model.StatusCompleted
	if current == model.StatusCompleted {
		next = model.StatusIncomplete
	}
	if err := s.store.SetTaskStatus(ctx, planID, title, next); err != nil {
		return err
	}
	s.sess.ApplySetTaskStatus(date, title, next)
	return nil
}

// today returns midnight of the current date in UTC, comparable with
// parsed plan dates.
func (s *Service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
