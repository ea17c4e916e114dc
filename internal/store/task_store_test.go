package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nhle/taskflow/internal/model"
	"github.com/nhle/taskflow/internal/store"
	"github.com/nhle/taskflow/tests/testutil"
)

func newPlan(t *testing.T, s *store.SQLiteStore, userID, date string) string {
	t.Helper()
	planID, err := s.CreatePlan(context.Background(), userID, date)
	if err != nil {
		t.Fatalf("CreatePlan(%s): %v", date, err)
	}
	return planID
}

func planCounters(t *testing.T, s *store.SQLiteStore, userID, planID string) (int, int) {
	t.Helper()
	plans, err := s.GetPlans(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetPlans: %v", err)
	}
	for _, p := range plans {
		if p.PlanID == planID {
			return p.CompletedTask, p.TotalTask
		}
	}
	t.Fatalf("plan %s not found", planID)
	return 0, 0
}

func TestTaskMutationsKeepCountersInSync(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	userID := testutil.CreateTestUser(t, s)
	planID := newPlan(t, s, userID, "2030-06-01")

	if _, err := s.AddTask(ctx, planID, "write report"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.AddTask(ctx, planID, "review notes"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if completed, total := planCounters(t, s, userID, planID); completed != 0 || total != 2 {
		t.Errorf("after adds: got %d/%d, want 0/2", completed, total)
	}

	if err := s.SetTaskStatus(ctx, planID, "write report", model.StatusCompleted); err != nil {
		t.Fatalf("SetTaskStatus: %v", err)
	}
	if completed, total := planCounters(t, s, userID, planID); completed != 1 || total != 2 {
		t.Errorf("after complete: got %d/%d, want 1/2", completed, total)
	}

	if err := s.DeleteTask(ctx, planID, "write report"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if completed, total := planCounters(t, s, userID, planID); completed != 0 || total != 1 {
		t.Errorf("after delete: got %d/%d, want 0/1", completed, total)
	}
}

func TestAddTaskDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	userID := testutil.CreateTestUser(t, s)
	planID := newPlan(t, s, userID, "2030-06-01")

	if _, err := s.AddTask(ctx, planID, "write report"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	_, err := s.AddTask(ctx, planID, "write report")
	if !errors.Is(err, model.ErrDuplicateTask) {
		t.Fatalf("expected ErrDuplicateTask, got %v", err)
	}

	// Counters must reflect the single surviving task.
	if completed, total := planCounters(t, s, userID, planID); completed != 0 || total != 1 {
		t.Errorf("got %d/%d, want 0/1", completed, total)
	}
}

func TestAddTaskUnknownPlan(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	testutil.CreateTestUser(t, s)

	_, err := s.AddTask(ctx, "p9999", "write report")
	if !errors.Is(err, model.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestSetTaskStatusErrors(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	userID := testutil.CreateTestUser(t, s)
	planID := newPlan(t, s, userID, "2030-06-01")

	err := s.SetTaskStatus(ctx, planID, "missing", model.StatusCompleted)
	if !errors.Is(err, model.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	if _, err := s.AddTask(ctx, planID, "write report"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	err = s.SetTaskStatus(ctx, planID, "write report", "Complete")
	if !model.IsValidation(err) {
		t.Fatalf("legacy status spelling must be rejected, got %v", err)
	}
}

func TestGetUserTasksOrdering(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	userID := testutil.CreateTestUser(t, s)

	// Later date created first: output must still be date ascending.
	secondDay := newPlan(t, s, userID, "2030-06-02")
	firstDay := newPlan(t, s, userID, "2030-06-01")

	for _, title := range []string{"alpha", "beta", "gamma"} {
		if _, err := s.AddTask(ctx, firstDay, title); err != nil {
			t.Fatalf("AddTask(%s): %v", title, err)
		}
	}
	if _, err := s.AddTask(ctx, secondDay, "delta"); err != nil {
		t.Fatalf("AddTask(delta): %v", err)
	}

	rows, err := s.GetUserTasks(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserTasks: %v", err)
	}

	want := []struct{ date, title string }{
		{"2030-06-01", "alpha"},
		{"2030-06-01", "beta"},
		{"2030-06-01", "gamma"},
		{"2030-06-02", "delta"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, w := range want {
		if rows[i].PlanDate != w.date || rows[i].Title != w.title {
			t.Errorf("row %d: got (%s, %s), want (%s, %s)",
				i, rows[i].PlanDate, rows[i].Title, w.date, w.title)
		}
	}
}
