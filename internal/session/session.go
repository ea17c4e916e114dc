// Package session holds the per-login in-memory view of a user's plans
// and tasks. A Session is built on login, torn down on logout, and owned
// by a single logical user session; nothing here is safe for concurrent
// use without external synchronization.
package session

import (
	"context"
	"log"
	"sort"

	"github.com/nhle/taskflow/internal/model"
	"github.com/nhle/taskflow/internal/store"
)

// TaskEntry is one (title, status) pair within a date's task collection.
type TaskEntry struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// DayTasks is the ordered task collection for one date. Task order is
// creation order and is preserved across loads and mutations.
type DayTasks struct {
	Date  string      `json:"date"`
	Tasks []TaskEntry `json:"tasks"`
}

// Session is the per-user snapshot of plan and task state. It is rebuilt
// wholesale from the store on login and patched incrementally after
// single-date mutations.
//
// Invariants held between calls:
//   - planIDs keys and rows correspond one to one,
//   - every plan date appears in days, possibly with no tasks,
//   - rows and days stay sorted ascending by date,
//   - each row's percentage is 0 for an empty plan, else
//     round(completed/total*100, 2).
type Session struct {
	UserID string

	store store.Store

	planIDs map[string]string  // plan_id -> date
	rows    []model.PlanStatus // one row per plan, date ascending
	days    []DayTasks         // date ascending
	index   map[string]int     // date -> position in days
}

// New creates an empty session for userID. Call Load to populate it.
func New(st store.Store, userID string) *Session {
	s := &Session{UserID: userID, store: st}
	s.reset()
	return s
}

// Load rebuilds the snapshot from the store. Read failures degrade to an
// empty snapshot instead of propagating: the dashboard still renders,
// showing no history. Write paths do not share this policy.
func (s *Session) Load(ctx context.Context) {
	plans, err := s.store.GetPlans(ctx, s.UserID)
	if err != nil {
		log.Printf("session: loading plans for %s: %v (continuing with empty history)", s.UserID, err)
		s.reset()
		return
	}

	s.reset()
	for _, p := range plans {
		s.planIDs[p.PlanID] = p.PlanDate
		s.rows = append(s.rows, p.Status())
		s.index[p.PlanDate] = len(s.days)
		s.days = append(s.days, DayTasks{Date: p.PlanDate})
	}

	taskRows, err := s.store.GetUserTasks(ctx, s.UserID)
	if err != nil {
		// Plan dates stay visible with empty task collections.
		log.Printf("session: loading tasks for %s: %v (continuing with empty task lists)", s.UserID, err)
		return
	}
	for _, r := range taskRows {
		i, ok := s.index[r.PlanDate]
		if !ok {
			continue
		}
		s.days[i].Tasks = append(s.days[i].Tasks, TaskEntry{Title: r.Title, Status: r.Status})
	}
}

func (s *Session) reset() {
	s.planIDs = make(map[string]string)
	s.rows = nil
	s.days = nil
	s.index = make(map[string]int)
}

// PlanIDs returns a copy of the plan_id -> date mapping.
func (s *Session) PlanIDs() map[string]string {
	out := make(map[string]string, len(s.planIDs))
	for id, date := range s.planIDs {
		out[id] = date
	}
	return out
}

// Rows returns a copy of the per-date completion table, date ascending.
func (s *Session) Rows() []model.PlanStatus {
	out := make([]model.PlanStatus, len(s.rows))
	copy(out, s.rows)
	return out
}

// Days returns the full date-ascending task snapshot. The returned task
// slices are shared with the session and must not be modified.
func (s *Session) Days() []DayTasks {
	out := make([]DayTasks, len(s.days))
	copy(out, s.days)
	return out
}

// HasDate reports whether the date is already scheduled.
func (s *Session) HasDate(date string) bool {
	_, ok := s.index[date]
	return ok
}

// PlanIDForDate resolves a date back to its plan ID.
func (s *Session) PlanIDForDate(date string) (string, bool) {
	for id, d := range s.planIDs {
		if d == date {
			return id, true
		}
	}
	return "", false
}

// TasksFor returns the task collection for a date.
func (s *Session) TasksFor(date string) ([]TaskEntry, bool) {
	i, ok := s.index[date]
	if !ok {
		return nil, false
	}
	return s.days[i].Tasks, true
}

// ApplyAddDate records a freshly persisted plan: a zeroed completion row
// and an empty task collection, both kept in date order.
func (s *Session) ApplyAddDate(planID, date string) {
	s.planIDs[planID] = date

	at := sort.Search(len(s.rows), func(i int) bool { return s.rows[i].Date >= date })
	s.rows = append(s.rows, model.PlanStatus{})
	copy(s.rows[at+1:], s.rows[at:])
	s.rows[at] = model.PlanStatus{Date: date}

	s.days = append(s.days, DayTasks{})
	copy(s.days[at+1:], s.days[at:])
	s.days[at] = DayTasks{Date: date}
	s.reindex()
}

// ApplyRemoveDate prunes a deleted plan from every structure.
func (s *Session) ApplyRemoveDate(date string) {
	i, ok := s.index[date]
	if !ok {
		return
	}
	for id, d := range s.planIDs {
		if d == date {
			delete(s.planIDs, id)
			break
		}
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	s.days = append(s.days[:i], s.days[i+1:]...)
	s.reindex()
}

// ApplyAddTask appends a persisted incomplete task to its date and
// refreshes that date's counters.
func (s *Session) ApplyAddTask(date, title string) {
	i, ok := s.index[date]
	if !ok {
		return
	}
	s.days[i].Tasks = append(s.days[i].Tasks, TaskEntry{Title: title, Status: model.StatusIncomplete})
	s.recount(date)
}

// ApplyRemoveTask removes a task by title and refreshes counters.
func (s *Session) ApplyRemoveTask(date, title string) {
	i, ok := s.index[date]
	if !ok {
		return
	}
	tasks := s.days[i].Tasks
	for j, t := range tasks {
		if t.Title == title {
			s.days[i].Tasks = append(tasks[:j], tasks[j+1:]...)
			break
		}
	}
	s.recount(date)
}

// ApplySetTaskStatus updates a task's status in place and refreshes
// counters.
func (s *Session) ApplySetTaskStatus(date, title, status string) {
	i, ok := s.index[date]
	if !ok {
		return
	}
	for j := range s.days[i].Tasks {
		if s.days[i].Tasks[j].Title == title {
			s.days[i].Tasks[j].Status = status
			break
		}
	}
	s.recount(date)
}

// recount recomputes one date's completion row from its task collection.
func (s *Session) recount(date string) {
	i, ok := s.index[date]
	if !ok {
		return
	}
	total := len(s.days[i].Tasks)
	completed := 0
	for _, t := range s.days[i].Tasks {
		if t.Status == model.StatusCompleted {
			completed++
		}
	}
	for j := range s.rows {
		if s.rows[j].Date == date {
			s.rows[j].TotalTask = total
			s.rows[j].CompletedTask = completed
			s.rows[j].CompletionPercentage = model.CompletionPercent(completed, total)
			return
		}
	}
}

func (s *Session) reindex() {
	s.index = make(map[string]int, len(s.days))
	for i, d := range s.days {
		s.index[d.Date] = i
	}
}
