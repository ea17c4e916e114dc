package session

import (
	"sort"
	"time"

	"github.com/nhle/taskflow/internal/model"
)

// Window returns the dashboard's visible slice of the task snapshot,
// selected and ordered relative to the current wall-clock date. It is
// recomputed from scratch on every call, never patched.
func (s *Session) Window() []DayTasks {
	return s.WindowOn(time.Now())
}

// WindowOn is Window with an explicit reference date.
func (s *Session) WindowOn(today time.Time) []DayTasks {
	dates := make([]string, 0, len(s.days))
	for _, d := range s.days {
		dates = append(dates, d.Date)
	}
	selected := SelectWindow(dates, today)

	out := make([]DayTasks, 0, len(selected))
	for _, date := range selected {
		out = append(out, s.days[s.index[date]])
	}
	return out
}

// SelectWindow picks the subset of dates to present and their display
// order. Dates in the current calendar month win; with none present the
// most recent (year, month) bucket stands in. The order puts today
// first, then future dates ascending by distance, then past dates with
// the most recent first. An empty input yields an empty window.
func SelectWindow(dates []string, today time.Time) []string {
	type entry struct {
		raw string
		day time.Time
	}

	parsed := make([]entry, 0, len(dates))
	for _, raw := range dates {
		day, err := time.Parse(model.DateLayout, raw)
		if err != nil {
			continue
		}
		parsed = append(parsed, entry{raw: raw, day: day})
	}
	if len(parsed) == 0 {
		return nil
	}

	pool := make([]entry, 0, len(parsed))
	for _, e := range parsed {
		if e.day.Year() == today.Year() && e.day.Month() == today.Month() {
			pool = append(pool, e)
		}
	}

	if len(pool) == 0 {
		latest := parsed[0].day
		for _, e := range parsed[1:] {
			if e.day.Year() > latest.Year() ||
				(e.day.Year() == latest.Year() && e.day.Month() > latest.Month()) {
				latest = e.day
			}
		}
		for _, e := range parsed {
			if e.day.Year() == latest.Year() && e.day.Month() == latest.Month() {
				pool = append(pool, e)
			}
		}
	}

	anchor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	key := func(d time.Time) (int, int) {
		delta := int(d.Sub(anchor) / (24 * time.Hour))
		switch {
		case delta == 0:
			return 0, 0
		case delta > 0:
			return 1, delta
		default:
			return 2, -delta
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		gi, di := key(pool[i].day)
		gj, dj := key(pool[j].day)
		if gi != gj {
			return gi < gj
		}
		return di < dj
	})

	out := make([]string, len(pool))
	for i, e := range pool {
		out[i] = e.raw
	}
	return out
}
