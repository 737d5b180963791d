package query

import (
	"sort"
	"strings"
	"time"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

// Sort orders a copy of the tasks by the given sort type. Direction is
// "asc" or "desc"; an empty direction takes the type's default
// (ascending, except creation_date which defaults to newest first).
// An unrecognized sort type is a no-op.
//
// Quirks that are part of the contract: priority sorting is always
// high-to-low and accepts but ignores the direction flag, and due_date
// sorting keeps undated tasks last in both directions.
func Sort(tasks []model.Task, sortType, direction string) []model.Task {
	out := append([]model.Task(nil), tasks...)

	switch strings.ToLower(strings.TrimSpace(sortType)) {
	case "due_date":
		sortByDueDate(out, defaultDir(direction, "asc") == "desc")
	case "priority":
		sortByPriority(out)
	case "alphabetical":
		sortAlphabetically(out, defaultDir(direction, "asc") == "desc")
	case "creation_date":
		sortByCreationDate(out, defaultDir(direction, "desc") == "desc")
	}
	return out
}

func defaultDir(direction, fallback string) string {
	d := strings.ToLower(strings.TrimSpace(direction))
	if d != "asc" && d != "desc" {
		return fallback
	}
	return d
}

// sortByDueDate orders dated tasks earliest-first (or latest-first when
// descending); tasks without a parseable due date sort last either way.
func sortByDueDate(tasks []model.Task, desc bool) {
	key := func(t model.Task) (time.Time, bool) {
		if t.DueDate == nil {
			return time.Time{}, false
		}
		d, err := time.ParseInLocation(dateLayout, *t.DueDate, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return d, true
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		di, iOK := key(tasks[i])
		dj, jOK := key(tasks[j])
		switch {
		case !iOK && !jOK:
			return false
		case !iOK:
			return false
		case !jOK:
			return true
		}
		if desc {
			return dj.Before(di)
		}
		return di.Before(dj)
	})
}

func sortByPriority(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
	})
}

func sortAlphabetically(tasks []model.Task, desc bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ti := strings.ToLower(tasks[i].Title)
		tj := strings.ToLower(tasks[j].Title)
		if desc {
			return tj < ti
		}
		return ti < tj
	})
}

func sortByCreationDate(tasks []model.Task, desc bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if desc {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}
