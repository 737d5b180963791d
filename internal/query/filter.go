// Package query derives read-only views of the task collection:
// composable filters, a search mode that replaces them, and sorting.
// Nothing here mutates the input tasks.
package query

import (
	"strings"
	"time"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

const dateLayout = "2006-01-02"

// Filter narrows the collection. Every dimension defaults to "all";
// the dimensions are AND-combined.
type Filter struct {
	// Status: "" | "all" | "active" | "completed"
	Status string

	// Priority: "" | "all" | "high" | "medium" | "low"
	Priority string

	// Due: "" | "all" | "today" | "overdue"
	Due string

	// Tag: "" | "all" | "<exact tag>"
	Tag string
}

// Apply returns the tasks matching every dimension of the filter, in
// input order. "today" and "overdue" are judged against now's local
// calendar date.
func Apply(tasks []model.Task, f Filter, now time.Time) []model.Task {
	today := now.Format(dateLayout)

	matches := func(t model.Task) bool {
		switch strings.ToLower(strings.TrimSpace(f.Status)) {
		case "", "all":
		case "active":
			if t.Completed {
				return false
			}
		case "completed":
			if !t.Completed {
				return false
			}
		}

		switch p := strings.ToLower(strings.TrimSpace(f.Priority)); p {
		case "", "all":
		default:
			if string(t.Priority) != p {
				return false
			}
		}

		switch strings.ToLower(strings.TrimSpace(f.Due)) {
		case "", "all":
		case "today":
			if t.DueDate == nil || *t.DueDate != today {
				return false
			}
		case "overdue":
			// YYYY-MM-DD compares correctly as a string
			if t.Completed || t.DueDate == nil || *t.DueDate >= today {
				return false
			}
		}

		switch tag := strings.TrimSpace(f.Tag); tag {
		case "", "all":
		default:
			if !t.HasTag(tag) {
				return false
			}
		}

		return true
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Search matches a case-insensitive substring against title,
// description and tags. Search is a mode of its own: when the caller
// uses it, declared filters are bypassed entirely.
func Search(tasks []model.Task, term string) []model.Task {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return append([]model.Task(nil), tasks...)
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if searchMatch(t, needle) {
			out = append(out, t)
		}
	}
	return out
}

func searchMatch(t model.Task, needle string) bool {
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if t.Description != nil && strings.Contains(strings.ToLower(*t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
