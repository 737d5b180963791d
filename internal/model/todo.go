package model

import (
	"time"
)

// Priority is a closed set; the empty value means "unset" and sorts last.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityNone, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank maps priorities to their fixed sort order: high first, unset last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	case PriorityNone:
		return 4
	}
	return 5
}

type RecurrenceType string

const (
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
)

func (rt RecurrenceType) Valid() bool {
	switch rt {
	case RecurDaily, RecurWeekly, RecurMonthly:
		return true
	}
	return false
}

// Recurring holds a task's recurrence metadata. Type may be empty only
// while Enabled is false.
type Recurring struct {
	Enabled bool            `json:"enabled"`
	Type    *RecurrenceType `json:"type"`
}

// Active reports whether the task should spawn a successor on completion.
func (r *Recurring) Active() bool {
	return r != nil && r.Enabled && r.Type != nil && r.Type.Valid()
}

// Task is the central entity. DueDate and DueTime are naive local
// wall-clock values kept in their wire form ("2006-01-02", "15:04");
// nil means absent.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     *string    `json:"due_date"`
	DueTime     *string    `json:"due_time"`
	Priority    Priority   `json:"priority"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	Recurring   *Recurring `json:"recurring"`
}

// HasTag reports exact membership in the task's tag set.
func (t *Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy of the task whose tags do not share backing
// storage with the original.
func (t Task) Clone() Task {
	out := t
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if t.Recurring != nil {
		rec := *t.Recurring
		if t.Recurring.Type != nil {
			rt := *t.Recurring.Type
			rec.Type = &rt
		}
		out.Recurring = &rec
	}
	if t.Description != nil {
		d := *t.Description
		out.Description = &d
	}
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.DueTime != nil {
		d := *t.DueTime
		out.DueTime = &d
	}
	return out
}
