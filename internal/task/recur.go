package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

var (
	// ErrNotRecurring is returned when a successor is requested for a
	// task without active recurrence metadata.
	ErrNotRecurring = errors.New("task is not an enabled recurring task")

	// ErrNoDueDate is returned when recurrence has no date to advance.
	ErrNoDueDate = errors.New("recurring task has no due date")
)

// AdvanceDueDate moves a YYYY-MM-DD date forward by one recurrence
// interval. Monthly advancement clamps to the last day of the target
// month when the source day does not exist there (Jan 31 -> Feb 28/29).
func AdvanceDueDate(dueDate string, rt model.RecurrenceType) (string, error) {
	d, err := time.ParseInLocation(dateLayout, dueDate, time.Local)
	if err != nil {
		return "", fmt.Errorf("advance due date: %w", err)
	}

	var next time.Time
	switch rt {
	case model.RecurDaily:
		next = d.AddDate(0, 0, 1)
	case model.RecurWeekly:
		next = d.AddDate(0, 0, 7)
	case model.RecurMonthly:
		next = addMonthClamped(d)
	default:
		return "", fmt.Errorf("advance due date: unknown recurrence type %q", rt)
	}
	return next.Format(dateLayout), nil
}

// addMonthClamped adds one calendar month without the normalization
// overflow of AddDate (which turns Jan 31 into Mar 3).
func addMonthClamped(d time.Time) time.Time {
	year, month, day := d.Date()
	month++
	if month > time.December {
		month = time.January
		year++
	}
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

// lastDayOfMonth exploits day-zero normalization: day 0 of the next
// month is the last day of this one.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// NextOccurrence builds the successor of a completed recurring task:
// same title, description, due time, priority, tags and recurrence
// metadata, completion reset, due date advanced. The returned task has
// no id; the store assigns one on insert.
func NextOccurrence(t model.Task) (model.Task, error) {
	if !t.Recurring.Active() {
		return model.Task{}, ErrNotRecurring
	}
	if t.DueDate == nil {
		return model.Task{}, ErrNoDueDate
	}

	nextDue, err := AdvanceDueDate(*t.DueDate, *t.Recurring.Type)
	if err != nil {
		return model.Task{}, err
	}

	next := t.Clone()
	next.ID = 0
	next.Completed = false
	next.DueDate = &nextDue
	next.CreatedAt = time.Now()
	return next, nil
}
