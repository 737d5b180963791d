// Package reminder scans the collection for tasks that are overdue or
// about to be due, combining due date and due time into one local
// wall-clock deadline.
package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

const deadlineLayout = "2006-01-02 15:04"

// DefaultThreshold is how far ahead a task counts as "upcoming".
const DefaultThreshold = 30 * time.Minute

type Result struct {
	Upcoming []model.Task
	Overdue  []model.Task
}

func (r Result) Empty() bool {
	return len(r.Upcoming) == 0 && len(r.Overdue) == 0
}

// Check splits incomplete, dated tasks into overdue and upcoming
// buckets relative to now. A task without a due time is treated as due
// at 00:00. Tasks whose deadline cannot be parsed are skipped.
func Check(tasks []model.Task, now time.Time, threshold time.Duration) Result {
	var res Result
	for _, t := range tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}

		due, err := deadline(t)
		if err != nil {
			continue
		}

		switch {
		case due.Before(now):
			res.Overdue = append(res.Overdue, t)
		case due.Sub(now) <= threshold:
			res.Upcoming = append(res.Upcoming, t)
		}
	}
	return res
}

func deadline(t model.Task) (time.Time, error) {
	hhmm := "00:00"
	if t.DueTime != nil {
		hhmm = *t.DueTime
	}
	return time.ParseInLocation(deadlineLayout, *t.DueDate+" "+hhmm, time.Local)
}

// Message renders the reminder banner shown after commands; empty when
// there is nothing to say.
func (r Result) Message() string {
	if r.Empty() {
		return ""
	}

	var b strings.Builder
	if len(r.Upcoming) > 0 {
		fmt.Fprintf(&b, "%d upcoming task(s):\n", len(r.Upcoming))
		for _, t := range r.Upcoming {
			b.WriteString(reminderLine(t))
		}
	}
	if len(r.Overdue) > 0 {
		fmt.Fprintf(&b, "%d overdue task(s):\n", len(r.Overdue))
		for _, t := range r.Overdue {
			b.WriteString(reminderLine(t))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func reminderLine(t model.Task) string {
	due := *t.DueDate
	if t.DueTime != nil {
		due += " at " + *t.DueTime
	}
	return fmt.Sprintf("  - [%d] %s (due: %s)\n", t.ID, t.Title, due)
}
