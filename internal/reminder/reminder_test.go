package reminder

import (
	"strings"
	"testing"
	"time"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

func strptr(s string) *string { return &s }

func TestCheck_BucketsUpcomingAndOverdue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	tasks := []model.Task{
		{ID: 1, Title: "soon", DueDate: strptr("2025-03-10"), DueTime: strptr("12:20")},
		{ID: 2, Title: "later", DueDate: strptr("2025-03-10"), DueTime: strptr("15:00")},
		{ID: 3, Title: "missed", DueDate: strptr("2025-03-10"), DueTime: strptr("09:00")},
		{ID: 4, Title: "done", Completed: true, DueDate: strptr("2025-03-10"), DueTime: strptr("09:00")},
		{ID: 5, Title: "dateless"},
	}

	res := Check(tasks, now, 30*time.Minute)

	if len(res.Upcoming) != 1 || res.Upcoming[0].ID != 1 {
		t.Fatalf("upcoming = %+v, want only task 1", res.Upcoming)
	}
	if len(res.Overdue) != 1 || res.Overdue[0].ID != 3 {
		t.Fatalf("overdue = %+v, want only task 3", res.Overdue)
	}
}

func TestCheck_TimelessTaskIsDueAtMidnight(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	tasks := []model.Task{
		{ID: 1, Title: "today no time", DueDate: strptr("2025-03-10")},
		{ID: 2, Title: "tomorrow", DueDate: strptr("2025-03-11")},
	}

	res := Check(tasks, now, 30*time.Minute)

	if len(res.Overdue) != 1 || res.Overdue[0].ID != 1 {
		t.Fatalf("overdue = %+v, want task 1 (00:00 already passed)", res.Overdue)
	}
	if len(res.Upcoming) != 0 {
		t.Fatalf("upcoming = %+v, want none", res.Upcoming)
	}
}

func TestCheck_SkipsUnparseableDeadlines(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	tasks := []model.Task{
		{ID: 1, Title: "bad", DueDate: strptr("whenever")},
	}

	res := Check(tasks, now, 30*time.Minute)
	if !res.Empty() {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestMessage_ListsTasksWithDueInfo(t *testing.T) {
	res := Result{
		Upcoming: []model.Task{{ID: 7, Title: "standup", DueDate: strptr("2025-03-10"), DueTime: strptr("09:30")}},
		Overdue:  []model.Task{{ID: 3, Title: "rent", DueDate: strptr("2025-03-01")}},
	}

	msg := res.Message()
	for _, want := range []string{
		"1 upcoming task(s):",
		"[7] standup (due: 2025-03-10 at 09:30)",
		"1 overdue task(s):",
		"[3] rent (due: 2025-03-01)",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestMessage_EmptyResult(t *testing.T) {
	if msg := (Result{}).Message(); msg != "" {
		t.Fatalf("expected empty message, got %q", msg)
	}
}
