package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

func TestSort_DueDateAscendingNullsLast(t *testing.T) {
	tasks := []model.Task{
		{Title: "no date"},
		{Title: "late", DueDate: strptr("2025-06-01")},
		{Title: "soon", DueDate: strptr("2025-03-12")},
		{Title: "bad date", DueDate: strptr("soonish")},
	}

	got := Sort(tasks, "due_date", "")
	assert.Equal(t, []string{"soon", "late", "no date", "bad date"}, titles(got))
}

func TestSort_DueDateDescendingStillKeepsNullsLast(t *testing.T) {
	tasks := []model.Task{
		{Title: "no date"},
		{Title: "late", DueDate: strptr("2025-06-01")},
		{Title: "soon", DueDate: strptr("2025-03-12")},
	}

	got := Sort(tasks, "due_date", "desc")
	assert.Equal(t, []string{"late", "soon", "no date"}, titles(got))
}

func TestSort_PriorityIgnoresDirection(t *testing.T) {
	tasks := []model.Task{
		{Title: "low", Priority: model.PriorityLow},
		{Title: "high", Priority: model.PriorityHigh},
		{Title: "medium", Priority: model.PriorityMedium},
		{Title: "unset"},
	}

	for _, direction := range []string{"", "asc", "desc"} {
		got := Sort(tasks, "priority", direction)
		assert.Equal(t, []string{"high", "medium", "low", "unset"}, titles(got), "direction %q", direction)
	}
}

func TestSort_AlphabeticalIsCaseInsensitive(t *testing.T) {
	tasks := []model.Task{
		{Title: "banana"},
		{Title: "Apple"},
		{Title: "cherry"},
	}

	got := Sort(tasks, "alphabetical", "")
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(got))

	got = Sort(tasks, "alphabetical", "desc")
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, titles(got))
}

func TestSort_CreationDateDefaultsNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	tasks := []model.Task{
		{Title: "oldest", CreatedAt: base},
		{Title: "newest", CreatedAt: base.Add(48 * time.Hour)},
		{Title: "middle", CreatedAt: base.Add(24 * time.Hour)},
	}

	got := Sort(tasks, "creation_date", "")
	assert.Equal(t, []string{"newest", "middle", "oldest"}, titles(got))

	got = Sort(tasks, "creation_date", "asc")
	assert.Equal(t, []string{"oldest", "middle", "newest"}, titles(got))
}

func TestSort_UnknownTypeIsNoOp(t *testing.T) {
	tasks := []model.Task{
		{Title: "b"},
		{Title: "a"},
	}

	got := Sort(tasks, "mystery", "")
	assert.Equal(t, []string{"b", "a"}, titles(got))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		{Title: "b"},
		{Title: "a"},
	}

	_ = Sort(tasks, "alphabetical", "")
	assert.Equal(t, []string{"b", "a"}, titles(tasks))
}
