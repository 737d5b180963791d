package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

func TestAdvanceDueDate_Daily(t *testing.T) {
	got, err := AdvanceDueDate("2025-03-10", model.RecurDaily)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", got)
}

func TestAdvanceDueDate_DailyAcrossMonthEnd(t *testing.T) {
	got, err := AdvanceDueDate("2025-03-31", model.RecurDaily)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", got)
}

func TestAdvanceDueDate_Weekly(t *testing.T) {
	got, err := AdvanceDueDate("2025-03-10", model.RecurWeekly)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-17", got)
}

func TestAdvanceDueDate_MonthlyPlain(t *testing.T) {
	got, err := AdvanceDueDate("2025-03-10", model.RecurMonthly)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-10", got)
}

func TestAdvanceDueDate_MonthlyClampsToShortMonth(t *testing.T) {
	cases := map[string]string{
		"2025-01-31": "2025-02-28", // non-leap February
		"2024-01-31": "2024-02-29", // leap February
		"2025-03-31": "2025-04-30",
		"2025-05-31": "2025-06-30",
		"2025-01-30": "2025-02-28",
		"2025-02-28": "2025-03-28", // no clamp needed going the other way
		"2025-12-31": "2026-01-31", // year rollover
	}
	for in, want := range cases {
		got, err := AdvanceDueDate(in, model.RecurMonthly)
		require.NoError(t, err, "advance %s", in)
		assert.Equal(t, want, got, "advance %s", in)
	}
}

func TestAdvanceDueDate_RejectsBadInput(t *testing.T) {
	_, err := AdvanceDueDate("not-a-date", model.RecurDaily)
	assert.Error(t, err)

	_, err = AdvanceDueDate("2025-03-10", model.RecurrenceType("yearly"))
	assert.Error(t, err)
}

func TestNextOccurrence_CopiesEverythingButCompletionAndDate(t *testing.T) {
	orig := model.Task{
		ID:          7,
		Title:       "Water plants",
		Description: strptr("the big ones"),
		Completed:   true,
		DueDate:     strptr("2025-03-10"),
		DueTime:     strptr("18:00"),
		Priority:    model.PriorityLow,
		Tags:        []string{"home"},
		Recurring:   recptr(model.RecurWeekly),
	}

	next, err := NextOccurrence(orig)
	require.NoError(t, err)

	assert.Zero(t, next.ID)
	assert.Equal(t, orig.Title, next.Title)
	assert.Equal(t, *orig.Description, *next.Description)
	assert.False(t, next.Completed)
	assert.Equal(t, "2025-03-17", *next.DueDate)
	assert.Equal(t, "18:00", *next.DueTime)
	assert.Equal(t, model.PriorityLow, next.Priority)
	assert.Equal(t, []string{"home"}, next.Tags)
	assert.True(t, next.Recurring.Active())
	assert.Equal(t, model.RecurWeekly, *next.Recurring.Type)

	// tags are copied, not shared
	next.Tags[0] = "changed"
	assert.Equal(t, "home", orig.Tags[0])
}

func TestNextOccurrence_RequiresActiveRecurrence(t *testing.T) {
	_, err := NextOccurrence(model.Task{Title: "x", DueDate: strptr("2025-03-10")})
	assert.ErrorIs(t, err, ErrNotRecurring)

	_, err = NextOccurrence(model.Task{
		Title:     "x",
		DueDate:   strptr("2025-03-10"),
		Recurring: &model.Recurring{Enabled: false},
	})
	assert.ErrorIs(t, err, ErrNotRecurring)
}

func TestNextOccurrence_RequiresDueDate(t *testing.T) {
	_, err := NextOccurrence(model.Task{Title: "x", Recurring: recptr(model.RecurDaily)})
	assert.ErrorIs(t, err, ErrNoDueDate)
}
