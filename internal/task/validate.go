package task

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

const (
	maxTitleLen       = 500
	maxDescriptionLen = 2000

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidationError reports which field broke which rule. Operations that
// fail validation leave the store untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate normalizes and checks a candidate task in place. Tag
// deduplication always runs, even when a later check fails; everything
// else is check-only. The checks run in a fixed order and the first
// failure wins.
func Validate(t *model.Task) error {
	t.Tags = dedupTags(t.Tags)

	title := strings.TrimSpace(t.Title)
	if title == "" {
		return invalid("title", "title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return invalid("title", "title cannot exceed %d characters", maxTitleLen)
	}

	if t.Description != nil && utf8.RuneCountInString(*t.Description) > maxDescriptionLen {
		return invalid("description", "description cannot exceed %d characters", maxDescriptionLen)
	}

	if !t.Priority.Valid() {
		return invalid("priority", "must be one of high, medium, low or empty, got %q", t.Priority)
	}

	if t.DueDate != nil {
		if _, err := time.ParseInLocation(dateLayout, *t.DueDate, time.Local); err != nil {
			return invalid("due_date", "%q is not a valid YYYY-MM-DD date", *t.DueDate)
		}
	}

	if t.DueTime != nil {
		if t.DueDate == nil {
			return invalid("due_time", "a due time requires a due date")
		}
		if _, err := time.Parse(timeLayout, *t.DueTime); err != nil {
			return invalid("due_time", "%q is not a valid HH:MM time", *t.DueTime)
		}
	}

	if t.Recurring != nil {
		if t.Recurring.Enabled && t.Recurring.Type == nil {
			return invalid("recurring", "an enabled recurrence needs a type")
		}
		if t.Recurring.Type != nil && !t.Recurring.Type.Valid() {
			return invalid("recurring", "unknown recurrence type %q", *t.Recurring.Type)
		}
	}

	return nil
}

// dedupTags keeps the first occurrence of each tag, preserving order.
func dedupTags(tags []string) []string {
	if len(tags) < 2 {
		return tags
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
