package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

const titleColWidth = 24

// Renderer turns task collections into terminal tables.
type Renderer struct {
	noColor bool

	header  lipgloss.Style
	done    lipgloss.Style
	priHigh lipgloss.Style
	priMed  lipgloss.Style
	priLow  lipgloss.Style
	dim     lipgloss.Style
}

func NewRenderer(noColor bool) *Renderer {
	return &Renderer{
		noColor: noColor,
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")),
		done: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6AA84F")),
		priHigh: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")),
		priMed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6C07B")),
		priLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
		dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")),
	}
}

// TaskTable renders tasks in the order given.
func (r *Renderer) TaskTable(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}

	var b strings.Builder
	head := fmt.Sprintf("%-4s %-*s %-16s %-8s %-20s %-10s",
		"ID", titleColWidth, "Title", "Due", "Pri", "Tags", "Status")
	b.WriteString(r.styled(r.header, head))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(head)))
	b.WriteByte('\n')

	for _, t := range tasks {
		b.WriteString(r.taskRow(t))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) taskRow(t model.Task) string {
	status := "Incomplete"
	if t.Completed {
		status = "Complete"
	}

	row := fmt.Sprintf("%-4d %-*s %-16s %-8s %-20s %-10s",
		t.ID,
		titleColWidth, truncate(t.Title, titleColWidth-1),
		dueLabel(t),
		string(t.Priority),
		truncate(strings.Join(t.Tags, ","), 19),
		status)

	switch {
	case t.Completed:
		return r.styled(r.done, row)
	case t.Priority == model.PriorityHigh:
		return r.styled(r.priHigh, row)
	case t.Priority == model.PriorityMedium:
		return r.styled(r.priMed, row)
	case t.Priority == model.PriorityLow:
		return r.styled(r.priLow, row)
	}
	return row
}

// TaskDetail renders one task in full.
func (r *Renderer) TaskDetail(t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s\n", t.ID, t.Title)
	if t.Description != nil {
		fmt.Fprintf(&b, "  %s\n", *t.Description)
	}
	if due := dueLabel(t); due != "" {
		fmt.Fprintf(&b, "  due: %s\n", due)
	}
	if t.Priority != model.PriorityNone {
		fmt.Fprintf(&b, "  priority: %s\n", t.Priority)
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "  tags: %s\n", strings.Join(t.Tags, ", "))
	}
	if t.Recurring.Active() {
		fmt.Fprintf(&b, "  repeats: %s\n", *t.Recurring.Type)
	}
	status := "incomplete"
	if t.Completed {
		status = "complete"
	}
	fmt.Fprintf(&b, "  status: %s", r.styled(r.dim, status))
	return b.String()
}

func (r *Renderer) styled(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}

func dueLabel(t model.Task) string {
	if t.DueDate == nil {
		return ""
	}
	if t.DueTime != nil {
		return *t.DueDate + " " + *t.DueTime
	}
	return *t.DueDate
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
