package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/config"
	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/ops"
	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/query"
	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/reminder"
	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/task"
)

// Handler executes one parsed command line against the store and
// returns the text to show the user.
type Handler struct {
	store  *task.Store
	cfg    config.Config
	render *Renderer
	now    func() time.Time
}

func NewHandler(store *task.Store, cfg config.Config) *Handler {
	return &Handler{
		store:  store,
		cfg:    cfg,
		render: NewRenderer(cfg.NoColor),
		now:    time.Now,
	}
}

// Handle runs a single command line. quit is true for the exit command.
func (h *Handler) Handle(line string) (out string, quit bool) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return "", false
	}
	command := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch command {
	case "add":
		return h.handleAdd(args), false
	case "list":
		return h.handleList(args), false
	case "view":
		return h.handleView(args), false
	case "update":
		return h.handleUpdate(args), false
	case "delete":
		return h.handleDelete(args), false
	case "complete":
		return h.handleComplete(args), false
	case "filter":
		return h.handleFilter(args), false
	case "search":
		return h.handleSearch(args), false
	case "sort":
		return h.handleSort(args), false
	case "remind":
		return h.handleRemind(), false
	case "backup":
		return h.handleBackup(args), false
	case "help":
		return h.handleHelp(), false
	case "exit":
		return "", true
	default:
		return fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", command), false
	}
}

func (h *Handler) handleAdd(args []string) string {
	positional, opts := splitArgs(args)
	if len(positional) < 1 {
		return "Add command requires a title. Usage: add <title> [description] [--due YYYY-MM-DD] [--time HH:MM] [--priority high|medium|low] [--tags a,b] [--recurring daily|weekly|monthly]"
	}

	t := model.Task{Title: positional[0]}
	if len(positional) > 1 && positional[1] != "" {
		t.Description = &positional[1]
	}
	applyOpts(&t, opts)

	id, err := h.store.Add(t)
	if err != nil {
		return "Error: " + err.Error()
	}
	return fmt.Sprintf("Task added with ID: %d", id)
}

func (h *Handler) handleList(args []string) string {
	_, opts := splitArgs(args)

	tasks := h.store.All()
	if term, ok := opts["search"]; ok {
		// search replaces any declared filters
		tasks = query.Search(tasks, term)
	} else {
		f := query.Filter{Status: "all", Priority: "all", Due: "all", Tag: "all"}
		if expr, ok := opts["filter"]; ok {
			if err := parseFilterExpr(&f, expr); err != nil {
				return "Error: " + err.Error()
			}
		}
		tasks = query.Apply(tasks, f, h.now())
	}
	if sortType, ok := opts["sort"]; ok {
		tasks = query.Sort(tasks, sortType, opts["direction"])
	}

	return h.render.TaskTable(tasks)
}

func (h *Handler) handleView(args []string) string {
	if len(args) < 1 {
		return "View command requires an ID. Usage: view <id>"
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return "Error: Task ID must be a number"
	}
	t, ok := h.store.Get(id)
	if !ok {
		return fmt.Sprintf("Error: Task with ID %d does not exist", id)
	}
	return h.render.TaskDetail(t)
}

func (h *Handler) handleUpdate(args []string) string {
	if len(args) < 2 {
		return "Update command requires an ID and at least one field to update. Usage: update <id> [title] [description] [--priority p] [--due d] [--time t] [--tags a,b] [--recurring type|off]"
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return "Error: Task ID must be a number"
	}

	// Field form: update <id> <field> <value>
	if len(args) == 3 && isFieldName(args[1]) {
		field := strings.ToLower(args[1])
		p, err := fieldPatch(field, args[2])
		if err != nil {
			return "Error: " + err.Error()
		}
		if err := h.update(id, p); err != "" {
			return err
		}
		return fmt.Sprintf("Task %d %s updated to %s", id, field, args[2])
	}

	positional, opts := splitArgs(args[1:])
	var p task.Patch
	if len(positional) > 0 && positional[0] != "" {
		p.Title = &positional[0]
	}
	if len(positional) > 1 && positional[1] != "" {
		p.Description = &positional[1]
	}
	if err := applyOptPatch(&p, opts); err != nil {
		return "Error: " + err.Error()
	}
	if p == (task.Patch{}) {
		return "Error: At least one field must be provided for update"
	}
	if err := h.update(id, p); err != "" {
		return err
	}
	return fmt.Sprintf("Task %d updated successfully", id)
}

// update runs the patch and maps errors to user messages; an empty
// return means success.
func (h *Handler) update(id int, p task.Patch) string {
	switch err := h.store.Update(id, p); {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrNotFound):
		return fmt.Sprintf("Error: Task with ID %d does not exist", id)
	default:
		return "Error: " + err.Error()
	}
}

func (h *Handler) handleDelete(args []string) string {
	if len(args) < 1 {
		return "Delete command requires an ID. Usage: delete <id>"
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return "Error: Task ID must be a number"
	}
	switch err := h.store.Delete(id); {
	case err == nil:
		return fmt.Sprintf("Task %d deleted successfully", id)
	case errors.Is(err, task.ErrNotFound):
		return fmt.Sprintf("Error: Task with ID %d does not exist", id)
	default:
		return "Error: " + err.Error()
	}
}

func (h *Handler) handleComplete(args []string) string {
	if len(args) < 1 {
		return "Complete command requires an ID. Usage: complete <id>"
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return "Error: Task ID must be a number"
	}

	before := h.store.NextID()
	t, toggleErr := h.store.ToggleCompletion(id)
	switch {
	case toggleErr == nil:
	case errors.Is(toggleErr, task.ErrNotFound):
		return fmt.Sprintf("Error: Task with ID %d does not exist", id)
	default:
		return "Error: " + toggleErr.Error()
	}

	status := "incomplete"
	if t.Completed {
		status = "complete"
	}
	msg := fmt.Sprintf("Task %d marked as %s", id, status)
	if h.store.NextID() > before {
		next, ok := h.store.Get(before)
		if ok && next.DueDate != nil {
			msg += fmt.Sprintf("\nNext occurrence created with ID %d (due %s)", next.ID, *next.DueDate)
		}
	}
	return msg
}

func (h *Handler) handleFilter(args []string) string {
	f := query.Filter{Status: "all", Priority: "all", Due: "all", Tag: "all"}
	for _, expr := range args {
		if err := parseFilterExpr(&f, expr); err != nil {
			return "Error: " + err.Error()
		}
	}
	return h.render.TaskTable(query.Apply(h.store.All(), f, h.now()))
}

func (h *Handler) handleSearch(args []string) string {
	if len(args) < 1 {
		return "Search command requires a term. Usage: search <term>"
	}
	return h.render.TaskTable(query.Search(h.store.All(), args[0]))
}

func (h *Handler) handleSort(args []string) string {
	if len(args) < 1 {
		return "Sort command requires a type. Usage: sort <due_date|priority|alphabetical|creation_date> [asc|desc]"
	}
	direction := ""
	if len(args) > 1 {
		direction = args[1]
	}
	return h.render.TaskTable(query.Sort(h.store.All(), args[0], direction))
}

func (h *Handler) handleRemind() string {
	threshold := time.Duration(h.cfg.ReminderMinutes) * time.Minute
	res := reminder.Check(h.store.All(), h.now(), threshold)
	if res.Empty() {
		return "No upcoming or overdue tasks."
	}
	return res.Message()
}

func (h *Handler) handleBackup(args []string) string {
	archive := ops.DefaultArchivePath(h.cfg.DataDir, h.now())
	if len(args) > 0 && args[0] != "" {
		archive = args[0]
	}
	if err := ops.BackupDataDir(h.cfg.DataDir, archive); err != nil {
		return "Error: backup failed: " + err.Error()
	}
	return "Backup written to " + archive
}

func (h *Handler) handleHelp() string {
	return strings.TrimSpace(`
Available commands:
  add <title> [description] [--due YYYY-MM-DD] [--time HH:MM] [--priority high|medium|low] [--tags a,b] [--recurring daily|weekly|monthly]
  list [--search term] [--filter key=value] [--sort type] [--direction asc|desc]
  view <id>
  update <id> [title] [description] [--priority p] [--due d] [--time t] [--tags a,b] [--recurring type|off]
  delete <id>
  complete <id>
  filter <key=value> ...          keys: status, priority, due, tag
  search <term>
  sort <type> [asc|desc]          types: due_date, priority, alphabetical, creation_date
  remind
  backup [archive-path]
  help
  exit`)
}

// applyOpts maps add-command options onto a fresh task.
func applyOpts(t *model.Task, opts map[string]string) {
	if v, ok := opts["due"]; ok && v != "" {
		t.DueDate = &v
	}
	if v, ok := opts["time"]; ok && v != "" {
		t.DueTime = &v
	}
	if v, ok := opts["priority"]; ok {
		t.Priority = model.Priority(strings.ToLower(v))
	}
	if v, ok := opts["tags"]; ok {
		t.Tags = splitTags(v)
	}
	if v, ok := opts["recurring"]; ok && v != "" {
		rt := model.RecurrenceType(strings.ToLower(v))
		t.Recurring = &model.Recurring{Enabled: true, Type: &rt}
	}
}

// applyOptPatch maps update-command options onto a patch. Empty values
// clear the field; "--recurring off" disables recurrence.
func applyOptPatch(p *task.Patch, opts map[string]string) error {
	if v, ok := opts["title"]; ok {
		p.Title = &v
	}
	if v, ok := opts["description"]; ok {
		p.Description = &v
	}
	if v, ok := opts["due"]; ok {
		p.DueDate = &v
	}
	if v, ok := opts["time"]; ok {
		p.DueTime = &v
	}
	if v, ok := opts["priority"]; ok {
		pri := model.Priority(strings.ToLower(v))
		p.Priority = &pri
	}
	if v, ok := opts["tags"]; ok {
		tags := splitTags(v)
		p.Tags = &tags
	}
	if v, ok := opts["recurring"]; ok {
		rec, err := parseRecurring(v)
		if err != nil {
			return err
		}
		p.Recurring = rec
	}
	return nil
}

func isFieldName(s string) bool {
	switch strings.ToLower(s) {
	case "title", "description", "priority", "tags", "due", "time", "recurring":
		return true
	}
	return false
}

func fieldPatch(field, value string) (task.Patch, error) {
	var p task.Patch
	switch field {
	case "title":
		p.Title = &value
	case "description":
		p.Description = &value
	case "priority":
		pri := model.Priority(strings.ToLower(value))
		p.Priority = &pri
	case "tags":
		tags := splitTags(value)
		p.Tags = &tags
	case "due":
		p.DueDate = &value
	case "time":
		p.DueTime = &value
	case "recurring":
		rec, err := parseRecurring(value)
		if err != nil {
			return task.Patch{}, err
		}
		p.Recurring = rec
	}
	return p, nil
}

func parseRecurring(value string) (*model.Recurring, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "off" || v == "" {
		return &model.Recurring{}, nil
	}
	rt := model.RecurrenceType(v)
	if !rt.Valid() {
		return nil, fmt.Errorf("unknown recurrence type %q", value)
	}
	return &model.Recurring{Enabled: true, Type: &rt}, nil
}

func parseFilterExpr(f *query.Filter, expr string) error {
	key, value, ok := strings.Cut(expr, "=")
	if !ok {
		return fmt.Errorf("filter %q is not key=value", expr)
	}
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "status":
		f.Status = value
	case "priority":
		f.Priority = value
	case "due":
		f.Due = value
	case "tag":
		f.Tag = value
	default:
		return fmt.Errorf("unknown filter key %q (want status, priority, due or tag)", key)
	}
	return nil
}

func splitTags(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
