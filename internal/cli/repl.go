package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/reminder"
)

// RunREPL reads line commands until exit or EOF. Reminders for
// upcoming and overdue tasks are shown once at startup.
func (h *Handler) RunREPL(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "cli-todo2: type 'help' for available commands or 'exit' to quit.")

	threshold := time.Duration(h.cfg.ReminderMinutes) * time.Minute
	if banner := reminder.Check(h.store.All(), h.now(), threshold).Message(); banner != "" {
		fmt.Fprintln(out, banner)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Goodbye!")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, quit := h.Handle(line)
		if quit {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
}
