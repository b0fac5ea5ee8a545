package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command. Without --project the task lands in
// the inbox (the backend files tasks with no project there).
type AddCmd struct {
	project     string
	description string
	due         string
	priority    int
}

// SetProject sets the project name (for testing).
func (c *AddCmd) SetProject(name string) { c.project = name }

// SetPriority sets the priority (for testing).
func (c *AddCmd) SetPriority(p int) { c.priority = p }

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "tdo add [--project <name>] [--desc <text>] [--due <yyyy-mm-dd>] [--priority <1-3>] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.project, "project", "", "")
	fs.StringVar(&c.project, "p", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.IntVar(&c.priority, "priority", 0, "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	if c.priority != 0 && (c.priority < service.PriorityHigh || c.priority > service.PriorityLow) {
		fmt.Fprintf(errOut, "error: invalid priority: %d\n", c.priority)
		return exitcode.UserError
	}

	if c.due != "" {
		if _, err := time.Parse("2006-01-02", c.due); err != nil {
			fmt.Fprintf(errOut, "error: invalid due date: %s\n", c.due)
			return exitcode.UserError
		}
	}

	payload := service.TaskPayload{
		Title:       title,
		Description: c.description,
		DueDate:     c.due,
		Priority:    c.priority,
	}
	if c.project != "" {
		project, err := ResolveProject(ctx, svc, c.project)
		if err != nil {
			return failure(errOut, err)
		}
		payload.ProjectID = project.ID
	}

	if _, err := svc.CreateTask(ctx, payload); err != nil {
		return failure(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
