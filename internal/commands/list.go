package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/output"
	"tdo/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// With no flags it shows the inbox view: open tasks not filed in any
// other project.
type ListCmd struct {
	project   string
	completed bool
	all       bool
}

// SetProject sets the project name (for testing).
func (c *ListCmd) SetProject(name string) { c.project = name }

// SetCompleted sets the completed flag (for testing).
func (c *ListCmd) SetCompleted(v bool) { c.completed = v }

// SetAll sets the all flag (for testing).
func (c *ListCmd) SetAll(v bool) { c.all = v }

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "tdo list [--project <name>] [--completed] [--all]"
}
func (c *ListCmd) NeedsAuth() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.project, "project", "", "")
	fs.StringVar(&c.project, "p", "", "")
	fs.BoolVar(&c.completed, "completed", false, "")
	fs.BoolVar(&c.all, "all", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	filter := service.TaskFilter{Completed: service.Bool(c.completed)}
	header := ""

	switch {
	case c.all:
		header = "All tasks"
	case c.project != "":
		project, err := ResolveProject(ctx, svc, c.project)
		if err != nil {
			return failure(errOut, err)
		}
		filter.ProjectID = project.ID
		header = project.Name
	default:
		filter.InboxOnly = true
	}
	if c.completed && header != "" {
		header += " (completed)"
	}

	tasks, err := svc.ListTasks(ctx, filter)
	if err != nil {
		return failure(errOut, err)
	}

	// The inbox view prints bare, like the default view of most task
	// CLIs; named views get a header even when empty.
	if header != "" {
		output.FormatSectionHeader(out, header)
	}
	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
	}
	if len(tasks) == 0 && header == "" && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}

	return exitcode.Success
}
