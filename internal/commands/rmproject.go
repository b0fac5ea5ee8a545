package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
)

func init() {
	Register(&RmProjectCmd{})
}

// RmProjectCmd implements the rmproject command.
// Deleting a project with open tasks requires --force; whether the
// server cascade-deletes those tasks is its own concern.
type RmProjectCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *RmProjectCmd) SetForce(v bool) { c.force = v }

func (c *RmProjectCmd) Name() string      { return "rmproject" }
func (c *RmProjectCmd) Aliases() []string { return []string{"deleteproject"} }
func (c *RmProjectCmd) Synopsis() string  { return "Delete a project" }
func (c *RmProjectCmd) Usage() string     { return "tdo rmproject [--force] <name...>" }
func (c *RmProjectCmd) NeedsAuth() bool   { return true }

func (c *RmProjectCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
	fs.BoolVar(&c.force, "f", false, "")
}

func (c *RmProjectCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(errOut, "error: project name required")
		return exitcode.UserError
	}

	project, err := ResolveProject(ctx, svc, name)
	if err != nil {
		return failure(errOut, err)
	}

	if !c.force {
		open, err := svc.ListTasks(ctx, service.TaskFilter{
			ProjectID: project.ID,
			Completed: service.Bool(false),
		})
		if err != nil {
			return failure(errOut, err)
		}
		if len(open) > 0 {
			fmt.Fprintf(errOut, "error: project not empty: %s (use --force)\n", project.Name)
			return exitcode.UserError
		}
	}

	if err := svc.DeleteProject(ctx, project.ID); err != nil {
		return failure(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
