package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct {
	project string
}

// SetProject sets the project name (for testing).
func (c *DoneCmd) SetProject(name string) { c.project = name }

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "tdo done [--project <name>] <ref>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.project, "project", "", "")
	fs.StringVar(&c.project, "p", "", "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	filter, err := viewFilter(ctx, svc, c.project)
	if err != nil {
		return failure(errOut, err)
	}

	task, err := ResolveTaskRef(ctx, svc, filter, ref)
	if err != nil {
		if errors.Is(err, ErrTaskOutOfRange) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return failure(errOut, err)
	}

	patch := service.TaskPatch{Completed: service.Bool(true)}
	if _, err := svc.UpdateTask(ctx, task.ID, patch); err != nil {
		return failure(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
