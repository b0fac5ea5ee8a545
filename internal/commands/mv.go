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
	Register(&MvCmd{})
}

// MvCmd implements the mv command: re-file a task into another project.
// The destination "inbox" resolves through the inbox fallback chain.
type MvCmd struct {
	project string
}

// SetProject sets the source project name (for testing).
func (c *MvCmd) SetProject(name string) { c.project = name }

func (c *MvCmd) Name() string      { return "mv" }
func (c *MvCmd) Aliases() []string { return []string{"move"} }
func (c *MvCmd) Synopsis() string  { return "Move a task to another project" }
func (c *MvCmd) Usage() string     { return "tdo mv [--project <name>] <ref> <dest-project>" }
func (c *MvCmd) NeedsAuth() bool   { return true }

func (c *MvCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.project, "project", "", "")
	fs.StringVar(&c.project, "p", "", "")
}

func (c *MvCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: destination project required")
		return exitcode.UserError
	}
	destName := args[1]

	dest, err := ResolveProject(ctx, svc, destName)
	if err != nil {
		return failure(errOut, err)
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

	patch := service.TaskPatch{ProjectID: service.String(dest.ID)}
	if _, err := svc.UpdateTask(ctx, task.ID, patch); err != nil {
		return failure(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
