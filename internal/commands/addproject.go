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
	Register(&AddProjectCmd{})
}

// AddProjectCmd implements the addproject command.
type AddProjectCmd struct {
	description string
}

func (c *AddProjectCmd) Name() string      { return "addproject" }
func (c *AddProjectCmd) Aliases() []string { return []string{"createproject"} }
func (c *AddProjectCmd) Synopsis() string  { return "Create a project" }
func (c *AddProjectCmd) Usage() string     { return "tdo addproject [--desc <text>] <name...>" }
func (c *AddProjectCmd) NeedsAuth() bool   { return true }

func (c *AddProjectCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
}

func (c *AddProjectCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(errOut, "error: project name required")
		return exitcode.UserError
	}

	payload := service.ProjectPayload{
		Name:        name,
		Description: c.description,
	}
	if _, err := svc.CreateProject(ctx, payload); err != nil {
		return failure(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
