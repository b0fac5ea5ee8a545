package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/inbox"
	"tdo/internal/output"
	"tdo/internal/service"
)

func init() {
	Register(&ProjectsCmd{})
}

// ProjectsCmd implements the projects command.
type ProjectsCmd struct{}

func (c *ProjectsCmd) Name() string      { return "projects" }
func (c *ProjectsCmd) Aliases() []string { return nil }
func (c *ProjectsCmd) Synopsis() string  { return "Print all projects" }
func (c *ProjectsCmd) Usage() string     { return "tdo projects [common flags]" }
func (c *ProjectsCmd) NeedsAuth() bool   { return true }

func (c *ProjectsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ProjectsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	projects, err := svc.ListProjects(ctx)
	if err != nil {
		return failure(errOut, err)
	}

	// Unresolved is fine here: no project gets the marker.
	inboxID, _, err := inbox.Resolve(ctx, svc)
	if err != nil {
		return failure(errOut, err)
	}

	for _, p := range projects {
		output.FormatProject(out, p, p.ID != "" && p.ID == inboxID)
	}
	if len(projects) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no projects found")
	}

	return exitcode.Success
}
