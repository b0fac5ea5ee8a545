package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tdo help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tdo                                               List open inbox tasks
  tdo list [common flags] [--project <name>] [--completed] [--all]
  tdo add [common flags] [--project <name>] [--desc <text>] [--due <yyyy-mm-dd>] [--priority <1-3>] <title...>
  tdo done [common flags] [--project <name>] <ref>
  tdo rm [common flags] [--project <name>] <ref>
  tdo mv [common flags] [--project <name>] <ref> <dest-project>
  tdo projects [common flags]
  tdo addproject [common flags] [--desc <text>] <name...>
  tdo rmproject [common flags] [--force] <name...>
  tdo login [common flags] --email <email> --password <password>
  tdo register [common flags] --email <email> --password <password>
  tdo logout [common flags]
  tdo help
  tdo version

A <ref> is a task number from the current view, or a raw task id.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
