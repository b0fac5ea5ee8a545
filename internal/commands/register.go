package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/backend/taskapi"
	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command.
type RegisterCmd struct {
	email    string
	password string
}

// SetCredentials sets email and password (for testing).
func (c *RegisterCmd) SetCredentials(email, password string) {
	c.email = email
	c.password = password
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string     { return "tdo register --email <email> --password <password>" }
func (c *RegisterCmd) NeedsAuth() bool   { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(errOut, "error: email and password required")
		return exitcode.UserError
	}

	res := taskapi.Register(ctx, cfg, c.email, c.password)
	if !res.OK {
		fmt.Fprintf(errOut, "error: %s\n", res.Message)
		if res.Status == 0 {
			return exitcode.BackendError
		}
		return exitcode.AuthError
	}

	// Some backend iterations return a token on register, some require a
	// separate login.
	if res.Token != "" {
		if code := storeToken(cfg, res.Token, errOut); code != exitcode.Success {
			return code
		}
		if !cfg.Quiet {
			fmt.Fprintln(out, "ok")
		}
		return exitcode.Success
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "registered (run: tdo login)")
	}
	return exitcode.Success
}
