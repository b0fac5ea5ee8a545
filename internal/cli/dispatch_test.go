package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tdo/internal/cli"
	"tdo/internal/commands"
	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
	"tdo/internal/testutil"
)

func run(t *testing.T, factory cli.ServiceFactory, args ...string) (int, string, string) {
	t.Helper()
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Point the config dir at a throwaway so the test never sees a real
	// stored credential. It goes right after the command name so that
	// trailing flags under test keep their shape.
	if len(args) > 0 {
		rest := append([]string{"--config", t.TempDir()}, args[1:]...)
		args = append(args[:1:1], rest...)
	}

	var out, errOut bytes.Buffer
	code := d.Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func fakeFactory(fake *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return fake, nil
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	code, _, errOut := run(t, nil, "frobnicate")
	if code != exitcode.UserError {
		t.Fatalf("expected user error, got %d", code)
	}
	if !strings.Contains(errOut, "unknown command: frobnicate") {
		t.Errorf("unexpected error output: %q", errOut)
	}
}

func TestDispatcher_FlagWithoutCommand(t *testing.T) {
	code, _, errOut := run(t, nil, "--quiet")
	if code != exitcode.UserError {
		t.Fatalf("expected user error, got %d", code)
	}
	if !strings.Contains(errOut, "unknown command") {
		t.Errorf("unexpected error output: %q", errOut)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	code, _, errOut := run(t, nil, "version", "--bogus")
	if code != exitcode.UserError {
		t.Fatalf("expected user error, got %d", code)
	}
	if !strings.Contains(errOut, "unknown flag: bogus") {
		t.Errorf("unexpected error output: %q", errOut)
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	fake := testutil.NewFakeService()
	code, _, errOut := run(t, fakeFactory(fake), "list", "--project")
	if code != exitcode.UserError {
		t.Fatalf("expected user error, got %d", code)
	}
	if !strings.Contains(errOut, "flag needs an argument") {
		t.Errorf("unexpected error output: %q", errOut)
	}
}

func TestDispatcher_VersionWithoutAuth(t *testing.T) {
	code, out, _ := run(t, nil, "version")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if !strings.Contains(out, "tdo ") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestDispatcher_AuthRequiredWithoutToken(t *testing.T) {
	// Nil factory: the dispatcher falls back to the token pre-flight.
	code, _, errOut := run(t, nil, "list")
	if code != exitcode.AuthError {
		t.Fatalf("expected auth error, got %d", code)
	}
	if !strings.Contains(errOut, "not logged in") {
		t.Errorf("unexpected error output: %q", errOut)
	}
}

func TestDispatcher_FactoryNotAuthenticated(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, service.ErrNotAuthenticated
	}
	code, _, errOut := run(t, factory, "list")
	if code != exitcode.AuthError {
		t.Fatalf("expected auth error, got %d", code)
	}
	if !strings.Contains(errOut, "not authenticated") {
		t.Errorf("unexpected error output: %q", errOut)
	}
}

func TestDispatcher_DefaultsToListView(t *testing.T) {
	// No arguments at all, so the config dir comes from the environment.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	fake := testutil.NewFakeService()
	fake.AddTask("t1", "Buy milk", "", false)
	d := cli.NewDispatcher(commands.DefaultRegistry, fakeFactory(fake))

	var out, errOut bytes.Buffer
	code := d.Run(context.Background(), nil, &out, &errOut)
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr %q)", code, errOut.String())
	}
	if !strings.Contains(out.String(), "Buy milk") {
		t.Errorf("expected the inbox view by default, got %q", out.String())
	}
}

func TestDispatcher_AliasDispatch(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("t1", "Buy milk", "", false)

	code, out, _ := run(t, fakeFactory(fake), "ls")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if !strings.Contains(out, "Buy milk") {
		t.Errorf("expected the list output via the alias, got %q", out)
	}
}

func TestDispatcher_QuietFlagReachesCommand(t *testing.T) {
	fake := testutil.NewFakeService()

	code, out, _ := run(t, fakeFactory(fake), "list", "--quiet")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if strings.Contains(out, "no tasks found") {
		t.Errorf("quiet must suppress the empty notice, got %q", out)
	}
}
