package commands

import (
	"errors"
	"fmt"
	"io"

	"tdo/internal/exitcode"
	"tdo/internal/service"
)

// failure prints err and maps it to an exit code:
// missing credential -> auth, local validation -> user error, network and
// API failures -> backend.
func failure(errOut io.Writer, err error) int {
	var vErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	case errors.Is(err, ErrProjectNotFound) || errors.Is(err, ErrProjectAmbiguous) || errors.Is(err, ErrInboxUnresolved):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.As(err, &vErr):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
