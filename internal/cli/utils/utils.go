package utils

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/samueljsb/gh-notifs/internal/errcodes"
	"github.com/samueljsb/gh-notifs/internal/systemcodes"
)

// RunCommandWrapper adapts an error-returning command so that failures
// print a diagnostic and exit with the matching system code.
func RunCommandWrapper(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitCode(err))
		}
	}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, errcodes.ErrSourceUnavailable) {
		return systemcodes.ErrorCodeSource
	}

	return systemcodes.ErrorCodeGeneric
}
