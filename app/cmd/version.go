package cmd

import (
	"fmt"
	"io"

	"github.com/sbone-research/coverage-runner/app"
)

// versionCommand, as the first command line argument, prints the runner version.
const versionCommand = "version"

func runVersion(stdout io.Writer, args []string) error {
	if len(args) > 0 {
		return &ExitError{Code: UsageExitCode, Message: fmt.Sprintf("unexpected arguments: %v", args)}
	}

	_, _ = fmt.Fprintf(stdout, "%s (commit: %s)\n", app.Version, app.Commit)

	return nil
}
