package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sbone-research/coverage-runner/app/log"
	"github.com/sbone-research/coverage-runner/app/utils/env"
	"github.com/sbone-research/coverage-runner/app/utils/flags"
)

const appName = "coverage-runner"

// LogLevelEnv is the environment variable holding the log level: DEBUG, INFO, WARNING or ERROR.
const LogLevelEnv = "COVERAGE_RUNNER_LOG_LEVEL"

// UsageExitCode is the exit code for invalid command lines.
const UsageExitCode = 2

// ExitError is an error with a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Main returns the root command of the runner.
// Options are parsed by RunRegistry, so cobra flag parsing is disabled.
// The root command has no subcommands, so tokens like "version" or "help"
// are never routed by cobra and reach RunRegistry as option values.
func Main() *cobra.Command {
	registry := RunRegistry()

	root := &cobra.Command{
		Use:   appName + " [options]",
		Short: "Resolve settings of a coverage collection run.",
		Long: `Resolves settings of a coverage collection run from the command line
and prints them as YAML.

Use "--help" to list the options.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == versionCommand {
				return runVersion(cmd.OutOrStdout(), args[1:])
			}

			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), registry, args)
		},
	}

	return root
}

// configureLogging sets log level from the environment.
func configureLogging() {
	levelName := env.Get(LogLevelEnv, "INFO")

	level, err := log.ParseLevel(levelName)
	if err != nil {
		log.Warnf("%v, using INFO", err)
	}

	log.SetLevel(level)
}

// run parses command line arguments and writes resolved settings to stdout.
func run(stdout, stderr io.Writer, registry *flags.Registry, args []string) error {
	parsed, err := registry.Parse(args)
	if errors.Is(err, flags.ErrHelp) {
		registry.WriteUsage(stdout, appName)
		return nil
	}

	if err != nil {
		registry.WriteUsage(stderr, appName)
		return &ExitError{Code: UsageExitCode, Message: err.Error()}
	}

	if positional := parsed.Args(); len(positional) > 0 {
		registry.WriteUsage(stderr, appName)
		return &ExitError{Code: UsageExitCode, Message: fmt.Sprintf("unexpected arguments: %v", positional)}
	}

	opts, err := DecodeRunOptions(parsed)
	if err != nil {
		return fmt.Errorf("error decoding options: %w", err)
	}

	settings, err := ResolveSettings(opts)
	if err != nil {
		return &ExitError{Code: UsageExitCode, Message: err.Error()}
	}

	if settings.Timeout == NoTimeout {
		log.Debugf("execution timeout is not set")
	} else {
		log.Debugf("execution timeout is %s", settings.Timeout)
	}

	encoder := yaml.NewEncoder(stdout)
	encoder.SetIndent(2)

	if err = encoder.Encode(settings); err != nil {
		return fmt.Errorf("error writing settings: %w", err)
	}

	return encoder.Close()
}
