package cmd

import (
	"github.com/sbone-research/coverage-runner/app/utils/flags"
)

const (
	configPathOption = "configPath"
	baseDirOption    = "baseDir"
	jarsOption       = "jars"
	runsNumberOption = "runsNumber"
	timeoutOption    = "timeout"
)

// RunRegistry returns options recognized by the runner.
func RunRegistry() *flags.Registry {
	return flags.NewRegistry(
		flags.Option{
			Name:  configPathOption,
			Short: "c",
			Help:  "Path to config file.",
		},
		flags.Option{
			Name:  baseDirOption,
			Short: "b",
			Help:  "Path to the base dir.",
		},
		flags.Option{
			Name:  jarsOption,
			Short: "j",
			Help:  "Paths to jars.",
			Arity: flags.Multiple,
		},
		flags.Option{
			Name:  runsNumberOption,
			Short: "r",
			Help:  "Runs number.",
		},
		flags.Option{
			Name:  timeoutOption,
			Short: "t",
			Help:  "Timeout for tests (in seconds).",
		},
	)
}

// RunOptions is a typed view of the options provided to the runner.
// Nil fields represent options which were not provided.
type RunOptions struct {
	ConfigPath *string
	BaseDir    *string
	Jars       []string
	RunsNumber *string
	Timeout    *string
}

// DecodeRunOptions converts parsed arguments into RunOptions.
func DecodeRunOptions(parsed *flags.Arguments) (RunOptions, error) {
	var opts RunOptions
	var err error

	if opts.ConfigPath, err = optionalValue(parsed, configPathOption); err != nil {
		return opts, err
	}

	if opts.BaseDir, err = optionalValue(parsed, baseDirOption); err != nil {
		return opts, err
	}

	if opts.Jars, err = parsed.Values(jarsOption); err != nil {
		return opts, err
	}

	if opts.RunsNumber, err = optionalValue(parsed, runsNumberOption); err != nil {
		return opts, err
	}

	if opts.Timeout, err = optionalValue(parsed, timeoutOption); err != nil {
		return opts, err
	}

	return opts, nil
}

// optionalValue returns pointer to the option value or nil, if option was not provided.
func optionalValue(parsed *flags.Arguments, name string) (*string, error) {
	if !parsed.Has(name) {
		return nil, nil
	}

	value, err := parsed.Value(name)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
