// Copyright 2023 qbee.io
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sbone-research/coverage-runner/app/log"
)

// NoTimeout is used when tests should run without a time limit.
const NoTimeout time.Duration = -1

// Settings of a runner invocation resolved from the command line.
type Settings struct {
	// ConfigPath is the path to the benchmarks configuration file.
	ConfigPath string

	// BaseDir is the directory where results of every run are stored.
	BaseDir string

	// Jars are class path entries in the order they were provided.
	Jars []string

	// RunsNumber is the number of runs of every benchmark.
	RunsNumber int

	// Timeout of a single test case or NoTimeout.
	Timeout time.Duration
}

// settingsReport is the YAML representation of Settings.
type settingsReport struct {
	ConfigPath string   `yaml:"config_path"`
	BaseDir    string   `yaml:"base_dir"`
	Jars       []string `yaml:"jars"`
	RunsNumber int      `yaml:"runs_number"`
	Timeout    string   `yaml:"timeout"`
}

// MarshalYAML implements yaml.Marshaler.
func (s Settings) MarshalYAML() (any, error) {
	report := settingsReport{
		ConfigPath: s.ConfigPath,
		BaseDir:    s.BaseDir,
		Jars:       s.Jars,
		RunsNumber: s.RunsNumber,
		Timeout:    "none",
	}

	if s.Timeout != NoTimeout {
		report.Timeout = s.Timeout.String()
	}

	return report, nil
}

// ResolveSettings validates provided options and converts them to Settings.
func ResolveSettings(opts RunOptions) (Settings, error) {
	var settings Settings

	if opts.ConfigPath == nil {
		return settings, fmt.Errorf("--%s is required", configPathOption)
	}

	if opts.BaseDir == nil {
		return settings, fmt.Errorf("--%s is required", baseDirOption)
	}

	if len(opts.Jars) == 0 {
		return settings, fmt.Errorf("--%s is required", jarsOption)
	}

	if opts.RunsNumber == nil {
		return settings, fmt.Errorf("--%s is required", runsNumberOption)
	}

	runsNumber, err := parseInt32(*opts.RunsNumber)
	if err != nil {
		return settings, fmt.Errorf("invalid --%s value %q: %w", runsNumberOption, *opts.RunsNumber, err)
	}

	if runsNumber < 1 {
		return settings, fmt.Errorf("invalid --%s value %q: must be a positive number", runsNumberOption, *opts.RunsNumber)
	}

	settings = Settings{
		ConfigPath: filepath.Clean(*opts.ConfigPath),
		BaseDir:    filepath.Clean(*opts.BaseDir),
		Jars:       make([]string, 0, len(opts.Jars)),
		RunsNumber: int(runsNumber),
		Timeout:    resolveTimeout(opts.Timeout),
	}

	for _, jar := range opts.Jars {
		settings.Jars = append(settings.Jars, filepath.Clean(jar))
	}

	return settings, nil
}

// resolveTimeout converts timeout in seconds to a duration.
// Missing, non-numeric, non-positive and out of int32 range values result in NoTimeout.
func resolveTimeout(seconds *string) time.Duration {
	if seconds == nil {
		return NoTimeout
	}

	value, err := parseInt32(*seconds)
	if err != nil || value <= 0 {
		log.Warnf("--%s value %q is not a positive number of seconds, running without timeout", timeoutOption, *seconds)
		return NoTimeout
	}

	return time.Duration(value) * time.Second
}

// parseInt32 parses a decimal number which must fit in 32 bits.
func parseInt32(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 32)
}
