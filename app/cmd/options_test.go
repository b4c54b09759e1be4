package cmd

import (
	"testing"

	"github.com/sbone-research/coverage-runner/app/utils/assert"
	"github.com/sbone-research/coverage-runner/app/utils/flags"
)

func TestRunRegistry_SingleOptions(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: configPathOption, value: "/path/to/config"},
		{name: baseDirOption, value: "/path/to/base"},
		{name: runsNumberOption, value: "10"},
		{name: timeoutOption, value: "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := RunRegistry().Parse([]string{"--" + tt.name, tt.value})
			assert.NoError(t, err)

			assert.True(t, parsed.Has(tt.name))

			value, err := parsed.Value(tt.name)
			assert.NoError(t, err)
			assert.Equal(t, value, tt.value)
		})
	}
}

func TestRunRegistry_JarsOption(t *testing.T) {
	parsed, err := RunRegistry().Parse([]string{"--jars", "jar1.jar", "jar2.jar"})
	assert.NoError(t, err)

	assert.True(t, parsed.Has(jarsOption))

	jars, err := parsed.Values(jarsOption)
	assert.NoError(t, err)
	assert.Equal(t, jars, []string{"jar1.jar", "jar2.jar"})

	_, err = parsed.Value(jarsOption)
	var mismatchErr *flags.TypeMismatchError
	assert.ErrorAs(t, err, &mismatchErr)
}

func TestRunRegistry_DashedValues(t *testing.T) {
	t.Run("jar named like a short option", func(t *testing.T) {
		parsed, err := RunRegistry().Parse([]string{"--jars", "a.jar", "-x"})
		assert.NoError(t, err)

		jars, err := parsed.Values(jarsOption)
		assert.NoError(t, err)
		assert.Equal(t, jars, []string{"a.jar", "-x"})
		assert.Empty(t, parsed.Args())
	})

	t.Run("config path named like a short option", func(t *testing.T) {
		parsed, err := RunRegistry().Parse([]string{"--configPath", "-x"})
		assert.NoError(t, err)

		configPath, err := parsed.Value(configPathOption)
		assert.NoError(t, err)
		assert.Equal(t, configPath, "-x")
	})

	t.Run("registered short option ends jars", func(t *testing.T) {
		parsed, err := RunRegistry().Parse([]string{"--jars", "a.jar", "-r", "3"})
		assert.NoError(t, err)

		jars, err := parsed.Values(jarsOption)
		assert.NoError(t, err)
		assert.Equal(t, jars, []string{"a.jar"})

		runsNumber, err := parsed.Value(runsNumberOption)
		assert.NoError(t, err)
		assert.Equal(t, runsNumber, "3")
	})
}

func TestRunRegistry_AllOptionsTogether(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "declaration order",
			args: []string{
				"--configPath", "/path/to/config",
				"--baseDir", "/path/to/base",
				"--jars", "jar1.jar", "jar2.jar",
				"--runsNumber", "10",
				"--timeout", "300",
			},
		},
		{
			name: "reversed order",
			args: []string{
				"--timeout", "300",
				"--runsNumber", "10",
				"--jars", "jar1.jar", "jar2.jar",
				"--baseDir", "/path/to/base",
				"--configPath", "/path/to/config",
			},
		},
		{
			name: "short names",
			args: []string{
				"-j", "jar1.jar", "jar2.jar",
				"-c", "/path/to/config",
				"-b", "/path/to/base",
				"-r", "10",
				"-t", "300",
			},
		},
	}

	expected := map[string]string{
		configPathOption: "/path/to/config",
		baseDirOption:    "/path/to/base",
		runsNumberOption: "10",
		timeoutOption:    "300",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := RunRegistry().Parse(tt.args)
			assert.NoError(t, err)

			for name, expectedValue := range expected {
				assert.True(t, parsed.Has(name))

				value, err := parsed.Value(name)
				assert.NoError(t, err)
				assert.Equal(t, value, expectedValue)
			}

			assert.True(t, parsed.Has(jarsOption))

			jars, err := parsed.Values(jarsOption)
			assert.NoError(t, err)
			assert.Equal(t, jars, []string{"jar1.jar", "jar2.jar"})

			assert.Empty(t, parsed.Args())
		})
	}
}

func TestRunRegistry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "unknown option",
			args:    []string{"--bogus", "value"},
			wantErr: flags.ErrUnknownOption,
		},
		{
			name:    "missing config path",
			args:    []string{"--configPath"},
			wantErr: flags.ErrMissingValue,
		},
		{
			name:    "jars without values",
			args:    []string{"--jars", "--timeout", "300"},
			wantErr: flags.ErrMissingValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunRegistry().Parse(tt.args)

			var parseErr *flags.ParseError
			assert.ErrorAs(t, err, &parseErr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunRegistry_Options(t *testing.T) {
	options := RunRegistry().Options()
	assert.Length(t, options, 5)

	for _, opt := range options {
		wantArity := flags.Single
		if opt.Name == jarsOption {
			wantArity = flags.Multiple
		}

		assert.Equal(t, opt.Arity, wantArity)
	}
}

func TestDecodeRunOptions(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name string
		args []string
		want RunOptions
	}{
		{
			name: "no options",
			args: nil,
			want: RunOptions{},
		},
		{
			name: "all options",
			args: []string{
				"--configPath", "/path/to/config",
				"--baseDir", "/path/to/base",
				"--jars", "jar1.jar", "jar2.jar",
				"--runsNumber", "10",
				"--timeout", "300",
			},
			want: RunOptions{
				ConfigPath: strPtr("/path/to/config"),
				BaseDir:    strPtr("/path/to/base"),
				Jars:       []string{"jar1.jar", "jar2.jar"},
				RunsNumber: strPtr("10"),
				Timeout:    strPtr("300"),
			},
		},
		{
			name: "some options",
			args: []string{"--timeout=60", "-j", "only.jar"},
			want: RunOptions{
				Jars:    []string{"only.jar"},
				Timeout: strPtr("60"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := RunRegistry().Parse(tt.args)
			assert.NoError(t, err)

			got, err := DecodeRunOptions(parsed)
			assert.NoError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}
