package flags

import (
	"bytes"
	"testing"

	"github.com/sbone-research/coverage-runner/app/utils/assert"
)

func TestRegistry_WriteUsage(t *testing.T) {
	buf := new(bytes.Buffer)

	testRegistry().WriteUsage(buf, "tool")

	expected := `Usage: tool [options]

Options:
  -i, --input INPUT     Input file.
  -f, --files FILES...  Files to process.
      --level LEVEL     Level.
  -h, --help            Show this help message.
`

	assert.Equal(t, buf.String(), expected)
}

func Test_metaVar(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "jars", want: "JARS"},
		{name: "configPath", want: "CONFIG_PATH"},
		{name: "runsNumber", want: "RUNS_NUMBER"},
		{name: "log-level", want: "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, metaVar(tt.name), tt.want)
		})
	}
}
