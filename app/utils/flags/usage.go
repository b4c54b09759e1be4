package flags

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"
)

// WriteUsage writes help message of the registry to w.
func (r *Registry) WriteUsage(w io.Writer, program string) {
	_, _ = fmt.Fprintf(w, "Usage: %s [options]\n\nOptions:\n", program)

	writer := tabwriter.NewWriter(w, 0, 1, 2, ' ', 0)
	for _, opt := range r.options {
		line := "  "

		if opt.Short == "" {
			line += "    "
		} else {
			line += fmt.Sprintf("%s, ", opt.shortToken())
		}

		line += fmt.Sprintf("%s %s", opt.longToken(), metaVar(opt.Name))

		if opt.Arity == Multiple {
			line += "..."
		}

		line += "\t" + opt.Help

		_, _ = fmt.Fprintln(writer, line)
	}
	_, _ = fmt.Fprintf(writer, "  %s, %s\t%s\n", helpShortOption, helpOption, "Show this help message.")
	_ = writer.Flush()
}

// metaVar returns placeholder of the option value, e.g. CONFIG_PATH for configPath.
func metaVar(name string) string {
	var builder strings.Builder

	for i, c := range name {
		if c == '-' {
			builder.WriteRune('_')
			continue
		}

		if i > 0 && unicode.IsUpper(c) {
			builder.WriteRune('_')
		}

		builder.WriteRune(unicode.ToUpper(c))
	}

	return builder.String()
}
