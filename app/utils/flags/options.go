package flags

import "fmt"

// Arity defines how many value arguments an option consumes.
type Arity int

const (
	// Single option consumes exactly one value argument.
	Single Arity = iota

	// Multiple option consumes one or more value arguments,
	// up to the next option or the end of the arguments.
	Multiple
)

func (a Arity) String() string {
	switch a {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return fmt.Sprintf("arity(%d)", int(a))
	}
}

// Option represents a command line option.
type Option struct {
	// Name of the option argument. When set to "option", "--option <val>" arguments will be expected.
	Name string

	// Short option name. When set to "o", "-o <val>" arguments will be expected.
	Short string

	// Help message displayed to the user.
	Help string

	// Arity of the option. Multiple options collect every value until the next option.
	Arity Arity
}

// longToken returns command line token of the option, e.g. "--option".
func (opt Option) longToken() string {
	return "--" + opt.Name
}

// shortToken returns short command line token of the option, e.g. "-o".
func (opt Option) shortToken() string {
	if opt.Short == "" {
		return ""
	}

	return "-" + opt.Short
}
