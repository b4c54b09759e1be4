package flags

import (
	"fmt"
	"strings"

	"github.com/sbone-research/coverage-runner/app/log"
)

const (
	helpOption      = "--help"
	helpShortOption = "-h"
	endOfOptions    = "--"
)

// Registry is an immutable set of options recognized on the command line.
type Registry struct {
	options []Option
	byName  map[string]Option
	tokens  map[string]Option
}

// NewRegistry returns a registry of provided options.
// Invalid or conflicting option definitions are programming errors and cause a panic.
func NewRegistry(options ...Option) *Registry {
	registry := &Registry{
		options: make([]Option, 0, len(options)),
		byName:  make(map[string]Option, len(options)),
		tokens:  make(map[string]Option, 2*len(options)),
	}

	for _, opt := range options {
		if opt.Name == "" || strings.HasPrefix(opt.Name, "-") || strings.ContainsAny(opt.Name, "= ") {
			panic(fmt.Sprintf("flags: invalid option name %q", opt.Name))
		}

		if opt.Arity != Single && opt.Arity != Multiple {
			panic(fmt.Sprintf("flags: invalid arity of option %q", opt.Name))
		}

		if _, exists := registry.byName[opt.Name]; exists {
			panic(fmt.Sprintf("flags: option redefined: %s", opt.Name))
		}

		longToken := opt.longToken()
		if longToken == helpOption {
			panic("flags: option name is reserved: help")
		}

		registry.byName[opt.Name] = opt
		registry.tokens[longToken] = opt

		if opt.Short != "" {
			shortToken := opt.shortToken()
			if !isShortToken(shortToken) || shortToken == helpShortOption {
				panic(fmt.Sprintf("flags: invalid short name %q of option %q", opt.Short, opt.Name))
			}

			if _, exists := registry.tokens[shortToken]; exists {
				panic(fmt.Sprintf("flags: option short name redefined: %s", shortToken))
			}

			registry.tokens[shortToken] = opt
		}

		registry.options = append(registry.options, opt)
	}

	return registry
}

// Options returns registered options in the order of registration.
func (r *Registry) Options() []Option {
	return append([]Option(nil), r.options...)
}

// Lookup returns option with the given name.
func (r *Registry) Lookup(name string) (Option, bool) {
	opt, ok := r.byName[name]
	return opt, ok
}

// Parse evaluates command line arguments against the registry.
//
// Single options consume exactly one value, Multiple options consume every following value
// until the next option token. Options can be provided as "--name value", "--name=value"
// or "-s value" (when a short name is set). Tokens which are not consumed as values,
// and all tokens following "--", are returned as positional arguments.
//
// ErrHelp is returned when "--help" or "-h" is provided.
// Otherwise, all errors are of type *ParseError.
func (r *Registry) Parse(args []string) (*Arguments, error) {
	parsed := newArguments(r)

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == helpOption || arg == helpShortOption {
			return nil, ErrHelp
		}

		if arg == endOfOptions {
			parsed.args = append(parsed.args, args[i+1:]...)
			break
		}

		if !r.isOptionToken(arg) {
			parsed.args = append(parsed.args, arg)
			continue
		}

		token, inlineValue, hasInlineValue := arg, "", false
		if strings.HasPrefix(arg, "--") {
			if idx := strings.IndexByte(arg, '='); idx > 0 {
				token, inlineValue, hasInlineValue = arg[:idx], arg[idx+1:], true
			}
		}

		opt, ok := r.tokens[token]
		if !ok {
			return nil, &ParseError{Token: arg, Err: ErrUnknownOption}
		}

		var values []string

		if hasInlineValue {
			if inlineValue == "" {
				return nil, &ParseError{Token: arg, Option: opt.Name, Err: ErrMissingValue}
			}

			values = append(values, inlineValue)
		}

		switch opt.Arity {
		case Single:
			if !hasInlineValue {
				if i+1 == len(args) || r.isOptionToken(args[i+1]) {
					return nil, &ParseError{Token: arg, Option: opt.Name, Err: ErrMissingValue}
				}

				i++
				values = append(values, args[i])
			}
		case Multiple:
			for i+1 < len(args) && !r.isOptionToken(args[i+1]) {
				i++
				values = append(values, args[i])
			}

			if len(values) == 0 {
				return nil, &ParseError{Token: arg, Option: opt.Name, Err: ErrMissingValue}
			}
		}

		parsed.set(opt, values)
	}

	log.Debugf("parsed %d option(s) and %d positional argument(s)", len(parsed.names), len(parsed.args))

	return parsed, nil
}

// isOptionToken returns true when arg must be treated as an option and not as a value.
// Tokens like "-x" are options only when "x" is a registered short name (or "-h").
func (r *Registry) isOptionToken(arg string) bool {
	if strings.HasPrefix(arg, "--") || arg == helpShortOption {
		return true
	}

	_, ok := r.tokens[arg]

	return ok
}

// isShortToken returns true for tokens like "-c", which are valid short option names.
func isShortToken(arg string) bool {
	if len(arg) != 2 || arg[0] != '-' {
		return false
	}

	c := arg[1]

	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
