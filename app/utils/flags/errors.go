package flags

import (
	"errors"
	"fmt"
)

var (
	// ErrHelp is returned by Parse when --help or -h is provided.
	ErrHelp = errors.New("help requested")

	// ErrUnknownOption is reported when a token names an option which is not registered.
	ErrUnknownOption = errors.New("unknown option")

	// ErrMissingValue is reported when an option is not followed by its value.
	ErrMissingValue = errors.New("value required")
)

// ParseError describes a command line which doesn't match the registry.
type ParseError struct {
	// Token is the command line token which caused the error.
	Token string

	// Option is the name of the matched option (empty for unknown options).
	Option string

	// Err is either ErrUnknownOption or ErrMissingValue.
	Err error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	token := e.Token
	if token == "" {
		token = "--" + e.Option
	}

	return fmt.Sprintf("%s: %s", e.Err, token)
}

// Unwrap returns the underlying reason.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// TypeMismatchError is returned when an option value is requested with an accessor
// which doesn't match the option's arity.
type TypeMismatchError struct {
	Option string
	Arity  Arity
}

// Error implements the error interface for TypeMismatchError.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option --%s takes %s values, use Values instead", e.Option, e.Arity)
}
