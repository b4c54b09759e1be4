package assert

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equal asserts that got and expected are equal.
// Nil and empty slices or maps are considered equal.
func Equal(t *testing.T, got, expected any, opts ...cmp.Option) {
	opts = append(opts, cmpopts.EquateEmpty())

	if diff := cmp.Diff(expected, got, opts...); diff != "" {
		failTest(t, "mismatch (-expected +got):\n%s", diff)
	}
}

// Empty asserts that provided value is empty.
func Empty(t *testing.T, value any) {
	if value == nil {
		return
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array, reflect.Chan:
		if v.Len() == 0 {
			return
		}
	default:
		if v.IsZero() {
			return
		}
	}

	failTest(t, "expected empty value, got %v", value)
}

// Length asserts length of value (slice, string, etc.).
func Length(t *testing.T, value any, expectedLength int) {
	gotLength := reflect.ValueOf(value).Len()
	if gotLength != expectedLength {
		failTest(t, "expected length %d, got %d", expectedLength, gotLength)
	}
}

// Contains asserts that value contains substring.
func Contains(t *testing.T, value, substring string) {
	if !strings.Contains(value, substring) {
		failTest(t, "%q doesn't contain %q", value, substring)
	}
}

// False asserts that provided value is false.
func False(t *testing.T, value bool) {
	if value {
		failTest(t, "expected false, got true")
	}
}

// True asserts that provided value is true.
func True(t *testing.T, value bool) {
	if !value {
		failTest(t, "expected true, got false")
	}
}

// NoError asserts that provided error is nil.
func NoError(t *testing.T, err error) {
	if err != nil {
		failTest(t, "unexpected error: %v", err)
	}
}

// ErrorIs asserts that err matches target in its chain.
func ErrorIs(t *testing.T, err, target error) {
	if !errors.Is(err, target) {
		failTest(t, "expected error %q, got: %v", target, err)
	}
}

// ErrorAs asserts that err has an error of target's type in its chain and sets target to it.
func ErrorAs(t *testing.T, err error, target any) {
	if !errors.As(err, target) {
		failTest(t, "expected error of type %T, got: %v", target, err)
	}
}

// failTest prints out a formatted failure message and fails the test immediately.
func failTest(t *testing.T, msg string, args ...any) {
	logMsg := fmt.Sprintf(msg, args...)

	_, file, line, ok := runtime.Caller(2)

	prefix := "    "
	if ok {
		prefix = fmt.Sprintf("%s%s:%d: ", prefix, filepath.Base(file), line)
	}

	lines := strings.Split(logMsg, "\n")

	for i, line := range lines {
		fmt.Printf("%s%s\n", prefix, line)
		if i == 0 {
			prefix = strings.Repeat(" ", len(prefix))
		}
	}

	t.FailNow()
}
