package env

import (
	"os"
	"strings"
)

// Get returns the value of the environment variable with the given name.
// If the environment variable is not set or contains only whitespace, the defaultValue is returned.
func Get(name, defaultValue string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		return defaultValue
	}

	if value = strings.TrimSpace(value); value == "" {
		return defaultValue
	}

	return value
}
