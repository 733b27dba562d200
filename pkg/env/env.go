// Package env reads individual environment variables for the few knobs
// that live outside the FOODIE_ config struct, like LOG_FORMAT and PORT.
package env

import "os"

// Get returns the variable's value, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}
