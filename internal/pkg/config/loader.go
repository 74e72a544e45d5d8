// Package config is the fail-open environment-variable loading and
// validation toolkit PolicyRadar's own internal/config wraps: a bad value
// never aborts startup, it logs a warning and falls back to the default.
package config

import (
	"fmt"
	"os"
)

// ConfigLoadResult is what every LoadEnv* loader returns: the value actually
// in effect, any warnings produced along the way, and whether a fallback
// replaced what the environment supplied.
type ConfigLoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

func fallback(envKey, raw string, defaultValue interface{}, err error) ConfigLoadResult {
	return ConfigLoadResult{
		Value:           defaultValue,
		Warnings:        []string{fmt.Sprintf("invalid %s=%q: %v, using default %v", envKey, raw, err, defaultValue)},
		FallbackApplied: true,
	}
}

// LoadEnvString reads envKey verbatim, with no validation: an unset or empty
// variable returns defaultValue.
func LoadEnvString(envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return defaultValue
}

// LoadEnvWithFallback reads envKey and runs it through validator (which may
// be nil to accept anything). An unset variable uses defaultValue silently;
// a validation failure also falls back to defaultValue, but records why.
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult {
	value := os.Getenv(envKey)
	if value == "" {
		return ConfigLoadResult{Value: defaultValue}
	}
	if validator != nil {
		if err := validator(value); err != nil {
			return fallback(envKey, value, defaultValue, err)
		}
	}
	return ConfigLoadResult{Value: value}
}
