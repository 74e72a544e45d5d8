package config

import (
	"fmt"
	"os"
	"time"
)

// LoadEnvDuration reads envKey with time.ParseDuration and runs it through
// validator (nil accepts anything). A missing variable, a parse failure, or
// a validation failure all fall back to defaultValue.
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fallback(envKey, raw, defaultValue, err)
	}
	if validator != nil {
		if err := validator(parsed); err != nil {
			return fallback(envKey, raw, defaultValue, err)
		}
	}
	return ConfigLoadResult{Value: parsed}
}
