package config

import (
	"fmt"
	"os"
)

// LoadEnvInt reads envKey as a decimal integer and runs it through validator
// (nil accepts anything). A missing variable, a parse failure, or a
// validation failure all fall back to defaultValue; only the latter two
// record a warning.
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	var parsed int
	if _, err := fmt.Sscanf(raw, "%d", &parsed); err != nil {
		return fallback(envKey, raw, defaultValue, fmt.Errorf("not an integer"))
	}
	if validator != nil {
		if err := validator(parsed); err != nil {
			return fallback(envKey, raw, defaultValue, err)
		}
	}
	return ConfigLoadResult{Value: parsed}
}

// trueTokens and falseTokens mirror strconv.ParseBool's accepted spellings;
// written out rather than imported so the warning path can name the exact
// set of valid tokens in one place.
var (
	trueTokens  = map[string]bool{"1": true, "t": true, "T": true, "true": true, "TRUE": true, "True": true}
	falseTokens = map[string]bool{"0": true, "f": true, "F": true, "false": true, "FALSE": true, "False": true}
)

// LoadEnvBool reads envKey as a boolean ("1"/"t"/"true"/... or "0"/"f"/
// "false"/...). A missing or unrecognized value falls back to defaultValue.
func LoadEnvBool(envKey string, defaultValue bool) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return ConfigLoadResult{Value: defaultValue}
	}
	switch {
	case trueTokens[raw]:
		return ConfigLoadResult{Value: true}
	case falseTokens[raw]:
		return ConfigLoadResult{Value: false}
	default:
		return fallback(envKey, raw, defaultValue, fmt.Errorf("expected a boolean"))
	}
}
