package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// envVarPrefix is the prefix for all codepad environment variables.
const envVarPrefix = "CODEPAD_"

// LoadFromEnv applies environment variable overrides to cfg.
// Variables are prefixed with CODEPAD_ (e.g., CODEPAD_LANGUAGE).
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if v, ok := lookup("LANGUAGE"); ok {
		cfg.Language = v
	}
	if v, ok := lookup("THEME"); ok {
		cfg.Theme = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("RUNNER_ENDPOINT"); ok {
		cfg.Runner.Endpoint = v
	}
	if v, ok := lookup("SNIPPETS_DIR"); ok {
		cfg.Snippets.Dir = v
	}

	if v, ok := lookup("HISTORY_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sHISTORY_LIMIT: %q", envVarPrefix, v)
		}
		cfg.HistoryLimit = n
	}
	if v, ok := lookup("SPLIT_PERCENT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid number for %sSPLIT_PERCENT: %q", envVarPrefix, v)
		}
		cfg.SplitPercent = f
	}
	if v, ok := lookup("LINE_NUMBERS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sLINE_NUMBERS: %q (expected true/false/1/0)", envVarPrefix, v)
		}
		cfg.LineNumbers = b
	}
	if v, ok := lookup("RUNNER_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration for %sRUNNER_TIMEOUT: %q", envVarPrefix, v)
		}
		cfg.Runner.Timeout = d
	}
	return nil
}

func lookup(suffix string) (string, bool) {
	v := os.Getenv(envVarPrefix + suffix)
	return v, v != ""
}
