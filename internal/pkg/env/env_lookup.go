package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

func TrySetBoolFromEnv(envName string, val *bool) {
	if envVal, found := os.LookupEnv(envName); found {
		if parsed, err := strconv.ParseBool(envVal); err == nil {
			*val = parsed
		}
	}
}

func TrySetDurationFromEnv(envName string, val *time.Duration) {
	if envVal, found := os.LookupEnv(envName); found {
		if parsed, err := time.ParseDuration(envVal); err == nil {
			*val = parsed
		}
	}
}

// TrySetListFromEnv splits a comma separated value, dropping blank entries.
func TrySetListFromEnv(envName string, val *[]string) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	parts := strings.Split(envVal, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}

	*val = out
}
