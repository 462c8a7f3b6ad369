package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for a watch-and-run session
type Config struct {
	Patterns   []string
	Excludes   []string
	Command    string
	DebounceMs int
	IntervalMs int
}

// SplitPatternList splits a comma-separated glob list, dropping empty entries
func SplitPatternList(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	patterns := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns
}

// LoadConfig builds a Config from the CLI options, with timing knobs
// taken from environment variables with defaults
func LoadConfig(pattern, exclude, command string) *Config {
	debounceMs := 500
	if dbStr := os.Getenv("DEBOUNCE_MS"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			debounceMs = db
		}
	}

	intervalMs := 1000
	if ivStr := os.Getenv("POLL_INTERVAL_MS"); ivStr != "" {
		if iv, err := strconv.Atoi(ivStr); err == nil {
			intervalMs = iv
		}
	}

	return &Config{
		Patterns:   SplitPatternList(pattern),
		Excludes:   SplitPatternList(exclude),
		Command:    command,
		DebounceMs: debounceMs,
		IntervalMs: intervalMs,
	}
}
