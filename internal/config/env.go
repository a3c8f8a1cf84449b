// Package config provides the configuration management for the piracer
// application. This file contains environment variable utilities for
// configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns the value of the environment variable with the given
// key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvUint64 returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as uint64, or the default value if
// not set or invalid.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvDigits returns the value of the environment variable with the
// given key (prefixed with EnvPrefix) parsed via parseDigits (decimal
// integer or scientific notation), or the default value if not set or
// invalid.
func getEnvDigits(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := parseDigits(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as int, or the default value if not
// set or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as bool, or the default value if not
// set. Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line. This is
// used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values to the
// configuration for any flags that were not explicitly set on the command
// line. This implements the priority: CLI flags > environment variables >
// defaults.
//
// Supported environment variables:
//   - PIRACER_DIGITS: Number of fractional digits to compute (uint64)
//   - PIRACER_BASE: Numeral base, "dec" or "hex" (string)
//   - PIRACER_THREADS: Worker pool size (int)
//   - PIRACER_OUT: Output file path (string)
//   - PIRACER_QUIET: Suppress progress, banners and result summary (bool)
//   - PIRACER_PROGRESS: Render progress (bool)
//   - PIRACER_SELF_TEST: Run the self-test oracle (bool)
//   - PIRACER_JSON: Emit a JSON envelope (bool)
//   - PIRACER_NO_COLOR: Disable colored output (bool)
//   - PIRACER_METRICS_ADDR: Address for the metrics server (string)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "digits") && !isFlagSet(fs, "n") {
		config.Digits = getEnvDigits("DIGITS", config.Digits)
	}
	if !isFlagSet(fs, "base") && !isFlagSet(fs, "b") {
		config.Base = getEnvString("BASE", config.Base)
	}
	if !isFlagSet(fs, "threads") && !isFlagSet(fs, "t") {
		config.Threads = getEnvInt("THREADS", config.Threads)
	}
	if !isFlagSet(fs, "out") && !isFlagSet(fs, "o") {
		config.OutputFile = getEnvString("OUT", config.OutputFile)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "progress") && !isFlagSet(fs, "p") {
		config.Progress = getEnvBool("PROGRESS", config.Progress)
	}
	if !isFlagSet(fs, "self-test") && !isFlagSet(fs, "T") {
		config.SelfTest = getEnvBool("SELF_TEST", config.SelfTest)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
	if !isFlagSet(fs, "metrics-addr") {
		config.MetricsAddr = getEnvString("METRICS_ADDR", config.MetricsAddr)
	}
}
