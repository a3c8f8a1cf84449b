// Package config provides the configuration management for the piracer
// application. It defines the data structure for the configuration, handles
// parsing of command-line arguments, and performs validation on the
// resulting values.
package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/piracer/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by piracer.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "PIRACER_"
)

// Default configuration values. These can be overridden via command-line
// flags or environment variables.
const (
	// DefaultDigits is the default number of fractional digits to compute.
	DefaultDigits uint64 = 1000
	// DefaultBase is the default numeral base name ("dec" or "hex").
	DefaultBase = "dec"
	// DefaultThreads is the default worker count (0 means "sequential").
	DefaultThreads = 0
	// DefaultMetricsAddr is empty: the metrics server is disabled unless set.
	DefaultMetricsAddr = ""
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates every setting that controls a
// single π computation run.
type AppConfig struct {
	// Digits is the number of fractional digits N to compute.
	Digits uint64
	// Base is the requested numeral base, "dec" or "hex".
	Base string
	// Threads is the worker pool size W. 0 or 1 means sequential evaluation.
	Threads int
	// OutputFile, if set, receives the digit string instead of stdout.
	OutputFile string
	// Quiet suppresses progress rendering, the execution banners, the result
	// summary and the self-test table. Structured log lines on stderr are
	// still written.
	Quiet bool
	// Progress enables progress rendering (spinner on a TTY, throttled log
	// lines otherwise).
	Progress bool
	// SelfTest, if true, runs the self-test oracle instead of emitting
	// digits; a mismatch exits with ExitCorrectness.
	SelfTest bool
	// JSONOutput, if true, emits a JSON envelope instead of a raw digit string.
	JSONOutput bool
	// NoColor disables ANSI color in CLI output. Also respects NO_COLOR.
	NoColor bool
	// MetricsAddr, if set, starts a Prometheus metrics HTTP server on this
	// address for the duration of the run.
	MetricsAddr string
}

// parseDigits parses a digit-count argument given as a plain decimal
// integer ("1000000") or scientific notation ("1e6"). Scientific notation
// is parsed as a float and must resolve to a non-negative integer value;
// anything with a fractional part is rejected rather than truncated.
func parseDigits(s string) (uint64, error) {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid digit count %q: must be a decimal integer or scientific notation such as 1e6", s)
	}
	if f < 0 || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid digit count %q: must resolve to a non-negative whole number", s)
	}
	return uint64(f), nil
}

// digitsValue is a flag.Value wrapping a *uint64 that accepts either a
// plain decimal integer or scientific notation (e.g. "1e6"), per the CLI's
// documented --digits/-n argument format.
type digitsValue struct {
	target *uint64
}

func (d *digitsValue) String() string {
	if d.target == nil {
		return ""
	}
	return strconv.FormatUint(*d.target, 10)
}

func (d *digitsValue) Set(s string) error {
	n, err := parseDigits(s)
	if err != nil {
		return err
	}
	*d.target = n
	return nil
}

// BaseValue returns the numeric base (10 or 16) that Base names.
func (c AppConfig) BaseValue() (uint, error) {
	switch strings.ToLower(c.Base) {
	case "dec", "decimal", "10":
		return 10, nil
	case "hex", "hexadecimal", "16":
		return 16, nil
	default:
		return 0, apperrors.NewArgumentError("unrecognized base %q: valid values are 'dec' or 'hex'", c.Base)
	}
}

// Validate checks the semantic consistency of the configuration parameters.
func (c AppConfig) Validate() error {
	if c.Digits == 0 {
		return apperrors.NewArgumentError("digit count must be ≥ 1")
	}
	if _, err := c.BaseValue(); err != nil {
		return err
	}
	if c.Threads < 0 {
		return apperrors.NewArgumentError("thread count cannot be negative: %d", c.Threads)
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines every flag, applies environment variable overrides for
// flags not explicitly set, and validates the resulting configuration.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{Digits: DefaultDigits}
	fs.Var(&digitsValue{target: &config.Digits}, "digits", "`N` fractional digits of π to compute. Accepts a decimal integer or scientific notation such as 1e6.")
	fs.Var(&digitsValue{target: &config.Digits}, "n", "Alias for -digits.")
	fs.StringVar(&config.Base, "base", DefaultBase, "Numeral base for output: 'dec' or 'hex'.")
	fs.StringVar(&config.Base, "b", DefaultBase, "Alias for -base.")
	fs.IntVar(&config.Threads, "threads", DefaultThreads, "Worker pool size W (0 or 1 for sequential evaluation).")
	fs.IntVar(&config.Threads, "t", DefaultThreads, "Alias for -threads.")
	fs.StringVar(&config.OutputFile, "out", "", "Output file path for the digit string.")
	fs.StringVar(&config.OutputFile, "o", "", "Alias for -out.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode: suppress progress, banners and the result summary.")
	fs.BoolVar(&config.Quiet, "q", false, "Alias for -quiet.")
	fs.BoolVar(&config.Progress, "progress", false, "Render computation progress (spinner or throttled log lines).")
	fs.BoolVar(&config.Progress, "p", false, "Alias for -progress.")
	fs.BoolVar(&config.SelfTest, "self-test", false, "Run the self-test oracle against the independent reference.")
	fs.BoolVar(&config.SelfTest, "T", false, "Alias for -self-test.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Emit a JSON envelope instead of a raw digit string.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", DefaultMetricsAddr, "Address to serve Prometheus metrics on (disabled if empty).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}
