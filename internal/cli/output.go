// Package cli provides output utilities for exporting π computation results.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the digit string (empty for no file output).
	OutputFile string
	// Quiet mode suppresses the human-facing summary banner.
	Quiet bool
}

// WriteResultToFile writes a computed digit string to a file, preceded by a
// small metadata header.
func WriteResultToFile(digits string, n uint64, base uint, duration time.Duration, outputFile string) error {
	if outputFile == "" {
		return nil
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# π fixed-point digit string\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Fractional digits (N): %d\n", n)
	fmt.Fprintf(file, "# Base: %d\n", base)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "\n%s\n", digits)

	return nil
}

// DisplayQuietResult writes exactly the digit string to out, with no
// decoration — the contract quiet mode exists to guarantee for scripting.
func DisplayQuietResult(out io.Writer, digits string) {
	fmt.Fprintln(out, digits)
}

// EmitResult writes the digit string to stdout (or a file, if configured)
// and, outside quiet mode, also prints the human-facing summary banner.
func EmitResult(out io.Writer, digits string, n, base uint64, duration time.Duration, cfg OutputConfig) error {
	if cfg.Quiet {
		if cfg.OutputFile == "" {
			DisplayQuietResult(out, digits)
		}
	} else {
		DisplayResult(digits, n, duration, out)
		if cfg.OutputFile == "" {
			fmt.Fprintln(out, digits)
		}
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(digits, n, uint(base), duration, cfg.OutputFile); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n", ColorGreen(), ColorCyan(), cfg.OutputFile, ColorReset())
		}
	}

	return nil
}
