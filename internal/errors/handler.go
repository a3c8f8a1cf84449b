package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with cli.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleComputeError formats and prints an error from the computation
// pipeline, distinguishing timeout/cancellation, correctness, and generic
// resource failures so the operator gets specific feedback.
//
// Returns the exit code the process should use.
func HandleComputeError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	var corrErr CorrectnessError
	if errors.As(err, &corrErr) {
		fmt.Fprintf(out, "%sStatus: Self-test failed%s%s: %s\n", colors.Red(), msgSuffix, colors.Reset(), corrErr.Verdict)
		return ExitCorrectness
	}
	if errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
		return ExitResourceError
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
		return ExitCanceled
	}
	var argErr ArgumentError
	if errors.As(err, &argErr) {
		fmt.Fprintf(out, "Status: Failure (Argument error): %v\n", err)
		return ExitArgumentError
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitResourceError
}
