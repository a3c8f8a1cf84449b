// The cli package provides functions for building a command-line interface
// for the π digit engine. It handles the asynchronous display of computation
// progress and formats the resulting digit string for clear, readable
// presentation.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/agbru/piracer/internal/pi"
	"github.com/agbru/piracer/internal/ui"
	"github.com/briandowns/spinner"
)

// FormatExecutionDuration formats a time.Duration for display. It shows
// microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation
// otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// TruncationLimit is the digit threshold from which a result is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the
	// beginning and end of a truncated number.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress
	// display.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Color functions return ANSI escape codes from the current theme. They
// delegate to the ui package to reduce coupling.

func ColorReset() string     { return ui.GetCurrentTheme().Reset }
func ColorRed() string       { return ui.GetCurrentTheme().Error }
func ColorGreen() string     { return ui.GetCurrentTheme().Success }
func ColorYellow() string    { return ui.GetCurrentTheme().Warning }
func ColorBlue() string      { return ui.GetCurrentTheme().Primary }
func ColorMagenta() string   { return ui.GetCurrentTheme().Info }
func ColorCyan() string      { return ui.GetCurrentTheme().Secondary }
func ColorBold() string      { return ui.GetCurrentTheme().Bold }
func ColorUnderline() string { return ui.GetCurrentTheme().Underline }

// CLIColorProvider adapts the ui theme to apperrors.ColorProvider.
type CLIColorProvider struct{}

func (CLIColorProvider) Yellow() string { return ColorYellow() }
func (CLIColorProvider) Red() string    { return ColorRed() }
func (CLIColorProvider) Reset() string  { return ColorReset() }

// Spinner is an interface that abstracts the behavior of a terminal spinner,
// decoupling DisplayProgress from a specific spinner implementation.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner wraps *spinner.Spinner to satisfy the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                       { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressBar renders a textual progress bar for the given normalized
// progress value (0.0 to 1.0).
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress renders the leaf-completion progress reported by a
// pi.ChannelSink, either via a terminal spinner (when attached to a TTY) or
// via throttled plain lines otherwise. It runs in a dedicated goroutine for
// the lifetime of a single computation and returns once the sink's channel
// is closed.
func DisplayProgress(wg *sync.WaitGroup, sink *pi.ChannelSink, out io.Writer, useSpinner bool) {
	defer wg.Done()

	if useSpinner {
		s := newSpinner(spinner.WithWriter(out))
		s.Start()
		stopped := false
		defer func() {
			if !stopped {
				s.Stop()
			}
		}()

		for update := range sink.C {
			frac := 0.0
			if update.Total > 0 {
				frac = float64(update.Done) / float64(update.Total)
			}
			bar := progressBar(frac, ProgressBarWidth)
			s.UpdateSuffix(fmt.Sprintf(" Progress: %6.2f%% [%s] (%d/%d leaves)", frac*100, bar, update.Done, update.Total))
		}
		s.Stop()
		stopped = true
		fmt.Fprintf(out, "Progress: %6.2f%% [%s]\n", 100.0, progressBar(1.0, ProgressBarWidth))
		return
	}

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	var last pi.ProgressUpdate
	for {
		select {
		case update, ok := <-sink.C:
			if !ok {
				return
			}
			last = update
		case <-ticker.C:
			if last.Total > 0 {
				fmt.Fprintf(out, "progress: %d/%d leaves\n", last.Done, last.Total)
			}
		}
	}
}

// DisplayResult prints the human-facing summary banner for a computation:
// duration, digit count, and a possibly-truncated preview of the digit
// string. The full digit string is always written separately to stdout or
// the output file — this is decoration around that write, not the write
// itself, so truncating it here never affects correctness of the program's
// actual output.
func DisplayResult(digits string, n uint64, duration time.Duration, out io.Writer) {
	durationStr := FormatExecutionDuration(duration)
	if duration == 0 {
		durationStr = "< 1µs"
	}
	fmt.Fprintf(out, "Computed %sN=%d%s fractional digits in %s%s%s.\n",
		ColorMagenta(), n, ColorReset(), ColorGreen(), durationStr, ColorReset())

	fmt.Fprintf(out, "\n%s--- π preview ---%s\n", ColorBold(), ColorReset())
	if len(digits) <= TruncationLimit {
		fmt.Fprintf(out, "%s%s%s\n", ColorGreen(), digits, ColorReset())
		return
	}
	fmt.Fprintf(out, "%s%s...%s%s\n", ColorGreen(), digits[:DisplayEdges], digits[len(digits)-DisplayEdges:], ColorReset())
}
