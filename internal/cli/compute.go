package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/piracer/internal/config"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the requested digit count and base, worker count, and environment
// details.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	writeOut(out, "--- Execution Configuration ---\n")
	writeOut(out, "Computing π to %sN=%d%s fractional digits in base %s%s%s.\n",
		ColorMagenta(), cfg.Digits, ColorReset(), ColorCyan(), cfg.Base, ColorReset())
	writeOut(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
	writeOut(out, "Workers: %s%d%s.\n", ColorCyan(), effectiveThreads(cfg.Threads), ColorReset())
}

// PrintExecutionMode displays whether the run will use the sequential
// evaluator or the parallel worker pool.
func PrintExecutionMode(cfg config.AppConfig, out io.Writer) {
	modeDesc := "sequential evaluator"
	if cfg.Threads > 1 {
		modeDesc = "parallel worker pool"
	}
	writeOut(out, "Execution mode: %s.\n", modeDesc)
	writeOut(out, "\n--- Starting Computation ---\n")
}

func effectiveThreads(threads int) int {
	if threads < 1 {
		return 1
	}
	return threads
}

// writeOut writes a formatted string to the output writer.
func writeOut(out io.Writer, format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}
