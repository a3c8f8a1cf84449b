// Package orchestration coordinates a single π computation run end to end:
// wiring progress display, dispatching to the sequential or parallel
// evaluator per the configured worker count, and — when requested —
// running the self-test oracle and reporting engine-vs-reference agreement
// the way this codebase has always reported multi-way comparisons.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/agbru/piracer/internal/cli"
	"github.com/agbru/piracer/internal/config"
	apperrors "github.com/agbru/piracer/internal/errors"
	"github.com/agbru/piracer/internal/logging"
	"github.com/agbru/piracer/internal/pi"
	"github.com/agbru/piracer/internal/server"
	"github.com/agbru/piracer/internal/ui"
	"golang.org/x/sync/errgroup"
)

// log is the package-level structured logger. It is unexported and fixed to
// stderr: this package has no mechanism for per-run log configuration, and
// none is needed — CLI progress and results go to out, not here.
var log logging.Logger = logging.NewDefaultLogger()

// ProgressBufferMultiplier sizes the progress channel buffer so the display
// goroutine rarely blocks the evaluator's hot path.
const ProgressBufferMultiplier = 64

// ComputeResult is the outcome of the primary π computation.
type ComputeResult struct {
	Digits   string
	Duration time.Duration
	Err      error
}

// RunCompute executes the π computation described by cfg — sequential when
// Threads ≤ 1, parallel otherwise — wiring a progress sink to the CLI's
// display routine when cfg.Progress is set.
func RunCompute(ctx context.Context, cfg config.AppConfig, out io.Writer) ComputeResult {
	base, err := cfg.BaseValue()
	if err != nil {
		return ComputeResult{Err: err}
	}

	var sink *pi.ChannelSink
	var wg sync.WaitGroup
	if cfg.Progress && !cfg.Quiet {
		sink = pi.NewChannelSink(int(ProgressBufferMultiplier))
		wg.Add(1)
		useSpinner := isTTY(out)
		go cli.DisplayProgress(&wg, sink, out, useSpinner)
	}
	fanOut := combinedSink(sink, cfg.MetricsAddr != "")

	start := time.Now()
	var digits string
	if cfg.Threads > 1 {
		digits, err = pi.ComputePiParallel(ctx, cfg.Digits, base, cfg.Threads, fanOut)
	} else {
		digits, err = pi.ComputePiWithProgress(cfg.Digits, base, fanOut)
	}
	duration := time.Since(start)

	if sink != nil {
		close(sink.C)
		wg.Wait()
	}
	if cfg.MetricsAddr != "" {
		server.ObserveComputeDuration(duration)
	}

	if err != nil {
		log.Error("computation failed", err, logging.Uint64("digits", cfg.Digits), logging.Int("threads", cfg.Threads))
		return ComputeResult{Duration: duration, Err: apperrors.NewResourceError("computation failed", err)}
	}
	log.Info("computation finished", logging.Uint64("digits", cfg.Digits), logging.Int("threads", cfg.Threads),
		logging.Duration("duration", duration.String()))
	return ComputeResult{Digits: digits, Duration: duration}
}

// multiSink fans a single progress tick out to several sinks, used when
// both live display and metrics export are active for the same run.
type multiSink struct {
	sinks []pi.ProgressSink
}

func (m multiSink) Tick(done, total uint64) {
	for _, s := range m.sinks {
		s.Tick(done, total)
	}
}

func combinedSink(channel *pi.ChannelSink, withMetrics bool) pi.ProgressSink {
	var sinks []pi.ProgressSink
	if channel != nil {
		sinks = append(sinks, channel)
	}
	if withMetrics {
		sinks = append(sinks, server.MetricsSink{})
	}
	switch len(sinks) {
	case 0:
		return nil
	case 1:
		return sinks[0]
	default:
		return multiSink{sinks: sinks}
	}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// SelfTestReport is the outcome of a self-test run, carrying both sides'
// timings for the comparison table.
type SelfTestReport struct {
	Result         pi.SelfTestResult
	EngineDuration time.Duration
	RefDuration    time.Duration
	Err            error
}

// RunSelfTest runs the engine and the independent reference at N's working
// precision, times each side, and renders a two-row comparison table in the
// same tabwriter style this codebase has always used for comparing
// algorithm outcomes.
func RunSelfTest(cfg config.AppConfig, out io.Writer) (SelfTestReport, int) {
	base, err := cfg.BaseValue()
	if err != nil {
		return SelfTestReport{Err: err}, apperrors.ExitCode(err)
	}

	plan, err := pi.NewPlan(cfg.Digits, base)
	if err != nil {
		return SelfTestReport{Err: err}, apperrors.ExitCode(err)
	}

	var engineStr, refStr string
	var engineDuration, refDuration time.Duration

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		start := time.Now()
		triplet := pi.Evaluate(0, plan.Terms, nil)
		piHat := pi.Assemble(triplet, plan.Prec)
		str, err := pi.FormatFixed(piHat, int(cfg.Digits), base)
		engineDuration = time.Since(start)
		engineStr = str
		return err
	})
	g.Go(func() error {
		start := time.Now()
		str, err := pi.FormatFixed(pi.ReferencePi(plan.Prec), int(cfg.Digits), base)
		refDuration = time.Since(start)
		refStr = str
		return err
	})
	if err := g.Wait(); err != nil {
		return SelfTestReport{Err: err}, apperrors.ExitCode(err)
	}

	result := pi.CompareDigitStrings(engineStr, refStr)
	report := SelfTestReport{Result: result, EngineDuration: engineDuration, RefDuration: refDuration}

	if !cfg.Quiet {
		renderSelfTestTable(report, engineStr, refStr, out)
	}

	if !result.OK {
		log.Error("self-test mismatch", nil, logging.String("verdict", result.Verdict), logging.Int("mismatch_index", result.MismatchIndex))
		corrErr := apperrors.NewCorrectnessError(result.Verdict, result.MismatchIndex)
		report.Err = corrErr
		return report, apperrors.ExitCode(corrErr)
	}
	log.Info("self-test passed", logging.Uint64("digits", cfg.Digits))
	return report, apperrors.ExitSuccess
}

func renderSelfTestTable(report SelfTestReport, engineStr, refStr string, out io.Writer) {
	fmt.Fprintf(out, "\n--- Self-Test Comparison ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sSource%s\t%sDuration%s\t%sPreview%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())

	engineStatus := fmt.Sprintf("%s✅ computed%s", ui.ColorGreen(), ui.ColorReset())
	refStatus := fmt.Sprintf("%s✅ computed%s", ui.ColorGreen(), ui.ColorReset())
	if !report.Result.OK {
		refStatus = fmt.Sprintf("%s❌ mismatch at index %d%s", ui.ColorRed(), report.Result.MismatchIndex, ui.ColorReset())
	}

	fmt.Fprintf(tw, "%sengine (Chudnovsky)%s\t%s%s%s\t%s\t%s\n",
		ui.ColorBlue(), ui.ColorReset(), ui.ColorYellow(), cli.FormatExecutionDuration(report.EngineDuration), ui.ColorReset(),
		previewDigits(engineStr), engineStatus)
	fmt.Fprintf(tw, "%sreference (Gauss-Legendre)%s\t%s%s%s\t%s\t%s\n",
		ui.ColorBlue(), ui.ColorReset(), ui.ColorYellow(), cli.FormatExecutionDuration(report.RefDuration), ui.ColorReset(),
		previewDigits(refStr), refStatus)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	if report.Result.OK {
		fmt.Fprintf(out, "\nGlobal Status: Success. Engine output matches the independent reference.\n")
		return
	}
	fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s\n", report.Result.Verdict)
}

func previewDigits(s string) string {
	const edge = 20
	if len(s) <= 2*edge+3 {
		return s
	}
	return s[:edge] + "..." + s[len(s)-edge:]
}
