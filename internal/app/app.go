package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agbru/piracer/internal/cli"
	"github.com/agbru/piracer/internal/config"
	apperrors "github.com/agbru/piracer/internal/errors"
	"github.com/agbru/piracer/internal/orchestration"
	"github.com/agbru/piracer/internal/server"
	"github.com/agbru/piracer/internal/ui"
)

// Application represents the piracer application instance. It encapsulates
// the parsed configuration and provides a single Run method dispatching to
// the compute or self-test path.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "piracer"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application. It dispatches to the self-test oracle when
// --self-test is set, otherwise to the primary π computation. The caller is
// responsible for the context's lifecycle (timeouts, signal cancellation).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	if a.Config.MetricsAddr != "" {
		stopMetrics := server.StartMetricsServer(a.Config.MetricsAddr, a.ErrWriter)
		defer stopMetrics()
	}

	if a.Config.SelfTest {
		return a.runSelfTest(out)
	}
	return a.runCompute(ctx, out)
}

func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config, out)
	}

	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
	}

	result := orchestration.RunCompute(ctx, a.Config, progressOut)
	if result.Err != nil {
		return apperrors.HandleComputeError(result.Err, result.Duration, a.ErrWriter, cli.CLIColorProvider{})
	}

	if a.Config.JSONOutput {
		return a.printJSONResult(result, out)
	}

	base, err := a.Config.BaseValue()
	if err != nil {
		return apperrors.HandleComputeError(err, result.Duration, a.ErrWriter, cli.CLIColorProvider{})
	}

	outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet}
	if err := cli.EmitResult(out, result.Digits, a.Config.Digits, uint64(base), result.Duration, outputCfg); err != nil {
		return apperrors.HandleComputeError(apperrors.NewResourceError("writing output", err), result.Duration, a.ErrWriter, cli.CLIColorProvider{})
	}
	return apperrors.ExitSuccess
}

func (a *Application) runSelfTest(out io.Writer) int {
	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	report, exitCode := orchestration.RunSelfTest(a.Config, out)
	if a.Config.JSONOutput {
		return a.printSelfTestJSON(report, out)
	}
	if report.Err != nil && exitCode != apperrors.ExitCorrectness {
		return apperrors.HandleComputeError(report.Err, report.EngineDuration+report.RefDuration, a.ErrWriter, cli.CLIColorProvider{})
	}
	return exitCode
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

type jsonComputeResult struct {
	Digits     string `json:"digits,omitempty"`
	DigitCount uint64 `json:"digit_count"`
	Base       string `json:"base"`
	Duration   string `json:"duration"`
}

func (a *Application) printJSONResult(result orchestration.ComputeResult, out io.Writer) int {
	jr := jsonComputeResult{
		Digits:     result.Digits,
		DigitCount: a.Config.Digits,
		Base:       a.Config.Base,
		Duration:   result.Duration.String(),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jr); err != nil {
		return apperrors.ExitResourceError
	}
	return apperrors.ExitSuccess
}

type jsonSelfTestResult struct {
	OK             bool   `json:"ok"`
	Verdict        string `json:"verdict"`
	MismatchIndex  int    `json:"mismatch_index"`
	EngineDuration string `json:"engine_duration"`
	RefDuration    string `json:"reference_duration"`
	Error          string `json:"error,omitempty"`
}

func (a *Application) printSelfTestJSON(report orchestration.SelfTestReport, out io.Writer) int {
	jr := jsonSelfTestResult{
		OK:             report.Result.OK,
		Verdict:        report.Result.Verdict,
		MismatchIndex:  report.Result.MismatchIndex,
		EngineDuration: report.EngineDuration.String(),
		RefDuration:    report.RefDuration.String(),
	}
	if report.Err != nil {
		jr.Error = fmt.Sprintf("%v", report.Err)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jr); err != nil {
		return apperrors.ExitResourceError
	}
	return apperrors.ExitCode(report.Err)
}
