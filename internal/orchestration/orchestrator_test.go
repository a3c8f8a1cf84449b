package orchestration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/agbru/piracer/internal/config"
	apperrors "github.com/agbru/piracer/internal/errors"
)

func baseConfig(digits uint64) config.AppConfig {
	return config.AppConfig{Digits: digits, Base: "dec", Threads: 0, Quiet: true}
}

func TestRunCompute_Sequential(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	result := RunCompute(context.Background(), baseConfig(50), &out)
	if result.Err != nil {
		t.Fatalf("RunCompute() error = %v", result.Err)
	}
	if !strings.HasPrefix(result.Digits, "3.") {
		t.Errorf("RunCompute() digits = %q, want prefix %q", result.Digits, "3.")
	}
	if len(result.Digits) != len("3.")+50 {
		t.Errorf("RunCompute() digit string length = %d, want %d", len(result.Digits), len("3.")+50)
	}
}

func TestRunCompute_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()
	var seqOut, parOut bytes.Buffer

	seqCfg := baseConfig(200)
	seqResult := RunCompute(context.Background(), seqCfg, &seqOut)
	if seqResult.Err != nil {
		t.Fatalf("sequential RunCompute() error = %v", seqResult.Err)
	}

	parCfg := baseConfig(200)
	parCfg.Threads = 4
	parResult := RunCompute(context.Background(), parCfg, &parOut)
	if parResult.Err != nil {
		t.Fatalf("parallel RunCompute() error = %v", parResult.Err)
	}

	if seqResult.Digits != parResult.Digits {
		t.Errorf("sequential and parallel results diverge:\nseq: %s\npar: %s", seqResult.Digits, parResult.Digits)
	}
}

func TestRunCompute_InvalidBase(t *testing.T) {
	t.Parallel()
	cfg := baseConfig(10)
	cfg.Base = "octal"
	result := RunCompute(context.Background(), cfg, &bytes.Buffer{})
	if result.Err == nil {
		t.Fatal("RunCompute() with invalid base expected an error, got nil")
	}
}

func TestRunSelfTest_PassesForValidDigitCount(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	report, exitCode := RunSelfTest(baseConfig(100), &out)
	if !report.Result.OK {
		t.Fatalf("RunSelfTest() verdict = %q, want OK", report.Result.Verdict)
	}
	if exitCode != apperrors.ExitSuccess {
		t.Errorf("RunSelfTest() exit code = %d, want %d", exitCode, apperrors.ExitSuccess)
	}
	if report.EngineDuration <= 0 || report.RefDuration <= 0 {
		t.Errorf("RunSelfTest() expected both sides to report a nonzero duration, got engine=%v ref=%v",
			report.EngineDuration, report.RefDuration)
	}
}

func TestRunSelfTest_RendersTableUnlessQuiet(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	cfg := baseConfig(50)
	cfg.Quiet = false
	_, _ = RunSelfTest(cfg, &out)
	if !strings.Contains(out.String(), "Self-Test Comparison") {
		t.Errorf("RunSelfTest() non-quiet output missing comparison table, got:\n%s", out.String())
	}
}

func TestRunSelfTest_InvalidBase(t *testing.T) {
	t.Parallel()
	cfg := baseConfig(10)
	cfg.Base = "binary"
	_, exitCode := RunSelfTest(cfg, &bytes.Buffer{})
	if exitCode != apperrors.ExitArgumentError {
		t.Errorf("RunSelfTest() exit code = %d, want %d", exitCode, apperrors.ExitArgumentError)
	}
}

func TestPreviewDigits(t *testing.T) {
	t.Parallel()
	short := "3.14159"
	if previewDigits(short) != short {
		t.Errorf("previewDigits(%q) = %q, want unchanged", short, previewDigits(short))
	}

	long := strings.Repeat("1", 100)
	preview := previewDigits(long)
	if !strings.Contains(preview, "...") {
		t.Errorf("previewDigits() on a long string should contain an ellipsis, got %q", preview)
	}
	if len(preview) >= len(long) {
		t.Errorf("previewDigits() did not shorten a long string: got len %d, want < %d", len(preview), len(long))
	}
}
