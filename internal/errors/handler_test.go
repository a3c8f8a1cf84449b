package apperrors

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestHandleComputeError_NilReturnsSuccess(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	if code := HandleComputeError(nil, 0, &out, nil); code != ExitSuccess {
		t.Errorf("HandleComputeError(nil) = %d, want %d", code, ExitSuccess)
	}
	if out.Len() != 0 {
		t.Errorf("HandleComputeError(nil) should not write anything, got %q", out.String())
	}
}

func TestHandleComputeError_CorrectnessError(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := NewCorrectnessError("self-test failed: first difference at character index 7", 7)
	code := HandleComputeError(err, time.Second, &out, nil)
	if code != ExitCorrectness {
		t.Errorf("HandleComputeError() = %d, want %d", code, ExitCorrectness)
	}
	if !strings.Contains(out.String(), "Self-test failed") {
		t.Errorf("HandleComputeError() output missing self-test message, got %q", out.String())
	}
}

func TestHandleComputeError_Timeout(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	code := HandleComputeError(context.DeadlineExceeded, time.Minute, &out, nil)
	if code != ExitResourceError {
		t.Errorf("HandleComputeError() = %d, want %d", code, ExitResourceError)
	}
	if !strings.Contains(out.String(), "Timeout") {
		t.Errorf("HandleComputeError() output missing timeout message, got %q", out.String())
	}
}

func TestHandleComputeError_Canceled(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	code := HandleComputeError(context.Canceled, 0, &out, nil)
	if code != ExitCanceled {
		t.Errorf("HandleComputeError() = %d, want %d", code, ExitCanceled)
	}
}

func TestHandleComputeError_ArgumentError(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := NewArgumentError("digit count must be ≥ 1")
	code := HandleComputeError(err, 0, &out, nil)
	if code != ExitArgumentError {
		t.Errorf("HandleComputeError() = %d, want %d", code, ExitArgumentError)
	}
}

func TestHandleComputeError_GenericError(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	code := HandleComputeError(NewResourceError("worker failed", nil), 0, &out, nil)
	if code != ExitResourceError {
		t.Errorf("HandleComputeError() = %d, want %d", code, ExitResourceError)
	}
}

func TestHandleComputeError_NilColorsFallsBackToDefault(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	HandleComputeError(NewArgumentError("bad flag"), 0, &out, nil)
	if strings.Contains(out.String(), "\033[") {
		t.Errorf("HandleComputeError() with nil ColorProvider should not emit ANSI codes, got %q", out.String())
	}
}
