package apperrors

import (
	"context"
	"errors"
	"testing"
)

func TestExitCode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"argument", NewArgumentError("bad flag %q", "-n"), ExitArgumentError},
		{"correctness", NewCorrectnessError("mismatch at 3", 3), ExitCorrectness},
		{"canceled", context.Canceled, ExitCanceled},
		{"resource", NewResourceError("worker failed", errors.New("boom")), ExitResourceError},
		{"generic", errors.New("unexpected"), ExitResourceError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestResourceError_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("underlying")
	err := NewResourceError("wrapping context", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through ResourceError to its cause")
	}
}

func TestCorrectnessError_CarriesMismatchIndex(t *testing.T) {
	t.Parallel()
	err := NewCorrectnessError("first difference at 42", 42)
	var ce CorrectnessError
	if !errors.As(err, &ce) {
		t.Fatal("expected errors.As to unpack CorrectnessError")
	}
	if ce.MismatchIndex != 42 {
		t.Errorf("MismatchIndex = %d, want 42", ce.MismatchIndex)
	}
}
