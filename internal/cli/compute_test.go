package cli

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/agbru/piracer/internal/config"
)

func TestPrintExecutionConfig_ReportsDigitsAndBase(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	cfg := config.AppConfig{Digits: 1000, Base: "hex", Threads: 4}
	PrintExecutionConfig(cfg, &out)

	got := out.String()
	if !strings.Contains(got, strconv.FormatUint(cfg.Digits, 10)) {
		t.Errorf("PrintExecutionConfig() missing digit count, got:\n%s", got)
	}
	if !strings.Contains(got, "hex") {
		t.Errorf("PrintExecutionConfig() missing base, got:\n%s", got)
	}
}

func TestPrintExecutionMode_DistinguishesSequentialAndParallel(t *testing.T) {
	t.Parallel()
	var seqOut, parOut bytes.Buffer
	PrintExecutionMode(config.AppConfig{Threads: 0}, &seqOut)
	PrintExecutionMode(config.AppConfig{Threads: 8}, &parOut)

	if !strings.Contains(seqOut.String(), "sequential") {
		t.Errorf("PrintExecutionMode() with Threads=0 should mention sequential, got:\n%s", seqOut.String())
	}
	if !strings.Contains(parOut.String(), "parallel") {
		t.Errorf("PrintExecutionMode() with Threads=8 should mention parallel, got:\n%s", parOut.String())
	}
}

func TestEffectiveThreads(t *testing.T) {
	t.Parallel()
	tests := []struct {
		threads int
		want    int
	}{
		{0, 1},
		{-1, 1},
		{1, 1},
		{8, 8},
	}
	for _, tt := range tests {
		if got := effectiveThreads(tt.threads); got != tt.want {
			t.Errorf("effectiveThreads(%d) = %d, want %d", tt.threads, got, tt.want)
		}
	}
}
