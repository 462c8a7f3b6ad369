package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/obby/watch-runner/internal/report"
)

func newTestRunner() (*Runner, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(report.NewPrinter(&buf)), &buf
}

func TestRunSuccess(t *testing.T) {
	r, buf := newTestRunner()

	res, err := r.Run(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(string(res.Stdout), "hello") {
		t.Errorf("stdout = %q, want it to contain %q", res.Stdout, "hello")
	}
	if len(res.Stderr) != 0 {
		t.Errorf("stderr = %q, want empty", res.Stderr)
	}

	out := buf.String()
	if !strings.Contains(out, "Running: echo hello") {
		t.Errorf("output missing run header: %q", out)
	}
	if !strings.Contains(out, "Elapsed Time: 0 seconds.") {
		t.Errorf("output missing elapsed time: %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("output missing captured stdout: %q", out)
	}
}

func TestRunNonZeroExit(t *testing.T) {
	r, _ := newTestRunner()

	res, err := r.Run(context.Background(), "false")
	if err != nil {
		t.Fatalf("nonzero exit must not be an error, got: %v", err)
	}
	if res.ExitCode == 0 {
		t.Error("ExitCode = 0, want nonzero")
	}
}

func TestRunCapturesStderr(t *testing.T) {
	r, buf := newTestRunner()

	res, err := r.Run(context.Background(), `sh -c "echo oops >&2"`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(string(res.Stderr), "oops") {
		t.Errorf("stderr = %q, want it to contain %q", res.Stderr, "oops")
	}
	if !strings.Contains(buf.String(), "oops") {
		t.Errorf("output missing captured stderr: %q", buf.String())
	}
}

func TestRunTokenizationPreservesQuotedSpaces(t *testing.T) {
	r, _ := newTestRunner()

	// printf sees exactly two arguments after the format string when
	// the quoted space survives splitting
	res, err := r.Run(context.Background(), `printf [%s][%s] --opt "a b"`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := string(res.Stdout); got != "[--opt][a b]" {
		t.Errorf("stdout = %q, want %q", got, "[--opt][a b]")
	}
}

func TestRunUnbalancedQuote(t *testing.T) {
	r, _ := newTestRunner()

	if _, err := r.Run(context.Background(), `echo "unbalanced`); err == nil {
		t.Error("expected tokenize error for unbalanced quote")
	}
}

func TestRunEmptyCommand(t *testing.T) {
	r, _ := newTestRunner()

	if _, err := r.Run(context.Background(), ""); err == nil {
		t.Error("expected error for empty command")
	}
}

func TestRunMissingExecutable(t *testing.T) {
	r, _ := newTestRunner()

	if _, err := r.Run(context.Background(), "definitely-not-a-real-binary-xyz"); err == nil {
		t.Error("expected spawn error for missing executable")
	}
}
