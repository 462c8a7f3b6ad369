package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/obby/watch-runner/internal/watcher"
)

func TestChangePrintsCodeAndRelativePath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Change(watcher.Change{Kind: watcher.KindModified, Path: filepath.Join(wd, "x.txt")})

	out := buf.String()
	if !strings.Contains(out, "M") {
		t.Errorf("output missing kind code: %q", out)
	}
	if !strings.Contains(out, "x.txt") {
		t.Errorf("output missing path: %q", out)
	}
	if strings.Contains(out, wd) {
		t.Errorf("path not relativized: %q", out)
	}
}

func TestCommandResultExitCode(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.CommandResult(3, 2, nil, nil)

	out := buf.String()
	if !strings.Contains(out, "Elapsed Time: 2 seconds.") {
		t.Errorf("output missing elapsed time: %q", out)
	}
	if !strings.Contains(out, "3") {
		t.Errorf("output missing exit code: %q", out)
	}
}

func TestCommandResultOmitsEmptyStreams(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.CommandResult(0, 0, nil, nil)

	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("empty streams should print a single line, got %d", got)
	}
}

func TestWaiting(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Waiting()

	if got := buf.String(); got != "waiting...\n" {
		t.Errorf("Waiting() = %q, want %q", got, "waiting...\n")
	}
}
