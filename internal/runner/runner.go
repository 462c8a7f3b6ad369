// Package runner executes the configured command once per drain cycle.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/anmitsu/go-shlex"
	"github.com/obby/watch-runner/internal/report"
)

// Result captures one command invocation
type Result struct {
	ExitCode int
	Elapsed  time.Duration
	Stdout   []byte
	Stderr   []byte
}

// Runner runs commands synchronously and reports outcomes through the printer
type Runner struct {
	printer *report.Printer
}

// New creates a runner reporting through printer
func New(printer *report.Printer) *Runner {
	return &Runner{printer: printer}
}

// Run tokenizes command with POSIX shell-word rules and executes it
// directly as argv, with no shell in between. The caller blocks until
// the child exits; stdout and stderr are captured in full. A nonzero
// child exit is reported in the Result, not as an error; the error
// return covers only tokenize and spawn failures.
func (r *Runner) Run(ctx context.Context, command string) (Result, error) {
	args, err := shlex.Split(command, true)
	if err != nil {
		return Result{}, fmt.Errorf("cannot tokenize command %q: %w", command, err)
	}
	if len(args) == 0 {
		return Result{}, errors.New("empty command")
	}

	r.printer.RunHeader(command)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("cannot run %q: %w", args[0], err)
		}
	}

	res := Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Elapsed:  elapsed,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}
	r.printer.CommandResult(res.ExitCode, int(elapsed.Seconds()), res.Stdout, res.Stderr)
	return res, nil
}
