// Package loop drives the poll-drain-run cycle.
package loop

import (
	"context"
	"time"

	"github.com/obby/watch-runner/internal/report"
	"github.com/obby/watch-runner/internal/runner"
	"github.com/obby/watch-runner/internal/watcher"
)

// Loop polls the change set on a fixed interval. When a tick finds
// pending changes it prints them in path order, runs the command, and
// goes back to waiting. Command execution blocks the loop; events
// arriving meanwhile accumulate in the set for the next cycle.
type Loop struct {
	changes  *watcher.ChangeSet
	runner   *runner.Runner
	printer  *report.Printer
	command  string
	interval time.Duration
}

// New creates a watch loop
func New(changes *watcher.ChangeSet, r *runner.Runner, printer *report.Printer, command string, interval time.Duration) *Loop {
	return &Loop{
		changes:  changes,
		runner:   r,
		printer:  printer,
		command:  command,
		interval: interval,
	}
}

// Run polls until ctx is cancelled. The interval is a cadence, not a
// precise timer; missed ticks are not caught up. A command that cannot
// be tokenized or spawned is reported and the loop keeps going.
func (l *Loop) Run(ctx context.Context) {
	l.printer.Waiting()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			changes := l.changes.Drain()
			if len(changes) == 0 {
				continue
			}
			for _, c := range changes {
				l.printer.Change(c)
			}
			if _, err := l.runner.Run(ctx, l.command); err != nil {
				l.printer.Error(err)
			}
			l.printer.Waiting()
		}
	}
}
