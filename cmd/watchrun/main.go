package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/obby/watch-runner/config"
	"github.com/obby/watch-runner/internal/loop"
	"github.com/obby/watch-runner/internal/patterns"
	"github.com/obby/watch-runner/internal/report"
	"github.com/obby/watch-runner/internal/runner"
	"github.com/obby/watch-runner/internal/watcher"
)

var (
	patternFlag string
	excludeFlag string
	commandFlag string
)

func main() {
	root := &cobra.Command{
		Use:          "watchrun",
		Short:        "Watch files matching glob patterns and run a command on change",
		SilenceUsage: true,
		RunE:         run,
	}

	root.Flags().StringVar(&patternFlag, "pattern", "", "comma-separated globs for files to watch")
	root.Flags().StringVar(&excludeFlag, "exclude", "", "comma-separated globs for files to ignore")
	root.Flags().StringVar(&commandFlag, "command", "", "command to run when watched files change")
	root.MarkFlagRequired("command")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig(patternFlag, excludeFlag, commandFlag)

	matcher, err := patterns.NewMatcher(cfg.Patterns, cfg.Excludes)
	if err != nil {
		return err
	}

	changes := watcher.NewChangeSet()
	fw, err := watcher.NewFileWatcher(time.Duration(cfg.DebounceMs)*time.Millisecond, matcher, changes)
	if err != nil {
		return err
	}

	if err := fw.AddPath("."); err != nil {
		return err
	}
	if err := fw.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := report.NewPrinter(os.Stdout)
	l := loop.New(changes, runner.New(printer), printer, cfg.Command,
		time.Duration(cfg.IntervalMs)*time.Millisecond)
	l.Run(ctx)

	if err := fw.Stop(); err != nil {
		log.Printf("Error stopping watcher: %v", err)
	}
	return nil
}
