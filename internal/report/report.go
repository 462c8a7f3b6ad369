// Package report renders the colorized change-and-run output.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/obby/watch-runner/internal/watcher"
)

var (
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	renamedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	deletedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	okStyle   = modifiedStyle
	failStyle = deletedStyle
)

func kindStyle(k watcher.Kind) lipgloss.Style {
	switch k {
	case watcher.KindModified:
		return modifiedStyle
	case watcher.KindRenamed:
		return renamedStyle
	case watcher.KindDeleted:
		return deletedStyle
	}
	return lipgloss.NewStyle()
}

// Printer writes the session output to a single writer
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Change prints one pending change as a colored kind code and the path
// relative to the working directory
func (p *Printer) Change(c watcher.Change) {
	fmt.Fprintf(p.out, "%s %s\n", kindStyle(c.Kind).Render(c.Kind.Code()), relPath(c.Path))
}

// Waiting marks the return to the idle state
func (p *Printer) Waiting() {
	fmt.Fprintln(p.out, "waiting...")
}

// RunHeader announces the command about to run
func (p *Printer) RunHeader(command string) {
	fmt.Fprintf(p.out, "Running: %s\n", command)
}

// CommandResult prints the elapsed time, the exit code (green when zero,
// red otherwise), the captured stdout verbatim, and the captured stderr
// in red; empty streams print nothing
func (p *Printer) CommandResult(exitCode, elapsedSeconds int, stdout, stderr []byte) {
	style := okStyle
	if exitCode != 0 {
		style = failStyle
	}
	fmt.Fprintf(p.out, "Elapsed Time: %d seconds.  Exit Code: %s\n",
		elapsedSeconds, style.Render(strconv.Itoa(exitCode)))

	if len(stdout) > 0 {
		fmt.Fprintln(p.out, string(stdout))
	}
	if len(stderr) > 0 {
		fmt.Fprintln(p.out, failStyle.Render(string(stderr)))
	}
}

// Error prints a cycle-level failure in red
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out, failStyle.Render(err.Error()))
}

func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}
