// Package report prints the verbose diagnostics of a windiff run.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/windiff/internal/service/launcher"
	"github.com/Cyclone1070/windiff/internal/service/path"
	"github.com/charmbracelet/lipgloss"
)

// Printer writes diagnostics, normally to stderr.
type Printer struct {
	w      io.Writer
	styles styles
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

// Paths prints both roots and both resolved files, each cleaned for display.
func (p *Printer) Paths(leftRoot, rightRoot string, pair path.Pair) {
	p.field("left_root_dir", leftRoot)
	p.field("left_file", pair.Left)
	p.field("right_root_dir", rightRoot)
	p.field("right_file", pair.Right)
}

// Result prints the outcome of the viewer invocation followed by its captured output, line by line.
func (p *Printer) Result(res *launcher.Result) {
	if res == nil {
		return
	}

	status := p.styles.success
	if res.ExitCode != 0 {
		status = p.styles.failure
	}
	summary := status.Render(fmt.Sprintf("exit=%d", res.ExitCode))
	if res.Truncated {
		summary += " truncated=true"
	}
	fmt.Fprintf(p.w, "%s %s\n", p.styles.label.Render("output:"), summary)

	p.stream("stdout", res.Stdout)
	p.stream("stderr", res.Stderr)
}

func (p *Printer) field(name, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.label.Render(name+":"), p.styles.value.Render(path.CleanDisplayPath(value)))
}

func (p *Printer) stream(name, output string) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(nil, len(output)+1)
	for scanner.Scan() {
		fmt.Fprintf(p.w, "  %s %s\n", p.styles.stream.Render(name+"|"), scanner.Text())
	}
}
