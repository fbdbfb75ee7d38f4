// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skilltree/internal/eval"
	"github.com/jonathan/skilltree/internal/filter"
	"github.com/jonathan/skilltree/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxReasonsToShow is the default number of reasons to display per node
	maxReasonsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCounts outputs the aggregate status counts of the visible view.
func (p *Printer) PrintCounts(counts filter.Counts) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Eligible:  %d\n", counts.Eligible))
	sb.WriteString(fmt.Sprintf("At risk:   %d\n", counts.Risk))
	sb.WriteString(fmt.Sprintf("Locked:    %d\n", counts.Locked))
	sb.WriteString(fmt.Sprintf("Info:      %d\n", counts.Info))
	sb.WriteString(fmt.Sprintf("Total:     %d", counts.Total))

	p.printBox("Skill Tree Overview", sb.String())
}

// PrintNode outputs a single annotated node with its verdict and reasons.
func (p *Printer) PrintNode(n *eval.Node) {
	if n == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status: %s\n", statusBadge(n.Result.Status)))
	if n.Subtitle != "" {
		sb.WriteString(n.Subtitle + "\n")
	}

	count := min(len(n.Result.Reasons), maxReasonsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString("• " + n.Result.Reasons[i] + "\n")
	}
	if len(n.Result.Reasons) > maxReasonsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(n.Result.Reasons)-maxReasonsToShow))
	}

	p.printBox(n.Title, strings.TrimRight(sb.String(), "\n"))
}

// PrintView outputs the counts followed by every visible career node.
func (p *Printer) PrintView(view *filter.View) {
	p.PrintCounts(view.Counts)
	for i := range view.Nodes {
		if view.Nodes[i].Kind == types.KindCareer {
			p.PrintNode(&view.Nodes[i])
		}
	}
}

func statusBadge(s types.Status) string {
	switch s {
	case types.StatusEligible:
		return "ELIGIBLE"
	case types.StatusLocked:
		return "LOCKED"
	case types.StatusRisk:
		return "AT RISK"
	case types.StatusInfo:
		return "INFO"
	}
	return string(s)
}
