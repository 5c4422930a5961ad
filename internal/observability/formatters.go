// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/scoring"
	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatch outputs a human-readable summary of one scored job.
func (p *Printer) PrintMatch(m types.MatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match score: %.1f\n", m.MatchScore))
	sb.WriteString(fmt.Sprintf("Skills: %.1f  Location: %.0f  Salary: %.1f\n",
		m.Breakdown.SkillMatch, m.Breakdown.LocationMatch, m.Breakdown.SalaryMatch))
	sb.WriteString(fmt.Sprintf("Experience: %.1f  Role: %.1f\n",
		m.Breakdown.ExperienceMatch, m.Breakdown.RoleMatch))

	if len(m.MissingSkills) > 0 {
		shown := m.MissingSkills
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("Missing skills: %s", strings.Join(shown, ", ")))
		if len(m.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" (+%d more)", len(m.MissingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.RecommendationReason)

	p.printBox(fmt.Sprintf("Job %s", scoring.JobIDString(m.JobID)), sb.String())
}

// PrintMatches outputs a summary for every scored job, in order.
func (p *Printer) PrintMatches(matches []types.MatchResult) {
	for _, m := range matches {
		p.PrintMatch(m)
	}
}
