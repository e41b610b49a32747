// Package report renders validation results for the terminal. Colors come
// from termenv and degrade to plain text on dumb terminals or pipes; the
// diagnostic text itself is identical either way.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jlfreif/storybook/internal/validator"
)

const ruleWidth = 80

// Printer writes a human-readable validation report.
type Printer struct {
	out *termenv.Output
}

// New creates a Printer for the given writer and color profile.
func New(w io.Writer, profile termenv.Profile) *Printer {
	return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Error prints a violation in red.
func (p *Printer) Error(msg string) {
	p.println(p.out.String("✗ ERROR: " + msg).Foreground(termenv.ANSIBrightRed))
}

// Warning prints a soft violation in yellow.
func (p *Printer) Warning(msg string) {
	p.println(p.out.String("⚠ WARNING: " + msg).Foreground(termenv.ANSIBrightYellow))
}

// Success prints a pass line in green.
func (p *Printer) Success(msg string) {
	p.println(p.out.String("✓ " + msg).Foreground(termenv.ANSIBrightGreen))
}

// Note prints an informational observation in blue.
func (p *Printer) Note(msg string) {
	p.println(p.out.String("ℹ " + msg).Foreground(termenv.ANSIBrightBlue))
}

// Info prints an indented plain detail line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.out, "  %s\n", msg)
}

func (p *Printer) println(s termenv.Style) {
	fmt.Fprintln(p.out, s.String())
}

func (p *Printer) rule(ch string) {
	fmt.Fprintln(p.out, strings.Repeat(ch, ruleWidth))
}

// Diagnostic prints one finding with its severity styling.
func (p *Printer) Diagnostic(d validator.Diagnostic) {
	switch d.Severity {
	case validator.SeverityError:
		p.Error(d.Message)
	case validator.SeverityWarning:
		p.Warning(d.Message)
	case validator.SeveritySuccess:
		p.Success(d.Message)
	case validator.SeverityNote:
		p.Note(d.Message)
	default:
		p.Info(d.Message)
	}
}

// Print renders the full report: banner, one section per rule with every
// diagnostic the rule produced, and the final count summary.
func (p *Printer) Print(rep *validator.Report) {
	fmt.Fprintln(p.out)
	p.rule("=")
	fmt.Fprintln(p.out, "REPOSITORY STRUCTURE VALIDATION")
	p.rule("=")

	for _, res := range rep.Results {
		fmt.Fprintln(p.out)
		fmt.Fprintf(p.out, "Testing: %s\n", res.Name)
		p.rule("-")
		for _, d := range res.Diagnostics {
			p.Diagnostic(d)
		}
	}

	fmt.Fprintln(p.out)
	p.rule("=")
	fmt.Fprintln(p.out, "TEST SUMMARY")
	p.rule("=")

	total := len(rep.Results)
	if rep.Passed() {
		p.Success(fmt.Sprintf("All %d tests passed!", total))
	} else {
		p.Error(fmt.Sprintf("%d out of %d tests failed", rep.Failed(), total))
	}
	fmt.Fprintln(p.out)
}
