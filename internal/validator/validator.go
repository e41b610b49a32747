// Package validator runs the structural consistency battery over a loaded
// storybook. Each rule is an independent predicate: it inspects the same
// immutable snapshot, reports every violation it finds, and never stops at
// the first. Warnings and notes are surfaced but only errors flip the
// aggregate result.
package validator

import (
	"fmt"

	"github.com/jlfreif/storybook/internal/book"
)

// Severity classifies a diagnostic line.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityNote
	SeverityWarning
	SeverityError
	SeveritySuccess
)

// Diagnostic is a single human-readable finding produced by a rule.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Result collects everything one rule produced.
type Result struct {
	Name        string
	Passed      bool
	Diagnostics []Diagnostic
}

func (r *Result) add(sev Severity, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errorf records a violation and fails the rule.
func (r *Result) Errorf(format string, args ...any) {
	r.Passed = false
	r.add(SeverityError, format, args...)
}

// Warnf records a soft violation without failing the rule.
func (r *Result) Warnf(format string, args ...any) {
	r.add(SeverityWarning, format, args...)
}

// Notef records an informational observation.
func (r *Result) Notef(format string, args ...any) {
	r.add(SeverityNote, format, args...)
}

// Infof records a plain detail line, usually nested under an error.
func (r *Result) Infof(format string, args ...any) {
	r.add(SeverityInfo, format, args...)
}

// Successf records the rule's pass message.
func (r *Result) Successf(format string, args ...any) {
	r.add(SeveritySuccess, format, args...)
}

// Rule is one named check over the loaded book.
type Rule struct {
	Name string
	Run  func(b *book.Book, r *Result)
}

// Rules returns the full battery in its fixed order.
func Rules() []Rule {
	return []Rule{
		{"At least one character exists", checkCharacterCount},
		{"Page formatting is correct", checkReferenceFormat},
		{"All referenced pages exist", checkReferencesExist},
		{"Spreads 1, 11, 12 are character-specific", checkRequiredSoloSpreads},
		{"No stray pages in pages directory", checkStrayPages},
		{"Check for missing pages", checkStoryShape},
		{"Page YAML files are valid", checkPageValidity},
		{"Node types are valid", checkNodeTypes},
		{"Scene structure is valid", checkSceneStructure},
		{"World interactions are valid", checkWorldInteractions},
	}
}

// Report is the outcome of one full run of the battery.
type Report struct {
	Results []Result
}

// Passed reports whether every rule passed. Warnings never affect this.
func (rep *Report) Passed() bool {
	for _, r := range rep.Results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// Failed returns the number of failed rules.
func (rep *Report) Failed() int {
	n := 0
	for _, r := range rep.Results {
		if !r.Passed {
			n++
		}
	}
	return n
}

// Run executes every rule against the book, in order.
func Run(b *book.Book) *Report {
	rep := &Report{}
	for _, rule := range Rules() {
		res := Result{Name: rule.Name, Passed: true}
		rule.Run(b, &res)
		rep.Results = append(rep.Results, res)
	}
	return rep
}
