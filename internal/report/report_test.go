package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/jlfreif/storybook/internal/report"
	"github.com/jlfreif/storybook/internal/validator"
)

func plainPrinter() (*report.Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return report.New(&buf, termenv.Ascii), &buf
}

func TestPrinterSeverities(t *testing.T) {
	p, buf := plainPrinter()

	p.Error("broken reference")
	p.Warning("odd page count")
	p.Success("all good")
	p.Note("legacy format")
	p.Info("  - detail")

	out := buf.String()
	assert.Contains(t, out, "✗ ERROR: broken reference")
	assert.Contains(t, out, "⚠ WARNING: odd page count")
	assert.Contains(t, out, "✓ all good")
	assert.Contains(t, out, "ℹ legacy format")
	assert.Contains(t, out, "    - detail")
	// Ascii profile must not emit escape sequences.
	assert.NotContains(t, out, "\x1b[")
}

func TestPrintReport(t *testing.T) {
	rep := &validator.Report{Results: []validator.Result{
		{
			Name:   "First rule",
			Passed: true,
			Diagnostics: []validator.Diagnostic{
				{Severity: validator.SeveritySuccess, Message: "fine"},
			},
		},
		{
			Name:   "Second rule",
			Passed: false,
			Diagnostics: []validator.Diagnostic{
				{Severity: validator.SeverityError, Message: "not fine"},
			},
		},
	}}

	p, buf := plainPrinter()
	p.Print(rep)
	out := buf.String()

	assert.Contains(t, out, "REPOSITORY STRUCTURE VALIDATION")
	assert.Contains(t, out, "Testing: First rule")
	assert.Contains(t, out, "Testing: Second rule")
	assert.Contains(t, out, "✗ ERROR: not fine")
	assert.Contains(t, out, "TEST SUMMARY")
	assert.Contains(t, out, "1 out of 2 tests failed")
	assert.True(t, strings.Contains(out, strings.Repeat("=", 80)))
}

func TestPrintReportAllPassed(t *testing.T) {
	rep := &validator.Report{Results: []validator.Result{
		{Name: "Only rule", Passed: true},
	}}

	p, buf := plainPrinter()
	p.Print(rep)
	assert.Contains(t, buf.String(), "All 1 tests passed!")
}
