package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"ciparse/internal/domain"
	"ciparse/internal/parser"
	"ciparse/internal/report"
)

var (
	_ parser.Logger   = (*ConsoleLogger)(nil)
	_ parser.Progress = (*ProgressBar)(nil)
	_ report.Emitter  = (*ConsoleEmitter)(nil)
	_ Viewer          = (*FailureViewer)(nil)
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestConsoleLogger_Warnf(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer

	NewConsoleLoggerTo(&buf).Warnf("Error parsing test results file (%v)", "bad xml")

	assert.Equal(t, "⚠ Error parsing test results file (bad xml)\n", buf.String())
}

func TestFormatter_PrintSummary(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	set := &domain.ResultSet{
		TotalTests:      3,
		FailedOrErrored: 2,
		Files:           2,
		Records: []domain.TestRecord{
			{Fixture: "UserTest", Name: "test_ok", Status: domain.StatusSuccess, File: "test/unit/user_test.rb"},
			{Fixture: "UserTest", Name: "test_broken", Status: domain.StatusFailure, File: "test/unit/user_test.rb"},
			{Fixture: "GhostTest", Name: "test_boom", Status: domain.StatusError},
		},
	}

	NewFormatterTo(&buf).PrintSummary(set)
	out := buf.String()

	assert.Contains(t, out, "Test Report Statistics")
	assert.Contains(t, out, "✗ 2 of 3 tests failed")
	assert.Contains(t, out, "user_test.rb")
	assert.Contains(t, out, "test_broken (failure)")
	assert.Contains(t, out, "GhostTest")
	assert.Contains(t, out, "test_boom (error)")
	assert.NotContains(t, out, "test_ok")
}

func TestFormatter_PrintSummary_AllPassed(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer

	NewFormatterTo(&buf).PrintSummary(&domain.ResultSet{TotalTests: 1, Files: 1})

	assert.Contains(t, buf.String(), "✓ All tests passed!")
}

func TestFormatter_PrintCoverage(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	set := domain.CoverageSet{
		{Name: "app/models/user.rb", Percentage: 100, Lines: 30},
		{Name: "lib/foo.rb", Percentage: 50, Lines: 10},
	}

	NewFormatterTo(&buf).PrintCoverage(set)
	out := buf.String()

	assert.Contains(t, out, "app/models/user.rb")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "87.5%")
}

func TestFormatter_PrintReportList(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	entries := []ListEntry{
		{Report: domain.ReportFile{Path: "reports/SPEC-User.xml", Fixture: "User", Convention: domain.SpecStyle}, Source: "spec/models/user_spec.rb"},
		{Report: domain.ReportFile{Path: "reports/SPEC-Ghost.xml", Fixture: "Ghost", Convention: domain.SpecStyle}},
	}

	NewFormatterTo(&buf).PrintReportList(entries)
	out := buf.String()

	assert.Contains(t, out, "Found 2 report file(s)")
	assert.Contains(t, out, "[spec] User")
	assert.Contains(t, out, "spec/models/user_spec.rb")
	assert.Contains(t, out, "(no source file found)")
}

func TestFormatFailureDetails(t *testing.T) {
	failure := domain.TestRecord{
		Fixture:   "UserTest",
		Name:      "test_broken",
		Status:    domain.StatusFailure,
		File:      "test/unit/user_test.rb",
		Traceback: strings.Repeat("line\n", 40) + "last",
	}

	details := formatFailureDetails(failure)

	assert.Contains(t, details, "Test: test_broken")
	assert.Contains(t, details, "File: test/unit/user_test.rb")
	assert.Contains(t, details, "and 11 more lines")

	stats := formatFailureStats(domain.TestRecord{Fixture: "UserTest"}, 4)
	assert.Contains(t, stats, "UserTest")
	assert.Contains(t, stats, "Test 4")
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab   ", center("ab", 7))
	assert.Equal(t, "abcdef", center("abcdef", 3))
}
