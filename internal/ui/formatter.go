package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"ciparse/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// ListEntry is one discovered report file with its mapped source file
type ListEntry struct {
	Report domain.ReportFile
	Source string // Empty when the mapped file does not exist
}

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a Formatter writing to stdout
func NewFormatter() *Formatter {
	return NewFormatterTo(os.Stdout)
}

// NewFormatterTo creates a Formatter writing to out
func NewFormatterTo(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

const (
	rowSep    = "├─────────────────────────────────┼─────────────────────────────┤"
	tableTop  = "┌─────────────────────────────────┬─────────────────────────────┐"
	tableBase = "└─────────────────────────────────┴─────────────────────────────┘"
)

// PrintSummary displays the totals of a test report followed by a tree of
// the failing test cases.
func (f *Formatter) PrintSummary(set *domain.ResultSet) {
	f.header("Test Report Statistics")

	fmt.Fprintln(f.out, tableTop)
	f.row("Report Files", white, "%d", set.Files)
	fmt.Fprintln(f.out, rowSep)
	f.row("Total Tests", white, "%d", set.TotalTests)
	fmt.Fprintln(f.out, rowSep)
	f.row("Passed Tests", green, "%d", set.TotalTests-set.FailedOrErrored)
	fmt.Fprintln(f.out, rowSep)
	f.row("Failed Tests", red, "%d", set.FailedOrErrored)
	fmt.Fprintln(f.out, rowSep)
	f.row("Test Cases", white, "%d", len(set.Records))
	fmt.Fprintln(f.out, tableBase)

	fmt.Fprintln(f.out)
	if msg := set.FailureMessage(); msg != "" {
		red.Fprintf(f.out, "✗ %s\n\n", msg)
		f.printFailedTestsTree(set.Failures())
		return
	}
	green.Fprintln(f.out, "✓ All tests passed!")
}

// PrintCoverage displays the coverage table
func (f *Formatter) PrintCoverage(set domain.CoverageSet) {
	f.header("Coverage Report")

	if len(set) == 0 {
		yellow.Fprintln(f.out, "No coverage data found")
		return
	}

	width := len("File")
	for _, c := range set {
		width = max(width, len(c.Name))
	}
	fmt.Fprintf(f.out, "%-*s  %8s  %8s\n", width, "File", "Lines", "Coverage")
	for _, c := range set {
		fmt.Fprintf(f.out, "%-*s  %8d  ", width, c.Name, c.Lines)
		coverageColor(c.Percentage).Fprintf(f.out, "%7.1f%%\n", c.Percentage)
	}
	fmt.Fprintln(f.out)
	fmt.Fprintf(f.out, "%-*s  %8s  ", width, "Average", "")
	coverageColor(set.AveragePercentage()).Fprintf(f.out, "%7.1f%%\n", set.AveragePercentage())
}

// PrintReportList prints the discovered report files with the source file
// each fixture maps to.
func (f *Formatter) PrintReportList(entries []ListEntry) {
	green.Fprintf(f.out, "Found %d report file(s):\n\n", len(entries))

	for i, e := range entries {
		branch, indent := "├── ", "│   └── "
		if i == len(entries)-1 {
			branch, indent = "└── ", "    └── "
		}
		cyan.Fprintf(f.out, "%s%s ", branch, e.Report.Path)
		fmt.Fprintf(f.out, "[%s] %s\n", e.Report.Convention, e.Report.Fixture)
		if e.Source == "" {
			fmt.Fprintf(f.out, "%s%s\n", indent, red.Sprint("(no source file found)"))
		} else {
			fmt.Fprintf(f.out, "%s%s\n", indent, yellow.Sprint(e.Source))
		}
	}
}

func (f *Formatter) header(title string) {
	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintf(f.out, "║%s║\n", center(title, 63))
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)
}

func (f *Formatter) row(label string, c *color.Color, format string, args ...any) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s", fmt.Sprintf(format, args...))
	fmt.Fprintln(f.out, " │")
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}

func coverageColor(pct float64) *color.Color {
	switch {
	case pct >= 90:
		return green
	case pct >= 50:
		return yellow
	default:
		return red
	}
}

// TreeNode represents a node in the file tree structure
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Failures []domain.TestRecord
	IsFile   bool
}

// failureKey groups a failure under its source file, or its fixture when
// no source file was found.
func failureKey(r domain.TestRecord) string {
	if r.File != "" {
		return r.File
	}
	return r.Fixture
}

// printFailedTestsTree prints a tree structure of failed tests
func (f *Formatter) printFailedTestsTree(failures []domain.TestRecord) {
	if len(failures) == 0 {
		return
	}

	// Group failures by file path
	fileMap := make(map[string][]domain.TestRecord)
	for _, failure := range failures {
		key := failureKey(failure)
		fileMap[key] = append(fileMap[key], failure)
	}

	root := &TreeNode{
		Name:     "",
		Children: make(map[string]*TreeNode),
	}

	for filePath, fileFailures := range fileMap {
		parts := strings.Split(strings.TrimPrefix(filePath, "./"), "/")
		current := root

		for i, part := range parts {
			if part == "" {
				continue
			}

			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}

			current = current.Children[part]

			if i == len(parts)-1 {
				current.Failures = fileFailures
			}
		}
	}

	f.printTreeNode(root, "", true)
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string, isRoot bool) {
	// Sort children for consistent output
	var keys []string
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLastChild := i == len(keys)-1

		var connector string
		if isRoot {
			connector = ""
		} else if isLastChild {
			connector = prefix + "   |_"
		} else {
			connector = prefix + "  |_"
		}

		if child.IsFile {
			yellow.Fprintf(f.out, "%s%s\n", connector, child.Name)
		} else {
			cyan.Fprintf(f.out, "%s%s\n", connector, child.Name)
		}

		if child.IsFile && len(child.Failures) > 0 {
			for j, failure := range child.Failures {
				isLastCase := j == len(child.Failures)-1
				var casePrefix string
				if isLastChild {
					if isLastCase {
						casePrefix = strings.ReplaceAll(prefix, "|", " ") + "        |_"
					} else {
						casePrefix = prefix + "  |        |_"
					}
				} else {
					if isLastCase {
						casePrefix = prefix + "  |        |_"
					} else {
						casePrefix = prefix + "  |  |     |_"
					}
				}
				red.Fprintf(f.out, "%s%s (%s)\n", casePrefix, failure.Name, failure.Status)
			}
		}

		var newPrefix string
		if isRoot {
			newPrefix = "  "
		} else if isLastChild {
			newPrefix = strings.ReplaceAll(prefix, "|", " ") + "  "
		} else {
			newPrefix = prefix + "  |"
		}
		f.printTreeNode(child, newPrefix, false)
	}
}
