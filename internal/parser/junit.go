package parser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ciparse/internal/discovery"
	"ciparse/internal/domain"
	"ciparse/internal/fixture"
	"ciparse/internal/markup"
)

// Child elements of a testcase that carry output, not an outcome
var ignoredCaseChildren = map[string]bool{
	"system-out": true,
	"system-err": true,
	"properties": true,
}

// ResultParser parses ci_reporter style XML test reports into a ResultSet
type ResultParser struct {
	baseDir  string
	scanner  *discovery.Scanner
	mapper   *fixture.Mapper
	locator  *discovery.Locator
	log      Logger
	progress Progress
}

// NewResultParser creates a ResultParser resolving source files against baseDir
func NewResultParser(
	baseDir string,
	scanner *discovery.Scanner,
	mapper *fixture.Mapper,
	locator *discovery.Locator,
	log Logger,
) *ResultParser {
	if log == nil {
		log = NopLogger{}
	}
	return &ResultParser{
		baseDir: baseDir,
		scanner: scanner,
		mapper:  mapper,
		locator: locator,
		log:     log,
	}
}

// SetProgress sets the progress notified while parsing files
func (p *ResultParser) SetProgress(progress Progress) {
	p.progress = progress
}

// Discover finds the report files of a report directory. A missing
// directory is logged and yields no files.
func (p *ResultParser) Discover(dir string) []domain.ReportFile {
	files, err := p.scanner.ScanDir(dir)
	if err != nil {
		p.warn(&ReportIOError{Path: dir, Err: err})
		return nil
	}
	return files
}

// DiscoverGlob finds the report files matching pattern.
func (p *ResultParser) DiscoverGlob(pattern string) []domain.ReportFile {
	files, err := p.scanner.ScanGlob(pattern)
	if err != nil {
		p.warn(&ReportIOError{Path: pattern, Err: err})
		return nil
	}
	return files
}

// Parse parses every report in dir.
func (p *ResultParser) Parse(dir string) *domain.ResultSet {
	return p.ParseFiles(p.Discover(dir))
}

// ParseGlob parses every report matching pattern.
func (p *ResultParser) ParseGlob(pattern string) *domain.ResultSet {
	return p.ParseFiles(p.DiscoverGlob(pattern))
}

// ParseFiles parses the given reports one after the other and sums their
// totals. A report that cannot be read or parsed is logged and contributes
// nothing.
func (p *ResultParser) ParseFiles(files []domain.ReportFile) *domain.ResultSet {
	set := &domain.ResultSet{Records: []domain.TestRecord{}}

	for i, file := range files {
		if err := p.parseFile(file, set); err != nil {
			p.warn(err)
		}
		if p.progress != nil {
			p.progress.Update(i+1, set.TotalTests-set.FailedOrErrored, set.FailedOrErrored)
		}
	}
	if p.progress != nil {
		p.progress.Finish()
	}

	return set
}

// parseFile adds one report to set. Nothing is added if the report fails.
func (p *ResultParser) parseFile(file domain.ReportFile, set *domain.ResultSet) error {
	f, err := os.Open(file.Path)
	if err != nil {
		return &ReportIOError{Path: file.Path, Err: err}
	}
	defer f.Close()

	root, err := markup.ParseXML(f)
	if err != nil {
		return &ReportParseError{Path: file.Path, Err: err}
	}

	var suites []markup.Node
	switch root.Name() {
	case "testsuite":
		suites = []markup.Node{root}
	case "testsuites":
		suites = root.Children("testsuite")
	default:
		return &ReportParseError{Path: file.Path, Err: fmt.Errorf("unexpected root element <%s>", root.Name())}
	}

	sourceFile := p.SourceFile(file)

	var total, failed int
	var records []domain.TestRecord
	for _, suite := range suites {
		c, err := suiteCounts(suite)
		if err != nil {
			return &ReportParseError{Path: file.Path, Err: err}
		}
		total += c.tests
		failed += c.failures + c.errors

		for _, testcase := range suite.Children("testcase") {
			records = append(records, newRecord(file.Fixture, sourceFile, testcase))
		}
	}

	set.TotalTests += total
	set.FailedOrErrored += failed
	set.Files++
	set.Records = append(set.Records, records...)
	return nil
}

// SourceFile returns the test file the fixture maps to, or "" when the
// mapped file does not exist under the base directory.
func (p *ResultParser) SourceFile(file domain.ReportFile) string {
	candidate := p.mapper.MapToPath(file.Fixture, file.Convention)
	candidate = p.locator.Locate(p.baseDir, candidate)
	if !p.locator.Exists(p.baseDir, candidate) {
		return ""
	}
	return candidate
}

func (p *ResultParser) warn(err error) {
	var ioErr *ReportIOError
	if errors.As(err, &ioErr) {
		p.log.Warnf("Error opening test results file (%v)", err)
		return
	}
	p.log.Warnf("Error parsing test results file (%v)", err)
}

type counts struct {
	tests, failures, errors int
}

func suiteCounts(suite markup.Node) (counts, error) {
	var c counts
	var err error
	if c.tests, err = intAttr(suite, "tests"); err != nil {
		return c, err
	}
	if c.failures, err = intAttr(suite, "failures"); err != nil {
		return c, err
	}
	if c.errors, err = intAttr(suite, "errors"); err != nil {
		return c, err
	}
	return c, nil
}

// intAttr reads an integer attribute. A missing attribute counts as 0.
func intAttr(n markup.Node, name string) (int, error) {
	value, ok := n.Attr(name)
	if !ok {
		return 0, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("attribute %s of <%s> is not an integer: %q", name, n.Name(), value)
	}
	return i, nil
}

func newRecord(fixtureName, sourceFile string, testcase markup.Node) domain.TestRecord {
	name, _ := testcase.Attr("name")
	record := domain.TestRecord{
		Fixture: fixtureName,
		Name:    name,
		Status:  domain.StatusSuccess,
		File:    sourceFile,
	}
	if t, ok := testcase.Attr("time"); ok {
		if d, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			record.Duration = d
		}
	}

	for _, child := range testcase.Children("") {
		if ignoredCaseChildren[child.Name()] {
			continue
		}
		record.Status = domain.Status(child.Name())
		record.Traceback = traceback(child)
		break
	}
	return record
}

// traceback returns the diagnostic text, falling back to the message
// attribute and finally the tag so it is never empty.
func traceback(diagnostic markup.Node) string {
	if text := strings.TrimSpace(diagnostic.Text()); text != "" {
		return text
	}
	if msg, ok := diagnostic.Attr("message"); ok && strings.TrimSpace(msg) != "" {
		return strings.TrimSpace(msg)
	}
	return diagnostic.Name()
}
