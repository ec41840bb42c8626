package parser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ciparse/internal/discovery"
	"ciparse/internal/domain"
	"ciparse/internal/markup"
)

// Cell paths of a row in the rcov index table
var (
	rcovRows        = []string{"body", "table", "tbody", "tr"}
	rcovFilename    = []string{"td[1]", "a"}
	rcovTotalLines  = []string{"td[2]", "tt"}
	rcovPercentages = []string{"td[5]", "table", "tr", "td", "tt"}
)

// CoverageParser parses the HTML summary generated by rcov
type CoverageParser struct {
	baseDir string
	locator *discovery.Locator
	log     Logger
}

// NewCoverageParser creates a CoverageParser resolving source files against baseDir
func NewCoverageParser(baseDir string, locator *discovery.Locator, log Logger) *CoverageParser {
	if log == nil {
		log = NopLogger{}
	}
	return &CoverageParser{
		baseDir: baseDir,
		locator: locator,
		log:     log,
	}
}

// Parse reads the coverage table of the rcov summary at htmlPath. The first
// row holds the totals and is skipped. An unreadable file is logged and
// yields an empty set; rows missing a cell are logged and skipped.
func (p *CoverageParser) Parse(htmlPath string) domain.CoverageSet {
	coverage := domain.CoverageSet{}

	f, err := os.Open(htmlPath)
	if err != nil {
		p.warn(&ReportIOError{Path: htmlPath, Err: err})
		return coverage
	}
	defer f.Close()

	root, err := markup.ParseHTML(f)
	if err != nil {
		p.warn(&ReportIOError{Path: htmlPath, Err: err})
		return coverage
	}

	rows := markup.Find(root, rcovRows...)
	if len(rows) == 0 {
		p.warn(&ReportParseError{Path: htmlPath, Err: errors.New("no coverage table found")})
		return coverage
	}

	for i, row := range rows[1:] {
		record, err := p.parseRow(row)
		if err != nil {
			p.warn(&ReportParseError{Path: htmlPath, Err: fmt.Errorf("row %d: %w", i+2, err)})
			continue
		}
		coverage = append(coverage, record)
	}

	return coverage
}

func (p *CoverageParser) parseRow(row markup.Node) (domain.CoverageRecord, error) {
	name, ok := markup.FindText(row, rcovFilename...)
	if !ok || name == "" {
		return domain.CoverageRecord{}, errors.New("missing file name")
	}
	lines, ok := markup.FindText(row, rcovTotalLines...)
	if !ok {
		return domain.CoverageRecord{}, errors.New("missing total lines")
	}
	percentage, ok := markup.FindText(row, rcovPercentages...)
	if !ok {
		return domain.CoverageRecord{}, errors.New("missing percentage")
	}

	totalLines, err := strconv.Atoi(lines)
	if err != nil {
		return domain.CoverageRecord{}, fmt.Errorf("total lines %q is not an integer", lines)
	}
	pct, err := strconv.ParseFloat(strings.TrimSpace(strings.Trim(percentage, "%")), 64)
	if err != nil {
		return domain.CoverageRecord{}, fmt.Errorf("percentage %q is not a number", percentage)
	}

	return domain.CoverageRecord{
		Name:       name,
		File:       p.locator.Locate(p.baseDir, strings.ReplaceAll(name, `\`, "/")),
		Percentage: pct,
		Lines:      totalLines,
	}, nil
}

func (p *CoverageParser) warn(err error) {
	var ioErr *ReportIOError
	if errors.As(err, &ioErr) {
		p.log.Warnf("Error opening coverage summary file (%v)", err)
		return
	}
	p.log.Warnf("Error parsing coverage summary file (%v)", err)
}
