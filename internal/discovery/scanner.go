package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-zglob"

	"ciparse/internal/domain"
	"ciparse/internal/fixture"
)

// Scanner finds report files on disk
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanDir finds the report files in dir. Spec-style SPEC-*.xml files are
// preferred; only when none exist are TEST-*.xml files used. Every returned
// file carries the convention that was selected.
func (s *Scanner) ScanDir(dir string) ([]domain.ReportFile, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("report path does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("report path is not a directory: %s", dir)
	}

	for _, convention := range []domain.Convention{domain.SpecStyle, domain.UnitStyle} {
		paths, err := glob(filepath.Join(dir, convention.Prefix()+"-*.xml"))
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			continue
		}
		files := make([]domain.ReportFile, 0, len(paths))
		for _, p := range paths {
			files = append(files, domain.ReportFile{
				Path:       p,
				Fixture:    fixtureName(p),
				Convention: convention,
			})
		}
		return files, nil
	}

	return nil, nil
}

// ScanGlob finds the report files matching pattern, which may use ** to
// match any number of directories. The convention of each file is inferred
// from its name.
func (s *Scanner) ScanGlob(pattern string) ([]domain.ReportFile, error) {
	paths, err := glob(pattern)
	if err != nil {
		return nil, err
	}

	files := make([]domain.ReportFile, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		file := domain.ReportFile{Path: p, Fixture: fixtureName(p)}
		if name, ok := fixture.ParseReportName(p); ok {
			file.Convention = name.Convention()
		}
		files = append(files, file)
	}
	return files, nil
}

// glob returns the sorted matches of pattern. No match is not an error.
func glob(pattern string) ([]string, error) {
	// use zglob to support ** and globbing on windows
	matches, err := zglob.Glob(pattern)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// fixtureName returns the fixture embedded in a report file name, falling
// back to the bare file name.
func fixtureName(reportPath string) string {
	if name, ok := fixture.ParseReportName(reportPath); ok {
		return name.Fixture
	}
	base := filepath.Base(reportPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
