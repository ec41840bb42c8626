package discovery

import (
	"path/filepath"
	"strings"

	"ciparse/internal/domain"
)

// Filter filters report files by fixture name
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByFixture keeps the report files whose fixture matches pattern.
// Supports wildcard patterns like "User*" or "*Controller*"; a pattern
// without wildcards matches as a substring.
func (f *Filter) FilterByFixture(files []domain.ReportFile, pattern string) []domain.ReportFile {
	if pattern == "" {
		return files
	}

	var filtered []domain.ReportFile
	for _, file := range files {
		if matchName(file.Fixture, pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Looser match for patterns like "*Payment*": every literal part must
	// appear in the name
	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") || !strings.Contains(name, part) {
			return false
		}
		hasPart = true
	}
	return hasPart
}
