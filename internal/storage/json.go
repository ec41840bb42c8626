package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ciparse/internal/domain"
)

// SaveTests writes the test report to the configured JSON output file.
func (s *JSONStorage) SaveTests(set *domain.ResultSet) error {
	duration := s.now().Sub(s.started)
	tests := set.Records
	if tests == nil {
		tests = []domain.TestRecord{}
	}

	output := domain.TestReportOutput{
		Meta: domain.ReportMeta{
			TotalTests:      set.TotalTests,
			FailedTests:     set.FailedOrErrored,
			PassedTests:     set.TotalTests - set.FailedOrErrored,
			ReportFiles:     set.Files,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       s.now().Format(time.RFC3339),
		},
		Tests: tests,
	}
	return writeJSON(s.cfg.GetTestsOutputPath(), output)
}

// LoadTests reads the last test report from the configured JSON output file.
func (s *JSONStorage) LoadTests() (*domain.TestReportOutput, error) {
	var output domain.TestReportOutput
	if err := readJSON(s.cfg.GetTestsOutputPath(), &output); err != nil {
		return nil, err
	}
	return &output, nil
}

// SaveCoverage writes the coverage report to the configured JSON output file.
func (s *JSONStorage) SaveCoverage(set domain.CoverageSet) error {
	if set == nil {
		set = domain.CoverageSet{}
	}
	lines := 0
	for _, c := range set {
		lines += c.Lines
	}

	output := domain.CoverageReportOutput{
		Meta: domain.CoverageMeta{
			SourceFiles:       len(set),
			TotalLines:        lines,
			AveragePercentage: set.AveragePercentage(),
			Timestamp:         s.now().Format(time.RFC3339),
		},
		Coverage: set,
	}
	return writeJSON(s.cfg.GetCoverageOutputPath(), output)
}

// LoadCoverage reads the last coverage report from the configured JSON output file.
func (s *JSONStorage) LoadCoverage() (*domain.CoverageReportOutput, error) {
	var output domain.CoverageReportOutput
	if err := readJSON(s.cfg.GetCoverageOutputPath(), &output); err != nil {
		return nil, err
	}
	return &output, nil
}

// Error is a no-op; the build error is derived from the saved totals.
func (s *JSONStorage) Error(string) {}

// Tests saves the report as part of emission.
func (s *JSONStorage) Tests(set *domain.ResultSet) error {
	return s.SaveTests(set)
}

// Coverage saves the report as part of emission.
func (s *JSONStorage) Coverage(set domain.CoverageSet) error {
	return s.SaveCoverage(set)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}
	return nil
}
