package domain

// ReportMeta contains metadata about one normalization run
type ReportMeta struct {
	TotalTests      int     `json:"total_tests"`
	FailedTests     int     `json:"failed_tests"`
	PassedTests     int     `json:"passed_tests"`
	ReportFiles     int     `json:"report_files"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// TestReportOutput is the serialized normalized test report
type TestReportOutput struct {
	Meta  ReportMeta   `json:"meta"`
	Tests []TestRecord `json:"tests"`
}

// CoverageMeta contains metadata about one coverage normalization run
type CoverageMeta struct {
	SourceFiles       int     `json:"source_files"`
	TotalLines        int     `json:"total_lines"`
	AveragePercentage float64 `json:"average_percentage"`
	Timestamp         string  `json:"timestamp"`
}

// CoverageReportOutput is the serialized normalized coverage report
type CoverageReportOutput struct {
	Meta     CoverageMeta `json:"meta"`
	Coverage CoverageSet  `json:"coverage"`
}
