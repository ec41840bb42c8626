package domain

import "fmt"

// Status is the outcome of a single test case
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// Failed reports whether the status counts against the build.
func (s Status) Failed() bool {
	return s == StatusFailure || s == StatusError
}

// TestRecord is one normalized test case
type TestRecord struct {
	Fixture   string  `json:"fixture"`
	Name      string  `json:"name"`
	Duration  float64 `json:"duration"`
	Status    Status  `json:"status"`
	File      string  `json:"file,omitempty"` // Only set when the file exists under the base dir
	Traceback string  `json:"traceback,omitempty"`
}

// ResultSet aggregates the records of every parsed report file.
// TotalTests and FailedOrErrored are summed from the reports' own
// summary attributes and are not recomputed from Records.
type ResultSet struct {
	TotalTests      int          `json:"total_tests"`
	FailedOrErrored int          `json:"failed_or_errored"`
	Files           int          `json:"files"`
	Records         []TestRecord `json:"records"`
}

// FailureMessage returns the build error message, or "" when nothing failed.
func (rs *ResultSet) FailureMessage() string {
	if rs == nil || rs.FailedOrErrored <= 0 {
		return ""
	}
	plural := "s"
	if rs.TotalTests == 1 {
		plural = ""
	}
	return fmt.Sprintf("%d of %d test%s failed", rs.FailedOrErrored, rs.TotalTests, plural)
}

// Failures returns the records with a failure or error status.
func (rs *ResultSet) Failures() []TestRecord {
	var failed []TestRecord
	for _, r := range rs.Records {
		if r.Status.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}
