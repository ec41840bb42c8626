package parser

import "fmt"

// ReportIOError is returned when a report artifact cannot be opened or read
type ReportIOError struct {
	Path string
	Err  error
}

func (e *ReportIOError) Error() string {
	return fmt.Sprintf("cannot read report %s: %v", e.Path, e.Err)
}

func (e *ReportIOError) Unwrap() error {
	return e.Err
}

// ReportParseError is returned when a report artifact exists but does not
// have the expected structure
type ReportParseError struct {
	Path string
	Err  error
}

func (e *ReportParseError) Error() string {
	return fmt.Sprintf("cannot parse report %s: %v", e.Path, e.Err)
}

func (e *ReportParseError) Unwrap() error {
	return e.Err
}
