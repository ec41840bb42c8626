package ui

import (
	"ciparse/internal/domain"
)

// ConsoleEmitter prints emitted reports to the terminal
type ConsoleEmitter struct {
	formatter *Formatter
}

// NewConsoleEmitter creates an emitter printing through formatter
func NewConsoleEmitter(formatter *Formatter) *ConsoleEmitter {
	return &ConsoleEmitter{formatter: formatter}
}

// Error is printed by the summary itself; nothing to do here.
func (e *ConsoleEmitter) Error(string) {}

func (e *ConsoleEmitter) Tests(set *domain.ResultSet) error {
	e.formatter.PrintSummary(set)
	return nil
}

func (e *ConsoleEmitter) Coverage(set domain.CoverageSet) error {
	e.formatter.PrintCoverage(set)
	return nil
}
