package ui

import "ciparse/internal/domain"

// Viewer displays a saved test report in an interactive TUI
type Viewer interface {
	View(report *domain.TestReportOutput) error
}
