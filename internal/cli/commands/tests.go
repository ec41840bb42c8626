package commands

import (
	"fmt"
	"time"

	"ciparse/internal/config"
	"ciparse/internal/discovery"
	"ciparse/internal/domain"
	"ciparse/internal/report"
	"ciparse/internal/storage"
	"ciparse/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// TestsCommand handles the tests command
type TestsCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	storage   *storage.JSONStorage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewTestsCommand creates a new TestsCommand
func NewTestsCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	st *storage.JSONStorage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *TestsCommand {
	return &TestsCommand{
		config:    cfg,
		filter:    filter,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command. The normalized report is always emitted; the
// returned error carries the failure message when tests failed.
func (tc *TestsCommand) Execute(cmd *cobra.Command, args []string) error {
	start := time.Now()
	p := newPipeline(tc.config)

	files := p.discover(tc.config, tc.filter)
	if len(files) == 0 {
		color.Yellow("No report files found")
	} else {
		p.results.SetProgress(ui.NewProgressBar(len(files)))
	}

	set := p.results.ParseFiles(files)

	status := report.NewBuildStatus()
	em := append(emitters(tc.config, ui.NewConsoleEmitter(tc.formatter), tc.storage), status)
	if err := report.EmitTests(em, set); err != nil {
		return fmt.Errorf("emit test report: %w", err)
	}

	if tc.config.Flags.OpenFailures && status.Failed() {
		output := &domain.TestReportOutput{
			Meta: domain.ReportMeta{
				TotalTests:      set.TotalTests,
				FailedTests:     set.FailedOrErrored,
				PassedTests:     set.TotalTests - set.FailedOrErrored,
				ReportFiles:     set.Files,
				Duration:        time.Since(start).String(),
				DurationSeconds: time.Since(start).Seconds(),
				Timestamp:       time.Now().Format(time.RFC3339),
			},
			Tests: set.Records,
		}
		if err := tc.viewer.View(output); err != nil {
			return err
		}
	}

	return status.Err()
}
