package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ciparse/internal/config"
	"ciparse/internal/discovery"
	"ciparse/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	p := newPipeline(lc.config)

	files := p.discover(lc.config, lc.filter)
	if len(files) == 0 {
		color.Yellow("No report files found")
		return nil
	}

	entries := make([]ui.ListEntry, 0, len(files))
	for _, file := range files {
		entries = append(entries, ui.ListEntry{Report: file, Source: p.results.SourceFile(file)})
	}
	lc.formatter.PrintReportList(entries)
	return nil
}
