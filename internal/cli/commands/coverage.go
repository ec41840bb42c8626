package commands

import (
	"fmt"

	"ciparse/internal/config"
	"ciparse/internal/report"
	"ciparse/internal/storage"
	"ciparse/internal/ui"

	"github.com/spf13/cobra"
)

// CoverageCommand handles the coverage command
type CoverageCommand struct {
	config    *config.Config
	storage   *storage.JSONStorage
	formatter *ui.Formatter
}

// NewCoverageCommand creates a new CoverageCommand
func NewCoverageCommand(cfg *config.Config, st *storage.JSONStorage, formatter *ui.Formatter) *CoverageCommand {
	return &CoverageCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *CoverageCommand) Execute(cmd *cobra.Command, args []string) error {
	p := newPipeline(cc.config)
	set := p.coverage.Parse(cc.config.GetCoverageFile())

	em := emitters(cc.config, ui.NewConsoleEmitter(cc.formatter), cc.storage)
	if err := report.EmitCoverage(em, set); err != nil {
		return fmt.Errorf("emit coverage report: %w", err)
	}
	return nil
}
