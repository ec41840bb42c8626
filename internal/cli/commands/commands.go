package commands

import (
	"ciparse/internal/cli"
	"ciparse/internal/config"
	"ciparse/internal/discovery"
	"ciparse/internal/domain"
	"ciparse/internal/fixture"
	"ciparse/internal/parser"
	"ciparse/internal/report"
	"ciparse/internal/storage"
	"ciparse/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Tests    *TestsCommand
	Coverage *CoverageCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer()

	return &Commands{
		Tests:    NewTestsCommand(cfg, filter, jsonStorage, formatter, viewer),
		Coverage: NewCoverageCommand(cfg, jsonStorage, formatter),
		List:     NewListCommand(cfg, filter, formatter),
		Failures: NewFailuresCommand(jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.BaseDir, "base-dir", "b", "", "Project directory source files are resolved against (default \".\")")
	rootCmd.PersistentFlags().StringVar(&flags.ScriptExt, "ext", "", "Extension of the mapped test files (default \".rb\")")

	// Update config with flags after parsing
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	// Tests command
	testsCmd := &cobra.Command{
		Use:     "tests",
		Short:   "Normalize XML test reports",
		Long:    "Parse ci_reporter SPEC-*.xml or TEST-*.xml reports, resolve each fixture to its test file and emit the normalized report",
		RunE:    c.Tests.Execute,
		PreRunE: applyFlags,
	}
	testsCmd.Flags().StringVarP(&flags.ReportDir, "dir", "d", "", "Directory holding the XML reports (default \"test/reports\")")
	testsCmd.Flags().StringVarP(&flags.Pattern, "glob", "g", "", "Glob of the XML reports, supports ** (e.g. 'spec/reports/**/*.xml')")
	testsCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter reports by fixture pattern (supports wildcards, e.g. 'User*')")
	testsCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not write the normalized JSON report")
	testsCmd.Flags().BoolVar(&flags.Publish, "publish", false, "Publish the report to the MySQL build database (DB_* settings)")
	testsCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when tests failed")
	testsCmd.MarkFlagsMutuallyExclusive("dir", "glob")
	rootCmd.AddCommand(testsCmd)

	// Coverage command
	coverageCmd := &cobra.Command{
		Use:     "coverage",
		Short:   "Normalize an rcov coverage summary",
		Long:    "Parse the HTML index generated by rcov and emit the coverage of every source file",
		RunE:    c.Coverage.Execute,
		PreRunE: applyFlags,
	}
	coverageCmd.Flags().StringVar(&flags.CoverageFile, "file", "", "rcov summary page (default \"coverage/index.html\")")
	coverageCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not write the normalized JSON report")
	coverageCmd.Flags().BoolVar(&flags.Publish, "publish", false, "Publish the report to the MySQL build database (DB_* settings)")
	rootCmd.AddCommand(coverageCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered reports",
		Long:    "Scan and list the XML reports with the test file each fixture maps to, without parsing them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.ReportDir, "dir", "d", "", "Directory holding the XML reports (default \"test/reports\")")
	listCmd.Flags().StringVarP(&flags.Pattern, "glob", "g", "", "Glob of the XML reports, supports **")
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter reports by fixture pattern (supports wildcards, e.g. 'User*')")
	listCmd.MarkFlagsMutuallyExclusive("dir", "glob")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View test failures interactively",
		Long:    "Display the failing test cases of the last saved test report in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failuresCmd)
}

// pipeline holds the parsers for one command run. It is built after flags
// are applied so the base directory and extension are final.
type pipeline struct {
	results  *parser.ResultParser
	coverage *parser.CoverageParser
}

func newPipeline(cfg *config.Config) *pipeline {
	log := ui.NewConsoleLogger()
	locator := discovery.NewLocator(cfg.PathsToIgnore)
	mapper := fixture.NewMapper(cfg.ScriptExt)

	return &pipeline{
		results:  parser.NewResultParser(cfg.BaseDir, discovery.NewScanner(), mapper, locator, log),
		coverage: parser.NewCoverageParser(cfg.BaseDir, locator, log),
	}
}

// discover finds the report files selected by the config: the glob when
// one is set, the report directory otherwise.
func (p *pipeline) discover(cfg *config.Config, filter *discovery.Filter) []domain.ReportFile {
	var files []domain.ReportFile
	if pattern := cfg.GetPattern(); pattern != "" {
		files = p.results.DiscoverGlob(pattern)
	} else {
		files = p.results.Discover(cfg.GetReportDir())
	}
	return filter.FilterByFixture(files, cfg.Flags.Filter)
}

// emitters returns the emitters selected by the flags, console first.
func emitters(cfg *config.Config, console *ui.ConsoleEmitter, st *storage.JSONStorage) report.Multi {
	m := report.Multi{console}
	if !cfg.Flags.NoSave {
		m = append(m, st)
	}
	if cfg.Flags.Publish {
		m = append(m, storage.NewMySQLPublisher(cfg))
	}
	return m
}
