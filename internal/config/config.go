package config

import (
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	BaseDir   string
	ScriptExt string

	// Report inputs
	ReportDir    string
	Pattern      string
	CoverageFile string

	// Output settings
	OutputJSONDir    string
	TestsJSONFile    string
	CoverageJSONFile string

	// Directories skipped when resolving source files
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	BaseDir      string
	ReportDir    string
	Pattern      string
	CoverageFile string
	ScriptExt    string
	Filter       string
	NoSave       bool
	Publish      bool
	OpenFailures bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		BaseDir:          DefaultBaseDir,
		ScriptExt:        DefaultScriptExt,
		ReportDir:        DefaultReportDir,
		CoverageFile:     DefaultCoverageFile,
		OutputJSONDir:    DefaultOutputJSONDir,
		TestsJSONFile:    DefaultTestsJSONFile,
		CoverageJSONFile: DefaultCoverageJSONFile,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply stores the flags and applies their overrides
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.ScriptExt != "" {
		c.ScriptExt = flags.ScriptExt
	}
	if flags.ReportDir != "" {
		c.ReportDir = flags.ReportDir
	}
	if flags.Pattern != "" {
		c.Pattern = flags.Pattern
	}
	if flags.CoverageFile != "" {
		c.CoverageFile = flags.CoverageFile
	}
}

// GetReportDir returns the report directory, relative to the base dir unless absolute
func (c *Config) GetReportDir() string {
	return c.resolve(c.ReportDir)
}

// GetPattern returns the report glob pattern, or "" in directory mode
func (c *Config) GetPattern() string {
	if c.Pattern == "" {
		return ""
	}
	return c.resolve(c.Pattern)
}

// GetCoverageFile returns the path of the rcov summary page
func (c *Config) GetCoverageFile() string {
	return c.resolve(c.CoverageFile)
}

// GetTestsOutputPath returns the absolute path of the normalized test report
func (c *Config) GetTestsOutputPath() string {
	return c.outputPath(c.TestsJSONFile)
}

// GetCoverageOutputPath returns the absolute path of the normalized coverage report
func (c *Config) GetCoverageOutputPath() string {
	return c.outputPath(c.CoverageJSONFile)
}

// Resolves to an absolute path so every command reads and writes the same
// file regardless of cwd.
func (c *Config) outputPath(name string) string {
	p := filepath.Join(c.BaseDir, c.OutputJSONDir, name)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
