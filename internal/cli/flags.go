package cli

import "ciparse/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		BaseDir:      f.BaseDir,
		ReportDir:    f.ReportDir,
		Pattern:      f.Pattern,
		CoverageFile: f.CoverageFile,
		ScriptExt:    f.ScriptExt,
		Filter:       f.Filter,
		NoSave:       f.NoSave,
		Publish:      f.Publish,
		OpenFailures: f.OpenFailures,
	}
}
