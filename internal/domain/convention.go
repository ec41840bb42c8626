package domain

// Convention identifies the naming convention a report file was written
// with. It decides how the embedded fixture name maps to a source file.
type Convention int

const (
	// UnitStyle reports are named TEST-<Fixture>.xml and map under test/.
	UnitStyle Convention = iota
	// SpecStyle reports are named SPEC-<Fixture>[-more].xml and map under spec/.
	SpecStyle
)

// Prefix returns the file name prefix used by the convention.
func (c Convention) Prefix() string {
	if c == SpecStyle {
		return "SPEC"
	}
	return "TEST"
}

func (c Convention) String() string {
	if c == SpecStyle {
		return "spec"
	}
	return "unit"
}

// ReportFile is a report artifact found on disk
type ReportFile struct {
	Path       string     // Path to the XML report
	Fixture    string     // Fixture name embedded in the file name
	Convention Convention // Convention the file name follows
}
