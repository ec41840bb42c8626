package domain

// CoverageRecord is one row of a coverage summary
type CoverageRecord struct {
	Name       string  `json:"name"` // As printed in the report
	File       string  `json:"file,omitempty"`
	Percentage float64 `json:"percentage"`
	Lines      int     `json:"lines"`
}

// CoverageSet holds the coverage rows in report order
type CoverageSet []CoverageRecord

// AveragePercentage returns the line-weighted coverage of the set.
func (cs CoverageSet) AveragePercentage() float64 {
	var covered float64
	var lines int
	for _, c := range cs {
		covered += c.Percentage * float64(c.Lines)
		lines += c.Lines
	}
	if lines == 0 {
		return 0
	}
	return covered / float64(lines)
}
