package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultSet_FailureMessage(t *testing.T) {
	tests := []struct {
		name     string
		set      *ResultSet
		expected string
	}{
		{"nil set", nil, ""},
		{"no failures", &ResultSet{TotalTests: 4}, ""},
		{"single test", &ResultSet{TotalTests: 1, FailedOrErrored: 1}, "1 of 1 test failed"},
		{"several tests", &ResultSet{TotalTests: 3, FailedOrErrored: 1}, "1 of 3 tests failed"},
		{"no declared tests", &ResultSet{TotalTests: 0, FailedOrErrored: 2}, "2 of 0 tests failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.set.FailureMessage())
		})
	}
}

func TestResultSet_Failures(t *testing.T) {
	set := &ResultSet{Records: []TestRecord{
		{Name: "a", Status: StatusSuccess},
		{Name: "b", Status: StatusFailure},
		{Name: "c", Status: StatusError},
		{Name: "d", Status: StatusSkipped},
	}}

	failures := set.Failures()
	assert.Len(t, failures, 2)
	assert.Equal(t, "b", failures[0].Name)
	assert.Equal(t, "c", failures[1].Name)
}

func TestCoverageSet_AveragePercentage(t *testing.T) {
	assert.Equal(t, 0.0, CoverageSet{}.AveragePercentage())

	set := CoverageSet{
		{Name: "a.rb", Percentage: 100, Lines: 30},
		{Name: "b.rb", Percentage: 50, Lines: 10},
	}
	assert.InDelta(t, 87.5, set.AveragePercentage(), 0.0001)
}

func TestConvention(t *testing.T) {
	assert.Equal(t, "SPEC", SpecStyle.Prefix())
	assert.Equal(t, "TEST", UnitStyle.Prefix())
	assert.Equal(t, "spec", SpecStyle.String())
	assert.Equal(t, "unit", UnitStyle.String())
}
