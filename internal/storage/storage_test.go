package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ciparse/internal/config"
	"ciparse/internal/domain"
	"ciparse/internal/report"
)

var _ report.Emitter = (*JSONStorage)(nil)
var _ report.Emitter = (*MySQLPublisher)(nil)

func newTestStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.Load(config.Flags{BaseDir: t.TempDir()})
	s := NewJSONStorage(cfg)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.started = start
	s.now = func() time.Time { return start.Add(1500 * time.Millisecond) }
	return s
}

func TestJSONStorage_Tests(t *testing.T) {
	s := newTestStorage(t)
	set := &domain.ResultSet{
		TotalTests:      3,
		FailedOrErrored: 1,
		Files:           2,
		Records: []domain.TestRecord{
			{Fixture: "UserTest", Name: "test_create", Duration: 0.2, Status: domain.StatusSuccess, File: "test/unit/user_test.rb"},
			{Fixture: "UserTest", Name: "test_destroy", Duration: 0.1, Status: domain.StatusFailure, Traceback: "expected true"},
		},
	}

	require.NoError(t, report.EmitTests(s, set))

	out, err := s.LoadTests()
	require.NoError(t, err)
	assert.Equal(t, 3, out.Meta.TotalTests)
	assert.Equal(t, 1, out.Meta.FailedTests)
	assert.Equal(t, 2, out.Meta.PassedTests)
	assert.Equal(t, 2, out.Meta.ReportFiles)
	assert.Equal(t, "1.5s", out.Meta.Duration)
	assert.Equal(t, "2024-03-01T12:00:01Z", out.Meta.Timestamp)
	assert.Equal(t, set.Records, out.Tests)
}

func TestJSONStorage_EmptyTests(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.SaveTests(&domain.ResultSet{}))

	out, err := s.LoadTests()
	require.NoError(t, err)
	assert.NotNil(t, out.Tests)
	assert.Empty(t, out.Tests)
}

func TestJSONStorage_Coverage(t *testing.T) {
	s := newTestStorage(t)
	set := domain.CoverageSet{
		{Name: "app/models/user.rb", File: "app/models/user.rb", Percentage: 100, Lines: 30},
		{Name: "lib/foo.rb", File: "lib/foo.rb", Percentage: 50, Lines: 10},
	}

	require.NoError(t, report.EmitCoverage(s, set))

	out, err := s.LoadCoverage()
	require.NoError(t, err)
	assert.Equal(t, 2, out.Meta.SourceFiles)
	assert.Equal(t, 40, out.Meta.TotalLines)
	assert.InDelta(t, 87.5, out.Meta.AveragePercentage, 0.001)
	assert.Equal(t, set, out.Coverage)
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.LoadTests()
	assert.Error(t, err)
	_, err = s.LoadCoverage()
	assert.Error(t, err)
}

func TestIsValidDatabaseName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"ci_reports", true},
		{"builds_2024", true},
		{"", false},
		{"reports; DROP TABLE x", false},
		{"a`b", false},
		{"x--", false},
		{strings.Repeat("a", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidDatabaseName(tt.name))
		})
	}
}

func TestMySQLPublisher_RemembersErrors(t *testing.T) {
	p := NewMySQLPublisher(config.Load(config.Flags{BaseDir: t.TempDir()}))

	p.Error("1 of 3 tests failed")

	assert.Equal(t, []string{"1 of 3 tests failed"}, p.errors)
}

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.Equal(t, "x", nullString("x").String)
}
