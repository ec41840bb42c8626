package fixture

import (
	"path/filepath"
	"strings"

	"ciparse/internal/domain"
)

// ReportName is a report file name split into its dash separated tokens.
//
// Reports are named <PREFIX>-<Fixture>[-<description>...].xml:
//
//	TEST-UserTest.xml                 token 0 = TEST, token 1 = UserTest
//	SPEC-UserController-foo-bar.xml   token 0 = SPEC, token 1 = UserController
//
// Only token 1 is taken as the fixture. A fixture name containing a dash
// cannot be recovered from the file name.
type ReportName struct {
	Prefix  string
	Fixture string
	Tokens  []string
}

// ParseReportName tokenizes the base name of a report file. It returns
// false if the name has no fixture token.
func ParseReportName(reportPath string) (ReportName, bool) {
	base := filepath.Base(filepath.FromSlash(reportPath))
	// Reports produced on Windows may reach us with backslashes
	if i := strings.LastIndex(base, `\`); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	tokens := strings.Split(base, "-")
	if len(tokens) < 2 || tokens[1] == "" {
		return ReportName{}, false
	}
	return ReportName{
		Prefix:  tokens[0],
		Fixture: tokens[1],
		Tokens:  tokens,
	}, true
}

// Convention infers the naming convention from the token layout. An
// explicit SPEC or TEST prefix wins; otherwise a trailing description
// (more than two tokens) is only written by spec-style reporters.
func (n ReportName) Convention() domain.Convention {
	switch strings.ToUpper(n.Prefix) {
	case domain.SpecStyle.Prefix():
		return domain.SpecStyle
	case domain.UnitStyle.Prefix():
		return domain.UnitStyle
	}
	if len(n.Tokens) > 2 {
		return domain.SpecStyle
	}
	return domain.UnitStyle
}
