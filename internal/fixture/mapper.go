package fixture

import (
	"path"
	"strings"
	"unicode"

	"ciparse/internal/domain"
)

// DefaultExt is the script extension of mapped test files
const DefaultExt = ".rb"

// Mapper maps camel-cased fixture names to conventional test file paths.
// The result is a best-effort guess; callers confirm it exists before use.
type Mapper struct {
	ext string
}

// NewMapper creates a Mapper producing files with the given extension
func NewMapper(ext string) *Mapper {
	if ext == "" {
		ext = DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Mapper{ext: ext}
}

// Underscore turns a camel-cased identifier into its snake-cased form,
// e.g. UserControllerTest becomes user_controller_test.
func Underscore(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.TrimPrefix(b.String(), "_")
}

// MapToPath returns the slash separated path the fixture is expected at.
//
// Spec style:  UserController -> spec/controllers/user_controller_spec.rb
// Unit style:  UserTest       -> test/unit/user_test.rb
func (m *Mapper) MapToPath(name string, convention domain.Convention) string {
	file := Underscore(name)

	if convention == domain.SpecStyle {
		var dir string
		switch {
		case strings.Contains(file, "_helper"):
			dir = "helpers"
		case strings.Contains(file, "_controller"):
			dir = "controllers"
		case strings.Contains(file, "_view"):
			dir = "views"
		default:
			dir = "models"
		}
		return path.Join("spec", dir, file+"_spec"+m.ext)
	}

	var dir string
	switch {
	case strings.Contains(file, "_controller"):
		dir = "functional"
	case strings.Contains(file, "_integration"):
		dir = "integration"
	default:
		dir = "unit"
	}
	return path.Join("test", dir, file+m.ext)
}
