// Package report hands normalized reports to the build collaborators
package report

import (
	"errors"

	"ciparse/internal/domain"
)

// Emitter receives normalized reports
type Emitter interface {
	// Error signals a build-visible error.
	Error(msg string)
	// Tests receives the full test report.
	Tests(set *domain.ResultSet) error
	// Coverage receives the full coverage report.
	Coverage(set domain.CoverageSet) error
}

// EmitTests signals the failure message, if any, and then emits the whole
// set. The failure message never prevents emission.
func EmitTests(em Emitter, set *domain.ResultSet) error {
	if msg := set.FailureMessage(); msg != "" {
		em.Error(msg)
	}
	return em.Tests(set)
}

// EmitCoverage emits the coverage set.
func EmitCoverage(em Emitter, set domain.CoverageSet) error {
	return em.Coverage(set)
}

// Multi fans out to several emitters
type Multi []Emitter

func (m Multi) Error(msg string) {
	for _, em := range m {
		em.Error(msg)
	}
}

// Tests emits to every emitter, even after one fails.
func (m Multi) Tests(set *domain.ResultSet) error {
	var errs []error
	for _, em := range m {
		errs = append(errs, em.Tests(set))
	}
	return errors.Join(errs...)
}

// Coverage emits to every emitter, even after one fails.
func (m Multi) Coverage(set domain.CoverageSet) error {
	var errs []error
	for _, em := range m {
		errs = append(errs, em.Coverage(set))
	}
	return errors.Join(errs...)
}

// BuildStatus remembers the errors signalled during emission
type BuildStatus struct {
	errors []string
}

// NewBuildStatus creates an empty BuildStatus
func NewBuildStatus() *BuildStatus {
	return &BuildStatus{}
}

func (b *BuildStatus) Error(msg string) {
	b.errors = append(b.errors, msg)
}

func (b *BuildStatus) Tests(*domain.ResultSet) error { return nil }

func (b *BuildStatus) Coverage(domain.CoverageSet) error { return nil }

// Failed reports whether an error was signalled.
func (b *BuildStatus) Failed() bool {
	return len(b.errors) > 0
}

// Err returns the signalled errors as one error, or nil.
func (b *BuildStatus) Err() error {
	if !b.Failed() {
		return nil
	}
	errs := make([]error, 0, len(b.errors))
	for _, msg := range b.errors {
		errs = append(errs, errors.New(msg))
	}
	return errors.Join(errs...)
}
