package storage

import (
	"time"

	"ciparse/internal/config"
	"ciparse/internal/domain"
)

// Storage persists and loads normalized reports (e.g. for the failures viewer).
type Storage interface {
	SaveTests(set *domain.ResultSet) error
	LoadTests() (*domain.TestReportOutput, error)
	SaveCoverage(set domain.CoverageSet) error
	LoadCoverage() (*domain.CoverageReportOutput, error)
}

// JSONStorage stores reports in JSON files under the configured output dir.
// It is also a report.Emitter, so saving happens as part of emission.
type JSONStorage struct {
	cfg     *config.Config
	started time.Time
	now     func() time.Time
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON paths.
// The run duration is measured from this call.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg, started: time.Now(), now: time.Now}
}
