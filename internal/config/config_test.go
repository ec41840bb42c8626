package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetReportDir(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   New(),
			expected: "test/reports",
		},
		{
			name:     "with report dir flag",
			config:   Load(Flags{BaseDir: "/project", ReportDir: "spec/reports"}),
			expected: "/project/spec/reports",
		},
		{
			name:     "absolute report dir",
			config:   Load(Flags{BaseDir: "/project", ReportDir: "/ci/reports"}),
			expected: "/ci/reports",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetReportDir()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetPattern(t *testing.T) {
	if p := New().GetPattern(); p != "" {
		t.Errorf("expected directory mode by default, got pattern %s", p)
	}

	cfg := Load(Flags{BaseDir: "/project", Pattern: "**/TEST-*.xml"})
	if p := cfg.GetPattern(); p != "/project/**/TEST-*.xml" {
		t.Errorf("unexpected pattern %s", p)
	}
}

func TestConfig_OutputPaths(t *testing.T) {
	cfg := Load(Flags{BaseDir: "/project"})

	if p := cfg.GetTestsOutputPath(); p != "/project/reports/test-report.json" {
		t.Errorf("unexpected tests output path %s", p)
	}
	if p := cfg.GetCoverageOutputPath(); p != "/project/reports/coverage-report.json" {
		t.Errorf("unexpected coverage output path %s", p)
	}
	if !filepath.IsAbs(New().GetTestsOutputPath()) {
		t.Error("expected an absolute output path")
	}
}

func TestConfig_GetDatabase(t *testing.T) {
	dir := t.TempDir()
	env := "DB_HOST=db.internal\nDB_DATABASE=builds\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USERNAME", "DB_PASSWORD", "DB_DATABASE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("DB_USERNAME", "ci")

	db := Load(Flags{BaseDir: dir}).GetDatabase()

	if db.Host != "db.internal" {
		t.Errorf("expected host from .env, got %s", db.Host)
	}
	if db.Port != DefaultDBPort {
		t.Errorf("expected default port, got %s", db.Port)
	}
	if db.User != "ci" {
		t.Errorf("expected user from environment, got %s", db.User)
	}
	if db.DSN() != "ci:@tcp(db.internal:3306)/builds?parseTime=true" {
		t.Errorf("unexpected DSN %s", db.DSN())
	}
	if db.ServerDSN() != "ci:@tcp(db.internal:3306)/?parseTime=true" {
		t.Errorf("unexpected server DSN %s", db.ServerDSN())
	}
}

func TestConfig_GetDatabase_NoEnvFile(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USERNAME", "DB_PASSWORD", "DB_DATABASE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	db := Load(Flags{BaseDir: t.TempDir()}).GetDatabase()

	expected := Database{Host: DefaultDBHost, Port: DefaultDBPort, User: DefaultDBUser, Name: DefaultDBDatabase}
	if db != expected {
		t.Errorf("expected defaults %+v, got %+v", expected, db)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.BaseDir != DefaultBaseDir {
		t.Errorf("expected BaseDir %s, got %s", DefaultBaseDir, cfg.BaseDir)
	}

	if cfg.ScriptExt != DefaultScriptExt {
		t.Errorf("expected ScriptExt %s, got %s", DefaultScriptExt, cfg.ScriptExt)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}
