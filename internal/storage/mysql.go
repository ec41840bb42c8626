package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"ciparse/internal/config"
	"ciparse/internal/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS test_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		kind VARCHAR(16) NOT NULL,
		total_tests INT NOT NULL DEFAULT 0,
		failed_tests INT NOT NULL DEFAULT 0,
		report_files INT NOT NULL DEFAULT 0,
		error_message TEXT,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS test_results (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		run_id BIGINT NOT NULL,
		fixture VARCHAR(255) NOT NULL,
		name VARCHAR(1024) NOT NULL,
		duration DOUBLE NOT NULL,
		status VARCHAR(32) NOT NULL,
		file VARCHAR(1024),
		traceback MEDIUMTEXT,
		INDEX (run_id)
	)`,
	`CREATE TABLE IF NOT EXISTS coverage_results (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		run_id BIGINT NOT NULL,
		name VARCHAR(1024) NOT NULL,
		file VARCHAR(1024),
		percentage DOUBLE NOT NULL,
		total_lines INT NOT NULL,
		INDEX (run_id)
	)`,
}

const (
	insertRunSQL            = "INSERT INTO test_runs (kind, total_tests, failed_tests, report_files, error_message, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	insertTestResultSQL     = "INSERT INTO test_results (run_id, fixture, name, duration, status, file, traceback) VALUES (?, ?, ?, ?, ?, ?, ?)"
	insertCoverageResultSQL = "INSERT INTO coverage_results (run_id, name, file, percentage, total_lines) VALUES (?, ?, ?, ?, ?)"
)

// MySQLPublisher publishes normalized reports to the build database.
// It is a report.Emitter; each Tests or Coverage call records one run.
type MySQLPublisher struct {
	db      config.Database
	timeout time.Duration
	errors  []string
}

// NewMySQLPublisher creates a publisher for the configured database
func NewMySQLPublisher(cfg *config.Config) *MySQLPublisher {
	return &MySQLPublisher{db: cfg.GetDatabase(), timeout: 30 * time.Second}
}

// Error keeps the message so it is stored with the next run.
func (p *MySQLPublisher) Error(msg string) {
	p.errors = append(p.errors, msg)
}

// Tests publishes one test run with all its records.
func (p *MySQLPublisher) Tests(set *domain.ResultSet) error {
	return p.publish(func(ctx context.Context, tx *sql.Tx) error {
		runID, err := p.insertRun(ctx, tx, "tests", set.TotalTests, set.FailedOrErrored, set.Files)
		if err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, insertTestResultSQL)
		if err != nil {
			return fmt.Errorf("prepare test results: %w", err)
		}
		defer stmt.Close()

		for _, r := range set.Records {
			if _, err := stmt.ExecContext(ctx, runID, r.Fixture, r.Name, r.Duration, string(r.Status),
				nullString(r.File), nullString(r.Traceback)); err != nil {
				return fmt.Errorf("insert test result %s: %w", r.Name, err)
			}
		}
		return nil
	})
}

// Coverage publishes one coverage run with all its rows.
func (p *MySQLPublisher) Coverage(set domain.CoverageSet) error {
	return p.publish(func(ctx context.Context, tx *sql.Tx) error {
		runID, err := p.insertRun(ctx, tx, "coverage", 0, 0, 1)
		if err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, insertCoverageResultSQL)
		if err != nil {
			return fmt.Errorf("prepare coverage results: %w", err)
		}
		defer stmt.Close()

		for _, c := range set {
			if _, err := stmt.ExecContext(ctx, runID, c.Name, nullString(c.File), c.Percentage, c.Lines); err != nil {
				return fmt.Errorf("insert coverage result %s: %w", c.Name, err)
			}
		}
		return nil
	})
}

func (p *MySQLPublisher) insertRun(ctx context.Context, tx *sql.Tx, kind string, total, failed, files int) (int64, error) {
	res, err := tx.ExecContext(ctx, insertRunSQL,
		kind, total, failed, files, nullString(strings.Join(p.errors, "\n")), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read run id: %w", err)
	}
	return id, nil
}

func (p *MySQLPublisher) publish(fn func(ctx context.Context, tx *sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.ensureDatabase(ctx); err != nil {
		return err
	}

	db, err := sql.Open("mysql", p.db.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", p.db.Name, err)
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(ctx, tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ensureDatabase creates the report database if it doesn't exist
func (p *MySQLPublisher) ensureDatabase(ctx context.Context) error {
	if !isValidDatabaseName(p.db.Name) {
		return fmt.Errorf("invalid database name: %s", p.db.Name)
	}

	// Connect to MySQL server (without specifying database)
	db, err := sql.Open("mysql", p.db.ServerDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database server: %w", err)
	}

	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	if err := db.QueryRowContext(ctx, query, p.db.Name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check database %s: %w", p.db.Name, err)
	}
	if exists {
		return nil
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", p.db.Name)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", p.db.Name, err)
	}
	return nil
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	// Check for SQL injection patterns
	invalid := []string{"'", "\"", "`", ";", "--", "/*", "*/", "DROP", "DELETE", "TRUNCATE"}
	upper := strings.ToUpper(name)
	for _, s := range invalid {
		if strings.Contains(upper, s) {
			return false
		}
	}
	return true
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
