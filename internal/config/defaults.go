package config

const (
	// DefaultBaseDir is the default project directory paths are resolved against
	DefaultBaseDir = "."
	// DefaultReportDir is where ci_reporter writes its XML reports by default
	DefaultReportDir = "test/reports"
	// DefaultCoverageFile is the default rcov summary page
	DefaultCoverageFile = "coverage/index.html"
	// DefaultScriptExt is the extension of mapped test files
	DefaultScriptExt = ".rb"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "reports"
	// DefaultTestsJSONFile is the default normalized test report file name
	DefaultTestsJSONFile = "test-report.json"
	// DefaultCoverageJSONFile is the default normalized coverage report file name
	DefaultCoverageJSONFile = "coverage-report.json"
)

// DefaultPathsToIgnore are the directories not searched when resolving source files
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"tmp",
	"log",
	"coverage",
}

// Database defaults, overridden by DB_* environment variables
const (
	DefaultDBHost     = "127.0.0.1"
	DefaultDBPort     = "3306"
	DefaultDBUser     = "root"
	DefaultDBDatabase = "ci_reports"
)
