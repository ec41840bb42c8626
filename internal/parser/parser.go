package parser

// Logger receives the warnings emitted while parsing. Broken or missing
// reports are logged rather than returned, so parsing never aborts a build.
type Logger interface {
	Warnf(format string, args ...any)
}

// Progress is notified after each report file is processed
type Progress interface {
	Update(files, passed, failed int)
	Finish()
}

// NopLogger discards all warnings
type NopLogger struct{}

func (NopLogger) Warnf(string, ...any) {}
