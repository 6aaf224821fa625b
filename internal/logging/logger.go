package logging

import "sync"

// Enumeration of the different log levels.
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and the closing summary
	LogLevelWarning        // errors, warnings, closing summary
	LogLevelVerbose        // everything (default)
)

// Enumeration of compile message kinds. ASL's core only ever reports
// declaration errors (LMKName), but the taxonomy mirrors the full set a
// production frontend would need so that other passes (eg. a semantic
// checker) can plug into the same reporter.
const (
	LMKName = iota
	LMKTyping
	LMKSyntax
	LMKUsage
)

// CompileMessage is a single positioned diagnostic.
type CompileMessage struct {
	Message  string
	Kind     int
	Position *TextPosition
	IsError  bool
}

// Logger accumulates and displays diagnostics for one compilation.
type Logger struct {
	errorCount   int
	warningCount int
	logLevel     int

	m sync.Mutex
}

// newLogger creates a fresh logger at the given level.
func newLogger(level int) *Logger {
	return &Logger{logLevel: level}
}

// logger is the process-local logger for the current compilation. It is
// re-initialized by Initialize and is not safe to share across concurrent
// compilations -- the core itself is single-threaded, so this
// is only a convenience, not a concurrency primitive.
var logger *Logger

// Initialize resets the global logger for a new compilation.
func Initialize(levelName string) {
	logger = newLogger(levelFromName(levelName))
}

func levelFromName(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warning":
		return LogLevelWarning
	default:
		return LogLevelVerbose
	}
}

// ShouldProceed reports whether compilation so far is free of errors.
func ShouldProceed() bool {
	return logger.errorCount == 0
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	return logger.errorCount
}

// LogCompileError reports a user-induced compile error and displays it
// immediately if the log level allows.
func LogCompileError(message string, kind int, pos *TextPosition) {
	logger.m.Lock()
	logger.errorCount++
	level := logger.logLevel
	logger.m.Unlock()

	if level > LogLevelSilent {
		(&CompileMessage{Message: message, Kind: kind, Position: pos, IsError: true}).display()
	}
}

// LogFatal reports an invariant violation (a bug in an earlier pass or the
// checker, never expected with correct input) and aborts the compilation.
// These are programming faults, not user errors.
func LogFatal(message string) {
	displayFatalError(message)
	panic("asl: fatal compiler error: " + message)
}

// LogCompilationSummary prints the closing "N errors" banner.
func LogCompilationSummary() {
	if logger.logLevel > LogLevelSilent {
		displaySummary(logger.errorCount, logger.warningCount)
	}
}
