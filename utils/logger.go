package utils

import (
	"io"
	"log"
	"os"
)

// Logger writes leveled, prefixed log lines.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger logs info and warnings to stdout and errors to stderr.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

// NewLoggerTo logs info and warnings to out and errors to errOut.
func NewLoggerTo(out, errOut io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(out, "[WIREWORLD-INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(out, "[WIREWORLD-WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(errOut, "[WIREWORLD-ERROR] ", log.Ldate|log.Ltime),
	}
}

// Info logs informational messages.
func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}
