// Package logger provides the structured logger used across managers-go.
// The zap implementation writes to stderr, so program output on stdout is never mixed with log lines.
package logger

// Logger is the interface that wraps basic logging methods.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}
