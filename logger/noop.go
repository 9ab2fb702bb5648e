package logger

// noOpLogger is a Logger implementation that does nothing.
// Used when logging is disabled or no global logger has been set.
type noOpLogger struct{}

// NewNoOpLogger creates a new instance of noOpLogger.
func NewNoOpLogger() Logger {
	return &noOpLogger{}
}

func (l *noOpLogger) Debug(msg string, keysAndValues ...any) {}
func (l *noOpLogger) Info(msg string, keysAndValues ...any)  {}
func (l *noOpLogger) Warn(msg string, keysAndValues ...any)  {}
func (l *noOpLogger) Error(msg string, keysAndValues ...any) {}
