package logger

import (
	"sync"
	"syscall"

	"github.com/machinefabric/managers-go/config"
	"github.com/pkg/errors"
)

var (
	globalLogger Logger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// G retrieves the global logger instance.
// Returns a no-op logger if no global logger is set.
func G() Logger {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger != nil {
		return globalLogger
	}
	return NewNoOpLogger()
}

// InitializeGlobalLogger builds a logger from cfg and installs it globally.
func InitializeGlobalLogger(cfg config.Logger) (Logger, error) {
	l, err := Factory(cfg)
	if err != nil {
		return nil, err
	}
	SetGlobalLogger(l)
	return l, nil
}

// Sync flushes any buffered log entries of the global logger.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	zl, ok := globalLogger.(*ZapLogger)
	if !ok {
		return nil
	}
	if err := zl.Sync(); err != nil {
		// stderr does not support fsync on every platform
		if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
			return nil
		}
		return err
	}
	return nil
}
