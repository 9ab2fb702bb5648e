package managers

import (
	"sync"
)

// Process-wide default context, created lazily on first access.
// Tests and the CLI build their own with NewContext or reconfigure it through ResetDefault.
var (
	defaultContext     *Context
	defaultContextOnce sync.Once
	defaultOptions     []Option
	defaultMu          sync.Mutex
)

// Default returns the process-wide context
func Default() *Context {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultContextOnce.Do(func() {
		defaultContext = NewContext(defaultOptions...)
	})
	return defaultContext
}

// ResetDefault closes the current default context, if one was created, and makes
// the next Default call build a fresh one with opts.
func ResetDefault(opts ...Option) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	var err error
	if defaultContext != nil {
		err = defaultContext.Close()
	}
	defaultContext = nil
	defaultOptions = opts
	defaultContextOnce = sync.Once{}
	return err
}

// Manager1Instance returns the default context's Manager1
func Manager1Instance() *Manager1 {
	return Default().Manager1()
}

// Manager2Instance returns the default context's Manager2
func Manager2Instance() *Manager2 {
	return Default().Manager2()
}

// Manager3Instance returns the default context's Manager3
func Manager3Instance() *Manager3 {
	return Default().Manager3()
}

// Manager4Instance returns the default context's Manager4, or nil if it could not be constructed
func Manager4Instance() *Manager4 {
	return Default().Manager4()
}
