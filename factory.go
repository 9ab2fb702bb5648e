package managers

import (
	"sync/atomic"
)

// DefaultReadyAfter is the number of attempts that fail before the factory starts producing resources
const DefaultReadyAfter = 1

// AttemptCounter counts factory invocations. It is safe for concurrent use;
// every invocation is a single atomic update.
type AttemptCounter struct {
	n atomic.Int64
}

// NewAttemptCounter creates a counter starting at zero
func NewAttemptCounter() *AttemptCounter {
	return &AttemptCounter{}
}

// Next records an attempt and returns the count before it was recorded
func (c *AttemptCounter) Next() int64 {
	return c.n.Add(1) - 1
}

// Attempts returns how many attempts have been recorded
func (c *AttemptCounter) Attempts() int64 {
	return c.n.Load()
}

// ResourceFactory creates and destroys Resources.
// While the attempt count (before increment) is below ReadyAfter, Create reports
// the resource as unavailable.
type ResourceFactory struct {
	counter    *AttemptCounter
	readyAfter int64
	value      int

	created  atomic.Int64
	released atomic.Int64
}

// FactoryOption configures a ResourceFactory
type FactoryOption func(*ResourceFactory)

// WithCounter makes the factory draw from an existing counter, so several
// factories can share one notion of "how many attempts so far".
func WithCounter(counter *AttemptCounter) FactoryOption {
	return func(f *ResourceFactory) {
		f.counter = counter
	}
}

// WithReadyAfter sets how many leading attempts fail
func WithReadyAfter(n int64) FactoryOption {
	return func(f *ResourceFactory) {
		f.readyAfter = n
	}
}

// WithResourceValue sets the payload given to created resources
func WithResourceValue(v int) FactoryOption {
	return func(f *ResourceFactory) {
		f.value = v
	}
}

// NewResourceFactory creates a factory with its own counter unless WithCounter is given
func NewResourceFactory(opts ...FactoryOption) *ResourceFactory {
	f := &ResourceFactory{
		readyAfter: DefaultReadyAfter,
		value:      DefaultResourceValue,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.counter == nil {
		f.counter = NewAttemptCounter()
	}
	return f
}

// Create attempts to produce a new resource
func (f *ResourceFactory) Create() (*Resource, error) {
	attempt := f.counter.Next()
	if attempt < f.readyAfter {
		return nil, NewResourceUnavailableError(attempt, f.readyAfter)
	}
	f.created.Add(1)
	return &Resource{value: f.value}, nil
}

// Destroy releases a resource created by this factory. Destroying nil is a no-op;
// destroying the same resource twice returns a ResourceReleased error.
func (f *ResourceFactory) Destroy(r *Resource) error {
	if r == nil {
		return nil
	}
	if !r.released.CompareAndSwap(false, true) {
		return NewResourceReleasedError("resource")
	}
	f.released.Add(1)
	return nil
}

// Counter returns the attempt counter the factory draws from
func (f *ResourceFactory) Counter() *AttemptCounter {
	return f.counter
}

// Created returns how many resources the factory has produced
func (f *ResourceFactory) Created() int64 {
	return f.created.Load()
}

// Released returns how many resources have been destroyed
func (f *ResourceFactory) Released() int64 {
	return f.released.Load()
}
