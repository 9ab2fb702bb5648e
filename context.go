package managers

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/machinefabric/managers-go/logger"
	"github.com/pkg/errors"
)

// CounterMode decides whether Manager3 and Manager4 draw from one factory attempt counter
type CounterMode int

const (
	// SharedCounter gives both managers a single counter, so the first of them to be
	// constructed takes the failing attempt.
	SharedCounter CounterMode = iota
	// IndependentCounters gives each manager its own counter.
	IndependentCounters
)

func (m CounterMode) String() string {
	switch m {
	case SharedCounter:
		return "shared"
	case IndependentCounters:
		return "independent"
	default:
		return fmt.Sprintf("CounterMode(%d)", int(m))
	}
}

// ParseCounterMode parses "shared" or "independent"
func ParseCounterMode(s string) (CounterMode, error) {
	switch strings.ToLower(s) {
	case "shared", "":
		return SharedCounter, nil
	case "independent":
		return IndependentCounters, nil
	default:
		return SharedCounter, fmt.Errorf("unknown counter mode %q (want shared or independent)", s)
	}
}

type options struct {
	counterMode   CounterMode
	counter       *AttemptCounter
	factoryOpts   []FactoryOption
	failurePolicy FailurePolicy
	logger        logger.Logger
	onRelease     func(name string)
}

// Option configures a Context
type Option func(*options)

// WithCounterMode selects shared or independent attempt counters
func WithCounterMode(mode CounterMode) Option {
	return func(o *options) {
		o.counterMode = mode
	}
}

// WithSharedCounter injects the counter used in SharedCounter mode.
// Contexts given the same counter interfere with each other exactly like two
// managers in one context do.
func WithSharedCounter(counter *AttemptCounter) Option {
	return func(o *options) {
		o.counter = counter
	}
}

// WithFactoryOptions applies opts to the factories behind Manager3 and Manager4
func WithFactoryOptions(opts ...FactoryOption) Option {
	return func(o *options) {
		o.factoryOpts = append(o.factoryOpts, opts...)
	}
}

// WithFailurePolicy sets what a failed Manager4 construction does to its slot
func WithFailurePolicy(p FailurePolicy) Option {
	return func(o *options) {
		o.failurePolicy = p
	}
}

// WithLogger sets the logger; defaults to logger.G()
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithReleaseHook registers fn to be called with the manager name as each
// manager is torn down by Close.
func WithReleaseHook(fn func(name string)) Option {
	return func(o *options) {
		o.onRelease = fn
	}
}

type teardownEntry struct {
	name    string
	release func() (bool, error)
}

// Context owns one singleton slot per manager type. Every accessor constructs
// its manager on first call and returns the same instance afterwards.
// Close tears managers down in reverse order of construction.
type Context struct {
	opts      options
	log       logger.Logger
	m3Factory *ResourceFactory
	m4Factory *ResourceFactory

	m1 slot[Manager1]
	m2 slot[Manager2]
	m3 slot[Manager3]
	m4 slot[Manager4]

	mu       sync.Mutex
	created  []teardownEntry
	closed   atomic.Bool
	closeMu  sync.Mutex
	closeErr error
}

// NewContext creates an empty context; no manager is constructed until requested
func NewContext(opts ...Option) *Context {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.G()
	}

	c := &Context{
		opts: o,
		log:  o.logger,
	}
	c.m4.policy = o.failurePolicy

	switch o.counterMode {
	case IndependentCounters:
		c.m3Factory = NewResourceFactory(o.factoryOpts...)
		c.m4Factory = NewResourceFactory(o.factoryOpts...)
	default:
		counter := o.counter
		if counter == nil {
			counter = NewAttemptCounter()
		}
		shared := append(append([]FactoryOption{}, o.factoryOpts...), WithCounter(counter))
		c.m3Factory = NewResourceFactory(shared...)
		c.m4Factory = NewResourceFactory(shared...)
	}
	return c
}

// Manager1 returns the context's Manager1, constructing it on first call
func (c *Context) Manager1() *Manager1 {
	c.checkOpen()
	m, _ := c.m1.get(func() (*Manager1, error) {
		m := newManager1()
		c.track(Manager1Name, m.id.String(), func() (bool, error) {
			return c.m1.release(func(*Manager1) error { return nil })
		})
		return m, nil
	})
	return m
}

// Manager2 returns the context's Manager2, constructing it on first call
func (c *Context) Manager2() *Manager2 {
	c.checkOpen()
	m, _ := c.m2.get(func() (*Manager2, error) {
		m := newManager2()
		c.track(Manager2Name, m.id.String(), func() (bool, error) {
			return c.m2.release((*Manager2).release)
		})
		return m, nil
	})
	return m
}

// Manager3 returns the context's Manager3, constructing it on first call.
// The returned manager may hold no resource; see Manager3.GetResource.
func (c *Context) Manager3() *Manager3 {
	c.checkOpen()
	m, _ := c.m3.get(func() (*Manager3, error) {
		m := newManager3(c.m3Factory)
		c.track(Manager3Name, m.id.String(), func() (bool, error) {
			return c.m3.release((*Manager3).release)
		})
		return m, nil
	})
	return m
}

// Manager4 returns the context's Manager4, or nil when it could not be constructed.
// Whether a later call tries again depends on the context's FailurePolicy.
func (c *Context) Manager4() *Manager4 {
	c.checkOpen()
	m, err := c.m4.get(func() (*Manager4, error) {
		m, err := newManager4(c.m4Factory)
		if err != nil {
			return nil, err
		}
		c.track(Manager4Name, m.id.String(), func() (bool, error) {
			return c.m4.release((*Manager4).release)
		})
		return m, nil
	})
	if err != nil {
		return nil
	}
	return m
}

// FailurePolicy returns the policy applied to Manager4's slot
func (c *Context) FailurePolicy() FailurePolicy {
	return c.m4.policy
}

// CounterMode returns how Manager3 and Manager4 share factory attempts
func (c *Context) CounterMode() CounterMode {
	return c.opts.counterMode
}

// Manager3Factory returns the factory Manager3 acquires its resource from
func (c *Context) Manager3Factory() *ResourceFactory {
	return c.m3Factory
}

// Manager4Factory returns the factory Manager4 acquires its resource from
func (c *Context) Manager4Factory() *ResourceFactory {
	return c.m4Factory
}

// Closed reports whether Close has been called
func (c *Context) Closed() bool {
	return c.closed.Load()
}

// Close tears down every constructed manager in reverse order of construction,
// releasing each acquired resource exactly once. Calling Close again returns the
// result of the first call.
func (c *Context) Close() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.closed.Swap(true) {
		return c.closeErr
	}

	c.mu.Lock()
	entries := c.created
	c.created = nil
	c.mu.Unlock()

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		released, err := e.release()
		if err != nil && c.closeErr == nil {
			c.closeErr = errors.Wrapf(err, "release %s", e.name)
		}
		if !released {
			continue
		}
		c.log.Debug("manager released", "manager", e.name)
		if c.opts.onRelease != nil {
			c.opts.onRelease(e.name)
		}
	}
	return c.closeErr
}

func (c *Context) track(name, id string, release func() (bool, error)) {
	c.mu.Lock()
	c.created = append(c.created, teardownEntry{name: name, release: release})
	c.mu.Unlock()
	c.log.Debug("manager constructed", "manager", name, "instance_id", id)
}

func (c *Context) checkOpen() {
	if c.closed.Load() {
		panic(ErrContextClosed)
	}
}
