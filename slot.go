package managers

import (
	"fmt"
	"strings"
	"sync"
)

// FailurePolicy decides what a failed construction does to a singleton slot
type FailurePolicy int

const (
	// FailPermanently keeps the first failure forever; later accesses never reconstruct.
	FailPermanently FailurePolicy = iota
	// RetryOnFailure leaves the slot uninitialized after a failure so the next access tries again.
	RetryOnFailure
)

func (p FailurePolicy) String() string {
	switch p {
	case FailPermanently:
		return "permanent"
	case RetryOnFailure:
		return "retry"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// ParseFailurePolicy parses "permanent" or "retry"
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(s) {
	case "permanent", "":
		return FailPermanently, nil
	case "retry":
		return RetryOnFailure, nil
	default:
		return FailPermanently, fmt.Errorf("unknown failure policy %q (want permanent or retry)", s)
	}
}

// SlotState is the lifecycle state of a singleton slot
type SlotState int

const (
	StateUninitialized SlotState = iota
	StateReady
	// StateReadyWithoutResource is reported for a constructed manager that never acquired its resource
	StateReadyWithoutResource
	StateFailed
	StateReleased
)

func (s SlotState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateReadyWithoutResource:
		return "ready_without_resource"
	case StateFailed:
		return "failed"
	case StateReleased:
		return "released"
	default:
		return fmt.Sprintf("SlotState(%d)", int(s))
	}
}

// slot holds at most one lazily constructed value.
// With FailPermanently construction runs at most once (sync.Once); with
// RetryOnFailure construction is serialized and repeated until it succeeds.
type slot[T any] struct {
	policy FailurePolicy
	once   sync.Once

	mu    sync.Mutex
	val   *T
	err   error
	state SlotState
	tries int
}

func (s *slot[T]) get(construct func() (*T, error)) (*T, error) {
	if s.policy == RetryOnFailure {
		return s.getRetrying(construct)
	}
	s.once.Do(func() {
		val, err := construct()
		s.mu.Lock()
		s.store(val, err)
		s.mu.Unlock()
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val, s.err
}

func (s *slot[T]) getRetrying(construct func() (*T, error)) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateUninitialized {
		return s.val, s.err
	}
	val, err := construct()
	if err != nil {
		s.tries++
		s.err = err
		return nil, err
	}
	s.store(val, nil)
	return s.val, nil
}

// store must be called with mu held
func (s *slot[T]) store(val *T, err error) {
	s.tries++
	s.val, s.err = val, err
	if err != nil {
		s.val = nil
		s.state = StateFailed
		return
	}
	s.state = StateReady
}

// peek returns the current contents without constructing anything
func (s *slot[T]) peek() (*T, SlotState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val, s.state, s.err
}

// attempts returns how many times construction has run
func (s *slot[T]) attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tries
}

// release hands a ready value to fn exactly once and marks the slot released.
// It reports whether fn was called.
func (s *slot[T]) release(fn func(*T) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady {
		return false, nil
	}
	err := fn(s.val)
	s.state = StateReleased
	return true, err
}
