package managers

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{ n int }

// TEST020: Test a permanent slot constructs once and returns the same value
func TestSlotConstructsOnce(t *testing.T) {
	var s slot[widget]
	calls := 0
	construct := func() (*widget, error) {
		calls++
		return &widget{n: calls}, nil
	}

	first, err := s.get(construct)
	require.NoError(t, err)
	second, err := s.get(construct)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	_, state, _ := s.peek()
	assert.Equal(t, StateReady, state)
}

// TEST021: Test a permanent slot keeps its first failure and never retries
func TestSlotPermanentFailure(t *testing.T) {
	s := slot[widget]{policy: FailPermanently}
	calls := 0
	construct := func() (*widget, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("not ready")
		}
		return &widget{}, nil
	}

	for i := 0; i < 3; i++ {
		w, err := s.get(construct)
		assert.Nil(t, w)
		assert.EqualError(t, err, "not ready")
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, s.attempts())
	_, state, _ := s.peek()
	assert.Equal(t, StateFailed, state)
}

// TEST022: Test a retrying slot constructs again after a failure and then stays put
func TestSlotRetryOnFailure(t *testing.T) {
	s := slot[widget]{policy: RetryOnFailure}
	calls := 0
	construct := func() (*widget, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("not ready")
		}
		return &widget{n: calls}, nil
	}

	w, err := s.get(construct)
	assert.Nil(t, w)
	assert.Error(t, err)
	_, state, lastErr := s.peek()
	assert.Equal(t, StateUninitialized, state)
	assert.EqualError(t, lastErr, "not ready")

	w, err = s.get(construct)
	require.NoError(t, err)
	require.NotNil(t, w)
	again, err := s.get(construct)
	require.NoError(t, err)
	assert.Same(t, w, again)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, s.attempts())
}

// TEST023: Test release runs once and only on a ready slot
func TestSlotRelease(t *testing.T) {
	var empty slot[widget]
	released, err := empty.release(func(*widget) error { return nil })
	assert.False(t, released)
	assert.NoError(t, err)

	var s slot[widget]
	_, err = s.get(func() (*widget, error) { return &widget{}, nil })
	require.NoError(t, err)

	calls := 0
	release := func(*widget) error {
		calls++
		return nil
	}
	released, err = s.release(release)
	assert.True(t, released)
	assert.NoError(t, err)
	released, _ = s.release(release)
	assert.False(t, released)
	assert.Equal(t, 1, calls)

	_, state, _ := s.peek()
	assert.Equal(t, StateReleased, state)
}

// TEST024: Test concurrent first access constructs exactly once for both policies
func TestSlotConcurrentFirstAccess(t *testing.T) {
	for _, policy := range []FailurePolicy{FailPermanently, RetryOnFailure} {
		t.Run(policy.String(), func(t *testing.T) {
			s := slot[widget]{policy: policy}
			var mu sync.Mutex
			calls := 0
			construct := func() (*widget, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return &widget{}, nil
			}

			const n = 32
			results := make([]*widget, n)
			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i], _ = s.get(construct)
				}(i)
			}
			wg.Wait()

			assert.Equal(t, 1, calls)
			for _, r := range results {
				assert.Same(t, results[0], r)
			}
		})
	}
}

// TEST025: Test policy and state names and parsing
func TestPolicyAndStateNames(t *testing.T) {
	p, err := ParseFailurePolicy("retry")
	require.NoError(t, err)
	assert.Equal(t, RetryOnFailure, p)

	p, err = ParseFailurePolicy("")
	require.NoError(t, err)
	assert.Equal(t, FailPermanently, p)

	_, err = ParseFailurePolicy("sometimes")
	assert.Error(t, err)

	assert.Equal(t, "ready_without_resource", StateReadyWithoutResource.String())
	assert.Equal(t, "released", StateReleased.String())
	assert.Equal(t, "FailurePolicy(9)", FailurePolicy(9).String())
}
