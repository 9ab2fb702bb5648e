package managers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TEST010: Test the default factory fails the first attempt and succeeds afterwards
func TestFactoryFirstAttemptFails(t *testing.T) {
	f := NewResourceFactory()

	res, err := f.Create()
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, IsResourceUnavailable(err))

	for i := 0; i < 3; i++ {
		res, err = f.Create()
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, DefaultResourceValue, res.Value())
	}

	assert.Equal(t, int64(4), f.Counter().Attempts())
	assert.Equal(t, int64(3), f.Created())
}

// TEST011: Test ReadyAfter and ResourceValue options
func TestFactoryOptions(t *testing.T) {
	f := NewResourceFactory(WithReadyAfter(0), WithResourceValue(7))
	res, err := f.Create()
	require.NoError(t, err)
	assert.Equal(t, 7, res.Value())
	assert.Equal(t, "7", res.String())

	f = NewResourceFactory(WithReadyAfter(3))
	for i := 0; i < 3; i++ {
		_, err := f.Create()
		assert.Error(t, err, "attempt %d should fail", i)
	}
	_, err = f.Create()
	assert.NoError(t, err)
}

// TEST012: Test two factories drawing from one counter interleave their attempts
func TestFactorySharedCounter(t *testing.T) {
	counter := NewAttemptCounter()
	a := NewResourceFactory(WithCounter(counter))
	b := NewResourceFactory(WithCounter(counter))

	_, err := a.Create()
	assert.Error(t, err)

	res, err := b.Create()
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, int64(2), counter.Attempts())
}

// TEST013: Test Destroy releases exactly once and ignores nil
func TestFactoryDestroy(t *testing.T) {
	f := NewResourceFactory(WithReadyAfter(0))
	res, err := f.Create()
	require.NoError(t, err)

	assert.NoError(t, f.Destroy(nil))
	assert.NoError(t, f.Destroy(res))
	assert.True(t, res.Released())

	err = f.Destroy(res)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceReleased)
	assert.Equal(t, int64(1), f.Released())
}

// TEST014: Test dereferencing absent or released resources panics
func TestResourceFaults(t *testing.T) {
	var absent *Resource
	assert.PanicsWithError(t, NewAbsentResourceError().Error(), func() { _ = absent.Value() })
	assert.PanicsWithError(t, NewAbsentResourceError().Error(), func() { _ = absent.String() })
	assert.False(t, absent.Released())

	f := NewResourceFactory(WithReadyAfter(0))
	res, err := f.Create()
	require.NoError(t, err)
	require.NoError(t, f.Destroy(res))
	assert.Panics(t, func() { _ = res.Value() })
}

// TEST015: Test the counter hands out every pre-increment value exactly once under concurrency
func TestAttemptCounterConcurrent(t *testing.T) {
	counter := NewAttemptCounter()
	const n = 64
	seen := make([]int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = counter.Next()
		}(i)
	}
	wg.Wait()

	unique := map[int64]bool{}
	for _, v := range seen {
		unique[v] = true
	}
	assert.Len(t, unique, n)
	assert.Equal(t, int64(n), counter.Attempts())
}
