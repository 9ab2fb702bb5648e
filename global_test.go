package managers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDefault(t *testing.T, opts ...Option) {
	t.Helper()
	require.NoError(t, ResetDefault(opts...))
	t.Cleanup(func() { _ = ResetDefault() })
}

// TEST050: Test the package-level accessors return the default context's singletons
func TestDefaultAccessors(t *testing.T) {
	resetDefault(t)

	assert.Same(t, Default(), Default())
	assert.Same(t, Manager1Instance(), Default().Manager1())
	assert.Same(t, Manager2Instance(), Manager2Instance())
	assert.Nil(t, Manager3Instance().GetResource())
	assert.NotNil(t, Manager4Instance(), "Manager3 consumed the failing attempt of the shared counter")
}

// TEST051: Test the literal scenario: Manager4 first, counter at zero, absent forever
func TestDefaultManager4Scenario(t *testing.T) {
	resetDefault(t)

	assert.Nil(t, Manager4Instance())
	assert.Nil(t, Manager4Instance())
	assert.Equal(t, int64(1), Default().Manager4Factory().Counter().Attempts())
}

// TEST052: Test ResetDefault tears the old context down and applies new options
func TestResetDefault(t *testing.T) {
	resetDefault(t)
	old := Default()
	m2 := Manager2Instance()

	resetDefault(t, WithFailurePolicy(RetryOnFailure))
	assert.True(t, old.Closed())
	assert.Panics(t, func() { _ = m2.GetResource() })
	assert.NotSame(t, old, Default())
	assert.Equal(t, RetryOnFailure, Default().FailurePolicy())
}
