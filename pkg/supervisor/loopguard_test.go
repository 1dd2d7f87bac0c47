package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/recordflow/pkg/errors"
)

func TestLoopGuardPermissiveByDefault(t *testing.T) {
	var guard LoopGuard

	for i := 1; i <= 100; i++ {
		require.NoError(t, guard.AddToLoopCount(), "permissive guard failed on invocation %d", i)
	}
	assert.Equal(t, 100, guard.Count())

	_, set := guard.Max()
	assert.False(t, set)
}

func TestLoopGuardCeiling(t *testing.T) {
	var guard LoopGuard
	require.NoError(t, guard.SetMaxLoopCount(2))

	// The Nth invocation is allowed, the (N+1)th is not.
	assert.NoError(t, guard.AddToLoopCount())
	assert.NoError(t, guard.AddToLoopCount())

	err := guard.AddToLoopCount()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLoopLimitExceeded))

	// The count keeps increasing and the guard keeps failing.
	err = guard.AddToLoopCount()
	require.Error(t, err)
	assert.Equal(t, 4, guard.Count())
}

func TestLoopGuardZeroCeiling(t *testing.T) {
	var guard LoopGuard
	require.NoError(t, guard.SetMaxLoopCount(0))

	err := guard.AddToLoopCount()
	require.Error(t, err, "ceiling of zero forbids any invocation")
	assert.True(t, errors.IsErrorCode(err, errors.ErrLoopLimitExceeded))
}

func TestLoopGuardRejectsNegativeCeiling(t *testing.T) {
	var guard LoopGuard

	err := guard.SetMaxLoopCount(-1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLoopGuardClearCeiling(t *testing.T) {
	var guard LoopGuard
	require.NoError(t, guard.SetMaxLoopCount(1))
	require.NoError(t, guard.AddToLoopCount())
	require.Error(t, guard.AddToLoopCount())

	guard.ClearMaxLoopCount()

	// Permissive again; the count is untouched.
	assert.NoError(t, guard.AddToLoopCount())
	assert.Equal(t, 3, guard.Count())
}
