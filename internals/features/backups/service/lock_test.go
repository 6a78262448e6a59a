// file: internals/features/backups/service/lock_test.go
package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantLocksExclusivePerTenant(t *testing.T) {
	locks := NewTenantLocks()

	require.NoError(t, locks.TryLock("a"))
	assert.ErrorIs(t, locks.TryLock("a"), ErrTenantBusy)

	// tenant lain tidak terpengaruh
	require.NoError(t, locks.TryLock("b"))

	locks.Unlock("a")
	assert.NoError(t, locks.TryLock("a"))
}

func TestTenantLocksOnlyOneWinnerUnderContention(t *testing.T) {
	locks := NewTenantLocks()

	var won int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if locks.TryLock("a") == nil {
				atomic.AddInt32(&won, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), won)
}
