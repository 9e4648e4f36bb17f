package identity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkovalev/sessionguard/pkg/clock"
	"github.com/mkovalev/sessionguard/pkg/identity"
)

func TestLogoutGuard(t *testing.T) {
	t.Parallel()

	t.Run("inactive by default", func(t *testing.T) {
		t.Parallel()

		guard := identity.NewLogoutGuard(clock.NewMock(time.Unix(0, 0)))
		assert.False(t, guard.Active())
	})

	t.Run("held through grace window", func(t *testing.T) {
		t.Parallel()

		mock := clock.NewMock(time.Unix(0, 0))
		guard := identity.NewLogoutGuard(mock)

		guard.Acquire()
		assert.True(t, guard.Active())

		guard.Release(500 * time.Millisecond)
		assert.True(t, guard.Active(), "guard stays held during the grace window")

		mock.Advance(499 * time.Millisecond)
		assert.True(t, guard.Active())

		mock.Advance(time.Millisecond)
		assert.False(t, guard.Active())
	})

	t.Run("zero grace clears immediately", func(t *testing.T) {
		t.Parallel()

		guard := identity.NewLogoutGuard(clock.NewMock(time.Unix(0, 0)))
		guard.Acquire()
		guard.Release(0)
		assert.False(t, guard.Active())
	})

	t.Run("reacquire cancels pending release", func(t *testing.T) {
		t.Parallel()

		mock := clock.NewMock(time.Unix(0, 0))
		guard := identity.NewLogoutGuard(mock)

		guard.Acquire()
		guard.Release(500 * time.Millisecond)
		guard.Acquire()

		mock.Advance(time.Second)
		assert.True(t, guard.Active(), "second logout keeps the guard held")
	})
}
