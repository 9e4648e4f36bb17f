package activity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkovalev/sessionguard/pkg/activity"
	"github.com/mkovalev/sessionguard/pkg/clock"
)

func TestMonitor_Track(t *testing.T) {
	t.Parallel()

	t.Run("updates last activity", func(t *testing.T) {
		t.Parallel()

		mock := clock.NewMock(time.Unix(100, 0))
		mon := activity.NewMonitor(mock)

		mock.Advance(time.Minute)
		mon.Track(activity.SignalKeyPress)

		assert.Equal(t, time.Unix(160, 0), mon.LastActivity())
	})

	t.Run("invokes bound hook", func(t *testing.T) {
		t.Parallel()

		mock := clock.NewMock(time.Unix(0, 0))
		mon := activity.NewMonitor(mock, activity.WithThrottle(0))

		calls := 0
		mon.Bind(func() { calls++ })

		mon.Track(activity.SignalClick)
		mon.Track(activity.SignalScroll)
		assert.Equal(t, 2, calls)

		mon.Unbind()
		mon.Track(activity.SignalClick)
		assert.Equal(t, 2, calls)
	})

	t.Run("throttle collapses bursts", func(t *testing.T) {
		t.Parallel()

		mock := clock.NewMock(time.Unix(0, 0))
		mon := activity.NewMonitor(mock, activity.WithThrottle(time.Second))

		calls := 0
		mon.Bind(func() { calls++ })

		for i := 0; i < 10; i++ {
			mon.Track(activity.SignalPointerMove)
		}
		assert.Equal(t, 1, calls, "burst within the window collapses to one reschedule")

		mock.Advance(time.Second)
		mon.Track(activity.SignalPointerMove)
		assert.Equal(t, 2, calls)
	})

	t.Run("throttle is leading edge", func(t *testing.T) {
		t.Parallel()

		mock := clock.NewMock(time.Unix(0, 0))
		mon := activity.NewMonitor(mock, activity.WithThrottle(time.Second))

		var fired []time.Time
		mon.Bind(func() { fired = append(fired, mock.Now()) })

		mon.Track(activity.SignalClick)
		mock.Advance(900 * time.Millisecond)
		mon.Track(activity.SignalClick)
		mock.Advance(100 * time.Millisecond)
		mon.Track(activity.SignalClick)

		// The first signal of a burst fires the hook; the one inside the
		// window is dropped, so a rearmed deadline can trail the last raw
		// signal by up to the window.
		assert.Equal(t, []time.Time{time.Unix(0, 0), time.Unix(1, 0)}, fired)
	})

	t.Run("suppressed hook does not fire", func(t *testing.T) {
		t.Parallel()

		mock := clock.NewMock(time.Unix(0, 0))
		mon := activity.NewMonitor(mock, activity.WithThrottle(0))

		calls := 0
		mon.Bind(func() { calls++ })

		mon.Suppress(true)
		assert.True(t, mon.Suppressed())

		mock.Advance(time.Minute)
		mon.Track(activity.SignalClick)
		assert.Zero(t, calls)
		assert.Equal(t, time.Unix(60, 0), mon.LastActivity(), "timestamp still records while suppressed")

		mon.Suppress(false)
		mon.Track(activity.SignalClick)
		assert.Equal(t, 1, calls)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	sigs := activity.Signals()
	assert.Len(t, sigs, 6)

	seen := make(map[string]bool)
	for _, s := range sigs {
		assert.NotEqual(t, "unknown", s.String())
		seen[s.String()] = true
	}
	assert.Len(t, seen, 6)
}
