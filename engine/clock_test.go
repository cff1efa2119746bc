package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClock(alpha float64) (*FrameClock, *MockTimeProvider) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	return NewFrameClock(mock, alpha), mock
}

func TestClockDelta(t *testing.T) {
	clock, mock := newTestClock(DefaultSmoothingAlpha)

	mock.Advance(16 * time.Millisecond)
	delta := clock.Tick()

	require.Equal(t, 16*time.Millisecond, delta)
	require.Equal(t, 16*time.Millisecond, clock.Delta())
	require.Equal(t, uint64(1), clock.FrameCount())
}

func TestClockNegativeDeltaClampsToZero(t *testing.T) {
	clock, mock := newTestClock(DefaultSmoothingAlpha)

	mock.SetTime(mock.Now().Add(-time.Second))
	delta := clock.Tick()

	require.Zero(t, delta)
	require.Zero(t, clock.Delta())
}

func TestClockSmoothing(t *testing.T) {
	clock, mock := newTestClock(0.2)

	// First frame seeds the average directly
	mock.Advance(10 * time.Millisecond)
	clock.Tick()
	require.InDelta(t, 10.0, clock.AvgFrameMs(), 1e-9)

	// Subsequent frames blend: 0.2*30 + 0.8*10 = 14
	mock.Advance(30 * time.Millisecond)
	clock.Tick()
	require.InDelta(t, 14.0, clock.AvgFrameMs(), 1e-9)

	require.InDelta(t, 1000.0/14.0, clock.FPS(), 1e-9)
}

func TestClockInvalidAlphaFallsBack(t *testing.T) {
	clock, _ := newTestClock(0)
	require.Equal(t, DefaultSmoothingAlpha, clock.alpha)

	clock, _ = newTestClock(1.5)
	require.Equal(t, DefaultSmoothingAlpha, clock.alpha)
}

func TestClockTimeScale(t *testing.T) {
	clock, mock := newTestClock(DefaultSmoothingAlpha)

	require.NoError(t, clock.SetTimeScale(2.0))
	mock.Advance(10 * time.Millisecond)
	clock.Tick()
	require.Equal(t, 20*time.Millisecond, clock.ScaledDelta())

	// Zero freezes simulation while real delta keeps flowing
	require.NoError(t, clock.SetTimeScale(0))
	mock.Advance(10 * time.Millisecond)
	clock.Tick()
	require.Equal(t, 10*time.Millisecond, clock.Delta())
	require.Zero(t, clock.ScaledDelta())
}

func TestClockRejectsNegativeTimeScale(t *testing.T) {
	clock, _ := newTestClock(DefaultSmoothingAlpha)

	require.NoError(t, clock.SetTimeScale(1.5))
	require.Error(t, clock.SetTimeScale(-1))
	require.Equal(t, 1.5, clock.TimeScale())
}
