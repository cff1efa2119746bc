package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/platform"
)

func TestInputKeyStates(t *testing.T) {
	w := engine.NewWorld()
	in := w.Resources.Input
	sys := NewInputSystem(w)
	cleanup := NewCleanupSystem(w)

	in.Pending = append(in.Pending, platform.Event{Kind: platform.EventKey, Key: 'w'})
	sys.Update(time.Millisecond)

	require.True(t, in.Down['w'])
	require.True(t, in.Pressed['w'])
	require.Empty(t, in.Pending)

	// Next frame: still down, no longer freshly pressed
	cleanup.Update(time.Millisecond)
	in.Pending = append(in.Pending, platform.Event{Kind: platform.EventKey, Key: 'w'})
	sys.Update(time.Millisecond)

	require.True(t, in.Down['w'])
	require.False(t, in.Pressed['w'])
}

func TestInputResizeAndQuit(t *testing.T) {
	w := engine.NewWorld()
	in := w.Resources.Input
	sys := NewInputSystem(w)

	in.Pending = append(in.Pending,
		platform.Event{Kind: platform.EventResize, Width: 120, Height: 40},
		platform.Event{Kind: platform.EventClose},
	)
	sys.Update(time.Millisecond)

	require.Equal(t, 120, in.ResizeWidth)
	require.Equal(t, 40, in.ResizeHeight)
	require.True(t, in.QuitRequested)

	// Cleanup clears the consumed resize but quit persists
	NewCleanupSystem(w).Update(time.Millisecond)
	require.Zero(t, in.ResizeWidth)
	require.True(t, in.QuitRequested)
}
