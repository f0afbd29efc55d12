package connectivity

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonitor_InitialProbe(t *testing.T) {
	m := NewMonitor(func(context.Context) bool { return true }, time.Hour)
	m.Start(context.Background())
	defer m.Stop()

	require.True(t, m.Online())
}

func TestMonitor_EmitsTransitionEvents(t *testing.T) {
	var online atomic.Bool

	m := NewMonitor(func(context.Context) bool { return online.Load() }, 5*time.Millisecond)
	m.Start(context.Background())
	defer m.Stop()

	require.False(t, m.Online())

	online.Store(true)
	select {
	case got := <-m.Events():
		require.True(t, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for online event")
	}
	require.True(t, m.Online())

	online.Store(false)
	select {
	case got := <-m.Events():
		require.False(t, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for offline event")
	}
	require.False(t, m.Online())
}

func TestMonitor_NoEventWithoutTransition(t *testing.T) {
	m := NewMonitor(func(context.Context) bool { return true }, 5*time.Millisecond)
	m.Start(context.Background())
	defer m.Stop()

	select {
	case v := <-m.Events():
		t.Fatalf("unexpected event %v for steady state", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMonitor_StopHaltsPolling(t *testing.T) {
	var calls atomic.Int32
	m := NewMonitor(func(context.Context) bool {
		calls.Add(1)
		return true
	}, 5*time.Millisecond)

	m.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	m.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, after, calls.Load())
}

func TestStatic(t *testing.T) {
	require.True(t, Static(true).Online())
	require.False(t, Static(false).Online())
	require.Nil(t, Static(true).Events())
}
