package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTTLMap_SetGet(t *testing.T) {
	m := NewTTLMap[string, int](time.Minute)

	m.Set("a", 1)
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Get("missing")
	require.False(t, ok)
}

func TestTTLMap_Expiry(t *testing.T) {
	m := NewTTLMap[string, string](time.Minute)

	base := time.Now()
	m.now = func() time.Time { return base }
	m.Set("k", "v")

	m.now = func() time.Time { return base.Add(59 * time.Second) }
	_, ok := m.Get("k")
	require.True(t, ok)

	m.now = func() time.Time { return base.Add(61 * time.Second) }
	_, ok = m.Get("k")
	require.False(t, ok)

	// Expired entry was dropped on access.
	require.Equal(t, 0, m.Len())
}

func TestTTLMap_InvalidateAndClear(t *testing.T) {
	m := NewTTLMap[int, string](time.Minute)
	m.Set(1, "one")
	m.Set(2, "two")

	m.Invalidate(1)
	_, ok := m.Get(1)
	require.False(t, ok)
	_, ok = m.Get(2)
	require.True(t, ok)

	m.Clear()
	require.Equal(t, 0, m.Len())
}

func TestTTLMap_SetRefreshesTTL(t *testing.T) {
	m := NewTTLMap[string, int](time.Minute)

	base := time.Now()
	m.now = func() time.Time { return base }
	m.Set("k", 1)

	m.now = func() time.Time { return base.Add(50 * time.Second) }
	m.Set("k", 2)

	m.now = func() time.Time { return base.Add(100 * time.Second) }
	v, ok := m.Get("k")
	require.True(t, ok)
	require.Equal(t, 2, v)
}
