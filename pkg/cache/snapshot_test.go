package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fitcatalog/pkg/catalog"
)

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	rows := []catalog.RawRow{
		{"name": "Push-up", "muscle": "Chest"},
		{"name": "Squat", "primary_muscle": "Legs"},
	}
	store.Save(rows)

	snap, ok := store.Load()
	require.True(t, ok)
	require.Len(t, snap.Items, 2)
	require.Equal(t, "Push-up", snap.Items[0]["name"])
	require.WithinDuration(t, time.Now(), snap.Timestamp, 5*time.Second)
}

func TestFileStore_MissingFileIsMiss(t *testing.T) {
	store := NewFileStore(t.TempDir())
	_, ok := store.Load()
	require.False(t, ok)
}

func TestFileStore_CorruptEntriesAreMisses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "{{{"},
		{"missing ts", `{"items":[]}`},
		{"missing items", `{"ts":123456}`},
		{"items not an array", `{"ts":123456,"items":{"name":"x"}}`},
		{"zero ts", `{"ts":0,"items":[]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "snapshot.json"), []byte(tc.body), 0o644))

			_, ok := NewFileStore(dir).Load()
			require.False(t, ok)
		})
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store := NewFileStore(t.TempDir())

	store.Save([]catalog.RawRow{{"name": "A"}})
	store.Save([]catalog.RawRow{{"name": "B"}})

	snap, ok := store.Load()
	require.True(t, ok)
	require.Len(t, snap.Items, 1)
	require.Equal(t, "B", snap.Items[0]["name"])
}

func TestFileStore_SaveFailureIsSilent(t *testing.T) {
	// Pointing at a path whose parent is a file makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := NewFileStore(filepath.Join(blocker, "nested"))
	store.Save([]catalog.RawRow{{"name": "A"}}) // must not panic or error
}

func TestFileStore_Clear(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Clear()) // nothing persisted yet

	store.Save([]catalog.RawRow{{"name": "A"}})
	require.NoError(t, store.Clear())

	_, ok := store.Load()
	require.False(t, ok)
}

func TestSnapshot_FreshnessBoundary(t *testing.T) {
	now := time.Now()

	justInside := Snapshot{Timestamp: now.Add(-DefaultTTL + time.Millisecond)}
	require.True(t, justInside.Fresh(now, DefaultTTL))

	exactly := Snapshot{Timestamp: now.Add(-DefaultTTL)}
	require.True(t, exactly.Fresh(now, DefaultTTL))

	justOutside := Snapshot{Timestamp: now.Add(-DefaultTTL - time.Millisecond)}
	require.False(t, justOutside.Fresh(now, DefaultTTL))

	require.False(t, Snapshot{}.Fresh(now, DefaultTTL))
}
