package browser

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fitcatalog/pkg/cache"
	"fitcatalog/pkg/catalog"
	"fitcatalog/pkg/testing/mocks"
)

func testLocal() []catalog.Exercise {
	return []catalog.Exercise{
		{ID: "ex-push-up", Name: "Push-up", Muscle: "Chest", Overview: "local overview"},
		{ID: "ex-squat", Name: "Squat", Muscle: "Legs"},
	}
}

func testOptions() Options {
	opts := DefaultOptions
	opts.Local = testLocal()
	return opts
}

func exerciseNames(items []catalog.Exercise) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Name
	}
	return out
}

func TestNew_SeedsBundledWithoutStore(t *testing.T) {
	b := New(nil, nil, nil, testOptions())

	snap := b.Snapshot()
	require.Equal(t, StateIdle, snap.State)
	require.False(t, snap.Loading)
	require.Equal(t, []string{"Push-up", "Squat"}, exerciseNames(snap.Exercises))
}

func TestNew_SeedsFromFreshSnapshot(t *testing.T) {
	stamp := time.Now().Add(-time.Hour)
	store := &mocks.MockSnapshotStore{
		LoadFunc: func() (cache.Snapshot, bool) {
			return cache.Snapshot{
				Timestamp: stamp,
				Items: []catalog.RawRow{
					{"name": "Push-up", "muscle": "Remote Chest"},
					{"name": "Deadlift", "muscle": "Back"},
				},
			}, true
		},
	}

	b := New(nil, store, nil, testOptions())

	snap := b.Snapshot()
	require.Equal(t, StateLoaded, snap.State)
	require.Equal(t, stamp, snap.LastSync)
	require.Equal(t, []string{"Push-up", "Squat", "Deadlift"}, exerciseNames(snap.Exercises))
	// Local record wins wholesale over the cached remote duplicate.
	require.Equal(t, "Chest", snap.Exercises[0].Muscle)
}

func TestNew_StaleSnapshotRespectsSeedStale(t *testing.T) {
	now := time.Now()
	store := &mocks.MockSnapshotStore{
		LoadFunc: func() (cache.Snapshot, bool) {
			return cache.Snapshot{
				Timestamp: now.Add(-25 * time.Hour),
				Items:     []catalog.RawRow{{"name": "Deadlift"}},
			}, true
		},
	}

	opts := testOptions()
	opts.Clock = func() time.Time { return now }

	opts.SeedStale = true
	snap := New(nil, store, nil, opts).Snapshot()
	require.Equal(t, StateLoaded, snap.State)
	require.Contains(t, exerciseNames(snap.Exercises), "Deadlift")

	opts.SeedStale = false
	snap = New(nil, store, nil, opts).Snapshot()
	require.Equal(t, StateIdle, snap.State)
	require.NotContains(t, exerciseNames(snap.Exercises), "Deadlift")
}

func TestRefresh_MergesAndPersistsRawRows(t *testing.T) {
	rows := []catalog.RawRow{
		{"name": "push-up", "muscle": "Remote Chest"},
		{"name": "Deadlift", "muscle": "Back"},
	}
	source := &mocks.MockRemoteSource{
		FetchExercisesFunc: func(context.Context) ([]catalog.RawRow, error) {
			return rows, nil
		},
	}
	store := &mocks.MockSnapshotStore{}

	b := New(source, store, nil, testOptions())
	require.NoError(t, b.Refresh(context.Background(), false))

	snap := b.Snapshot()
	require.Equal(t, StateLoaded, snap.State)
	require.False(t, snap.Loading)
	require.NoError(t, snap.Err)
	require.Equal(t, []string{"Push-up", "Squat", "Deadlift"}, exerciseNames(snap.Exercises))
	require.Equal(t, "Chest", snap.Exercises[0].Muscle)

	// The raw rows are what get cached, not the merged result.
	saved := store.Saved()
	require.Len(t, saved, 1)
	require.Equal(t, rows, saved[0])
}

func TestRefresh_OfflineIsNoOp(t *testing.T) {
	var calls atomic.Int32
	source := &mocks.MockRemoteSource{
		FetchExercisesFunc: func(context.Context) ([]catalog.RawRow, error) {
			calls.Add(1)
			return []catalog.RawRow{{"name": "Deadlift"}}, nil
		},
	}

	b := New(source, nil, mocks.NewMockConnectivity(false), testOptions())
	require.NoError(t, b.Refresh(context.Background(), false))
	require.Zero(t, calls.Load())
	require.Equal(t, StateIdle, b.Snapshot().State)

	// force bypasses the connectivity gate.
	require.NoError(t, b.Refresh(context.Background(), true))
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, StateLoaded, b.Snapshot().State)
}

func TestRefresh_FailureKeepsPreviousData(t *testing.T) {
	fetchErr := errors.New("boom")
	ok := []catalog.RawRow{{"name": "Deadlift"}}
	var fail atomic.Bool
	source := &mocks.MockRemoteSource{
		FetchExercisesFunc: func(context.Context) ([]catalog.RawRow, error) {
			if fail.Load() {
				return nil, fetchErr
			}
			return ok, nil
		},
	}

	b := New(source, nil, nil, testOptions())
	require.NoError(t, b.Refresh(context.Background(), false))
	loaded := b.Snapshot()

	fail.Store(true)
	err := b.Refresh(context.Background(), false)
	require.ErrorIs(t, err, fetchErr)

	snap := b.Snapshot()
	require.Equal(t, StateFailed, snap.State)
	require.False(t, snap.Loading)
	require.Equal(t, exerciseNames(loaded.Exercises), exerciseNames(snap.Exercises))
}

func TestRefresh_EmptyResultChangesNothing(t *testing.T) {
	source := &mocks.MockRemoteSource{
		FetchExercisesFunc: func(context.Context) ([]catalog.RawRow, error) {
			return nil, nil
		},
	}
	store := &mocks.MockSnapshotStore{}

	b := New(source, store, nil, testOptions())
	require.NoError(t, b.Refresh(context.Background(), false))

	snap := b.Snapshot()
	require.Equal(t, StateIdle, snap.State)
	require.Equal(t, []string{"Push-up", "Squat"}, exerciseNames(snap.Exercises))
	require.Empty(t, store.Saved())
}

func TestRefresh_LatestGenerationWins(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	source := &mocks.MockRemoteSource{
		FetchExercisesFunc: func(context.Context) ([]catalog.RawRow, error) {
			if calls.Add(1) == 1 {
				close(started)
				<-release
				return []catalog.RawRow{{"name": "Old Row"}}, nil
			}
			return []catalog.RawRow{{"name": "New Row"}}, nil
		},
	}

	b := New(source, nil, nil, testOptions())

	done := make(chan error, 1)
	go func() { done <- b.Refresh(context.Background(), false) }()
	<-started

	require.NoError(t, b.Refresh(context.Background(), false))
	close(release)
	require.NoError(t, <-done)

	names := exerciseNames(b.Snapshot().Exercises)
	require.Contains(t, names, "New Row")
	require.NotContains(t, names, "Old Row")
}

func TestClose_DiscardsInFlightResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	source := &mocks.MockRemoteSource{
		FetchExercisesFunc: func(context.Context) ([]catalog.RawRow, error) {
			close(started)
			<-release
			return []catalog.RawRow{{"name": "Late Row"}}, nil
		},
	}

	b := New(source, nil, nil, testOptions())

	done := make(chan error, 1)
	go func() { done <- b.Refresh(context.Background(), false) }()
	<-started

	b.Close()
	close(release)
	require.NoError(t, <-done)
	require.NotContains(t, exerciseNames(b.Snapshot().Exercises), "Late Row")
}

func TestClose_ClosesSubscriberChannels(t *testing.T) {
	b := New(nil, nil, nil, testOptions())
	ch := b.Subscribe()

	b.Close()

	select {
	case _, ok := <-ch:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for subscriber channel to close")
	}

	// Subscribing after Close yields an already closed channel.
	_, ok := <-b.Subscribe()
	require.False(t, ok)

	b.Close() // second Close is a no-op
}

func TestStart_RefreshesOnReconnect(t *testing.T) {
	var calls atomic.Int32
	source := &mocks.MockRemoteSource{
		FetchExercisesFunc: func(context.Context) ([]catalog.RawRow, error) {
			calls.Add(1)
			return []catalog.RawRow{{"name": "Deadlift"}}, nil
		},
	}
	net := mocks.NewMockConnectivity(false)

	b := New(source, nil, net, testOptions())
	b.Start(context.Background())
	defer b.Close()

	require.Zero(t, calls.Load())

	net.SetOnline(true)
	require.Eventually(t, func() bool {
		return b.Snapshot().State == StateLoaded
	}, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
}

func TestSubscribe_DeliversStateChanges(t *testing.T) {
	source := &mocks.MockRemoteSource{
		FetchExercisesFunc: func(context.Context) ([]catalog.RawRow, error) {
			return []catalog.RawRow{{"name": "Deadlift"}}, nil
		},
	}

	b := New(source, nil, nil, testOptions())
	ch := b.Subscribe()

	require.NoError(t, b.Refresh(context.Background(), false))

	var states []State
	for len(states) < 2 {
		select {
		case snap := <-ch:
			states = append(states, snap.State)
		case <-time.After(time.Second):
			t.Fatalf("timed out after states %v", states)
		}
	}
	require.Equal(t, []State{StateLoading, StateLoaded}, states)
}
