// Package browser coordinates the catalog pipeline: it seeds the UI
// from the bundled catalog and the persisted snapshot, fetches remote
// rows when the network allows, merges, caches, and publishes the
// resulting state to consumers.
package browser

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	shared "fitcatalog/pkg"
	"fitcatalog/pkg/cache"
	"fitcatalog/pkg/catalog"
)

// State is the coarse lifecycle of the browser.
type State int

const (
	// StateIdle means only local data is shown and no fetch has run.
	StateIdle State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateLoaded means the shown set includes a successful remote merge.
	StateLoaded
	// StateFailed means the last fetch failed; the previous merged set
	// is still shown.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot is the consumption surface handed to UIs. Exercises is never
// nil: it is seeded from the bundled catalog before any network
// activity.
type Snapshot struct {
	Exercises []catalog.Exercise
	State     State
	Loading   bool
	LastSync  time.Time
	Err       error
}

// Options tunes browser behavior.
type Options struct {
	// Local overrides the bundled catalog (tests mostly).
	Local []catalog.Exercise
	// TTL bounds snapshot freshness for non-seed reads.
	TTL time.Duration
	// SeedStale controls whether an expired snapshot may still seed the
	// initial display. Eagerly showing stale data is a deliberate
	// soft-fallback: it is superseded by a fresh fetch moments later.
	SeedStale bool
	// Clock overrides time.Now.
	Clock func() time.Time
}

// DefaultOptions mirror the documented contract: 24h TTL, stale seed on.
var DefaultOptions = Options{
	TTL:       cache.DefaultTTL,
	SeedStale: true,
}

// Browser is the fetch/refresh orchestrator. Safe for concurrent use.
type Browser struct {
	source shared.RemoteSource
	store  shared.SnapshotStore
	net    shared.Connectivity
	opts   Options

	// gen suppresses stale results: every refresh takes a generation
	// and only the latest may commit. Close bumps it so late responses
	// from a torn-down instance are discarded.
	gen atomic.Uint64

	mu       sync.Mutex
	local    []catalog.Exercise
	merged   []catalog.Exercise
	state    State
	loading  bool
	lastSync time.Time
	lastErr  error
	subs     []chan Snapshot
	closed   bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New builds a browser and synchronously seeds its state: the bundled
// catalog alone, or the bundled catalog merged with cached rows when a
// usable snapshot exists. No network activity happens here.
func New(source shared.RemoteSource, store shared.SnapshotStore, net shared.Connectivity, opts Options) *Browser {
	if opts.TTL <= 0 {
		opts.TTL = cache.DefaultTTL
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	local := opts.Local
	if local == nil {
		local = catalog.Bundled()
	}

	b := &Browser{
		source: source,
		store:  store,
		net:    net,
		opts:   opts,
		local:  local,
		merged: local,
		state:  StateIdle,
	}

	if store != nil {
		if snap, ok := store.Load(); ok {
			if opts.SeedStale || snap.Fresh(opts.Clock(), opts.TTL) {
				b.merged = catalog.MergeByName(local, catalog.MapRecords(snap.Items))
				b.state = StateLoaded
				b.lastSync = snap.Timestamp
			}
		}
	}

	return b
}

// Start kicks off the initial background refresh (when online) and
// watches connectivity, refreshing on every offline→online edge.
func (b *Browser) Start(ctx context.Context) {
	ctx, b.cancel = context.WithCancel(ctx)

	if b.online() {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			_ = b.Refresh(ctx, false)
		}()
	}

	if b.net == nil || b.net.Events() == nil {
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case online, ok := <-b.net.Events():
				if !ok {
					return
				}
				if online {
					slog.Info("Network restored, refreshing catalog")
					_ = b.Refresh(ctx, false)
				}
			}
		}
	}()
}

// Refresh runs the fetch→map→merge→persist pipeline. When offline and
// not forced it short-circuits as a no-op with loading cleared. An empty
// remote result changes nothing: prior display and cache are retained.
// Failures keep the previous merged state; the error is returned for
// interactive callers but background paths only log it.
func (b *Browser) Refresh(ctx context.Context, force bool) error {
	if !force && !b.online() {
		b.mu.Lock()
		b.loading = false
		b.mu.Unlock()
		b.publish()
		return nil
	}

	gen := b.gen.Add(1)

	b.mu.Lock()
	prev := b.state
	b.state = StateLoading
	b.loading = true
	b.mu.Unlock()
	b.publish()

	rows, err := b.fetch(ctx)

	if b.gen.Load() != gen {
		// A newer refresh was issued (or the browser closed) while this
		// one was in flight; its outcome wins.
		return nil
	}

	if err != nil {
		slog.Warn("Catalog fetch failed, keeping previous data", "error", err)
		b.mu.Lock()
		b.state = StateFailed
		b.loading = false
		b.lastErr = err
		b.mu.Unlock()
		b.publish()
		return err
	}

	if len(rows) == 0 {
		b.mu.Lock()
		b.state = prev
		b.loading = false
		b.mu.Unlock()
		b.publish()
		return nil
	}

	merged := catalog.MergeByName(b.local, catalog.MapRecords(rows))
	if b.store != nil {
		b.store.Save(rows)
	}

	b.mu.Lock()
	b.merged = merged
	b.state = StateLoaded
	b.loading = false
	b.lastSync = b.opts.Clock()
	b.lastErr = nil
	b.mu.Unlock()
	b.publish()

	slog.Info("Catalog refreshed", "remote_rows", len(rows), "merged", len(merged))
	return nil
}

func (b *Browser) fetch(ctx context.Context) ([]catalog.RawRow, error) {
	if b.source == nil {
		return nil, nil
	}
	return b.source.FetchExercises(ctx)
}

func (b *Browser) online() bool {
	if b.net == nil {
		return true
	}
	return b.net.Online()
}

// Snapshot returns the current consumption surface.
func (b *Browser) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Browser) snapshotLocked() Snapshot {
	return Snapshot{
		Exercises: b.merged,
		State:     b.state,
		Loading:   b.loading,
		LastSync:  b.lastSync,
		Err:       b.lastErr,
	}
}

// Subscribe returns a channel receiving a snapshot after every state
// change. Delivery is best-effort; slow consumers skip intermediate
// states and can always call Snapshot for the latest. The channel is
// closed by Close; subscribing after Close yields an already closed
// channel.
func (b *Browser) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 8)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

func (b *Browser) publish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	snap := b.snapshotLocked()
	for _, ch := range b.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Close tears the browser down. In-flight fetch results are discarded,
// never applied, and subscriber channels are closed so consumers can
// stop ranging.
func (b *Browser) Close() {
	b.gen.Add(1)
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
