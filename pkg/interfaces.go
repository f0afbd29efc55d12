package shared

import (
	"context"

	"fitcatalog/pkg/cache"
	"fitcatalog/pkg/catalog"
)

// --- Remote data source ---

// RemoteSource is a row-oriented provider of exercise records. Rows are
// loosely typed; field naming conventions differ per source and are
// reconciled by the catalog mapper. Implementations must degrade to an
// empty result rather than failing hard when unconfigured.
type RemoteSource interface {
	Name() string
	FetchExercises(ctx context.Context) ([]catalog.RawRow, error)
}

// --- Persistence ---

// SnapshotStore is the single warm-start slot for raw remote rows.
type SnapshotStore interface {
	Load() (cache.Snapshot, bool)
	Save(items []catalog.RawRow)
}

// --- Connectivity ---

// Connectivity reports whether the remote source is reachable and
// notifies on transitions. Events carries the new state: true for an
// offline→online edge, false for the reverse.
type Connectivity interface {
	Online() bool
	Events() <-chan bool
}
