// Package cache holds the warm-start persistence for the catalog: a
// single JSON snapshot slot on disk for raw remote rows, plus a small
// generic TTL map used for in-memory memoization.
package cache

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fitcatalog/pkg/catalog"
)

// DefaultTTL is the freshness window for a persisted snapshot.
const DefaultTTL = 24 * time.Hour

// snapshotFile is the single named slot inside the cache directory.
const snapshotFile = "snapshot.json"

// Snapshot is one persisted fetch result: the raw remote rows plus the
// time they were fetched. Only raw rows are stored, never the merged
// result, so re-merging with the bundled catalog stays deterministic.
type Snapshot struct {
	Timestamp time.Time
	Items     []catalog.RawRow
}

// Fresh reports whether the snapshot is still inside the TTL window.
// Age exactly equal to the TTL is still fresh; staleness starts strictly
// beyond it.
func (s Snapshot) Fresh(now time.Time, ttl time.Duration) bool {
	if s.Timestamp.IsZero() {
		return false
	}
	return now.Sub(s.Timestamp) <= ttl
}

// diskSnapshot is the wire form: {"ts": unix millis, "items": [...]}.
type diskSnapshot struct {
	TS    int64            `json:"ts"`
	Items []catalog.RawRow `json:"items"`
}

// FileStore persists the snapshot slot at a fixed path. Reads treat any
// corruption as a cache miss; writes are best-effort and never fail the
// caller (losing the warm start is the only consequence).
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore creates a store rooted at dir (the snapshot lives at
// dir/snapshot.json).
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, snapshotFile), now: time.Now}
}

// DefaultDir resolves the per-user cache directory for the app.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".fitcat"
	}
	return filepath.Join(base, "fitcat")
}

// Load reads the snapshot slot. A missing file, unparsable JSON, a
// missing timestamp, or a non-array items field all count as a miss.
// Load performs no TTL check; callers decide whether a stale snapshot
// is still useful (the orchestrator's initial seed deliberately is).
func (f *FileStore) Load() (Snapshot, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return Snapshot{}, false
	}

	var disk diskSnapshot
	if err := json.Unmarshal(data, &disk); err != nil {
		slog.Warn("Discarding corrupt catalog snapshot", "path", f.path, "error", err)
		return Snapshot{}, false
	}
	if disk.TS <= 0 || disk.Items == nil {
		return Snapshot{}, false
	}

	return Snapshot{Timestamp: time.UnixMilli(disk.TS), Items: disk.Items}, true
}

// Path returns the file the snapshot slot lives at.
func (f *FileStore) Path() string {
	return f.path
}

// Clear removes the snapshot slot. A missing file is not an error.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Save overwrites the slot with the given rows stamped at now. Failures
// (quota, permissions, serialization) are logged and swallowed.
func (f *FileStore) Save(items []catalog.RawRow) {
	if items == nil {
		items = []catalog.RawRow{}
	}
	disk := diskSnapshot{TS: f.now().UnixMilli(), Items: items}

	data, err := json.Marshal(disk)
	if err != nil {
		slog.Warn("Failed to encode catalog snapshot", "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		slog.Warn("Failed to create cache directory", "path", filepath.Dir(f.path), "error", err)
		return
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		slog.Warn("Failed to write catalog snapshot", "path", f.path, "error", err)
	}
}
