// Package source keeps the registry of remote catalog backends. Backend
// packages register themselves from init, and binaries select one by ID
// via configuration.
package source

import (
	"context"
	"sort"
	"sync"
	"time"

	shared "fitcatalog/pkg"
	"fitcatalog/pkg/catalog"
	apperrors "fitcatalog/pkg/errors"
)

// Config carries the settings a backend factory may need. Each backend
// reads only the fields relevant to it.
type Config struct {
	ProjectID  string
	Collection string
	Endpoint   string
	APIKey     string
	Timeout    time.Duration
}

// Manifest describes a registered backend for discovery surfaces.
type Manifest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Factory builds a backend from config.
type Factory func(ctx context.Context, cfg Config) (shared.RemoteSource, error)

type entry struct {
	manifest Manifest
	factory  Factory
}

var (
	registryMu sync.RWMutex
	backends   = make(map[string]entry)
)

// Register adds a backend to the registry. Backend packages call this
// from init; later registrations under the same ID win.
func Register(manifest Manifest, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[manifest.ID] = entry{manifest: manifest, factory: factory}
}

// Manifests returns all registered backends sorted by ID.
func Manifests() []Manifest {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Manifest, 0, len(backends))
	for _, e := range backends {
		out = append(out, e.manifest)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetManifest returns a specific backend's manifest.
func GetManifest(id string) (Manifest, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := backends[id]
	return e.manifest, ok
}

// New builds the backend named id. The empty string and "none" resolve
// to the null backend, which always yields zero rows.
func New(ctx context.Context, id string, cfg Config) (shared.RemoteSource, error) {
	if id == "" || id == "none" {
		return None{}, nil
	}

	registryMu.RLock()
	e, ok := backends[id]
	registryMu.RUnlock()

	if !ok {
		return nil, apperrors.ErrSourceUnconfigured.WithMetadata("source", id)
	}
	return e.factory(ctx, cfg)
}

// ClearRegistry removes all backends (useful for tests).
func ClearRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]entry)
}

// None is the null backend used when no remote source is configured.
// The catalog then consists of the bundled exercises alone.
type None struct{}

func (None) Name() string { return "none" }

func (None) FetchExercises(context.Context) ([]catalog.RawRow, error) { return nil, nil }
