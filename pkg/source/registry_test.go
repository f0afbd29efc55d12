package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	shared "fitcatalog/pkg"
	"fitcatalog/pkg/catalog"
	apperrors "fitcatalog/pkg/errors"
	"fitcatalog/pkg/testing/mocks"
)

func TestRegisterAndNew(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	var gotCfg Config
	Register(Manifest{ID: "fake", Name: "Fake"}, func(_ context.Context, cfg Config) (shared.RemoteSource, error) {
		gotCfg = cfg
		return &mocks.MockRemoteSource{NameVal: "fake"}, nil
	})

	src, err := New(context.Background(), "fake", Config{Endpoint: "http://example.test"})
	require.NoError(t, err)
	require.Equal(t, "fake", src.Name())
	require.Equal(t, "http://example.test", gotCfg.Endpoint)
}

func TestNew_NullBackend(t *testing.T) {
	for _, id := range []string{"", "none"} {
		src, err := New(context.Background(), id, Config{})
		require.NoError(t, err)

		rows, err := src.FetchExercises(context.Background())
		require.NoError(t, err)
		require.Empty(t, rows)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	_, err := New(context.Background(), "nope", Config{})
	require.Error(t, err)
	require.Equal(t, apperrors.CodeSourceUnconfigured, apperrors.GetCode(err))
}

func TestManifests_Sorted(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	factory := func(context.Context, Config) (shared.RemoteSource, error) {
		return None{}, nil
	}
	Register(Manifest{ID: "zeta"}, factory)
	Register(Manifest{ID: "alpha"}, factory)

	ms := Manifests()
	require.Len(t, ms, 2)
	require.Equal(t, "alpha", ms[0].ID)
	require.Equal(t, "zeta", ms[1].ID)
}

func TestNone_YieldsNoRows(t *testing.T) {
	var _ shared.RemoteSource = None{}

	rows, err := None{}.FetchExercises(context.Background())
	require.NoError(t, err)
	require.Empty(t, rows)
	require.IsType(t, []catalog.RawRow(nil), rows)
}
