// Package database provides the Firestore backend for the exercise
// catalog.
package database

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	shared "fitcatalog/pkg"
	"fitcatalog/pkg/catalog"
	apperrors "fitcatalog/pkg/errors"
	"fitcatalog/pkg/source"
)

// DefaultCollection is queried when no collection is configured.
const DefaultCollection = "exercises"

func init() {
	source.Register(source.Manifest{
		ID:          "firestore",
		Name:        "Firestore",
		Description: "Exercise collection in Google Cloud Firestore",
	}, func(ctx context.Context, cfg source.Config) (shared.RemoteSource, error) {
		if cfg.ProjectID == "" {
			return nil, apperrors.New(apperrors.CodeSourceUnconfigured, "firestore backend requires a project id")
		}
		client, err := firestore.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeSourceUnavailable, "failed to create firestore client")
		}
		return NewFirestoreSource(client, cfg.Collection), nil
	})
}

// FirestoreSource reads raw exercise rows from a Firestore collection.
// Documents are returned as-is; field reconciliation belongs to the
// catalog mapper.
type FirestoreSource struct {
	Client     *firestore.Client
	collection string
}

func NewFirestoreSource(client *firestore.Client, collection string) *FirestoreSource {
	if collection == "" {
		collection = DefaultCollection
	}
	return &FirestoreSource{
		Client:     client,
		collection: collection,
	}
}

func (s *FirestoreSource) Name() string {
	return "firestore"
}

// FetchExercises reads every document in the collection. The document
// ID is injected as the "id" field when the payload lacks one, so
// downstream identity stays stable across fetches.
func (s *FirestoreSource) FetchExercises(ctx context.Context) ([]catalog.RawRow, error) {
	if s.Client == nil {
		return nil, nil
	}

	iter := s.Client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()

	var rows []catalog.RawRow
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperrors.ErrSourceFetchFailed.WithCause(err)
		}

		row := doc.Data()
		if _, ok := row["id"]; !ok {
			row["id"] = doc.Ref.ID
		}
		rows = append(rows, row)
	}

	slog.Debug("Fetched exercise rows", "source", "firestore", "collection", s.collection, "count", len(rows))
	return rows, nil
}

// Close releases the underlying client.
func (s *FirestoreSource) Close() error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Close()
}
