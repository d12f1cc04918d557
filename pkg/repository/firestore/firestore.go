package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/interfaces"
)

type Firestore struct {
	client      *firestore.Client
	suggestion  *suggestionRepository
	application *applicationRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes the cache collection names, mainly to keep
// test data separate from production data in a shared project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.suggestion.collectionPrefix = prefix
		f.application.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:      client,
		suggestion:  newSuggestionRepository(client),
		application: newApplicationRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Suggestion() interfaces.SuggestionCacheRepository {
	return f.suggestion
}

func (f *Firestore) Application() interfaces.ApplicationCacheRepository {
	return f.application
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
