package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// applicationDoc is the Firestore document representation of model.ApplicationEntry
type applicationDoc struct {
	ID            model.EntryID  `firestore:"ID"`
	Fingerprint   fingerprintDoc `firestore:"Fingerprint"`
	TargetTag     string         `firestore:"TargetTag"`
	ShouldHaveTag bool           `firestore:"ShouldHaveTag"`
	Reasoning     string         `firestore:"Reasoning"`
	CachedAt      time.Time      `firestore:"CachedAt"`
}

func toApplicationDoc(e *model.ApplicationEntry) *applicationDoc {
	return &applicationDoc{
		ID:            e.ID,
		Fingerprint:   toFingerprintDoc(e.Fingerprint),
		TargetTag:     string(e.TargetTag),
		ShouldHaveTag: e.ShouldHaveTag,
		Reasoning:     e.Reasoning,
		CachedAt:      e.CachedAt,
	}
}

func fromApplicationDoc(d *applicationDoc) *model.ApplicationEntry {
	return &model.ApplicationEntry{
		ID:            d.ID,
		Fingerprint:   fromFingerprintDoc(d.Fingerprint),
		TargetTag:     types.TagName(d.TargetTag),
		ShouldHaveTag: d.ShouldHaveTag,
		Reasoning:     d.Reasoning,
		CachedAt:      d.CachedAt,
	}
}

func docToApplication(doc *firestore.DocumentSnapshot) (*model.ApplicationEntry, error) {
	var d applicationDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromApplicationDoc(&d), nil
}

type applicationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newApplicationRepository(client *firestore.Client) *applicationRepository {
	return &applicationRepository{client: client}
}

func (r *applicationRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "applicationCache")
}

func (r *applicationRepository) Put(ctx context.Context, entry *model.ApplicationEntry) error {
	stored := *entry
	if stored.ID == "" {
		stored.ID = model.NewEntryID()
	}

	docRef := r.collection().Doc(docID(stored.Key()))
	if _, err := docRef.Set(ctx, toApplicationDoc(&stored)); err != nil {
		return goerr.Wrap(err, "failed to put application entry", goerr.V("key", stored.Key()))
	}

	return nil
}

func (r *applicationRepository) Get(ctx context.Context, key string) (*model.ApplicationEntry, error) {
	doc, err := r.collection().Doc(docID(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "application entry not found", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to get application entry", goerr.V("key", key))
	}

	entry, err := docToApplication(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal application entry", goerr.V("key", key))
	}

	return entry, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]*model.ApplicationEntry, error) {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	entries := make([]*model.ApplicationEntry, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate application entries")
		}

		entry, err := docToApplication(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal application entry")
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *applicationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	iter := r.collection().Where("CachedAt", "<", cutoff).Documents(ctx)
	defer iter.Stop()

	removed := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return removed, goerr.Wrap(err, "failed to iterate stale application entries")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return removed, goerr.Wrap(err, "failed to delete stale application entry", goerr.V("docID", doc.Ref.ID))
		}
		removed++
	}

	return removed, nil
}

func (r *applicationRepository) Clear(ctx context.Context) error {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate application entries")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete application entry", goerr.V("docID", doc.Ref.ID))
		}
	}

	return nil
}
