package firestore

import (
	"context"
	"net/url"
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

// fingerprintDoc is the Firestore representation of model.Fingerprint
type fingerprintDoc struct {
	BookmarkID string   `firestore:"BookmarkID"`
	Title      string   `firestore:"Title"`
	URL        string   `firestore:"URL"`
	Notes      string   `firestore:"Notes"`
	What       string   `firestore:"What"`
	Quotes     string   `firestore:"Quotes"`
	Why        string   `firestore:"Why"`
	Tags       []string `firestore:"Tags"`
	LastEdited string   `firestore:"LastEdited"`
}

func toFingerprintDoc(f model.Fingerprint) fingerprintDoc {
	tags := make([]string, len(f.Tags))
	for i, t := range f.Tags {
		tags[i] = string(t)
	}
	return fingerprintDoc{
		BookmarkID: string(f.BookmarkID),
		Title:      f.Title,
		URL:        f.URL,
		Notes:      f.Notes,
		What:       f.What,
		Quotes:     f.Quotes,
		Why:        f.Why,
		Tags:       tags,
		LastEdited: f.LastEdited,
	}
}

func fromFingerprintDoc(d fingerprintDoc) model.Fingerprint {
	tags := make([]types.TagName, len(d.Tags))
	for i, t := range d.Tags {
		tags[i] = types.TagName(t)
	}
	return model.Fingerprint{
		BookmarkID: types.BookmarkID(d.BookmarkID),
		Title:      d.Title,
		URL:        d.URL,
		Notes:      d.Notes,
		What:       d.What,
		Quotes:     d.Quotes,
		Why:        d.Why,
		Tags:       tags,
		LastEdited: d.LastEdited,
	}
}

// suggestionDoc is the Firestore document representation of model.SuggestionEntry
type suggestionDoc struct {
	ID            model.EntryID  `firestore:"ID"`
	Fingerprint   fingerprintDoc `firestore:"Fingerprint"`
	Kind          string         `firestore:"Kind"`
	TargetTag     string         `firestore:"TargetTag"`
	SuggestedTags []string       `firestore:"SuggestedTags"`
	Reasoning     string         `firestore:"Reasoning"`
	CachedAt      time.Time      `firestore:"CachedAt"`
}

func toSuggestionDoc(e *model.SuggestionEntry) *suggestionDoc {
	tags := make([]string, len(e.SuggestedTags))
	for i, t := range e.SuggestedTags {
		tags[i] = string(t)
	}
	return &suggestionDoc{
		ID:            e.ID,
		Fingerprint:   toFingerprintDoc(e.Fingerprint),
		Kind:          e.Scope.Kind().String(),
		TargetTag:     string(e.Scope.TargetTag()),
		SuggestedTags: tags,
		Reasoning:     e.Reasoning,
		CachedAt:      e.CachedAt,
	}
}

func fromSuggestionDoc(d *suggestionDoc) *model.SuggestionEntry {
	scope := model.UntaggedScope()
	if types.SuggestionKind(d.Kind) == types.SuggestionKindTagSpecific {
		scope = model.TagScope(types.TagName(d.TargetTag))
	}

	tags := make([]types.TagName, len(d.SuggestedTags))
	for i, t := range d.SuggestedTags {
		tags[i] = types.TagName(t)
	}

	return &model.SuggestionEntry{
		ID:            d.ID,
		Fingerprint:   fromFingerprintDoc(d.Fingerprint),
		Scope:         scope,
		SuggestedTags: tags,
		Reasoning:     d.Reasoning,
		CachedAt:      d.CachedAt,
	}
}

func docToSuggestion(doc *firestore.DocumentSnapshot) (*model.SuggestionEntry, error) {
	var d suggestionDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromSuggestionDoc(&d), nil
}

type suggestionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newSuggestionRepository(client *firestore.Client) *suggestionRepository {
	return &suggestionRepository{client: client}
}

func (r *suggestionRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "suggestionCache")
}

// docID derives the document ID from the entry key. QueryEscape keeps the
// mapping injective even when tag names contain characters Firestore
// disallows in document IDs.
func docID(key string) string {
	return url.QueryEscape(key)
}

func (r *suggestionRepository) Put(ctx context.Context, entry *model.SuggestionEntry) error {
	stored := *entry
	if stored.ID == "" {
		stored.ID = model.NewEntryID()
	}

	// Set on a key-derived document ID overwrites the previous entry for
	// the same key, which gives the replace-not-duplicate guarantee.
	docRef := r.collection().Doc(docID(stored.Key()))
	if _, err := docRef.Set(ctx, toSuggestionDoc(&stored)); err != nil {
		return goerr.Wrap(err, "failed to put suggestion entry", goerr.V("key", stored.Key()))
	}

	return nil
}

func (r *suggestionRepository) Get(ctx context.Context, key string) (*model.SuggestionEntry, error) {
	doc, err := r.collection().Doc(docID(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "suggestion entry not found", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to get suggestion entry", goerr.V("key", key))
	}

	entry, err := docToSuggestion(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal suggestion entry", goerr.V("key", key))
	}

	return entry, nil
}

func (r *suggestionRepository) List(ctx context.Context) ([]*model.SuggestionEntry, error) {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	entries := make([]*model.SuggestionEntry, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate suggestion entries")
		}

		entry, err := docToSuggestion(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal suggestion entry")
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *suggestionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	iter := r.collection().Where("CachedAt", "<", cutoff).Documents(ctx)
	defer iter.Stop()

	removed := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return removed, goerr.Wrap(err, "failed to iterate stale suggestion entries")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return removed, goerr.Wrap(err, "failed to delete stale suggestion entry", goerr.V("docID", doc.Ref.ID))
		}
		removed++
	}

	return removed, nil
}

func (r *suggestionRepository) Clear(ctx context.Context) error {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate suggestion entries")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete suggestion entry", goerr.V("docID", doc.Ref.ID))
		}
	}

	return nil
}
