package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

type suggestionRepository struct {
	mu      sync.RWMutex
	entries map[string]*model.SuggestionEntry
}

func newSuggestionRepository() *suggestionRepository {
	return &suggestionRepository{
		entries: make(map[string]*model.SuggestionEntry),
	}
}

// copySuggestionEntry creates a deep copy of a suggestion entry
func copySuggestionEntry(e *model.SuggestionEntry) *model.SuggestionEntry {
	copied := &model.SuggestionEntry{
		ID:          e.ID,
		Fingerprint: copyFingerprint(e.Fingerprint),
		Scope:       e.Scope,
		Reasoning:   e.Reasoning,
		CachedAt:    e.CachedAt,
	}
	if e.SuggestedTags != nil {
		copied.SuggestedTags = make([]types.TagName, len(e.SuggestedTags))
		copy(copied.SuggestedTags, e.SuggestedTags)
	}
	return copied
}

func copyFingerprint(f model.Fingerprint) model.Fingerprint {
	copied := f
	if f.Tags != nil {
		copied.Tags = make([]types.TagName, len(f.Tags))
		copy(copied.Tags, f.Tags)
	}
	return copied
}

func (r *suggestionRepository) Put(ctx context.Context, entry *model.SuggestionEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copySuggestionEntry(entry)
	if stored.ID == "" {
		stored.ID = model.NewEntryID()
	}

	// Map assignment replaces any previous entry under the same key
	r.entries[stored.Key()] = stored
	return nil
}

func (r *suggestionRepository) Get(ctx context.Context, key string) (*model.SuggestionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[key]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "suggestion entry not found", goerr.V("key", key))
	}

	return copySuggestionEntry(entry), nil
}

func (r *suggestionRepository) List(ctx context.Context) ([]*model.SuggestionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*model.SuggestionEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, copySuggestionEntry(e))
	}

	return entries, nil
}

func (r *suggestionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, e := range r.entries {
		if e.CachedAt.Before(cutoff) {
			delete(r.entries, key)
			removed++
		}
	}

	return removed, nil
}

func (r *suggestionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]*model.SuggestionEntry)
	return nil
}
