package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
)

type applicationRepository struct {
	mu      sync.RWMutex
	entries map[string]*model.ApplicationEntry
}

func newApplicationRepository() *applicationRepository {
	return &applicationRepository{
		entries: make(map[string]*model.ApplicationEntry),
	}
}

// copyApplicationEntry creates a deep copy of an application entry
func copyApplicationEntry(e *model.ApplicationEntry) *model.ApplicationEntry {
	copied := &model.ApplicationEntry{
		ID:            e.ID,
		Fingerprint:   copyFingerprint(e.Fingerprint),
		TargetTag:     e.TargetTag,
		ShouldHaveTag: e.ShouldHaveTag,
		Reasoning:     e.Reasoning,
		CachedAt:      e.CachedAt,
	}
	return copied
}

func (r *applicationRepository) Put(ctx context.Context, entry *model.ApplicationEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyApplicationEntry(entry)
	if stored.ID == "" {
		stored.ID = model.NewEntryID()
	}

	r.entries[stored.Key()] = stored
	return nil
}

func (r *applicationRepository) Get(ctx context.Context, key string) (*model.ApplicationEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[key]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "application entry not found", goerr.V("key", key))
	}

	return copyApplicationEntry(entry), nil
}

func (r *applicationRepository) List(ctx context.Context) ([]*model.ApplicationEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*model.ApplicationEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, copyApplicationEntry(e))
	}

	return entries, nil
}

func (r *applicationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
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

func (r *applicationRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]*model.ApplicationEntry)
	return nil
}
