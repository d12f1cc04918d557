package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
)

// SuggestionCacheRepository defines persistence for suggestion cache entries.
// Entries are addressed by their Key(); Put overwrites any existing entry
// with the same key, so storage never holds duplicates for a key.
type SuggestionCacheRepository interface {
	// Put stores an entry, replacing any existing entry with the same key
	Put(ctx context.Context, entry *model.SuggestionEntry) error

	// Get retrieves the entry stored under the given key.
	// Returns ErrNotFound when no entry exists for the key.
	Get(ctx context.Context, key string) (*model.SuggestionEntry, error)

	// List retrieves all stored entries
	List(ctx context.Context) ([]*model.SuggestionEntry, error)

	// DeleteOlderThan removes all entries cached before the cutoff time.
	// Returns the number of removed entries.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)

	// Clear removes all stored entries
	Clear(ctx context.Context) error
}
