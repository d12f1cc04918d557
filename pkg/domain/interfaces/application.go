package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
)

// ApplicationCacheRepository defines persistence for tag application cache
// entries, with the same key-addressed replacement semantics as
// SuggestionCacheRepository.
type ApplicationCacheRepository interface {
	// Put stores an entry, replacing any existing entry with the same key
	Put(ctx context.Context, entry *model.ApplicationEntry) error

	// Get retrieves the entry stored under the given key.
	// Returns ErrNotFound when no entry exists for the key.
	Get(ctx context.Context, key string) (*model.ApplicationEntry, error)

	// List retrieves all stored entries
	List(ctx context.Context) ([]*model.ApplicationEntry, error)

	// DeleteOlderThan removes all entries cached before the cutoff time.
	// Returns the number of removed entries.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)

	// Clear removes all stored entries
	Clear(ctx context.Context) error
}
