package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// EntryID is a UUID-based identifier for cache entries
type EntryID string

// NewEntryID generates a new UUID v4 EntryID
func NewEntryID() EntryID {
	return EntryID(uuid.New().String())
}

// SuggestionEntry is a cached tag suggestion result. Entries are immutable
// once written: a new result for the same key replaces the old entry, it
// never mutates it in place. At most one entry per key exists in storage;
// whether the entry is still valid is decided at read time by comparing
// fingerprints.
type SuggestionEntry struct {
	ID            EntryID
	Fingerprint   Fingerprint
	Scope         SuggestionScope
	SuggestedTags []types.TagName
	Reasoning     string
	CachedAt      time.Time
}

// Key returns the storage key of the entry: bookmark identity plus scope
func (e *SuggestionEntry) Key() string {
	return e.Scope.Key(e.Fingerprint.BookmarkID)
}

// ApplicationEntry is a cached single-tag decision: whether the bookmark
// should carry TargetTag. Same replacement and validity rules as
// SuggestionEntry.
type ApplicationEntry struct {
	ID            EntryID
	Fingerprint   Fingerprint
	TargetTag     types.TagName
	ShouldHaveTag bool
	Reasoning     string
	CachedAt      time.Time
}

// Key returns the storage key of the entry: bookmark identity plus target tag
func (e *ApplicationEntry) Key() string {
	return fmt.Sprintf("%s|%s", e.Fingerprint.BookmarkID, e.TargetTag)
}
