package model

import (
	"slices"
	"time"

	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// Fingerprint is an immutable snapshot of the bookmark fields that affect
// AI output. It is the sole validity test for cache reuse: a cached result
// is returned only when the stored fingerprint matches the bookmark's
// current fingerprint field by field. Any edit invalidates the cache, even
// one unrelated to the fields the AI cares about. That is intentional:
// recomputing too often is cheap, returning a stale suggestion is not.
type Fingerprint struct {
	BookmarkID types.BookmarkID
	Title      string
	URL        string
	Notes      string
	What       string
	Quotes     string
	Why        string
	// Tags is a sorted copy of the bookmark's tags so that tag reordering
	// never causes a spurious mismatch.
	Tags []types.TagName
	// LastEdited is the exact textual form of the Notion last_edited_time,
	// compared for equality only, never parsed back.
	LastEdited string
}

// NewFingerprint computes the fingerprint of a bookmark. It is pure and
// deterministic: the tag list is copied and sorted lexicographically, and
// the edit timestamp is serialized to a fixed UTC textual form.
func NewFingerprint(b *Bookmark) Fingerprint {
	tags := make([]types.TagName, len(b.Tags))
	copy(tags, b.Tags)
	slices.Sort(tags)

	return Fingerprint{
		BookmarkID: b.ID,
		Title:      b.Title,
		URL:        b.URL,
		Notes:      b.Notes,
		What:       b.What,
		Quotes:     b.Quotes,
		Why:        b.Why,
		Tags:       tags,
		LastEdited: b.LastEditedTime.UTC().Format(time.RFC3339Nano),
	}
}

// Match reports whether two fingerprints are identical in every field.
// Tag comparison is positional, which is sound because both sides were
// sorted by the same rule in NewFingerprint.
func (f Fingerprint) Match(other Fingerprint) bool {
	if f.BookmarkID != other.BookmarkID ||
		f.Title != other.Title ||
		f.URL != other.URL ||
		f.Notes != other.Notes ||
		f.What != other.What ||
		f.Quotes != other.Quotes ||
		f.Why != other.Why ||
		f.LastEdited != other.LastEdited {
		return false
	}

	return slices.Equal(f.Tags, other.Tags)
}
