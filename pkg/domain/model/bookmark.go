package model

import (
	"time"

	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// Bookmark represents a bookmark record retrieved from the Notion database.
// The six text fields and the tag set are the inputs the AI collaborator
// sees; LastEditedTime is maintained by Notion and changes on every edit.
type Bookmark struct {
	ID             types.BookmarkID
	Title          string
	URL            string
	Notes          string
	What           string
	Quotes         string
	Why            string
	Tags           []types.TagName
	LastEditedTime time.Time
	NotionURL      string // Direct URL to the Notion page
}

// HasTag reports whether the bookmark currently carries the given tag
func (b *Bookmark) HasTag(tag types.TagName) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
