package types

// BookmarkID is the stable external identifier of a bookmark page.
// It never changes for a given bookmark.
type BookmarkID string

// String returns the string representation of the bookmark ID
func (id BookmarkID) String() string {
	return string(id)
}

// TagName represents a tag label attached to a bookmark
type TagName string

// String returns the string representation of the tag name
func (t TagName) String() string {
	return string(t)
}
