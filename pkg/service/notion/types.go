package notion

import (
	"context"
	"iter"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// Service provides interface to the Notion bookmarks database
type Service interface {
	// ListBookmarks retrieves all bookmark pages from the database.
	// Returns an iterator that yields Bookmark and error pairs.
	ListBookmarks(ctx context.Context, dbID string) iter.Seq2[*model.Bookmark, error]

	// UpdateTags replaces the tag set of a bookmark page
	UpdateTags(ctx context.Context, id types.BookmarkID, tags []types.TagName) error
}

// Property names of the bookmarks database schema
const (
	propTitle  = "Name"
	propURL    = "URL"
	propNotes  = "Notes"
	propWhat   = "What"
	propQuotes = "Quotes"
	propWhy    = "Why"
	propTags   = "Tags"
)

// toBookmark converts a Notion page into a bookmark record. Missing or
// empty properties become empty strings, never an error.
func toBookmark(page *notionapi.Page) *model.Bookmark {
	return &model.Bookmark{
		ID:             types.BookmarkID(page.ID.String()),
		Title:          titleText(page.Properties, propTitle),
		URL:            urlText(page.Properties, propURL),
		Notes:          richText(page.Properties, propNotes),
		What:           richText(page.Properties, propWhat),
		Quotes:         richText(page.Properties, propQuotes),
		Why:            richText(page.Properties, propWhy),
		Tags:           multiSelect(page.Properties, propTags),
		LastEditedTime: page.LastEditedTime,
		NotionURL:      page.URL,
	}
}

func titleText(props notionapi.Properties, name string) string {
	prop, ok := props[name]
	if !ok {
		return ""
	}
	title, ok := prop.(*notionapi.TitleProperty)
	if !ok {
		return ""
	}
	return plainText(title.Title)
}

func richText(props notionapi.Properties, name string) string {
	prop, ok := props[name]
	if !ok {
		return ""
	}
	rt, ok := prop.(*notionapi.RichTextProperty)
	if !ok {
		return ""
	}
	return plainText(rt.RichText)
}

func urlText(props notionapi.Properties, name string) string {
	prop, ok := props[name]
	if !ok {
		return ""
	}
	u, ok := prop.(*notionapi.URLProperty)
	if !ok {
		return ""
	}
	return u.URL
}

func multiSelect(props notionapi.Properties, name string) []types.TagName {
	prop, ok := props[name]
	if !ok {
		return nil
	}
	ms, ok := prop.(*notionapi.MultiSelectProperty)
	if !ok {
		return nil
	}

	tags := make([]types.TagName, 0, len(ms.MultiSelect))
	for _, opt := range ms.MultiSelect {
		if opt.Name != "" {
			tags = append(tags, types.TagName(opt.Name))
		}
	}
	return tags
}

func plainText(richTexts []notionapi.RichText) string {
	var sb strings.Builder
	for _, rt := range richTexts {
		sb.WriteString(rt.PlainText)
	}
	return sb.String()
}
