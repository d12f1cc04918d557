package notion

import (
	"context"
	"iter"

	"github.com/jomei/notionapi"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// client implements Service interface
type client struct {
	api *notionapi.Client
}

// New creates a new Notion service with the provided API token
func New(token string) (Service, error) {
	if token == "" {
		return nil, goerr.New("Notion API token is required")
	}

	return &client{
		api: notionapi.NewClient(
			notionapi.Token(token),
			notionapi.WithRetry(3), // Retry up to 3 times on rate limit (HTTP 429)
		),
	}, nil
}

// ListBookmarks retrieves all bookmark pages from the database
func (c *client) ListBookmarks(ctx context.Context, dbID string) iter.Seq2[*model.Bookmark, error] {
	return func(yield func(*model.Bookmark, error) bool) {
		var cursor notionapi.Cursor

		for {
			resp, err := c.api.Database.Query(ctx, notionapi.DatabaseID(dbID), &notionapi.DatabaseQueryRequest{
				StartCursor: cursor,
				PageSize:    100,
			})

			if err != nil {
				yield(nil, goerr.Wrap(err, "failed to query bookmarks database", goerr.V("dbID", dbID)))
				return
			}

			for i := range resp.Results {
				if !yield(toBookmark(&resp.Results[i]), nil) {
					return
				}
			}

			if !resp.HasMore {
				break
			}
			cursor = resp.NextCursor
		}
	}
}

// UpdateTags replaces the Tags multi-select of a bookmark page
func (c *client) UpdateTags(ctx context.Context, id types.BookmarkID, tags []types.TagName) error {
	options := make([]notionapi.Option, len(tags))
	for i, tag := range tags {
		options[i] = notionapi.Option{Name: string(tag)}
	}

	_, err := c.api.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{
			propTags: notionapi.MultiSelectProperty{
				MultiSelect: options,
			},
		},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update bookmark tags", goerr.V("id", id), goerr.V("tags", tags))
	}

	return nil
}
