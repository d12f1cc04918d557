package notion

import (
	"github.com/jomei/notionapi"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
)

// ToBookmark exposes the page conversion for tests
func ToBookmark(page *notionapi.Page) *model.Bookmark {
	return toBookmark(page)
}
