package notion_test

import (
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/service/notion"
)

func richText(text string) *notionapi.RichTextProperty {
	return &notionapi.RichTextProperty{
		RichText: []notionapi.RichText{{PlainText: text}},
	}
}

func TestToBookmark(t *testing.T) {
	edited := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	page := &notionapi.Page{
		ID:             "page-001",
		URL:            "https://www.notion.so/page-001",
		LastEditedTime: edited,
		Properties: notionapi.Properties{
			"Name": &notionapi.TitleProperty{
				Title: []notionapi.RichText{
					{PlainText: "Raft "},
					{PlainText: "paper"},
				},
			},
			"URL":    &notionapi.URLProperty{URL: "https://raft.github.io/raft.pdf"},
			"Notes":  richText("read later"),
			"What":   richText("consensus algorithm paper"),
			"Quotes": richText("understandable consensus"),
			"Why":    richText("reading list"),
			"Tags": &notionapi.MultiSelectProperty{
				MultiSelect: []notionapi.Option{
					{Name: "papers"},
					{Name: "distributed-systems"},
				},
			},
		},
	}

	bm := notion.ToBookmark(page)

	gt.Value(t, bm.ID).Equal(types.BookmarkID("page-001"))
	gt.Value(t, bm.Title).Equal("Raft paper")
	gt.Value(t, bm.URL).Equal("https://raft.github.io/raft.pdf")
	gt.Value(t, bm.Notes).Equal("read later")
	gt.Value(t, bm.What).Equal("consensus algorithm paper")
	gt.Value(t, bm.Quotes).Equal("understandable consensus")
	gt.Value(t, bm.Why).Equal("reading list")
	gt.Value(t, bm.Tags).Equal([]types.TagName{"papers", "distributed-systems"})
	gt.Bool(t, bm.LastEditedTime.Equal(edited)).True()
	gt.Value(t, bm.NotionURL).Equal("https://www.notion.so/page-001")
}

func TestToBookmarkMissingProperties(t *testing.T) {
	page := &notionapi.Page{
		ID:         "page-002",
		Properties: notionapi.Properties{},
	}

	bm := notion.ToBookmark(page)

	gt.Value(t, bm.Title).Equal("")
	gt.Value(t, bm.URL).Equal("")
	gt.Value(t, bm.Notes).Equal("")
	gt.Array(t, bm.Tags).Length(0)
}

func TestToBookmarkWrongPropertyTypes(t *testing.T) {
	page := &notionapi.Page{
		ID: "page-003",
		Properties: notionapi.Properties{
			"Name": richText("not a title property"),
			"URL":  richText("not a url property"),
			"Tags": &notionapi.SelectProperty{},
		},
	}

	bm := notion.ToBookmark(page)

	gt.Value(t, bm.Title).Equal("")
	gt.Value(t, bm.URL).Equal("")
	gt.Array(t, bm.Tags).Length(0)
}

func TestNewRequiresToken(t *testing.T) {
	_, err := notion.New("")
	gt.Error(t, err)
}
