package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

func TestScopeKeys(t *testing.T) {
	id := types.BookmarkID("bm-001")

	t.Run("untagged key carries the kind", func(t *testing.T) {
		gt.Value(t, model.UntaggedScope().Key(id)).Equal("bm-001|untagged")
	})

	t.Run("tag-specific key carries kind and tag", func(t *testing.T) {
		gt.Value(t, model.TagScope("golang").Key(id)).Equal("bm-001|tag-specific|golang")
	})

	t.Run("untagged and tag-specific never collide", func(t *testing.T) {
		gt.Value(t, model.UntaggedScope().Key(id)).NotEqual(model.TagScope("").Key(id))
	})

	t.Run("different tags have different keys", func(t *testing.T) {
		gt.Value(t, model.TagScope("golang").Key(id)).NotEqual(model.TagScope("rust").Key(id))
	})
}

func TestScopeValidate(t *testing.T) {
	t.Run("untagged scope is valid", func(t *testing.T) {
		gt.NoError(t, model.UntaggedScope().Validate())
	})

	t.Run("tag-specific scope with tag is valid", func(t *testing.T) {
		gt.NoError(t, model.TagScope("golang").Validate())
	})

	t.Run("tag-specific scope without tag is invalid", func(t *testing.T) {
		gt.Error(t, model.TagScope("").Validate())
	})

	t.Run("zero scope is invalid", func(t *testing.T) {
		var s model.SuggestionScope
		gt.Error(t, s.Validate())
	})
}

func TestEntryKeys(t *testing.T) {
	fp := model.Fingerprint{BookmarkID: "bm-001"}

	t.Run("suggestion entry key follows its scope", func(t *testing.T) {
		e := &model.SuggestionEntry{Fingerprint: fp, Scope: model.TagScope("golang")}
		gt.Value(t, e.Key()).Equal("bm-001|tag-specific|golang")
	})

	t.Run("application entry key is bookmark and target tag", func(t *testing.T) {
		e := &model.ApplicationEntry{Fingerprint: fp, TargetTag: "golang"}
		gt.Value(t, e.Key()).Equal("bm-001|golang")
	})
}
