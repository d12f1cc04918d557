package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// SuggestionScope is the qualifier part of a suggestion cache key. It is a
// tagged variant with two constructors: UntaggedScope carries no target tag,
// TagScope carries a mandatory one. The kind discriminator is part of the
// storage key, so an untagged scope and a tag-specific scope with an empty
// tag never collide.
type SuggestionScope struct {
	kind      types.SuggestionKind
	targetTag types.TagName
}

// UntaggedScope returns the scope for suggestions over the whole tag
// vocabulary, used for bookmarks that have no tags yet.
func UntaggedScope() SuggestionScope {
	return SuggestionScope{kind: types.SuggestionKindUntagged}
}

// TagScope returns the scope for suggestions about a single target tag
func TagScope(tag types.TagName) SuggestionScope {
	return SuggestionScope{kind: types.SuggestionKindTagSpecific, targetTag: tag}
}

// Kind returns the suggestion kind discriminator
func (s SuggestionScope) Kind() types.SuggestionKind {
	return s.kind
}

// TargetTag returns the target tag. It is empty for the untagged kind.
func (s SuggestionScope) TargetTag() types.TagName {
	return s.targetTag
}

// Validate checks the scope's internal consistency
func (s SuggestionScope) Validate() error {
	if !s.kind.IsValid() {
		return goerr.New("invalid suggestion kind", goerr.V("kind", s.kind))
	}
	if s.kind == types.SuggestionKindTagSpecific && s.targetTag == "" {
		return goerr.New("target tag is required for tag-specific scope")
	}
	if s.kind == types.SuggestionKindUntagged && s.targetTag != "" {
		return goerr.New("target tag must be empty for untagged scope", goerr.V("targetTag", s.targetTag))
	}
	return nil
}

// Key builds the storage key for a suggestion entry of this scope
func (s SuggestionScope) Key(id types.BookmarkID) string {
	if s.kind == types.SuggestionKindTagSpecific {
		return fmt.Sprintf("%s|%s|%s", id, s.kind, s.targetTag)
	}
	return fmt.Sprintf("%s|%s", id, s.kind)
}
