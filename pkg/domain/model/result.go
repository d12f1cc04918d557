package model

import (
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// TagSuggestion is the payload of a suggestion result: an ordered list of
// suggested tag names and the AI's reasoning.
type TagSuggestion struct {
	Tags      []types.TagName
	Reasoning string
}

// TagDecision is the payload of a tag application result: whether the
// bookmark should carry the target tag, and why.
type TagDecision struct {
	ShouldHaveTag bool
	Reasoning     string
}
