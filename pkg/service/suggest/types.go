package suggest

import (
	"context"

	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
)

// Service defines the interface for AI tag decisions. It is invoked only
// on cache miss; failures are the caller's problem and are never absorbed
// here.
type Service interface {
	// SuggestTags proposes tags for a bookmark out of the candidate
	// vocabulary, with reasoning
	SuggestTags(ctx context.Context, input SuggestInput) (*model.TagSuggestion, error)

	// EvaluateTag decides whether a bookmark should carry a single target
	// tag, with reasoning
	EvaluateTag(ctx context.Context, input EvaluateInput) (*model.TagDecision, error)
}

// SuggestInput represents the input for tag suggestion
type SuggestInput struct {
	Bookmark   *model.Bookmark
	Candidates []model.TagDefinition
}

// EvaluateInput represents the input for single-tag evaluation
type EvaluateInput struct {
	Bookmark *model.Bookmark
	Target   model.TagDefinition
}

// suggestResponse is the structured output from the LLM for tag suggestion
type suggestResponse struct {
	SuggestedTags []string `json:"suggested_tags"`
	Reasoning     string   `json:"reasoning"`
}

// evaluateResponse is the structured output from the LLM for tag evaluation
type evaluateResponse struct {
	ShouldHaveTag bool   `json:"should_have_tag"`
	Reasoning     string `json:"reasoning"`
}
