package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// Option is a functional option for client configuration
type Option func(*client)

// New creates a new suggest service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SuggestTags proposes tags for a bookmark out of the candidate vocabulary
func (c *client) SuggestTags(ctx context.Context, input SuggestInput) (*model.TagSuggestion, error) {
	if len(input.Candidates) == 0 {
		return &model.TagSuggestion{}, nil
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(suggestResponseSchema()),
		gollem.WithSessionSystemPrompt(suggestSystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildSuggestPrompt(input)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate tag suggestions", goerr.V("bookmarkID", input.Bookmark.ID))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("empty LLM response", goerr.V("bookmarkID", input.Bookmark.ID))
	}

	var llmResp suggestResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &llmResp); err != nil {
		return nil, goerr.Wrap(err, "failed to parse LLM response", goerr.V("response", resp.Texts[0]))
	}

	// Keep only tags that exist in the candidate vocabulary; the model
	// occasionally invents labels despite the instructions.
	known := make(map[types.TagName]bool, len(input.Candidates))
	for _, def := range input.Candidates {
		known[def.Name] = true
	}

	tags := make([]types.TagName, 0, len(llmResp.SuggestedTags))
	for _, name := range llmResp.SuggestedTags {
		tag := types.TagName(name)
		if known[tag] {
			tags = append(tags, tag)
		}
	}

	return &model.TagSuggestion{
		Tags:      tags,
		Reasoning: llmResp.Reasoning,
	}, nil
}

// EvaluateTag decides whether a bookmark should carry a single target tag
func (c *client) EvaluateTag(ctx context.Context, input EvaluateInput) (*model.TagDecision, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(evaluateResponseSchema()),
		gollem.WithSessionSystemPrompt(evaluateSystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildEvaluatePrompt(input)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to evaluate tag", goerr.V("bookmarkID", input.Bookmark.ID), goerr.V("tag", input.Target.Name))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("empty LLM response", goerr.V("bookmarkID", input.Bookmark.ID))
	}

	var llmResp evaluateResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &llmResp); err != nil {
		return nil, goerr.Wrap(err, "failed to parse LLM response", goerr.V("response", resp.Texts[0]))
	}

	return &model.TagDecision{
		ShouldHaveTag: llmResp.ShouldHaveTag,
		Reasoning:     llmResp.Reasoning,
	}, nil
}

const suggestSystemPrompt = `You are a bookmark tagging assistant. Your task is to pick the tags from a fixed vocabulary that fit a bookmark best.

## Instructions:

1. Read the bookmark's title, URL and notes carefully.
2. Pick only tags from the provided vocabulary. Never invent new tags.
3. Suggest a tag only when the bookmark clearly fits its description.
4. Return an empty list when no tag fits.
5. Explain your choices briefly in the reasoning field.`

const evaluateSystemPrompt = `You are a bookmark tagging assistant. Your task is to decide whether a bookmark should carry one specific tag.

## Instructions:

1. Read the bookmark's title, URL and notes carefully.
2. Compare them against the tag's description.
3. Answer true only when the bookmark clearly fits the tag.
4. Explain your decision briefly in the reasoning field.`

// buildSuggestPrompt assembles the user prompt with bookmark fields and
// the candidate tag vocabulary
func buildSuggestPrompt(input SuggestInput) string {
	var sb strings.Builder

	sb.WriteString("## Tag vocabulary:\n\n")
	for _, def := range input.Candidates {
		fmt.Fprintf(&sb, "- **%s**: %s\n", def.Name, def.Description)
	}
	sb.WriteString("\n")

	writeBookmark(&sb, input.Bookmark)

	return sb.String()
}

// buildEvaluatePrompt assembles the user prompt with bookmark fields and
// the single target tag
func buildEvaluatePrompt(input EvaluateInput) string {
	var sb strings.Builder

	sb.WriteString("## Target tag:\n\n")
	fmt.Fprintf(&sb, "- **%s**: %s\n\n", input.Target.Name, input.Target.Description)

	writeBookmark(&sb, input.Bookmark)

	return sb.String()
}

func writeBookmark(sb *strings.Builder, b *model.Bookmark) {
	sb.WriteString("## Bookmark:\n\n")
	fmt.Fprintf(sb, "**Title:** %s\n", b.Title)
	fmt.Fprintf(sb, "**URL:** %s\n", b.URL)
	if b.What != "" {
		fmt.Fprintf(sb, "**What:** %s\n", b.What)
	}
	if b.Why != "" {
		fmt.Fprintf(sb, "**Why:** %s\n", b.Why)
	}
	if b.Notes != "" {
		fmt.Fprintf(sb, "**Notes:** %s\n", b.Notes)
	}
	if b.Quotes != "" {
		fmt.Fprintf(sb, "**Quotes:** %s\n", b.Quotes)
	}
	if len(b.Tags) > 0 {
		names := make([]string, len(b.Tags))
		for i, t := range b.Tags {
			names[i] = string(t)
		}
		fmt.Fprintf(sb, "**Current tags:** %s\n", strings.Join(names, ", "))
	}
}

// suggestResponseSchema creates the JSON schema for structured suggestion output
func suggestResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "TagSuggestionResponse",
		Description: "Tags from the vocabulary that fit the bookmark",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"suggested_tags": {
				Type:        gollem.TypeArray,
				Description: "Names of fitting tags, most relevant first",
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
				Required: true,
			},
			"reasoning": {
				Type:        gollem.TypeString,
				Description: "A brief explanation of the choices",
				Required:    true,
			},
		},
	}
}

// evaluateResponseSchema creates the JSON schema for structured evaluation output
func evaluateResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "TagEvaluationResponse",
		Description: "Decision whether the bookmark should carry the target tag",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"should_have_tag": {
				Type:        gollem.TypeBoolean,
				Description: "True when the bookmark fits the tag",
				Required:    true,
			},
			"reasoning": {
				Type:        gollem.TypeString,
				Description: "A brief explanation of the decision",
				Required:    true,
			},
		},
	}
}
