package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/service/suggest"
)

// InvokeOption controls cache behavior for a single AI invocation
type InvokeOption func(*invokeConfig)

type invokeConfig struct {
	useCache bool
}

// WithoutCache skips the cache lookup, forcing recomputation. The fresh
// result is still written back, so the cache stays current. Used when
// warming the cache for validation.
func WithoutCache() InvokeOption {
	return func(cfg *invokeConfig) {
		cfg.useCache = false
	}
}

func newInvokeConfig(opts []InvokeOption) invokeConfig {
	cfg := invokeConfig{useCache: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// SuggestTags returns an AI tag suggestion for the bookmark, consulting
// the cache first. On a validated cache hit no AI call is made; on a miss
// the fresh result is stored under the same key before returning.
func (uc *UseCases) SuggestTags(ctx context.Context, bm *model.Bookmark, scope model.SuggestionScope, opts ...InvokeOption) (*model.TagSuggestion, error) {
	if uc.suggester == nil {
		return nil, ErrNoSuggestService
	}
	if err := scope.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid suggestion scope")
	}

	var candidates []model.TagDefinition
	switch scope.Kind() {
	case types.SuggestionKindUntagged:
		candidates = uc.vocab.List()
	case types.SuggestionKindTagSpecific:
		def := uc.vocab.Lookup(scope.TargetTag())
		if def == nil {
			return nil, goerr.Wrap(ErrUnknownTag, "cannot suggest for undefined tag", goerr.V("tag", scope.TargetTag()))
		}
		candidates = []model.TagDefinition{*def}
	}

	cfg := newInvokeConfig(opts)
	fp := model.NewFingerprint(bm)

	if cfg.useCache {
		if cached, ok := uc.cache.GetSuggestion(ctx, fp, scope); ok {
			return cached, nil
		}
	}

	result, err := uc.suggester.SuggestTags(ctx, suggest.SuggestInput{
		Bookmark:   bm,
		Candidates: candidates,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to suggest tags", goerr.V("bookmarkID", bm.ID))
	}

	uc.cache.PutSuggestion(ctx, fp, scope, result)

	return result, nil
}

// EvaluateTag returns an AI decision on whether the bookmark should carry
// the target tag, with the same cache policy as SuggestTags. An undefined
// tag is rejected before any cache or AI interaction.
func (uc *UseCases) EvaluateTag(ctx context.Context, bm *model.Bookmark, tag types.TagName, opts ...InvokeOption) (*model.TagDecision, error) {
	if uc.suggester == nil {
		return nil, ErrNoSuggestService
	}

	def := uc.vocab.Lookup(tag)
	if def == nil {
		return nil, goerr.Wrap(ErrUnknownTag, "cannot evaluate undefined tag", goerr.V("tag", tag))
	}

	cfg := newInvokeConfig(opts)
	fp := model.NewFingerprint(bm)

	if cfg.useCache {
		if cached, ok := uc.cache.GetApplication(ctx, fp, tag); ok {
			return cached, nil
		}
	}

	decision, err := uc.suggester.EvaluateTag(ctx, suggest.EvaluateInput{
		Bookmark: bm,
		Target:   *def,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to evaluate tag", goerr.V("bookmarkID", bm.ID), goerr.V("tag", tag))
	}

	uc.cache.PutApplication(ctx, fp, tag, decision)

	return decision, nil
}
