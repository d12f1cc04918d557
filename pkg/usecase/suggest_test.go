package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/repository/memory"
	"github.com/secmon-lab/mnemosyne/pkg/service/cache"
	"github.com/secmon-lab/mnemosyne/pkg/service/suggest"
	"github.com/secmon-lab/mnemosyne/pkg/usecase"
)

// stubSuggestService counts AI invocations and returns canned results
type stubSuggestService struct {
	suggestCalls  int
	evaluateCalls int
	suggestion    *model.TagSuggestion
	decision      *model.TagDecision
	err           error
}

func (s *stubSuggestService) SuggestTags(ctx context.Context, input suggest.SuggestInput) (*model.TagSuggestion, error) {
	s.suggestCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.suggestion, nil
}

func (s *stubSuggestService) EvaluateTag(ctx context.Context, input suggest.EvaluateInput) (*model.TagDecision, error) {
	s.evaluateCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.decision, nil
}

func testVocabulary() *model.TagVocabulary {
	return model.NewTagVocabulary([]model.TagDefinition{
		{Name: "papers", Description: "Academic papers and publications"},
		{Name: "golang", Description: "Go programming language"},
	})
}

func testBookmark() *model.Bookmark {
	return &model.Bookmark{
		ID:             "bm-001",
		Title:          "Raft paper",
		URL:            "https://raft.github.io/raft.pdf",
		What:           "consensus algorithm paper",
		LastEditedTime: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func newTestUseCases(stub *stubSuggestService, opts ...usecase.Option) *usecase.UseCases {
	opts = append([]usecase.Option{usecase.WithSuggestService(stub)}, opts...)
	return usecase.New(cache.New(memory.New()), testVocabulary(), opts...)
}

func TestSuggestTagsCacheFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("miss calls AI and writes back", func(t *testing.T) {
		stub := &stubSuggestService{suggestion: &model.TagSuggestion{Tags: []types.TagName{"papers"}}}
		uc := newTestUseCases(stub)

		result, err := uc.SuggestTags(ctx, testBookmark(), model.UntaggedScope())
		gt.NoError(t, err).Required()
		gt.Value(t, result.Tags).Equal([]types.TagName{"papers"})
		gt.Number(t, stub.suggestCalls).Equal(1)

		// Second call with an unchanged bookmark hits the cache
		result, err = uc.SuggestTags(ctx, testBookmark(), model.UntaggedScope())
		gt.NoError(t, err).Required()
		gt.Value(t, result.Tags).Equal([]types.TagName{"papers"})
		gt.Number(t, stub.suggestCalls).Equal(1)
	})

	t.Run("edit invalidates the cached result", func(t *testing.T) {
		stub := &stubSuggestService{suggestion: &model.TagSuggestion{Tags: []types.TagName{"papers"}}}
		uc := newTestUseCases(stub)

		_, err := uc.SuggestTags(ctx, testBookmark(), model.UntaggedScope())
		gt.NoError(t, err).Required()

		edited := testBookmark()
		edited.Notes = "revisit"
		edited.LastEditedTime = edited.LastEditedTime.Add(time.Minute)

		_, err = uc.SuggestTags(ctx, edited, model.UntaggedScope())
		gt.NoError(t, err).Required()
		gt.Number(t, stub.suggestCalls).Equal(2)
	})

	t.Run("WithoutCache skips lookup but still writes", func(t *testing.T) {
		stub := &stubSuggestService{suggestion: &model.TagSuggestion{Tags: []types.TagName{"papers"}}}
		uc := newTestUseCases(stub)

		_, err := uc.SuggestTags(ctx, testBookmark(), model.UntaggedScope(), usecase.WithoutCache())
		gt.NoError(t, err).Required()
		_, err = uc.SuggestTags(ctx, testBookmark(), model.UntaggedScope(), usecase.WithoutCache())
		gt.NoError(t, err).Required()
		gt.Number(t, stub.suggestCalls).Equal(2)

		// The forced recomputation still populated the cache
		_, err = uc.SuggestTags(ctx, testBookmark(), model.UntaggedScope())
		gt.NoError(t, err).Required()
		gt.Number(t, stub.suggestCalls).Equal(2)
	})

	t.Run("AI failure propagates and caches nothing", func(t *testing.T) {
		stub := &stubSuggestService{err: goerr.New("quota exceeded")}
		uc := newTestUseCases(stub)

		_, err := uc.SuggestTags(ctx, testBookmark(), model.UntaggedScope())
		gt.Error(t, err)

		stub.err = nil
		stub.suggestion = &model.TagSuggestion{Tags: []types.TagName{"papers"}}
		_, err = uc.SuggestTags(ctx, testBookmark(), model.UntaggedScope())
		gt.NoError(t, err).Required()
		gt.Number(t, stub.suggestCalls).Equal(2)
	})

	t.Run("undefined tag scope fails before AI", func(t *testing.T) {
		stub := &stubSuggestService{suggestion: &model.TagSuggestion{}}
		uc := newTestUseCases(stub)

		_, err := uc.SuggestTags(ctx, testBookmark(), model.TagScope("made-up"))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrUnknownTag)).True()
		gt.Number(t, stub.suggestCalls).Equal(0)
	})

	t.Run("invalid scope is rejected", func(t *testing.T) {
		stub := &stubSuggestService{suggestion: &model.TagSuggestion{}}
		uc := newTestUseCases(stub)

		var zero model.SuggestionScope
		_, err := uc.SuggestTags(ctx, testBookmark(), zero)
		gt.Error(t, err)
		gt.Number(t, stub.suggestCalls).Equal(0)
	})

	t.Run("without suggest service", func(t *testing.T) {
		uc := usecase.New(cache.New(memory.New()), testVocabulary())

		_, err := uc.SuggestTags(ctx, testBookmark(), model.UntaggedScope())
		gt.Bool(t, errors.Is(err, usecase.ErrNoSuggestService)).True()
	})
}

func TestEvaluateTagCacheFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("miss calls AI and caches the decision", func(t *testing.T) {
		stub := &stubSuggestService{decision: &model.TagDecision{ShouldHaveTag: true, Reasoning: "clearly a paper"}}
		uc := newTestUseCases(stub)

		decision, err := uc.EvaluateTag(ctx, testBookmark(), "papers")
		gt.NoError(t, err).Required()
		gt.Bool(t, decision.ShouldHaveTag).True()
		gt.Number(t, stub.evaluateCalls).Equal(1)

		decision, err = uc.EvaluateTag(ctx, testBookmark(), "papers")
		gt.NoError(t, err).Required()
		gt.Bool(t, decision.ShouldHaveTag).True()
		gt.Number(t, stub.evaluateCalls).Equal(1)
	})

	t.Run("decisions for different tags are cached independently", func(t *testing.T) {
		stub := &stubSuggestService{decision: &model.TagDecision{ShouldHaveTag: false}}
		uc := newTestUseCases(stub)

		_, err := uc.EvaluateTag(ctx, testBookmark(), "papers")
		gt.NoError(t, err).Required()
		_, err = uc.EvaluateTag(ctx, testBookmark(), "golang")
		gt.NoError(t, err).Required()
		gt.Number(t, stub.evaluateCalls).Equal(2)
	})

	t.Run("undefined tag fails before AI", func(t *testing.T) {
		stub := &stubSuggestService{decision: &model.TagDecision{}}
		uc := newTestUseCases(stub)

		_, err := uc.EvaluateTag(ctx, testBookmark(), "made-up")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrUnknownTag)).True()
		gt.Number(t, stub.evaluateCalls).Equal(0)
	})

	t.Run("WithoutCache skips lookup but still writes", func(t *testing.T) {
		stub := &stubSuggestService{decision: &model.TagDecision{ShouldHaveTag: true}}
		uc := newTestUseCases(stub)

		_, err := uc.EvaluateTag(ctx, testBookmark(), "papers", usecase.WithoutCache())
		gt.NoError(t, err).Required()
		_, err = uc.EvaluateTag(ctx, testBookmark(), "papers")
		gt.NoError(t, err).Required()
		gt.Number(t, stub.evaluateCalls).Equal(1)
	})
}
