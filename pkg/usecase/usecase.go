package usecase

import (
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/service/cache"
	"github.com/secmon-lab/mnemosyne/pkg/service/console"
	"github.com/secmon-lab/mnemosyne/pkg/service/notion"
	"github.com/secmon-lab/mnemosyne/pkg/service/suggest"
)

// Console is the terminal seam used by the interactive review loops
type Console interface {
	ShowBookmark(b *model.Bookmark)
	ShowSuggestion(s *model.TagSuggestion)
	ShowDecision(tag types.TagName, d *model.TagDecision)
	AskTag(tag types.TagName) (console.Answer, error)
	Info(format string, args ...any)
}

type UseCases struct {
	cache     *cache.Service
	suggester suggest.Service
	bookmarks notion.Service
	vocab     *model.TagVocabulary
	console   Console
}

type Option func(*UseCases)

func WithSuggestService(svc suggest.Service) Option {
	return func(uc *UseCases) {
		uc.suggester = svc
	}
}

func WithNotionService(svc notion.Service) Option {
	return func(uc *UseCases) {
		uc.bookmarks = svc
	}
}

func WithConsole(c Console) Option {
	return func(uc *UseCases) {
		uc.console = c
	}
}

func New(cacheSvc *cache.Service, vocab *model.TagVocabulary, opts ...Option) *UseCases {
	uc := &UseCases{
		cache: cacheSvc,
		vocab: vocab,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
