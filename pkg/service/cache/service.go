package cache

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/utils/logging"
)

// Service implements the fingerprint-validated cache policy over a cache
// repository. The cache is a pure performance optimization: storage
// failures on the lookup/store path are logged and absorbed, never
// surfaced to the caller, so the AI workflow keeps working with a cold
// cache rather than aborting. Maintenance operations (eviction, stats,
// clear) are operator-facing and do surface errors.
//
// The service assumes single-process sequential access. Callers must not
// issue overlapping writes for the same kind; there is no locking here.
type Service struct {
	repo interfaces.Repository
	now  func() time.Time
}

// Option is a functional option for Service configuration
type Option func(*Service)

// WithNowFunc overrides the clock, for tests
func WithNowFunc(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a cache service over the given repository
func New(repo interfaces.Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// loadSuggestion fetches the entry under key. The second return reports
// degraded storage: true means the read failed for a reason other than
// plain absence and the caller should behave as if the cache were cold.
func (s *Service) loadSuggestion(ctx context.Context, key string) (*model.SuggestionEntry, bool) {
	entry, err := s.repo.Suggestion().Get(ctx, key)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, false
		}
		logging.From(ctx).Warn("suggestion cache read failed, treating as miss", "key", key, "error", err.Error())
		return nil, true
	}
	return entry, false
}

func (s *Service) loadApplication(ctx context.Context, key string) (*model.ApplicationEntry, bool) {
	entry, err := s.repo.Application().Get(ctx, key)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, false
		}
		logging.From(ctx).Warn("application cache read failed, treating as miss", "key", key, "error", err.Error())
		return nil, true
	}
	return entry, false
}

// GetSuggestion returns the cached suggestion for the bookmark's current
// fingerprint, or false when absent. "Absent" deliberately conflates three
// cases: no entry for the key, an entry whose fingerprint no longer
// matches, and an unreadable store. All of them require recomputation and
// callers cannot (and should not) tell them apart.
func (s *Service) GetSuggestion(ctx context.Context, fp model.Fingerprint, scope model.SuggestionScope) (*model.TagSuggestion, bool) {
	key := scope.Key(fp.BookmarkID)

	entry, _ := s.loadSuggestion(ctx, key)
	if entry == nil {
		logging.From(ctx).Debug("suggestion cache miss", "key", key)
		return nil, false
	}

	if !entry.Fingerprint.Match(fp) {
		logging.From(ctx).Debug("suggestion cache stale", "key", key)
		return nil, false
	}

	logging.From(ctx).Debug("suggestion cache hit", "key", key)
	return &model.TagSuggestion{
		Tags:      entry.SuggestedTags,
		Reasoning: entry.Reasoning,
	}, true
}

// PutSuggestion stores a fresh suggestion result under the fingerprint's
// key, replacing any previous entry for that key whether or not it was
// still valid. Storage failure is logged and absorbed.
func (s *Service) PutSuggestion(ctx context.Context, fp model.Fingerprint, scope model.SuggestionScope, result *model.TagSuggestion) {
	entry := &model.SuggestionEntry{
		ID:            model.NewEntryID(),
		Fingerprint:   fp,
		Scope:         scope,
		SuggestedTags: result.Tags,
		Reasoning:     result.Reasoning,
		CachedAt:      s.now().UTC(),
	}

	if err := s.repo.Suggestion().Put(ctx, entry); err != nil {
		logging.From(ctx).Warn("failed to write suggestion cache", "key", entry.Key(), "error", err.Error())
	}
}

// GetApplication returns the cached tag decision for the bookmark's
// current fingerprint, with the same absent-result conflation as
// GetSuggestion.
func (s *Service) GetApplication(ctx context.Context, fp model.Fingerprint, tag types.TagName) (*model.TagDecision, bool) {
	entry := &model.ApplicationEntry{Fingerprint: fp, TargetTag: tag}
	key := entry.Key()

	stored, _ := s.loadApplication(ctx, key)
	if stored == nil {
		logging.From(ctx).Debug("application cache miss", "key", key)
		return nil, false
	}

	if !stored.Fingerprint.Match(fp) {
		logging.From(ctx).Debug("application cache stale", "key", key)
		return nil, false
	}

	logging.From(ctx).Debug("application cache hit", "key", key)
	return &model.TagDecision{
		ShouldHaveTag: stored.ShouldHaveTag,
		Reasoning:     stored.Reasoning,
	}, true
}

// PutApplication stores a fresh tag decision, replacing any previous entry
// for the same key. Storage failure is logged and absorbed.
func (s *Service) PutApplication(ctx context.Context, fp model.Fingerprint, tag types.TagName, decision *model.TagDecision) {
	entry := &model.ApplicationEntry{
		ID:            model.NewEntryID(),
		Fingerprint:   fp,
		TargetTag:     tag,
		ShouldHaveTag: decision.ShouldHaveTag,
		Reasoning:     decision.Reasoning,
		CachedAt:      s.now().UTC(),
	}

	if err := s.repo.Application().Put(ctx, entry); err != nil {
		logging.From(ctx).Warn("failed to write application cache", "key", entry.Key(), "error", err.Error())
	}
}

// EvictOlderThan removes all entries of the given kind cached before
// now - maxAge. Returns the number of removed entries.
func (s *Service) EvictOlderThan(ctx context.Context, kind types.CacheKind, maxAge time.Duration) (int, error) {
	if !kind.IsValid() {
		return 0, goerr.New("invalid cache kind", goerr.V("kind", kind))
	}

	cutoff := s.now().UTC().Add(-maxAge)

	var removed int
	var err error
	switch kind {
	case types.CacheKindSuggestion:
		removed, err = s.repo.Suggestion().DeleteOlderThan(ctx, cutoff)
	case types.CacheKindApplication:
		removed, err = s.repo.Application().DeleteOlderThan(ctx, cutoff)
	}
	if err != nil {
		return removed, goerr.Wrap(err, "failed to evict stale cache entries", goerr.V("kind", kind), goerr.V("cutoff", cutoff))
	}

	return removed, nil
}

// Stats computes per-kind entry counts and the oldest/newest cache
// timestamps. An empty store yields zero counts and nil timestamps.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	suggestions, err := s.repo.Suggestion().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list suggestion cache entries")
	}
	for _, e := range suggestions {
		stats.Suggestion.Total++
		switch e.Scope.Kind() {
		case types.SuggestionKindUntagged:
			stats.Suggestion.Untagged++
		case types.SuggestionKindTagSpecific:
			stats.Suggestion.TagSpecific++
		}
		stats.Suggestion.Oldest = olderOf(stats.Suggestion.Oldest, e.CachedAt)
		stats.Suggestion.Newest = newerOf(stats.Suggestion.Newest, e.CachedAt)
	}

	applications, err := s.repo.Application().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list application cache entries")
	}
	for _, e := range applications {
		stats.Application.Total++
		stats.Application.Oldest = olderOf(stats.Application.Oldest, e.CachedAt)
		stats.Application.Newest = newerOf(stats.Application.Newest, e.CachedAt)
	}

	return stats, nil
}

// Clear removes all persisted state for both kinds unconditionally
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Suggestion().Clear(ctx); err != nil {
		return goerr.Wrap(err, "failed to clear suggestion cache")
	}
	if err := s.repo.Application().Clear(ctx); err != nil {
		return goerr.Wrap(err, "failed to clear application cache")
	}
	return nil
}

func olderOf(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.Before(*current) {
		return &candidate
	}
	return current
}

func newerOf(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.After(*current) {
		return &candidate
	}
	return current
}
