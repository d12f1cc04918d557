package usecase

import (
	"context"
	"time"

	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/service/cache"
)

// CacheStats reports entry counts and timestamp ranges for both cache kinds
func (uc *UseCases) CacheStats(ctx context.Context) (*cache.Stats, error) {
	return uc.cache.Stats(ctx)
}

// ClearCache removes every cached entry of both kinds
func (uc *UseCases) ClearCache(ctx context.Context) error {
	return uc.cache.Clear(ctx)
}

// EvictCache removes entries older than maxAge from both cache kinds and
// returns the per-kind removal counts.
func (uc *UseCases) EvictCache(ctx context.Context, maxAge time.Duration) (map[types.CacheKind]int, error) {
	removed := map[types.CacheKind]int{}
	for _, kind := range []types.CacheKind{types.CacheKindSuggestion, types.CacheKindApplication} {
		n, err := uc.cache.EvictOlderThan(ctx, kind, maxAge)
		if err != nil {
			return removed, err
		}
		removed[kind] = n
	}
	return removed, nil
}
