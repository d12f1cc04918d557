package cache

import (
	"context"

	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
)

// LoadSuggestion exposes the degraded-load helper for tests
func (s *Service) LoadSuggestion(ctx context.Context, key string) (*model.SuggestionEntry, bool) {
	return s.loadSuggestion(ctx, key)
}

// LoadApplication exposes the degraded-load helper for tests
func (s *Service) LoadApplication(ctx context.Context, key string) (*model.ApplicationEntry, bool) {
	return s.loadApplication(ctx, key)
}
