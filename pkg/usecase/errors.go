package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// ErrUnknownTag is returned when a requested tag has no definition in
	// the vocabulary. It is reported before any cache or AI interaction.
	ErrUnknownTag = errors.New("tag is not defined in the vocabulary")

	// ErrNoSuggestService is returned when an AI-backed operation is
	// requested but no suggest service was configured
	ErrNoSuggestService = errors.New("suggest service is not configured")

	// ErrNoNotionService is returned when a bookmark operation is
	// requested but no Notion service was configured
	ErrNoNotionService = errors.New("notion service is not configured")
)
